package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AugustoOmena/Checkout-MerPag/internal/middleware"
	"github.com/AugustoOmena/Checkout-MerPag/pkg/lambda"
)

// GinHandler exposes a serverless handler on the local gin server so both
// deployments share one code path.
func GinHandler(h lambda.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: err.Error()})
			return
		}

		req := &lambda.Request{
			Method:      c.Request.Method,
			Path:        c.Request.URL.Path,
			Headers:     flatten(c.Request.Header),
			QueryParams: flatten(c.Request.URL.Query()),
			Body:        body,
			RequestID:   c.GetString(middleware.RequestIDKey),
		}

		resp, err := h(c.Request.Context(), req)
		if err != nil {
			_ = c.Error(err)
		}
		if err != nil || resp == nil {
			resp = lambda.InternalError()
		}

		for k, v := range resp.Headers {
			c.Header(k, v)
		}
		if len(resp.Body) == 0 {
			c.Status(resp.StatusCode)
			return
		}
		c.Data(resp.StatusCode, resp.Headers["Content-Type"], resp.Body)
	}
}

func flatten(values map[string][]string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}
