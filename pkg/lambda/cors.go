package lambda

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

// CORSConfig lists the CORS headers attached to every response.
type CORSConfig struct {
	AllowOrigin  string
	AllowHeaders string
	AllowMethods string
}

// DefaultCORS allows any origin to POST JSON.
func DefaultCORS() CORSConfig {
	return CORSConfig{
		AllowOrigin:  "*",
		AllowHeaders: "Content-Type",
		AllowMethods: "OPTIONS,POST",
	}
}

// Headers returns the CORS headers as a fresh map.
func (c CORSConfig) Headers() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  c.AllowOrigin,
		"Access-Control-Allow-Headers": c.AllowHeaders,
		"Access-Control-Allow-Methods": c.AllowMethods,
	}
}

// CORS answers pre-flight requests with an empty JSON response without
// calling next and merges the CORS headers into every other response.
func CORS(cfg CORSConfig) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, req *Request) (*Response, error) {
			if req.Method == http.MethodOptions {
				resp := RawJSON(http.StatusOK, []byte{})
				headers := cfg.Headers()
				headers["Content-Type"] = contentTypeJSON
				resp.Headers = headers
				return resp, nil
			}

			resp, err := next(ctx, req)
			if err != nil || resp == nil {
				logrus.WithFields(logrus.Fields{
					"request_id": req.RequestID,
					"error":      fmt.Sprint(err),
				}).Error("Handler failed without a response")
				resp = InternalError()
			}

			headers := cfg.Headers()
			for k, v := range resp.Headers {
				headers[k] = v
			}
			resp.Headers = headers
			return resp, nil
		}
	}
}
