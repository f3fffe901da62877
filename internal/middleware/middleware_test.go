package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newRouter(mws ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mws...)
	ok := func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) }
	r.GET("/", ok)
	r.POST("/", ok)
	r.OPTIONS("/", ok)
	return r
}

func do(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORS(t *testing.T) {
	r := newRouter(CORS(DefaultCORSConfig()))

	w := do(r, httptest.NewRequest(http.MethodOptions, "/", nil))
	if w.Code != http.StatusNoContent {
		t.Errorf("Expected 204 for pre-flight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got != "OPTIONS,POST" {
		t.Errorf("Unexpected allowed methods %q", got)
	}

	w = do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Unexpected origin %q", got)
	}
}

func TestCORSHeadersSurviveAbort(t *testing.T) {
	r := newRouter(CORSHeaders(DefaultCORSConfig()), RequestSizeLimit(8))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"token":"too-long"}`))
	w := do(r, req)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected 413, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected CORS origin on aborted response, got %q", got)
	}

	w = do(r, httptest.NewRequest(http.MethodOptions, "/", nil))
	if w.Code != http.StatusOK {
		t.Errorf("Expected pre-flight to reach the route, got %d", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	r := newRouter(RequestID())

	w := do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get("X-Request-ID")
	if generated == "" || w.Body.String() != generated {
		t.Errorf("Expected generated request id in header and context, got %q / %q", generated, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-id")
	w = do(r, req)
	if w.Header().Get("X-Request-ID") != "client-id" {
		t.Errorf("Expected client request id to be kept, got %q", w.Header().Get("X-Request-ID"))
	}
}

func TestRateLimiter(t *testing.T) {
	r := newRouter(RateLimiter(0.001, 1))

	if w := do(r, httptest.NewRequest(http.MethodGet, "/", nil)); w.Code != http.StatusOK {
		t.Fatalf("Expected first request to pass, got %d", w.Code)
	}
	if w := do(r, httptest.NewRequest(http.MethodGet, "/", nil)); w.Code != http.StatusTooManyRequests {
		t.Errorf("Expected 429, got %d", w.Code)
	}
}

func TestContentTypeValidation(t *testing.T) {
	r := newRouter(ContentTypeValidation())

	tests := []struct {
		name        string
		method      string
		contentType string
		want        int
	}{
		{"json", http.MethodPost, "application/json", http.StatusOK},
		{"json with charset", http.MethodPost, "application/json; charset=utf-8", http.StatusOK},
		{"missing", http.MethodPost, "", http.StatusBadRequest},
		{"text", http.MethodPost, "text/plain", http.StatusUnsupportedMediaType},
		{"preflight skipped", http.MethodOptions, "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", strings.NewReader("{}"))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			if w := do(r, req); w.Code != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestRequestSizeLimit(t *testing.T) {
	r := newRouter(RequestSizeLimit(8))

	w := do(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":"long body"}`)))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected 413, got %d", w.Code)
	}

	w = do(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)))
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	r := newRouter(SecurityHeaders())

	w := do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("Expected nosniff header")
	}
	if w.Header().Get("Cache-Control") != "no-store" {
		t.Error("Expected no-store cache control")
	}
}
