package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig configures the CORS middleware
type CORSConfig struct {
	AllowOrigin  string
	AllowMethods []string
	AllowHeaders []string
}

// DefaultCORSConfig mirrors what the Function URL is configured with.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigin:  "*",
		AllowMethods: []string{http.MethodOptions, http.MethodPost},
		AllowHeaders: []string{"Content-Type"},
	}
}

// CORSHeaders sets the CORS headers and always continues the chain, so
// responses aborted by later middleware stay readable by the browser.
func CORSHeaders(cfg CORSConfig) gin.HandlerFunc {
	set := corsHeaderSetter(cfg)
	return func(c *gin.Context) {
		set(c)
		c.Next()
	}
}

// CORS middleware for handling Cross-Origin Resource Sharing
func CORS(cfg CORSConfig) gin.HandlerFunc {
	set := corsHeaderSetter(cfg)
	return func(c *gin.Context) {
		set(c)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func corsHeaderSetter(cfg CORSConfig) func(*gin.Context) {
	methods := strings.Join(cfg.AllowMethods, ",")
	headers := strings.Join(cfg.AllowHeaders, ",")

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", cfg.AllowOrigin)
		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)
	}
}
