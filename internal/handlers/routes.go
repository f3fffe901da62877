package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/AugustoOmena/Checkout-MerPag/internal/config"
	"github.com/AugustoOmena/Checkout-MerPag/internal/middleware"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	PaymentHandler *CheckoutHandler
	OrderHandler   *CheckoutHandler
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   "checkout-merpag",
			"timestamp": time.Now().UTC(),
		})
	})

	v1 := router.Group("/api/v1")
	{
		// In production the Function URL answers CORS for payments; the
		// local server does it with the gin middleware instead.
		payments := v1.Group("/payments")
		payments.Use(middleware.CORS(middleware.DefaultCORSConfig()))
		{
			payments.POST("", CreatePayment(config.PaymentHandler))
			payments.OPTIONS("", CreatePayment(config.PaymentHandler))
		}

		// Orders carry their own CORS decorator, OPTIONS included.
		orders := v1.Group("/orders")
		{
			orders.POST("", CreateOrder(config.OrderHandler))
			orders.OPTIONS("", CreateOrder(config.OrderHandler))
		}
	}
}

// SetupMiddleware configures global middleware. CORS headers go on before the
// request guards so their rejections reach the storefront.
func SetupMiddleware(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORSHeaders(middleware.DefaultCORSConfig()))
	router.Use(middleware.RequestSizeLimit(cfg.Server.MaxBodyBytes))
	router.Use(middleware.ContentTypeValidation("application/json"))
	router.Use(middleware.RateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))
	router.Use(middleware.StructuredLogger())
	router.Use(middleware.ErrorTracker())
}

// CreatePayment godoc
// @Summary Create a card payment
// @Description Forwards checkout data to the Mercado Pago payments API and relays its answer
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body models.PaymentCheckoutRequest true "Checkout data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /payments [post]
func CreatePayment(h *CheckoutHandler) gin.HandlerFunc {
	return GinHandler(h.Handler())
}

// CreateOrder godoc
// @Summary Create a card order
// @Description Posts an order to the Mercado Pago orders API with an idempotency key
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body models.OrderCheckoutRequest true "Checkout data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /orders [post]
func CreateOrder(h *CheckoutHandler) gin.HandlerFunc {
	return GinHandler(h.Handler())
}
