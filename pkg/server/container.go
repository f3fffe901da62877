package server

import (
	"errors"
	"net/http"

	"github.com/AugustoOmena/Checkout-MerPag/internal/config"
	"github.com/AugustoOmena/Checkout-MerPag/internal/handlers"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	PaymentHandler *handlers.CheckoutHandler
	OrderHandler   *handlers.CheckoutHandler

	httpClient *http.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	httpClient := &http.Client{Timeout: cfg.MercadoPago.Timeout}

	return &Container{
		Config:         cfg,
		PaymentHandler: handlers.NewPaymentHandler(cfg.MercadoPago, httpClient),
		OrderHandler:   handlers.NewOrderHandler(cfg.MercadoPago, httpClient),
		httpClient:     httpClient,
	}, nil
}

// RouterConfig returns the handlers for the local gin server.
func (c *Container) RouterConfig() *handlers.RouterConfig {
	return &handlers.RouterConfig{
		PaymentHandler: c.PaymentHandler,
		OrderHandler:   c.OrderHandler,
	}
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
	}
	return nil
}
