package server

import (
	"testing"
	"time"

	"github.com/AugustoOmena/Checkout-MerPag/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Port:        "8080",
		LogLevel:    "info",
		LogFormat:   "text",
		MercadoPago: config.MercadoPagoConfig{
			AccessToken:        "TEST-token",
			BaseURL:            "https://api.mercadopago.com",
			PaymentDescription: "Venda Lojas Omena",
			Timeout:            5 * time.Second,
		},
	}
}

// TestNewContainer verifies that the container can be created successfully
func TestNewContainer(t *testing.T) {
	container, err := NewContainer(testConfig())
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}

	if container.PaymentHandler == nil {
		t.Error("PaymentHandler is nil")
	}
	if container.OrderHandler == nil {
		t.Error("OrderHandler is nil")
	}
	if container.httpClient.Timeout != 5*time.Second {
		t.Errorf("Expected client timeout 5s, got %v", container.httpClient.Timeout)
	}

	rc := container.RouterConfig()
	if rc.PaymentHandler != container.PaymentHandler || rc.OrderHandler != container.OrderHandler {
		t.Error("RouterConfig does not expose the container handlers")
	}

	if err := container.Close(); err != nil {
		t.Errorf("Failed to close container: %v", err)
	}
}

// TestNewContainerNilConfig verifies that a missing config is rejected
func TestNewContainerNilConfig(t *testing.T) {
	if _, err := NewContainer(nil); err == nil {
		t.Fatal("Expected error for nil config")
	}
}
