package handlers

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/AugustoOmena/Checkout-MerPag/internal/config"
	"github.com/AugustoOmena/Checkout-MerPag/internal/logging"
	"github.com/AugustoOmena/Checkout-MerPag/pkg/lambda"
)

const maxLoggedBody = 2048

// Gateway is one way of reaching the payment provider for a checkout.
type Gateway interface {
	// Name identifies the gateway in logs.
	Name() string
	// Submit decodes the checkout body, calls the provider and returns its
	// answer. Local failures are returned as *Error.
	Submit(ctx context.Context, cfg config.MercadoPagoConfig, body []byte) (*ProviderResult, error)
	// Accepts reports whether a provider status is a success to relay as 201.
	Accepts(status int) bool
}

// CheckoutHandler drives a Gateway and maps its outcome to an HTTP response.
type CheckoutHandler struct {
	gateway    Gateway
	config     config.MercadoPagoConfig
	middleware []lambda.Middleware
}

// NewCheckoutHandler creates a checkout handler. The middleware wraps
// HandleCreate when the handler is obtained through Handler.
func NewCheckoutHandler(gateway Gateway, cfg config.MercadoPagoConfig, mws ...lambda.Middleware) *CheckoutHandler {
	return &CheckoutHandler{
		gateway:    gateway,
		config:     cfg,
		middleware: mws,
	}
}

// NewPaymentHandler creates the handler that creates payments through the
// provider client library. CORS is left to the Function URL.
func NewPaymentHandler(cfg config.MercadoPagoConfig, httpClient *http.Client) *CheckoutHandler {
	return NewCheckoutHandler(NewPaymentGateway(cfg, httpClient), cfg)
}

// NewOrderHandler creates the handler that posts orders over raw HTTPS and
// answers CORS pre-flight requests itself.
func NewOrderHandler(cfg config.MercadoPagoConfig, httpClient *http.Client) *CheckoutHandler {
	return NewCheckoutHandler(NewOrderGateway(cfg, httpClient), cfg, lambda.CORS(lambda.DefaultCORS()))
}

// Handler returns HandleCreate wrapped in the handler's middleware.
func (h *CheckoutHandler) Handler() lambda.HandlerFunc {
	return lambda.Chain(h.HandleCreate, h.middleware...)
}

// HandleCreate runs a single checkout.
func (h *CheckoutHandler) HandleCreate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	log := logrus.WithFields(logrus.Fields{
		"gateway":    h.gateway.Name(),
		"request_id": req.RequestID,
	})
	log.Info("Checkout started")

	if !h.config.HasCredentials() {
		log.Error("MP_ACCESS_TOKEN is not configured")
		return errorToResponse(internalError(msgInvalidConfig, nil)), nil
	}
	log.WithField("token_prefix", logging.MaskToken(h.config.AccessToken)).Info("Access token loaded")

	result, err := h.gateway.Submit(ctx, h.config, req.Body)
	if err != nil {
		resp := errorToResponse(err)
		entry := log.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"error":       err.Error(),
		})
		if resp.StatusCode >= http.StatusInternalServerError {
			entry.Error("Checkout failed")
		} else {
			entry.Warn("Checkout rejected")
		}
		return resp, nil
	}

	log = log.WithField("provider_status", result.StatusCode)
	if !h.gateway.Accepts(result.StatusCode) {
		log.WithField("provider_body", logging.Truncate(result.Body, maxLoggedBody)).Warn("Provider rejected checkout")
		return lambda.RawJSON(result.StatusCode, result.Body), nil
	}

	log.Info("Checkout completed")
	return lambda.RawJSON(http.StatusCreated, result.Body), nil
}
