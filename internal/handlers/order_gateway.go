package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/AugustoOmena/Checkout-MerPag/internal/config"
	"github.com/AugustoOmena/Checkout-MerPag/internal/logging"
	"github.com/AugustoOmena/Checkout-MerPag/internal/models"
)

const (
	ordersPath              = "/v1/orders"
	externalReferencePrefix = "order_"
	externalReferenceLen    = 10
)

// OrderGateway creates orders by posting hand-built JSON to the orders API.
type OrderGateway struct {
	httpClient *http.Client
}

// NewOrderGateway creates an order gateway. A nil httpClient falls back to a
// client using the configured timeout.
func NewOrderGateway(cfg config.MercadoPagoConfig, httpClient *http.Client) *OrderGateway {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &OrderGateway{httpClient: httpClient}
}

// Name implements Gateway.
func (g *OrderGateway) Name() string {
	return "orders"
}

// Accepts implements Gateway. Only 2xx counts as success.
func (g *OrderGateway) Accepts(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// Submit implements Gateway.
func (g *OrderGateway) Submit(ctx context.Context, cfg config.MercadoPagoConfig, body []byte) (*ProviderResult, error) {
	req, err := decodeOrderCheckout(body)
	if err != nil {
		return nil, err
	}

	order, err := models.NewOrder(req, newExternalReference())
	if err != nil {
		return nil, badRequest(msgInvalidJSON, err)
	}

	payload, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("encode order: %w", err)
	}

	idempotencyKey := uuid.NewString()
	endpoint := strings.TrimRight(cfg.BaseURL, "/") + ordersPath

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+cfg.AccessToken)
	httpReq.Header.Set("X-Idempotency-Key", idempotencyKey)

	log := logrus.WithFields(logrus.Fields{
		"external_reference": order.ExternalReference,
		"idempotency_key":    idempotencyKey,
	})
	log.WithField("total_amount", order.TotalAmount).Info("Sending order to Mercado Pago")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read provider response: %w", err)
	}

	if !g.Accepts(resp.StatusCode) {
		log.WithFields(logrus.Fields{
			"provider_status": resp.StatusCode,
			"provider_body":   logging.Truncate(raw, maxLoggedBody),
		}).Warn("Mercado Pago returned an error")
	}

	if !json.Valid(raw) {
		return nil, fmt.Errorf("provider returned non-JSON body with status %d", resp.StatusCode)
	}

	return &ProviderResult{StatusCode: resp.StatusCode, Body: raw}, nil
}

func decodeOrderCheckout(body []byte) (*models.OrderCheckoutRequest, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	var req *models.OrderCheckoutRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, badRequest(msgInvalidJSON, err)
	}
	if req == nil {
		req = &models.OrderCheckoutRequest{}
	}

	if err := models.Validate(req); err != nil {
		if models.MissingField(err) == "token" {
			return nil, badRequest(msgTokenMissing, err)
		}
		return nil, badRequest(models.ValidationMessage(err), err)
	}

	return req, nil
}

func newExternalReference() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return externalReferencePrefix + hex[:externalReferenceLen]
}
