package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/AugustoOmena/Checkout-MerPag/internal/config"
	"github.com/AugustoOmena/Checkout-MerPag/internal/mercadopago"
	"github.com/AugustoOmena/Checkout-MerPag/internal/models"
)

// PaymentGateway creates payments with the mercadopago client library.
type PaymentGateway struct {
	description string
	httpClient  *http.Client
}

// NewPaymentGateway creates a payment gateway. A nil httpClient falls back to
// a client using the configured timeout.
func NewPaymentGateway(cfg config.MercadoPagoConfig, httpClient *http.Client) *PaymentGateway {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &PaymentGateway{
		description: cfg.PaymentDescription,
		httpClient:  httpClient,
	}
}

// Name implements Gateway.
func (g *PaymentGateway) Name() string {
	return "payments"
}

// Accepts implements Gateway. Anything below 400 counts as success.
func (g *PaymentGateway) Accepts(status int) bool {
	return status < http.StatusBadRequest
}

// Submit implements Gateway. The client is built per call so a rotated
// token is picked up by the next invocation.
func (g *PaymentGateway) Submit(ctx context.Context, cfg config.MercadoPagoConfig, body []byte) (*ProviderResult, error) {
	client, err := mercadopago.NewClient(cfg.AccessToken,
		mercadopago.WithBaseURL(cfg.BaseURL),
		mercadopago.WithHTTPClient(g.httpClient),
	)
	if err != nil {
		return nil, internalError(msgSDKFailure, err)
	}

	payment, err := g.buildPayment(body)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"transaction_amount": payment.TransactionAmount,
		"payment_method_id":  payment.PaymentMethodID,
		"installments":       payment.Installments,
	}).Info("Sending payment to Mercado Pago")

	res, err := client.Payment().Create(ctx, *payment, &mercadopago.RequestOptions{})
	if err != nil {
		return nil, err
	}

	return &ProviderResult{StatusCode: res.Status, Body: res.Response}, nil
}

func (g *PaymentGateway) buildPayment(body []byte) (*mercadopago.PaymentRequest, error) {
	if len(body) == 0 {
		return nil, badRequest(msgEmptyBody, nil)
	}

	var req *models.PaymentCheckoutRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, badRequest(msgInvalidJSON, err)
	}
	if req == nil {
		return nil, badRequest(msgInvalidJSON, nil)
	}

	amount, err := req.Amount()
	if err != nil {
		return nil, badRequest(msgInvalidJSON, err)
	}
	installments, err := req.InstallmentCount()
	if err != nil {
		return nil, badRequest(msgInvalidJSON, err)
	}

	return &mercadopago.PaymentRequest{
		TransactionAmount: amount,
		Token:             req.Token,
		Description:       g.description,
		Installments:      installments,
		PaymentMethodID:   req.PaymentMethodID,
		Payer:             mercadopago.Payer{Email: req.Payer.Email},
	}, nil
}
