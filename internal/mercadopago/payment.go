package mercadopago

import "context"

// PaymentRequest is the body of POST /v1/payments.
type PaymentRequest struct {
	TransactionAmount float64 `json:"transaction_amount"`
	Token             string  `json:"token,omitempty"`
	Description       string  `json:"description"`
	Installments      int     `json:"installments"`
	PaymentMethodID   string  `json:"payment_method_id,omitempty"`
	Payer             Payer   `json:"payer"`
}

// Payer identifies who pays.
type Payer struct {
	Email string `json:"email,omitempty"`
}

// PaymentClient creates payments.
type PaymentClient struct {
	client *Client
}

// Create submits a payment. Provider rejections come back as a Result with
// a status >= 400, not as an error.
func (p *PaymentClient) Create(ctx context.Context, req PaymentRequest, opts *RequestOptions) (*Result, error) {
	return p.client.post(ctx, "/v1/payments", req, opts)
}
