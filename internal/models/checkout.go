package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// PaymentCheckoutRequest is the storefront body accepted by the payments
// handler. Numeric fields are loosely typed because the frontend may send
// them as strings.
type PaymentCheckoutRequest struct {
	TransactionAmount any           `json:"transaction_amount"`
	Token             string        `json:"token"`
	Installments      any           `json:"installments"`
	PaymentMethodID   string        `json:"payment_method_id"`
	Payer             CheckoutPayer `json:"payer"`
}

// CheckoutPayer is the nested payer object of a payment checkout.
type CheckoutPayer struct {
	Email string `json:"email"`
}

// Amount returns the transaction amount, 0 when absent.
func (r *PaymentCheckoutRequest) Amount() (float64, error) {
	if r.TransactionAmount == nil {
		return 0, nil
	}
	v, err := cast.ToFloat64E(r.TransactionAmount)
	if err != nil {
		return 0, fmt.Errorf("transaction_amount: %w", err)
	}
	return v, nil
}

// InstallmentCount returns the number of installments, 1 when absent.
func (r *PaymentCheckoutRequest) InstallmentCount() (int, error) {
	return installments(r.Installments)
}

// OrderCheckoutRequest is the storefront body accepted by the orders handler.
type OrderCheckoutRequest struct {
	TransactionAmount json.RawMessage `json:"transactionAmount"`
	Token             string          `json:"token" validate:"required"`
	PaymentMethodID   *string         `json:"paymentMethodId"`
	Installments      any             `json:"installments"`
	Issuer            any             `json:"issuer"`
	Email             *string         `json:"email"`
}

// AmountString renders the amount as decimal text. Integers keep their
// digits, fractional or exponent literals are normalized ("100.50" becomes
// "100.5", 1e2 becomes "100.0") and strings are used as-is. Absent amounts
// become "0".
func (r *OrderCheckoutRequest) AmountString() (string, error) {
	raw := r.TransactionAmount
	if len(raw) == 0 || string(raw) == "null" {
		return "0", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("transactionAmount: %w", err)
	}
	if _, err := n.Int64(); err == nil {
		return n.String(), nil
	}
	f, err := n.Float64()
	if err != nil {
		return "", fmt.Errorf("transactionAmount: %w", err)
	}
	out := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out, nil
}

// InstallmentCount returns the number of installments, 1 when absent.
func (r *OrderCheckoutRequest) InstallmentCount() (int, error) {
	return installments(r.Installments)
}

// installments reads strings as base-10 integers; cast would treat "010"
// as octal.
func installments(v any) (int, error) {
	if v == nil {
		return 1, nil
	}
	if s, ok := v.(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, fmt.Errorf("installments: %w", err)
		}
		return n, nil
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("installments: %w", err)
	}
	return n, nil
}
