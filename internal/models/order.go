package models

// Fixed values of the orders API for card payments.
const (
	OrderTypeOnline              = "online"
	OrderProcessingModeAutomatic = "automatic"
	PaymentMethodTypeCreditCard  = "credit_card"
)

// Order is the body of POST /v1/orders.
type Order struct {
	Type              string            `json:"type"`
	ProcessingMode    string            `json:"processing_mode"`
	TotalAmount       string            `json:"total_amount"`
	ExternalReference string            `json:"external_reference"`
	Payer             OrderPayer        `json:"payer"`
	Transactions      OrderTransactions `json:"transactions"`
}

// OrderPayer identifies who pays for the order.
type OrderPayer struct {
	Email *string `json:"email"`
}

// OrderTransactions groups the payments of an order.
type OrderTransactions struct {
	Payments []OrderPayment `json:"payments"`
}

// OrderPayment is a single payment within an order. PaymentMethod is a map so
// that null entries can be dropped before sending; the API rejects explicit
// nulls for optional keys.
type OrderPayment struct {
	Amount        string         `json:"amount"`
	PaymentMethod map[string]any `json:"payment_method"`
}

// NewOrder builds a single-payment card order from a checkout request.
func NewOrder(req *OrderCheckoutRequest, externalReference string) (*Order, error) {
	amount, err := req.AmountString()
	if err != nil {
		return nil, err
	}
	installments, err := req.InstallmentCount()
	if err != nil {
		return nil, err
	}

	var methodID any
	if req.PaymentMethodID != nil {
		methodID = *req.PaymentMethodID
	}

	paymentMethod := PruneNulls(map[string]any{
		"id":           methodID,
		"type":         PaymentMethodTypeCreditCard,
		"token":        req.Token,
		"installments": installments,
		"issuer_id":    req.Issuer,
	})

	return &Order{
		Type:              OrderTypeOnline,
		ProcessingMode:    OrderProcessingModeAutomatic,
		TotalAmount:       amount,
		ExternalReference: externalReference,
		Payer:             OrderPayer{Email: req.Email},
		Transactions: OrderTransactions{
			Payments: []OrderPayment{{
				Amount:        amount,
				PaymentMethod: paymentMethod,
			}},
		},
	}, nil
}

// PruneNulls deletes keys whose value is nil and returns m.
func PruneNulls(m map[string]any) map[string]any {
	for k, v := range m {
		if v == nil {
			delete(m, k)
		}
	}
	return m
}
