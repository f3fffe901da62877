package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AugustoOmena/Checkout-MerPag/pkg/lambda"
)

// Messages returned to the storefront. They are part of the frontend contract.
const (
	msgInvalidConfig = "Configuração de servidor inválida"
	msgSDKFailure    = "Falha no SDK de Pagamento"
	msgEmptyBody     = "Body vazio"
	msgInvalidJSON   = "JSON inválido"
	msgTokenMissing  = "Token do cartão não fornecido"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error is a local failure that maps to a fixed status and message.
type Error struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func badRequest(message string, err error) *Error {
	return &Error{StatusCode: http.StatusBadRequest, Message: message, Err: err}
}

func internalError(message string, err error) *Error {
	return &Error{StatusCode: http.StatusInternalServerError, Message: message, Err: err}
}

// ProviderResult is the provider's status code and JSON body.
type ProviderResult struct {
	StatusCode int
	Body       json.RawMessage
}

// errorToResponse turns a failed checkout into the response sent back.
// Anything that is not an *Error is reported as a 500 carrying its message.
func errorToResponse(err error) *lambda.Response {
	var herr *Error
	if errors.As(err, &herr) {
		return lambda.JSON(herr.StatusCode, ErrorResponse{Error: herr.Message})
	}
	return lambda.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
