package lambda

import (
	"encoding/json"
	"net/http"
)

const contentTypeJSON = "application/json"

var internalErrorBody = []byte(`{"error":"Internal server error"}`)

// JSON serializes v and returns it as an application/json response.
func JSON(statusCode int, v any) *Response {
	body, err := json.Marshal(v)
	if err != nil {
		return RawJSON(http.StatusInternalServerError, internalErrorBody)
	}
	return RawJSON(statusCode, body)
}

// RawJSON returns body as-is. The caller guarantees it is valid JSON.
func RawJSON(statusCode int, body []byte) *Response {
	return &Response{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": contentTypeJSON},
		Body:       body,
	}
}

// InternalError is the response used when a handler fails without producing one.
func InternalError() *Response {
	return RawJSON(http.StatusInternalServerError, internalErrorBody)
}
