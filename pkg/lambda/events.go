package lambda

import (
	"context"
	"encoding/base64"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

// FromAPIGateway converts an API Gateway proxy event to a generic request.
func FromAPIGateway(ctx context.Context, event events.APIGatewayProxyRequest) (*Request, error) {
	body, err := decodeBody(event.Body, event.IsBase64Encoded)
	if err != nil {
		return nil, err
	}

	req := &Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        body,
	}
	req.RequestID = requestID(ctx, req, event.RequestContext.RequestID)
	return req, nil
}

// FromFunctionURL converts a Lambda Function URL event to a generic request.
func FromFunctionURL(ctx context.Context, event events.LambdaFunctionURLRequest) (*Request, error) {
	body, err := decodeBody(event.Body, event.IsBase64Encoded)
	if err != nil {
		return nil, err
	}

	req := &Request{
		Method:      event.RequestContext.HTTP.Method,
		Path:        event.RawPath,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        body,
	}
	req.RequestID = requestID(ctx, req, event.RequestContext.RequestID)
	return req, nil
}

// APIGatewayHandler adapts h to the API Gateway proxy integration.
func APIGatewayHandler(h HandlerFunc) func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		resp := invoke(ctx, h, func() (*Request, error) { return FromAPIGateway(ctx, event) })
		return events.APIGatewayProxyResponse{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       string(resp.Body),
		}, nil
	}
}

// FunctionURLHandler adapts h to Lambda Function URL invocations.
func FunctionURLHandler(h HandlerFunc) func(context.Context, events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	return func(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
		resp := invoke(ctx, h, func() (*Request, error) { return FromFunctionURL(ctx, event) })
		return events.LambdaFunctionURLResponse{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       string(resp.Body),
		}, nil
	}
}

func invoke(ctx context.Context, h HandlerFunc, convert func() (*Request, error)) *Response {
	req, err := convert()
	if err != nil {
		logrus.WithError(err).Error("Failed to decode invocation event")
		return InternalError()
	}

	resp, err := h(ctx, req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"request_id": req.RequestID,
			"method":     req.Method,
			"path":       req.Path,
			"error":      err.Error(),
		}).Error("Handler returned an error")
		return InternalError()
	}
	if resp == nil {
		return InternalError()
	}
	return resp
}

func decodeBody(body string, isBase64 bool) ([]byte, error) {
	if !isBase64 {
		return []byte(body), nil
	}
	return base64.StdEncoding.DecodeString(body)
}

// requestID prefers the caller's X-Request-ID, then the event's own id, then
// the Lambda invocation id.
func requestID(ctx context.Context, req *Request, eventID string) string {
	if id := req.Header(requestIDHeader); id != "" {
		return id
	}
	if eventID != "" {
		return eventID
	}
	return invocationID(ctx)
}

func invocationID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		return lc.AwsRequestID
	}
	return ""
}
