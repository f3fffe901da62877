// Package mercadopago is a small client for the Mercado Pago REST API. It
// reports every HTTP answer as a Result so callers decide how to treat
// provider-side rejections; only transport and decoding failures are errors.
package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the production API host.
const DefaultBaseURL = "https://api.mercadopago.com"

const defaultTimeout = 30 * time.Second

// ErrMissingAccessToken is returned by NewClient when no token is given.
var ErrMissingAccessToken = errors.New("mercadopago: access token is required")

// Client holds the credentials and transport for API calls.
type Client struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at another host, such as a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a client authenticated with accessToken.
func NewClient(accessToken string, opts ...Option) (*Client, error) {
	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}

	c := &Client{
		accessToken: accessToken,
		baseURL:     DefaultBaseURL,
		httpClient:  &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("mercadopago: invalid base URL %q", c.baseURL)
	}

	return c, nil
}

// RequestOptions carries per-call settings.
type RequestOptions struct {
	CustomHeaders map[string]string
}

// Result is the provider's answer: HTTP status plus the JSON body verbatim.
type Result struct {
	Status   int
	Response json.RawMessage
}

// Payment returns the payments resource client.
func (c *Client) Payment() *PaymentClient {
	return &PaymentClient{client: c}
}

func (c *Client) post(ctx context.Context, path string, payload any, opts *RequestOptions) (*Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("mercadopago: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	if opts != nil {
		for k, v := range opts.CustomHeaders {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: read response: %w", err)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("mercadopago: non-JSON response with status %d", resp.StatusCode)
	}

	return &Result{Status: resp.StatusCode, Response: raw}, nil
}
