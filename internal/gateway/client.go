package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	apiVersion      = "2024-06-01"
	queryAcceptType = "application/vnd.worldpay.payment-queries-v1.hal+json"
)

// PaymentGateway is the outbound boundary of the relay.
type PaymentGateway interface {
	Authorize(ctx context.Context, instruction AuthorizationRequest) (*AuthorizationResult, error)
	QueryPayments(ctx context.Context, query url.Values) (*QueryResponse, error)
}

// Client calls the Worldpay Access HTTP API. A single synchronous call per
// request, no retry, no circuit breaker.
type Client struct {
	baseURL  string
	username string
	password string
	client   *http.Client
}

func NewClient(baseURL, username, password string) *Client {
	return &Client{
		baseURL:  baseURL,
		username: username,
		password: password,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Authorize POSTs an authorization instruction to /api/payments and returns
// the decoded response alongside the raw body for diagnostics. Transport and
// decode failures are returned as errors.
func (c *Client) Authorize(ctx context.Context, instruction AuthorizationRequest) (*AuthorizationResult, error) {
	payload, err := json.Marshal(instruction)
	if err != nil {
		return nil, fmt.Errorf("encoding authorization request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/payments", bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("WP-Api-Version", apiVersion)
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading gateway response: %w", err)
	}

	var body AuthorizationResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("decoding gateway response: %w", err)
	}

	return &AuthorizationResult{
		StatusCode: resp.StatusCode,
		OK:         resp.StatusCode >= 200 && resp.StatusCode < 300,
		Body:       body,
		Raw:        raw,
	}, nil
}

// QueryPayments GETs /paymentQueries/payments with the given query string and
// returns the body verbatim. On a non-2xx status the gateway's errorName and
// message are decoded so the caller can relay them.
func (c *Client) QueryPayments(ctx context.Context, query url.Values) (*QueryResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/paymentQueries/payments?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", queryAcceptType)
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading gateway response: %w", err)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("decoding gateway response: invalid JSON")
	}

	result := &QueryResponse{
		StatusCode: resp.StatusCode,
		OK:         resp.StatusCode >= 200 && resp.StatusCode < 300,
		Raw:        raw,
	}

	if !result.OK {
		var failure struct {
			ErrorName string `json:"errorName"`
			Message   string `json:"message"`
		}
		if err := json.Unmarshal(raw, &failure); err == nil {
			result.ErrorName = failure.ErrorName
			result.Message = failure.Message
		}
	}

	return result, nil
}
