package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Currency is fixed: the gateway settles in naira, amounts travel in kobo.
const Currency = "NGN"

// PaystackClient is a thin client for the gateway's transaction API. One
// attempt per call, no retry; errors carry the gateway message through
// verbatim.
type PaystackClient struct {
	BaseURL   string
	SecretKey string
	HTTP      *http.Client
}

// NewPaystackClient builds a client from the environment. PAYSTACK_BASE_URL
// is overridable so tests can point it at a local server.
func NewPaystackClient() *PaystackClient {
	base := os.Getenv("PAYSTACK_BASE_URL")
	if base == "" {
		base = "https://api.paystack.co"
	}
	return &PaystackClient{
		BaseURL:   base,
		SecretKey: os.Getenv("PAYSTACK_SECRET_KEY"),
		HTTP:      http.DefaultClient,
	}
}

// InitializeParams is the initialize-transaction request body. Amount is in
// kobo. Metadata is free-form and comes back on verification.
type InitializeParams struct {
	Email       string                 `json:"email"`
	Amount      int64                  `json:"amount"`
	Currency    string                 `json:"currency"`
	Reference   string                 `json:"reference,omitempty"`
	CallbackURL string                 `json:"callback_url,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// InitializeResult is the payload of a successful initialize call.
type InitializeResult struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// VerifyResult flattens the verify-transaction response. OK mirrors the
// envelope status; Status is the inner transaction status string. Payment
// succeeded only when OK is true AND Status is exactly "success".
type VerifyResult struct {
	OK              bool
	Message         string
	Status          string                 `json:"status"`
	Reference       string                 `json:"reference"`
	Amount          int64                  `json:"amount"`
	Currency        string                 `json:"currency"`
	PaidAt          string                 `json:"paid_at"`
	Channel         string                 `json:"channel"`
	GatewayResponse string                 `json:"gateway_response"`
	Customer        VerifyCustomer         `json:"customer"`
	Metadata        map[string]interface{} `json:"metadata"`
}

type VerifyCustomer struct {
	Email string `json:"email"`
}

// Succeeded applies the gateway's success contract.
func (r *VerifyResult) Succeeded() bool {
	return r.OK && r.Status == "success"
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Initialize calls POST /transaction/initialize and returns the
// authorization URL to redirect the browser to.
func (c *PaystackClient) Initialize(ctx context.Context, params InitializeParams) (*InitializeResult, error) {
	if params.Currency == "" {
		params.Currency = Currency
	}

	env, err := c.do(ctx, http.MethodPost, "/transaction/initialize", params)
	if err != nil {
		return nil, err
	}
	if !env.Status {
		return nil, fmt.Errorf("gateway rejected initialization: %s", env.Message)
	}

	var result InitializeResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		return nil, fmt.Errorf("invalid gateway response: %v", err)
	}
	if result.AuthorizationURL == "" {
		return nil, fmt.Errorf("gateway returned no authorization URL: %s", env.Message)
	}

	return &result, nil
}

// Verify calls GET /transaction/verify/{reference}. A non-nil result with
// Succeeded() == false means the gateway answered but the payment did not
// go through (abandoned, failed, ...).
func (c *PaystackClient) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	env, err := c.do(ctx, http.MethodGet, "/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, err
	}

	result := VerifyResult{OK: env.Status, Message: env.Message}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &result); err != nil {
			return nil, fmt.Errorf("invalid gateway response: %v", err)
		}
	}

	return &result, nil
}

func (c *PaystackClient) do(ctx context.Context, method, path string, body interface{}) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway unreachable: %v", err)
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("invalid gateway response: %v", err)
	}

	return &env, nil
}
