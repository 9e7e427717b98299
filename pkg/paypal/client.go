package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2/clientcredentials"
)

const (
	SandboxBaseURL = "https://api-m.sandbox.paypal.com"
	LiveBaseURL    = "https://api-m.paypal.com"
)

// Client talks to the PayPal REST API. Access tokens are fetched and
// refreshed through the client-credentials flow.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(clientID, clientSecret, mode string) *Client {
	baseURL := SandboxBaseURL
	if mode == "live" {
		baseURL = LiveBaseURL
	}

	cfg := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     baseURL + "/v1/oauth2/token",
	}

	return &Client{
		httpClient: cfg.Client(context.Background()),
		baseURL:    baseURL,
	}
}

// NewClientWithHTTP wires a custom transport and base URL, used in tests.
func NewClientWithHTTP(httpClient *http.Client, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// CreateOrder creates a checkout order and returns it with its links,
// including the buyer approval URL.
func (c *Client) CreateOrder(ctx context.Context, req *OrderRequest) (*Order, error) {
	return c.doOrder(ctx, http.MethodPost, "/v2/checkout/orders", req)
}

// CaptureOrder captures an approved order.
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (*Order, error) {
	path := fmt.Sprintf("/v2/checkout/orders/%s/capture", orderID)
	return c.doOrder(ctx, http.MethodPost, path, struct{}{})
}

// GetOrder fetches order details.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	path := fmt.Sprintf("/v2/checkout/orders/%s", orderID)
	return c.doOrder(ctx, http.MethodGet, path, nil)
}

func (c *Client) doOrder(ctx context.Context, method, path string, payload interface{}) (*Order, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paypal request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("paypal error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	var order Order
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &order, nil
}
