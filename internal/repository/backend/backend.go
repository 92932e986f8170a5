// Package backend is the REST client for the business backend: the current
// user's profile and the order book. The backend owns all storage; this
// client only moves snapshots.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/linkpay/webclient/internal/model"
	"github.com/linkpay/webclient/pgk/retryablehttp"
)

// BackendError is a non-2xx backend response.
type BackendError struct {
	Status int
	Body   string
}

func (e *BackendError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return fmt.Sprintf("backend error %d", e.Status)
}

type Client struct {
	client    *http.Client
	getClient *retryablehttp.RetryableClient
	baseURL   string
}

// New builds a backend client. Idempotent GETs go through the retrying
// client; POSTs are user-initiated mutations and resolve exactly once.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		client:    &http.Client{Timeout: timeout},
		getClient: retryablehttp.NewRetryableClient(retryablehttp.RetryConfig{}),
		baseURL:   strings.TrimSuffix(baseURL, "/"),
	}
}

// Me fetches the authenticated user's profile and businesses.
func (c *Client) Me(ctx context.Context, token string) (*model.MeResponse, error) {
	resp, err := c.getClient.Get(ctx, c.baseURL+"/api/user", token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	defer resp.Body.Close()

	if !ok2xx(resp.StatusCode) {
		return nil, &BackendError{Status: resp.StatusCode}
	}

	var me model.MeResponse
	if err := json.NewDecoder(resp.Body).Decode(&me); err != nil {
		return nil, fmt.Errorf("failed to parse profile response: %w", err)
	}

	return &me, nil
}

// CreateAccount registers a backend user record. No auth: this call runs
// before any session exists. The backend's response body text is surfaced
// on failure.
func (c *Client) CreateAccount(ctx context.Context, input model.RegisterDTO) error {
	resp, err := c.post(ctx, "/api/user", "", input)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !ok2xx(resp.StatusCode) {
		text, _ := io.ReadAll(resp.Body)
		return &BackendError{Status: resp.StatusCode, Body: strings.TrimSpace(string(text))}
	}

	return nil
}

// Orders lists the orders of one business.
func (c *Client) Orders(ctx context.Context, token, businessID string) ([]model.Order, error) {
	endpoint := c.baseURL + "/api/orders?business_id=" + url.QueryEscape(businessID)

	resp, err := c.getClient.Get(ctx, endpoint, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	defer resp.Body.Close()

	if !ok2xx(resp.StatusCode) {
		return nil, &BackendError{Status: resp.StatusCode}
	}

	var orders []model.Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, fmt.Errorf("failed to parse orders response: %w", err)
	}

	return orders, nil
}

// CreateOrder posts a new order and returns the created object.
func (c *Client) CreateOrder(ctx context.Context, token string, input model.CreateOrderRequest) (*model.Order, error) {
	resp, err := c.post(ctx, "/api/orders", token, input)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !ok2xx(resp.StatusCode) {
		return nil, &BackendError{Status: resp.StatusCode}
	}

	var order model.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to parse order response: %w", err)
	}

	return &order, nil
}

func (c *Client) post(ctx context.Context, path, token string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.client.Do(req)
}

func ok2xx(status int) bool {
	return status >= 200 && status <= 299
}
