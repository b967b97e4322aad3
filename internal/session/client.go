package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aibek/payments-admin/internal/models"
)

// APIError is a non-2xx response from the payments API, carrying the
// server's error message when one was returned.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("payments api: %d %s", e.StatusCode, e.Message)
}

// Client is a thin HTTP client for the payments API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

func (c *Client) List(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := c.do(ctx, http.MethodGet, "/payments", nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (c *Client) Get(ctx context.Context, id string) (models.Payment, error) {
	var payment models.Payment
	err := c.do(ctx, http.MethodGet, "/payments/"+id, nil, &payment)
	return payment, err
}

func (c *Client) Create(ctx context.Context, req models.CreatePaymentRequest) (models.Payment, error) {
	var payment models.Payment
	err := c.do(ctx, http.MethodPost, "/payments", req, &payment)
	return payment, err
}

func (c *Client) Update(ctx context.Context, id string, req models.UpdatePaymentRequest) (models.Payment, error) {
	var payment models.Payment
	err := c.do(ctx, http.MethodPatch, "/payments/"+id, req, &payment)
	return payment, err
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/payments/"+id, nil, nil)
}

// DeleteMany deletes the given ids and returns the server-reported count,
// which may be lower than len(ids) when some ids did not exist.
func (c *Client) DeleteMany(ctx context.Context, ids []string) (int, error) {
	body := map[string][]string{"ids": ids}
	var resp struct {
		Success bool `json:"success"`
		Deleted int  `json:"deleted"`
	}
	if err := c.do(ctx, http.MethodDelete, "/payments", body, &resp); err != nil {
		return 0, err
	}
	return resp.Deleted, nil
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var serverErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&serverErr); err == nil && serverErr.Error != "" {
			apiErr.Message = serverErr.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
