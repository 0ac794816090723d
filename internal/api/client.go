// Package api is the HTTP client for the marketplace backend. It owns the
// wire format of the post-a-project submission (multipart for the landing
// flow, JSON for the authenticated flow) and the classification of failures
// into user-facing messages.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	// DefaultBaseURL is used when neither config nor environment override it
	DefaultBaseURL = "http://localhost:8000/api/v1"

	// DefaultTimeout bounds every request to the backend
	DefaultTimeout = 60 * time.Second
)

// Client talks to the marketplace backend
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithToken sets the session token sent on authenticated requests
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// NewClient creates a backend client. GIGPOST_API_URL overrides the default
// base URL; explicit options override both.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    DefaultBaseURL,
	}

	if url := os.Getenv("GIGPOST_API_URL"); url != "" {
		c.baseURL = url
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// postJSON issues a JSON POST and decodes the response into out
func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransport(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classifyRejection(resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
