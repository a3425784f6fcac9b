// Package clients holds the low-level HTTP plumbing for the remote
// backend.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// HTTPClient is a basic HTTP client wrapper for the backend's data and
// auth APIs. Every request carries the project api key; the bearer token
// is the anon key until a user signs in.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	mu     sync.RWMutex
	bearer string
}

// NewHTTPClient creates a new HTTP client for the backend at baseURL.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		bearer:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetBearerToken switches the Authorization token. An empty token resets
// to the anon key.
func (c *HTTPClient) SetBearerToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token == "" {
		c.bearer = c.apiKey
		return
	}
	c.bearer = token
}

// BearerToken returns the token currently used for Authorization.
func (c *HTTPClient) BearerToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.bearer
}

// DoRequest performs an HTTP request and handles the response. headers are
// merged on top of the standard ones. Any non-2xx status becomes an error
// carrying the response body.
func (c *HTTPClient) DoRequest(ctx context.Context, method, path string, headers map[string]string, payload interface{}, handler func(*http.Response) (interface{}, error)) (interface{}, error) {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.BearerToken())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("backend returned %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if handler == nil {
		return nil, nil
	}
	return handler(resp)
}
