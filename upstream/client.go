// Package upstream is a thin HTTP client for the external feed/read-state
// store. It owns no retry policy; callers decide what a failure means.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"newsdesk/config"
)

// ErrUnavailable wraps transport-level failures reaching the upstream store.
var ErrUnavailable = errors.New("upstream store unavailable")

// StatusError is returned when the upstream store answered with a non-2xx
// status. The body is kept so callers can relay it verbatim.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, string(e.Body))
}

// Client represents the upstream store client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new upstream store client.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = config.DefaultUpstreamURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: config.UpstreamTimeout},
	}
}

// doJSON issues one request and decodes the JSON response into out (if
// non-nil). Transport failures and malformed bodies wrap ErrUnavailable;
// non-2xx answers become a StatusError carrying the upstream body.
func (c *Client) doJSON(ctx context.Context, method, path, auth string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Body: data}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
		}
	}
	return nil
}
