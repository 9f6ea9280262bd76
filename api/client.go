// Package api provides the HTTP client for remote component documentation.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/open-cli-collective/searchui-cli/internal/version"
)

const (
	defaultTimeout = 30 * time.Second
)

// Client fetches documentation from a remote server.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a new documentation client. baseURL may point at a
// directory or directly at a documentation file.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		userAgent: "sui/" + version.Version,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// do executes an HTTP request and returns the response body.
func (c *Client) do(ctx context.Context, method, path string) ([]byte, error) {
	url := c.baseURL
	if path != "" {
		// Ensure path starts with /
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		url += path
	}

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	// Handle error responses
	if resp.StatusCode >= 400 {
		errResp := ErrorResponse{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(respBody, &errResp); err != nil || errResp.Message == "" {
			errResp.Message = strings.TrimSpace(string(respBody))
		}
		return nil, &errResp
	}

	return respBody, nil
}

// Get performs a GET request. An empty path requests the base URL itself.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path)
}

// ErrorResponse represents an HTTP error from the documentation server.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}
