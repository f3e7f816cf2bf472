// Package backend is the console's typed client for the facility REST API.
// It is deliberately thin: one HTTP call per operation, no retries, no token
// refresh, and non-2xx responses surfaced to the caller unchanged.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/orbit-facilities/console/internal/core/ports"
)

const maxErrorBody = 64 << 10

// APIError carries a non-2xx backend response: the HTTP status and the raw
// body, with no interpretation applied.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	body := e.Body
	if len(body) > 120 {
		body = body[:120] + "…"
	}
	return fmt.Sprintf("backend responded %d: %s", e.Status, body)
}

// StatusOf returns the HTTP status behind err, or 0 when err is not a
// backend response (network failure, decode failure, ...).
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// Client issues JSON requests against a fixed backend origin. Before each
// request it consults the token source and, when a token is present, attaches
// it as a bearer credential. Calls are independent; nothing is queued or
// sequenced.
type Client struct {
	base   string
	http   *http.Client
	tokens ports.TokenSource
}

// NewClient validates the base origin and returns a ready client. A nil token
// source means requests go out unauthenticated.
func NewClient(baseURL string, timeout time.Duration, tokens ports.TokenSource) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("backend base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("backend base url %q: scheme and host are required", baseURL)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		base:   strings.TrimSuffix(u.String(), "/"),
		http:   &http.Client{Timeout: timeout},
		tokens: tokens,
	}, nil
}

// Do performs one backend call. body (when non-nil) is sent as JSON; out
// (when non-nil) receives the decoded 2xx response body.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if token, ok := c.tokens.Token(ctx); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resource := resourceLabel(path)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues(resource, method, "error").Inc()
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	requestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(resource, method, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Error bodies are short prose; cap the read in case the
		// backend misbehaves. Success bodies are never capped.
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// resourceLabel keeps metric cardinality bounded: the first path segment
// after /api/, never raw ids.
func resourceLabel(path string) string {
	trimmed := strings.TrimPrefix(path, "/api/")
	if trimmed == path {
		return "other"
	}
	if i := strings.IndexByte(trimmed, '/'); i > 0 {
		return trimmed[:i]
	}
	return strings.TrimSuffix(trimmed, "/")
}
