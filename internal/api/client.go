// Package api is the client for the HRMS REST API. Every failed call is
// returned as a normalized *Error whose Message is safe to display.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/hrms/internal/core/logging"
)

const (
	// DefaultBaseURL is used when no API URL is configured.
	DefaultBaseURL = "http://localhost:8000"
	// DefaultTimeout bounds every request made by the client.
	DefaultTimeout = 30 * time.Second

	requestIDHeader = "X-Request-ID"
	maxErrorBody    = 64 << 10
)

// Client issues requests against the HRMS API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *Metrics
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithMetrics records request outcomes in m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logging.Component("api"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request sends body (if non-nil) as JSON to path and decodes a successful
// response into out (if non-nil). Any failure is returned as *Error.
func (c *Client) Request(ctx context.Context, method, path string, body, out any) error {
	requestID := uuid.NewString()
	ctx = logging.WithRequestID(ctx, requestID)
	start := time.Now()

	status, err := c.do(ctx, method, path, requestID, body, out)

	elapsed := time.Since(start)
	if err != nil {
		apiErr, _ := AsError(err)
		c.metrics.observe(method, string(apiErr.Kind), elapsed)
		c.logger.Warn().Ctx(ctx).
			Err(apiErr.Unwrap()).
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Str("kind", string(apiErr.Kind)).
			Str("detail", apiErr.Detail).
			Dur("elapsed", elapsed).
			Msg("api request failed")
		return err
	}

	c.metrics.observe(method, "ok", elapsed)
	c.logger.Debug().Ctx(ctx).
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("elapsed", elapsed).
		Msg("api request")
	return nil
}

func (c *Client) do(ctx context.Context, method, path, requestID string, body, out any) (int, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, Normalize(Failure{Message: "Could not encode request", Err: fmt.Errorf("marshal request body: %w", err)})
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return 0, Normalize(Failure{Message: "Invalid request", Err: fmt.Errorf("create request: %w", err)})
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, Normalize(Failure{Message: transportMessage(err), Err: err})
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return resp.StatusCode, Normalize(Failure{
			Status:  resp.StatusCode,
			Detail:  parseDetail(raw),
			Message: fmt.Sprintf("Request failed with status code %d", resp.StatusCode),
			Err:     fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(raw))),
		})
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, Normalize(Failure{Message: "Invalid response from server", Err: fmt.Errorf("decode response: %w", err)})
		}
	}

	return resp.StatusCode, nil
}

// parseDetail extracts the "detail" field from an error body. Validation
// errors carry a list of objects with a "msg" field instead of a string.
func parseDetail(raw []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return ""
}

// transportMessage describes a failure where no response was received
// without leaking the request URL.
func transportMessage(err error) string {
	if errors.Is(err, context.Canceled) {
		return "Request cancelled"
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return "Request timed out"
		}
		return urlErr.Err.Error()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "Request timed out"
	}
	return err.Error()
}
