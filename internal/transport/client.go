// Package transport is the single HTTP boundary to the job-tracker backend.
//
// Every request goes through Client.Do, which encodes JSON bodies, decodes
// JSON envelopes and logs each failure exactly once before returning it as a
// TransportFailure (*domain.AppError with domain.CodeTransport).
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/simp-lee/jobtracker/internal/domain"
)

// DefaultBaseURL is used when no base address is configured.
const DefaultBaseURL = "http://localhost:7030"

const (
	contentType     = "application/json"
	requestIDHeader = "X-Request-ID"
	maxBodyBytes    = 8 << 20
)

// emptyEnvelope stands in for a 2xx reply without a body.
var emptyEnvelope = []byte(`{"isSuccess":true,"errors":[]}`)

// Request describes one call to the backend. Path is relative to the base
// address and must already be escaped.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Client issues requests against a single base address.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	timeout      time.Duration
	logger       *slog.Logger
	newRequestID func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for failures and request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTimeout bounds every request. Zero keeps the http.Client default (none).
// It applies to the final http.Client regardless of option order.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRequestIDFunc overrides how X-Request-ID values are generated.
func WithRequestIDFunc(fn func() string) Option {
	return func(c *Client) {
		if fn != nil {
			c.newRequestID = fn
		}
	}
}

// New creates a Client for baseURL. An empty baseURL falls back to
// DefaultBaseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: host is required", baseURL)
	}

	c := &Client{
		baseURL:      strings.TrimRight(u.String(), "/"),
		httpClient:   &http.Client{},
		logger:       slog.Default(),
		newRequestID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		// Copy so a caller-supplied client is left untouched.
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c, nil
}

// BaseURL returns the normalized base address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends req and decodes the JSON reply into out (which may be nil).
//
// A non-2xx reply whose body is a failed envelope is decoded into out and
// reported as success, so the caller's envelope unwrapping produces the
// domain failure with the server's messages. Any other non-2xx reply,
// network error or codec error is a TransportFailure.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = c.newRequestID()
	}
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("path", req.Path),
		slog.String("request_id", requestID),
	}

	var body io.Reader
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return c.fail(ctx, attrs, domain.NewTransportError("failed to encode request", 0, err))
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return c.fail(ctx, attrs, domain.NewTransportError("failed to build request", 0, err))
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", contentType)
	httpReq.Header.Set(requestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return c.fail(ctx, attrs, domain.NewTransportError("Network or server error", 0, err))
	}
	defer resp.Body.Close()

	attrs = append(attrs,
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return c.fail(ctx, attrs, domain.NewTransportError("failed to read response", resp.StatusCode, err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := domain.NewTransportError(
			fmt.Sprintf("server returned %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			resp.StatusCode, nil)
		if out != nil && isFailedEnvelope(raw) {
			if err := json.Unmarshal(raw, out); err == nil {
				c.logger.LogAttrs(ctx, slog.LevelWarn, "api request rejected", attrs...)
				return nil
			}
		}
		return c.fail(ctx, attrs, statusErr)
	}

	if out == nil {
		c.logger.LogAttrs(ctx, slog.LevelDebug, "api request", attrs...)
		return nil
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = emptyEnvelope
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return c.fail(ctx, attrs, domain.NewTransportError("failed to decode response", resp.StatusCode, err))
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "api request", attrs...)
	return nil
}

// Ping reports whether the backend answers at all. Any HTTP reply counts as
// reachable; only network failures are returned.
func (c *Client) Ping(ctx context.Context) error {
	attrs := []slog.Attr{
		slog.String("method", http.MethodHead),
		slog.String("path", "/"),
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/", nil)
	if err != nil {
		return c.fail(ctx, attrs, domain.NewTransportError("failed to build request", 0, err))
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail(ctx, attrs, domain.NewTransportError("backend unreachable", 0, err))
	}
	resp.Body.Close()
	return nil
}

type requestIDKey struct{}

// WithRequestID returns a copy of ctx whose backend calls carry id as
// X-Request-ID instead of a freshly generated one.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the id stored by WithRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// fail logs err once and returns it.
func (c *Client) fail(ctx context.Context, attrs []slog.Attr, err *domain.AppError) error {
	level := slog.LevelError
	if errors.Is(err.Err, context.Canceled) {
		level = slog.LevelWarn
	}
	attrs = append(attrs, slog.String("error", err.Error()))
	c.logger.LogAttrs(ctx, level, "api request failed", attrs...)
	return err
}

// isFailedEnvelope reports whether raw decodes as an envelope with
// isSuccess=false.
func isFailedEnvelope(raw []byte) bool {
	var probe struct {
		IsSuccess *bool `json:"isSuccess"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	return probe.IsSuccess != nil && !*probe.IsSuccess
}
