// Package bankapi is the typed client of the core banking REST API.
package bankapi

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
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/core/ports/gateways"
	"github.com/SscSPs/bank_portal/internal/middleware"
	"github.com/SscSPs/bank_portal/internal/platform/metrics"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	apiPrefix  = "/api"
	authPrefix = "/auth"

	// maxErrorBody bounds how much of a failure response is read for its message.
	maxErrorBody = 64 << 10
)

// messageKeys are the fields of an error payload that may carry a readable
// message, in order of preference.
var messageKeys = []string{"message", "error", "details"}

// Options configures a Connector.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64 // requests per second; zero or less disables limiting
	Burst     int
	Transport http.RoundTripper
}

// ExpiryFunc is called when the core banking API rejects a session's token.
type ExpiryFunc func(ctx context.Context, sess *domain.Session)

// Connector holds what every client of the core banking API shares: the base
// URL, the transport, the outbound rate limiter and the session expiry hook.
type Connector struct {
	baseURL   *url.URL
	transport http.RoundTripper
	timeout   time.Duration
	limiter   *rate.Limiter

	mu       sync.RWMutex
	onExpiry ExpiryFunc
}

// NewConnector validates opts and creates a Connector.
func NewConnector(opts Options) (*Connector, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("bank API base URL cannot be empty")
	}
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid bank API base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("bank API base URL must be absolute, got %q", opts.BaseURL)
	}

	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	limit := rate.Inf
	burst := opts.Burst
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
		if burst <= 0 {
			burst = int(opts.RateLimit) + 1
		}
	}

	return &Connector{
		baseURL:   base,
		transport: transport,
		timeout:   opts.Timeout,
		limiter:   rate.NewLimiter(limit, burst),
	}, nil
}

// OnSessionExpired registers the hook that clears a session after a 401.
func (c *Connector) OnSessionExpired(fn ExpiryFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onExpiry = fn
}

func (c *Connector) expiryHook() ExpiryFunc {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.onExpiry
}

// For returns a client bound to the session's bearer token. A nil session
// gives an anonymous client for login and registration.
func (c *Connector) For(sess *domain.Session) *Client {
	transport := c.transport
	if sess != nil && sess.Token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: sess.Token, TokenType: "Bearer"}),
			Base:   c.transport,
		}
	}
	return &Client{
		conn:    c,
		session: sess,
		http:    &http.Client{Transport: transport, Timeout: c.timeout},
	}
}

// Client is a session-bound client of the core banking API. It is safe for
// concurrent use; a 401 clears its session at most once.
type Client struct {
	conn    *Connector
	session *domain.Session
	http    *http.Client

	expireOnce sync.Once
}

func (c *Client) anonymous() bool {
	return c.session == nil || c.session.Token == ""
}

func (c *Client) expire(ctx context.Context) {
	c.expireOnce.Do(func() {
		metrics.RecordSessionExpired()
		middleware.GetLoggerFromCtx(ctx).Warn("Core banking API rejected session token, clearing session",
			slog.String("session_id", c.session.ID))
		if hook := c.conn.expiryHook(); hook != nil {
			hook(context.WithoutCancel(ctx), c.session)
		}
	})
}

// request describes one call to the core banking API.
type request struct {
	method string
	prefix string
	path   string
	query  url.Values
	body   any
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, request{method: http.MethodGet, prefix: apiPrefix, path: path, query: query}, out)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, request{method: http.MethodPost, prefix: apiPrefix, path: path, query: query, body: body}, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, request{method: http.MethodPut, prefix: apiPrefix, path: path, body: body}, out)
}

func (c *Client) patch(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, request{method: http.MethodPatch, prefix: apiPrefix, path: path, query: query}, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, request{method: http.MethodDelete, prefix: apiPrefix, path: path}, nil)
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := c.conn.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: rate limiter: %v", apperrors.ErrTransport, err)
	}

	target := c.conn.baseURL.JoinPath(r.prefix, r.path)
	if len(r.query) > 0 {
		target.RawQuery = r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s request: %w", r.method, r.path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target.String(), body)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", r.method, r.path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RecordUpstream(r.method, 0, time.Since(start).Seconds())
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		logger.Warn("Core banking API unreachable", slog.String("method", r.method), slog.String("path", r.path), slog.String("error", err.Error()))
		return fmt.Errorf("%w: %s %s: %v", apperrors.ErrTransport, r.method, r.path, err)
	}
	defer resp.Body.Close()
	metrics.RecordUpstream(r.method, resp.StatusCode, time.Since(start).Seconds())

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := apperrors.NewAPIError(resp.StatusCode, extractMessage(raw))
		if resp.StatusCode == http.StatusUnauthorized {
			if c.anonymous() {
				apiErr.Kind = apperrors.ErrUnauthorized
			} else {
				c.expire(ctx)
			}
		}
		logger.Debug("Core banking API returned an error",
			slog.String("method", r.method),
			slog.String("path", r.path),
			slog.Int("status", resp.StatusCode),
			slog.String("message", apiErr.Message))
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading %s %s response: %v", apperrors.ErrTransport, r.method, r.path, err)
	}
	return decodeBody(raw, out)
}

// decodeBody decodes a success payload. Plain text bodies are accepted for
// string targets.
func decodeBody(raw []byte, out any) error {
	if s, ok := out.(*string); ok && !gjson.ValidBytes(raw) {
		*s = string(raw)
		return nil
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: unexpected response payload: %v", apperrors.ErrUpstream, err)
	}
	return nil
}

// extractMessage pulls a human readable message out of an error payload.
func extractMessage(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	if !gjson.ValidBytes(raw) {
		return string(raw)
	}
	doc := gjson.ParseBytes(raw)
	if doc.Type == gjson.String {
		return doc.String()
	}
	for _, key := range messageKeys {
		if v := doc.Get(key); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

// pathID formats a numeric path segment.
func pathID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// IsSessionExpired reports whether err means the session has been cleared.
func IsSessionExpired(err error) bool {
	return errors.Is(err, apperrors.ErrSessionExpired)
}

// Factory returns a gateways.Factory that binds clients to sessions.
func (c *Connector) Factory() gateways.Factory[gateways.BankAPI] {
	return func(sess *domain.Session) gateways.BankAPI {
		return c.For(sess)
	}
}
