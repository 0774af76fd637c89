package zerobid

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/zerobid-console/internal/domain/account"
	"github.com/riskibarqy/zerobid-console/internal/platform/logging"
	"github.com/riskibarqy/zerobid-console/internal/platform/resilience"
	"github.com/riskibarqy/zerobid-console/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL      = "http://localhost:5000/api"
	defaultTimeout      = 15 * time.Second
	maxResponseBodySize = 2 << 20
)

var errZeroBidTransient = crerr.New("zerobid transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	Clock          clockwork.Clock
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the ZeroBid REST backend. Every call carries the caller's
// bearer token; the client itself holds no credentials.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	logger         *logging.Logger
	clock          clockwork.Clock
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.Group[[]byte]
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := cfg.CircuitBreaker.Normalized()

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger.Named("zerobid"),
		clock:          clock,
		breaker:        resilience.NewCircuitBreaker(breakerCfg, clock),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// BreakerState exposes the circuit state for health reporting.
func (c *Client) BreakerState() resilience.CircuitState {
	return c.breaker.State()
}

// getJSON issues a GET and decodes the unwrapped payload into target. It
// returns the unwrapped bytes so callers can detect empty bodies.
func (c *Client) getJSON(ctx context.Context, sess account.Session, path string, query url.Values, target any) ([]byte, error) {
	if err := c.allow(ctx); err != nil {
		return nil, err
	}

	fullURL := c.baseURL + path
	encoded := ""
	if query != nil {
		encoded = query.Encode()
	}
	if encoded != "" {
		fullURL += "?" + encoded
	}

	key := sess.Token + " " + path + "?" + encoded
	raw, err, _ := c.flight.Do(key, func() ([]byte, error) {
		body, reqErr := c.executeGet(ctx, sess, fullURL)
		c.recordCircuitResult(reqErr)
		return body, reqErr
	})
	if err != nil {
		return nil, err
	}

	payload := unwrapData(raw)
	if target == nil || isEmptyPayload(payload) {
		return payload, nil
	}
	if err := sonic.Unmarshal(payload, target); err != nil {
		return nil, fmt.Errorf("%w: decode backend payload path=%s: %v", usecase.ErrDependencyUnavailable, path, err)
	}
	return payload, nil
}

// postJSON sends body once. Sales and approvals are not idempotent, so POSTs
// are never retried.
func (c *Client) postJSON(ctx context.Context, sess account.Session, path string, body any, target any) ([]byte, error) {
	if err := c.allow(ctx); err != nil {
		return nil, err
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if body != nil {
		encoded, err := sonic.Marshal(body)
		if err != nil {
			return nil, crerr.Wrap(err, "encode request body")
		}
		_, _ = buf.Write(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	c.decorate(req, sess)

	raw, reqErr := c.send(req)
	c.recordCircuitResult(reqErr)
	if reqErr != nil {
		c.logger.WarnContext(ctx, "zerobid request failed", "method", http.MethodPost, "path", path, "error", reqErr)
		return nil, reqErr
	}

	payload := unwrapData(raw)
	if target == nil || isEmptyPayload(payload) {
		return payload, nil
	}
	if err := sonic.Unmarshal(payload, target); err != nil {
		return nil, fmt.Errorf("%w: decode backend payload path=%s: %v", usecase.ErrDependencyUnavailable, path, err)
	}
	return payload, nil
}

func (c *Client) executeGet(ctx context.Context, sess account.Session, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, crerr.Wrap(err, "build request")
		}
		c.decorate(req, sess)

		raw, sendErr := c.send(req)
		if sendErr == nil {
			return raw, nil
		}
		lastErr = sendErr
		if !isTransient(sendErr) || attempt == c.maxRetries {
			break
		}

		backoff := time.Duration(attempt+1) * 500 * time.Millisecond
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-c.clock.After(backoff):
		}
	}

	if !stderrors.Is(lastErr, usecase.ErrNotFound) {
		c.logger.WarnContext(ctx, "zerobid request failed", "method", http.MethodGet, "url", fullURL, "error", lastErr)
	}
	return nil, lastErr
}

// send performs one round trip and classifies the outcome.
func (c *Client) send(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: send request: %v", usecase.ErrDependencyUnavailable, errZeroBidTransient, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w: read response body: %v", usecase.ErrDependencyUnavailable, errZeroBidTransient, err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}
	return nil, statusError(resp.StatusCode, raw)
}

func (c *Client) decorate(req *http.Request, sess account.Session) {
	req.Header.Set("Accept", "application/json")
	if token := strings.TrimSpace(sess.Token); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) allow(ctx context.Context) error {
	if !c.circuitEnabled {
		return nil
	}
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "zerobid circuit breaker rejected request", "state", c.breaker.State())
		return fmt.Errorf("%w: auction backend is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	return nil
}

func (c *Client) recordCircuitResult(err error) {
	if !c.circuitEnabled {
		return
	}
	c.breaker.Record(err != nil && isTransient(err))
}

// statusError maps a non-2xx response onto the usecase sentinels, keeping
// the backend's own message as the visible text.
func statusError(status int, raw []byte) error {
	msg := backendMessage(raw)
	if msg == "" {
		msg = strings.ToLower(http.StatusText(status))
	}

	switch {
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", usecase.ErrUnauthorized, msg)
	case status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", usecase.ErrForbidden, msg)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", usecase.ErrNotFound, msg)
	case isRetryableStatus(status):
		return fmt.Errorf("%w: %w: status=%d %s", usecase.ErrDependencyUnavailable, errZeroBidTransient, status, msg)
	case status >= 400 && status < 500:
		return fmt.Errorf("%w: %s", usecase.ErrInvalidInput, msg)
	default:
		return fmt.Errorf("%w: status=%d %s", usecase.ErrDependencyUnavailable, status, msg)
	}
}

func backendMessage(raw []byte) string {
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return ""
	}
	var payload errorPayload
	if err := sonic.Unmarshal(raw, &payload); err == nil {
		return firstNonEmpty(payload.Message, payload.Error)
	}
	return abbreviate(text)
}

func abbreviate(text string) string {
	const limit = 200
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}

func isTransient(err error) bool {
	return stderrors.Is(err, errZeroBidTransient)
}

func isRetryableStatus(status int) bool {
	return status == http.StatusRequestTimeout || status == http.StatusTooManyRequests || status >= 500
}
