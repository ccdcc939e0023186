// Package backend is the HTTP client for the leave management REST API.
// Every call attaches the bearer token found in the context, classifies
// failures into AppError codes and reports 401 responses to registered
// observers before returning.
package backend

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
	"sync"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	apperrors "github.com/target/leave-ui/internal/errors"
	"github.com/target/leave-ui/internal/observability/metrics"
	"github.com/target/leave-ui/internal/observability/statsd"
)

const (
	// DefaultBaseURL is used when no base URL is configured.
	DefaultBaseURL = "http://localhost:8000"
	// DefaultMessageExpression extracts a human-readable message from common error body shapes.
	DefaultMessageExpression = "message || detail[0].msg || detail || error.message || error"

	defaultTimeout  = 15 * time.Second
	maxResponseSize = 1 << 20
)

// UnauthorizedHandler observes 401 responses from authenticated calls.
// It receives the context of the failing call.
type UnauthorizedHandler func(ctx context.Context)

// Config configures a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the default traced client (optional).
	HTTPClient *http.Client
	// MessageExpression is a JMESPath expression evaluated against JSON error bodies (optional).
	MessageExpression string
	Metrics           statsd.Sink
	Logger            *slog.Logger
}

// Client calls the leave backend. It is safe for concurrent use.
type Client struct {
	baseURL     *url.URL
	http        *http.Client
	messageExpr string
	metrics     statsd.Sink
	logger      *slog.Logger

	mu           sync.RWMutex
	unauthorized []UnauthorizedHandler
}

// NewClient validates cfg and constructs a Client.
func NewClient(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid backend base URL %q", cfg.BaseURL)
	}

	expr := strings.TrimSpace(cfg.MessageExpression)
	if expr == "" {
		expr = DefaultMessageExpression
	}
	if _, err := jmespath.Compile(expr); err != nil {
		return nil, fmt.Errorf("invalid message expression: %w", err)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:     base,
		http:        hc,
		messageExpr: expr,
		metrics:     cfg.Metrics,
		logger:      logger,
	}, nil
}

// OnUnauthorized registers fn to be called whenever an authenticated call receives a 401.
func (c *Client) OnUnauthorized(fn UnauthorizedHandler) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unauthorized = append(c.unauthorized, fn)
}

func (c *Client) notifyUnauthorized(ctx context.Context) {
	c.mu.RLock()
	handlers := make([]UnauthorizedHandler, len(c.unauthorized))
	copy(handlers, c.unauthorized)
	c.mu.RUnlock()

	for _, fn := range handlers {
		fn(ctx)
	}
}

// call describes a single backend request.
type call struct {
	op     string
	method string
	path   string
	body   any
	out    any
	// login marks the credential exchange, where 401 means bad credentials.
	login bool
}

func (c *Client) do(ctx context.Context, cl call) error {
	start := time.Now()
	status, err := c.roundTrip(ctx, cl)

	metrics.EmitBackendCall(c.metrics, metrics.BackendCall{
		Operation: cl.op,
		Status:    status,
		Duration:  time.Since(start),
		Err:       err,
	})

	if err == nil {
		return nil
	}

	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeUnauthorized:
		c.notifyUnauthorized(ctx)
	case apperrors.ErrCodeServer, apperrors.ErrCodeNetwork, apperrors.ErrCodeTimeout:
		c.logger.WarnContext(ctx, "backend request failed",
			"op", cl.op,
			"status", status,
			"error", err,
		)
	}
	return fmt.Errorf("%s: %w", cl.op, err)
}

func (c *Client) roundTrip(ctx context.Context, cl call) (int, error) {
	req, err := c.newRequest(ctx, cl)
	if err != nil {
		return 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, apperrors.MapTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return resp.StatusCode, apperrors.MapTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, apperrors.FromStatus(resp.StatusCode, c.extractMessage(body), cl.login)
	}

	if cl.out == nil || len(bytes.TrimSpace(body)) == 0 {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(body, cl.out); err != nil {
		return resp.StatusCode, apperrors.Wrap(err, apperrors.ErrCodeServer, "Unexpected response from the leave service.")
	}
	return resp.StatusCode, nil
}

func (c *Client) newRequest(ctx context.Context, cl call) (*http.Request, error) {
	var reader io.Reader
	if cl.body != nil {
		payload, err := json.Marshal(cl.body)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL.String()+cl.path, reader)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// extractMessage applies the configured JMESPath expression to a JSON error body.
// Non-JSON bodies and non-string results yield "".
func (c *Client) extractMessage(body []byte) string {
	if len(bytes.TrimSpace(body)) == 0 {
		return ""
	}
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return ""
	}
	res, err := jmespath.Search(c.messageExpr, data)
	if err != nil {
		return ""
	}
	if s, ok := res.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func escapeID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", errors.New("id is required")
	}
	return url.PathEscape(id), nil
}
