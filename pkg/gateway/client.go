package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultRequestTimeout = 30 * time.Second
	maxResponseBodyBytes  = 1 << 20

	tracerName = "wardview/gateway"
)

// HTTPDoer is the transport dependency, satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures a Client.
type Config struct {
	// BaseURL is the remote service address, e.g. "http://localhost:5000/api".
	BaseURL string

	// Store persists the credential. Required.
	Store CredentialStore

	// HTTPClient overrides the transport. Defaults to an *http.Client with
	// the request timeout.
	HTTPClient HTTPDoer

	// Timeout bounds each request. Defaults to 30s.
	Timeout time.Duration

	// Registry receives the gateway metrics. Nil skips registration.
	Registry prometheus.Registerer

	// Logger overrides the default slog logger.
	Logger *slog.Logger
}

// Client is the single point of contact with the remote records service. It
// owns the session credential: it attaches the bearer header to every request
// while a credential is held, and no other component reads or writes the
// underlying store.
//
// Construct one Client at startup and pass it by reference to all consumers.
// All methods are safe for concurrent use.
type Client struct {
	baseURL string
	http    HTTPDoer
	store   CredentialStore
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *Metrics

	mu    sync.RWMutex
	token string
}

// NewClient creates a Client and loads any persisted credential from the
// store, so an authenticated session survives a restart.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("gateway: credential store is required")
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("gateway: base URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default().With("component", "gateway")
	}

	token, err := cfg.Store.Token()
	if err != nil {
		return nil, fmt.Errorf("gateway: read credential store: %w", err)
	}

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		store:   cfg.Store,
		logger:  logger,
		tracer:  otel.Tracer(tracerName),
		metrics: NewMetrics(cfg.Registry),
		token:   token,
	}, nil
}

// SetToken stores the credential in memory and in durable storage. The new
// value is visible to subsequent calls immediately.
func (c *Client) SetToken(token string) error {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	if err := c.store.SetToken(token); err != nil {
		return fmt.Errorf("gateway: persist credential: %w", err)
	}
	return nil
}

// ClearToken removes the credential from memory and durable storage.
func (c *Client) ClearToken() error {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
	if err := c.store.Clear(); err != nil {
		return fmt.Errorf("gateway: clear credential: %w", err)
	}
	return nil
}

// Token returns the held credential, or "".
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// IsAuthenticated reports whether a non-empty credential is held.
func (c *Client) IsAuthenticated() bool {
	return c.Token() != ""
}

// Do issues one request and normalizes every outcome into a Result. Transport
// errors, unparseable bodies, and non-2xx statuses all come back as failed
// Results; nothing is raised past this boundary and nothing is retried.
//
// A 401 is an ordinary failure: the gateway does not log the session out on
// an expired credential. Callers see the remote error message and may retry
// after re-authenticating.
func (c *Client) Do(ctx context.Context, method, endpoint string, body any) Result {
	start := time.Now()
	result := c.do(ctx, method, endpoint, body)

	outcome := "success"
	if !result.Success {
		outcome = "failure"
	}
	c.metrics.observe(method, outcome, time.Since(start).Seconds())
	return result
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any) Result {
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, span := c.tracer.Start(ctx, fmt.Sprintf("gateway %s %s", method, endpoint),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("gateway.endpoint", endpoint),
		),
	)
	defer span.End()

	fail := func(msg string) Result {
		span.SetStatus(codes.Error, msg)
		c.logger.Debug("gateway request failed",
			"method", method, "endpoint", endpoint, "error", msg)
		return failure(msg)
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fail(fmt.Sprintf("encode request: %v", err))
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return fail(fmt.Sprintf("build request: %v", err))
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fail(fmt.Sprintf("network error: %v", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyBytes))
	if err != nil {
		return fail(fmt.Sprintf("read response: %v", err))
	}

	data := map[string]any{}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &data); err != nil {
			return fail(fmt.Sprintf("invalid response body: %v", err))
		}
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		result := Result{Data: data, FieldErrors: fieldErrors(data)}
		if msg, ok := data["error"].(string); ok && msg != "" {
			result.Error = msg
		} else if len(result.FieldErrors) > 0 {
			result.Error = "validation failed"
		} else {
			result.Error = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		span.SetStatus(codes.Error, result.Error)
		return result
	}

	span.SetStatus(codes.Ok, "")
	return Result{Success: true, Data: data}
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, endpoint string) Result {
	return c.Do(ctx, http.MethodGet, endpoint, nil)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, body any) Result {
	return c.Do(ctx, http.MethodPost, endpoint, body)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, body any) Result {
	return c.Do(ctx, http.MethodPut, endpoint, body)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, endpoint string) Result {
	return c.Do(ctx, http.MethodDelete, endpoint, nil)
}

// fieldErrors extracts the {errors:{field:msg}} shape from a response body.
func fieldErrors(data map[string]any) map[string]string {
	raw, ok := data["errors"].(map[string]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	out := make(map[string]string, len(raw))
	for field, v := range raw {
		if msg, ok := v.(string); ok {
			out[field] = msg
		}
	}
	return out
}
