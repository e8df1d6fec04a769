package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/storefront_totals/internal/apperrors"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// CartTokenHeader identifies the shopper's cart on every Store API call.
const CartTokenHeader = "Cart-Token"

const (
	basePath     = "/wc/store/v1"
	maxBodyBytes = 4 << 20
	breakerName  = "store_api"
)

// StateObserver is notified of circuit breaker state changes.
type StateObserver func(target, from, to string, state int)

// Client performs Store API requests behind a circuit breaker.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
}

// ClientOption configures the Store API client
type ClientOption func(*clientSettings)

type clientSettings struct {
	httpClient *http.Client
	breaker    gobreaker.Settings
	observer   StateObserver
}

// WithHTTPClient replaces the instrumented default HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(s *clientSettings) {
		s.httpClient = c
	}
}

// WithBreakerSettings tunes the circuit breaker. Name and callbacks are kept.
func WithBreakerSettings(maxRequests uint32, interval, timeout time.Duration, consecutiveFailures uint32) ClientOption {
	return func(s *clientSettings) {
		s.breaker.MaxRequests = maxRequests
		s.breaker.Interval = interval
		s.breaker.Timeout = timeout
		s.breaker.ReadyToTrip = func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= consecutiveFailures
		}
	}
}

// WithStateObserver reports breaker state changes, e.g. to metrics.
func WithStateObserver(observer StateObserver) ClientOption {
	return func(s *clientSettings) {
		s.observer = observer
	}
}

// NewClient creates a Store API client for the store at baseURL
// (e.g. https://shop.example.com/wp-json).
func NewClient(baseURL string, timeout time.Duration, options ...ClientOption) *Client {
	settings := clientSettings{
		breaker: gobreaker.Settings{
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		},
	}
	for _, option := range options {
		option(&settings)
	}
	if settings.httpClient == nil {
		settings.httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	settings.breaker.Name = breakerName
	// client errors are the shopper's, not the store's
	settings.breaker.IsSuccessful = func(err error) bool {
		return err == nil || !errors.Is(err, apperrors.ErrUpstream)
	}
	if observer := settings.observer; observer != nil {
		settings.breaker.OnStateChange = func(name string, from, to gobreaker.State) {
			observer(name, from.String(), to.String(), int(to))
		}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    settings.httpClient,
		breaker: gobreaker.NewCircuitBreaker[[]byte](settings.breaker),
	}
}

// errorResponse is the error document of the Store API.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Status int `json:"status"`
	} `json:"data"`
}

// do sends a request and decodes a successful response into out.
func (c *Client) do(ctx context.Context, method, path, cartToken string, body, out any) error {
	if c.baseURL == "" {
		return fmt.Errorf("%w: store api url not configured", apperrors.ErrUpstream)
	}

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("failed to encode store api request: %w", err)
		}
	}

	raw, err := c.breaker.Execute(func() ([]byte, error) {
		return c.send(ctx, method, path, cartToken, payload)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: store api unavailable: %v", apperrors.ErrUpstream, err)
		}
		return err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: failed to decode store api response: %v", apperrors.ErrUpstream, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path, cartToken string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+basePath+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build store api request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cartToken != "" {
		req.Header.Set(CartTokenHeader, cartToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: store api request failed: %v", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read store api response: %v", apperrors.ErrUpstream, err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}
	return nil, statusError(resp.StatusCode, raw)
}

func statusError(status int, raw []byte) error {
	var body errorResponse
	message := http.StatusText(status)
	if json.Unmarshal(raw, &body) == nil && body.Message != "" {
		message = body.Message
		if body.Code != "" {
			message = body.Code + ": " + body.Message
		}
	}

	switch {
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, message)
	case status >= 400 && status < 500:
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, message)
	default:
		return fmt.Errorf("%w: store api returned %d: %s", apperrors.ErrUpstream, status, message)
	}
}
