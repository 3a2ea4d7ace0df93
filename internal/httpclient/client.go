// Package httpclient provides HTTP client functionality for catalog API sources
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	// DefaultTimeout is the default timeout for HTTP requests
	DefaultTimeout = 10 * time.Second

	// MaxResponseSize is the maximum allowed response size (100MB)
	MaxResponseSize = 100 * 1024 * 1024

	// UserAgent is the user agent string for HTTP requests
	UserAgent = "readmode-server/1.0"

	// DefaultMaxTries is the number of attempts made for a retryable failure
	DefaultMaxTries = 3

	defaultInitialInterval = 200 * time.Millisecond
	defaultMaxInterval     = 5 * time.Second
)

// Client is an interface for HTTP operations
type Client interface {
	// Get performs an HTTP GET request and returns the response body
	Get(ctx context.Context, url string, opts ...RequestOption) ([]byte, error)
}

// RequestOption customizes a single request
type RequestOption func(*http.Request)

// WithHeader sets a request header
func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

// ClientOption configures a DefaultClient
type ClientOption func(*DefaultClient)

// WithMaxTries sets how many attempts are made before giving up.
// Values below one are treated as one.
func WithMaxTries(tries uint) ClientOption {
	return func(c *DefaultClient) {
		c.maxTries = max(tries, 1)
	}
}

// WithRetryInterval sets the initial and maximum wait between attempts
func WithRetryInterval(initial, maxInterval time.Duration) ClientOption {
	return func(c *DefaultClient) {
		c.initialInterval = initial
		c.maxInterval = maxInterval
	}
}

// DefaultClient is the default HTTP client implementation.
// Network errors, 429 and 5xx responses are retried with exponential backoff;
// other failures are returned immediately.
type DefaultClient struct {
	client          *http.Client
	timeout         time.Duration
	maxTries        uint
	initialInterval time.Duration
	maxInterval     time.Duration
}

// NewDefaultClient creates a new default HTTP client with the specified timeout
// If timeout is 0, uses DefaultTimeout
func NewDefaultClient(timeout time.Duration, opts ...ClientOption) Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	c := &DefaultClient{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout:         timeout,
		maxTries:        DefaultMaxTries,
		initialInterval: defaultInitialInterval,
		maxInterval:     defaultMaxInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs an HTTP GET request, retrying transient failures
func (c *DefaultClient) Get(ctx context.Context, url string, opts ...RequestOption) ([]byte, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.initialInterval
	policy.MaxInterval = c.maxInterval

	return backoff.Retry(ctx, func() ([]byte, error) {
		return c.get(ctx, url, opts)
	},
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(c.maxTries),
		backoff.WithNotify(func(err error, wait time.Duration) {
			slog.WarnContext(ctx, "Retrying HTTP request", "url", url, "error", err, "wait", wait)
		}),
	)
}

func (c *DefaultClient) get(ctx context.Context, url string, opts []RequestOption) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")
	for _, opt := range opts {
		opt(req)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(fmt.Errorf("failed to execute request: %w", err))
		}
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		httpErr := NewHTTPError(resp.StatusCode, url, resp.Status)
		if !IsRetryableStatus(resp.StatusCode) {
			return nil, backoff.Permanent(httpErr)
		}
		if seconds, convErr := strconv.Atoi(resp.Header.Get("Retry-After")); convErr == nil && seconds > 0 {
			return nil, errors.Join(httpErr, backoff.RetryAfter(seconds))
		}
		return nil, httpErr
	}

	if resp.ContentLength > MaxResponseSize {
		return nil, backoff.Permanent(fmt.Errorf(
			"response size %d bytes exceeds maximum allowed size of %d bytes (%.2f MB)",
			resp.ContentLength, MaxResponseSize, float64(MaxResponseSize)/(1024*1024)))
	}

	// +1 to detect if limit exceeded
	limitedReader := io.LimitReader(resp.Body, MaxResponseSize+1)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if int64(len(body)) > MaxResponseSize {
		return nil, backoff.Permanent(fmt.Errorf(
			"response size exceeds maximum allowed size of %d bytes (%.2f MB)",
			MaxResponseSize, float64(MaxResponseSize)/(1024*1024)))
	}

	return body, nil
}

// IsRetryableStatus reports whether a response status is worth retrying
func IsRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
