// Package httpclient provides the HTTP client used to send probes: retries,
// request pacing, timeouts and a cookie jar shared across requests.
package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/cookiejar"
	"time"

	"golang.org/x/net/publicsuffix"

	"owaspkit/internal/platform/errors"
	"owaspkit/internal/platform/logx"
	"owaspkit/internal/platform/rate"
)

// DefaultUserAgent es el User-Agent enviado cuando Config no fija otro.
const DefaultUserAgent = "owaspkit/1.0"

// Client is an HTTP client with retry logic, request pacing and timeout support.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      logx.Logger
	config      Config
}

// Config holds the configuration for the HTTP client.
type Config struct {
	// Timeout is the per-request timeout.
	// Default: 10 seconds
	Timeout time.Duration

	// MaxRetries is the number of extra attempts after a transport error or
	// a retryable status. Probes are not retried by default.
	MaxRetries int

	// RetryBackoff is the initial backoff between retries; it doubles on
	// each attempt.
	// Default: 500ms
	RetryBackoff time.Duration

	// MaxRetryBackoff caps the backoff.
	// Default: 10 seconds
	MaxRetryBackoff time.Duration

	// UserAgent is the User-Agent header value.
	UserAgent string

	// Interval is the minimum spacing between requests. 0 disables pacing.
	Interval time.Duration

	// FollowRedirects makes the client follow 3xx responses. Off by default
	// so that a redirect to a login page is reported as such.
	FollowRedirects bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		MaxRetries:      0,
		RetryBackoff:    500 * time.Millisecond,
		MaxRetryBackoff: 10 * time.Second,
		UserAgent:       DefaultUserAgent,
	}
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// New creates a client. Zero values in config take the defaults.
func New(config Config, logger logx.Logger) (*Client, error) {
	def := DefaultConfig()
	if config.Timeout <= 0 {
		config.Timeout = def.Timeout
	}
	if config.RetryBackoff <= 0 {
		config.RetryBackoff = def.RetryBackoff
	}
	if config.MaxRetryBackoff <= 0 {
		config.MaxRetryBackoff = def.MaxRetryBackoff
	}
	if config.UserAgent == "" {
		config.UserAgent = def.UserAgent
	}
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, errors.Wrap(err, "create cookie jar")
	}

	httpClient := &http.Client{
		Timeout: config.Timeout,
		Jar:     jar,
	}
	if !config.FollowRedirects {
		httpClient.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		httpClient:  httpClient,
		rateLimiter: rate.Every(config.Interval),
		logger:      logger.With("component", "httpclient"),
		config:      config,
	}, nil
}

// Request performs an HTTP request with retry logic and pacing. body may be
// nil; it is replayed from the start on every attempt. Transport failures
// wrap errors.ErrConnectionFailed.
func (c *Client) Request(ctx context.Context, method, url string, body []byte, headers map[string]string) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(err, "rate limit wait failed")
		}

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidInput, "build request %s %s: %v", method, url, err)
		}

		req.Header.Set("User-Agent", c.config.UserAgent)
		for key, value := range headers {
			req.Header.Set(key, value)
		}

		c.logger.Debug("HTTP request",
			"method", method,
			"url", url,
			"attempt", attempt+1,
		)

		start := time.Now()
		resp, err := c.httpClient.Do(req)
		duration := time.Since(start)

		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Debug("HTTP request failed",
				"method", method,
				"url", url,
				"attempt", attempt+1,
				"error", err.Error(),
				"duration_ms", duration.Milliseconds(),
			)
			lastErr = fmt.Errorf("%w: %v", errors.ErrConnectionFailed, err)

			if !c.shouldRetry(attempt, err, nil) {
				break
			}
			if err := c.backoff(ctx, attempt); err != nil {
				return nil, errors.Wrap(err, "backoff interrupted")
			}
			continue
		}

		c.logger.Debug("HTTP response received",
			"method", method,
			"url", url,
			"status", resp.StatusCode,
			"duration_ms", duration.Milliseconds(),
		)

		if !c.shouldRetry(attempt, nil, resp) {
			return resp, nil
		}

		resp.Body.Close()
		c.logger.Warn("HTTP request returned retryable status",
			"url", url,
			"status", resp.StatusCode,
			"attempt", attempt+1,
		)

		if err := c.backoff(ctx, attempt); err != nil {
			return nil, errors.Wrap(err, "backoff interrupted")
		}
	}

	return nil, errors.Wrapf(lastErr, "request failed after %d attempts", c.config.MaxRetries+1)
}

// Do performs the request and reads the whole body.
func (c *Client) Do(ctx context.Context, method, url string, body []byte, headers map[string]string) (*Response, error) {
	resp, err := c.Request(ctx, method, url, body, headers)
	if err != nil {
		return nil, err
	}

	data, err := ReadBody(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrConnectionFailed, err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string, headers map[string]string) (*http.Response, error) {
	return c.Request(ctx, http.MethodGet, url, nil, headers)
}

// isRetryableStatus checks if an HTTP status code should trigger a retry.
func isRetryableStatus(resp *http.Response) bool {
	if resp == nil {
		return false
	}

	switch resp.StatusCode {
	case http.StatusTooManyRequests,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout,
		http.StatusBadGateway:
		return true
	default:
		return false
	}
}

// shouldRetry determines if a request should be retried based on the attempt
// number, the transport error and the response status.
func (c *Client) shouldRetry(attempt int, err error, resp *http.Response) bool {
	if attempt >= c.config.MaxRetries {
		return false
	}
	if err != nil {
		return true
	}
	return isRetryableStatus(resp)
}

// backoff waits RetryBackoff * 2^attempt, capped at MaxRetryBackoff.
func (c *Client) backoff(ctx context.Context, attempt int) error {
	backoff := c.config.RetryBackoff * time.Duration(math.Pow(2, float64(attempt)))
	if backoff > c.config.MaxRetryBackoff || backoff <= 0 {
		backoff = c.config.MaxRetryBackoff
	}

	c.logger.Debug("Backing off before retry",
		"attempt", attempt+1,
		"backoff_ms", backoff.Milliseconds(),
	)

	timer := time.NewTimer(backoff)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ReadBody reads the response body and closes it.
func ReadBody(resp *http.Response) ([]byte, error) {
	if resp == nil {
		return nil, errors.New("response is nil")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	return body, nil
}

// CheckStatus maps a non-2xx status onto a platform sentinel.
func CheckStatus(resp *http.Response) error {
	if resp == nil {
		return errors.New("response is nil")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return errors.ErrRateLimit
	case http.StatusNotFound:
		return errors.ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.ErrUnauthorized
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout, http.StatusBadGateway:
		return errors.ErrServiceUnavailable
	default:
		return errors.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}
}

// String returns a human-readable representation of the client configuration.
func (c *Client) String() string {
	return fmt.Sprintf("HTTPClient{timeout=%s, max_retries=%d, interval=%s}",
		c.config.Timeout,
		c.config.MaxRetries,
		c.config.Interval,
	)
}
