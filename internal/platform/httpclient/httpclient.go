// Package httpclient provides the bounded, single-attempt HTTP client used
// to fetch autoconfig documents.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"ispdb/internal/platform/errors"
	"ispdb/internal/platform/logx"
)

// DefaultTimeout bounds every request when Config.Timeout is zero.
const DefaultTimeout = 1 * time.Second

// MaxBodySize caps how much of a response body is read.
const MaxBodySize = 1 << 20

// Client performs GET requests with a fixed timeout and no retries.
type Client struct {
	httpClient *http.Client
	logger     logx.Logger
	config     Config
}

// Config holds the configuration for the HTTP client.
type Config struct {
	// Timeout is the whole-request timeout, body included.
	// Default: 1 second
	Timeout time.Duration

	// ProxyURL routes requests through an HTTP(S) proxy when set.
	ProxyURL string

	// Transport overrides the round tripper (tests, custom TLS).
	// When set, ProxyURL is ignored.
	Transport http.RoundTripper
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Timeout: DefaultTimeout,
	}
}

// Response is the subset of an HTTP response the lookups care about.
type Response struct {
	StatusCode int
	Body       string
}

// New creates a new HTTP client with the given configuration.
func New(config Config, logger logx.Logger) (*Client, error) {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}

	transport := config.Transport
	if transport == nil {
		base := http.DefaultTransport.(*http.Transport).Clone()
		if config.ProxyURL != "" {
			proxy, err := url.Parse(config.ProxyURL)
			if err != nil || proxy.Scheme == "" || proxy.Host == "" {
				return nil, errors.Wrapf(errors.ErrInvalidInput, "proxy url %q", config.ProxyURL)
			}
			base.Proxy = http.ProxyURL(proxy)
		}
		transport = base
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: transport,
		},
		logger: logger.With("component", "httpclient"),
		config: config,
	}, nil
}

// Get issues exactly one GET request and reads the whole body.
// Transport faults are classified as ErrTimeout or ErrConnectionFailed.
func (c *Client) Get(ctx context.Context, rawURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "build request for %s: %v", rawURL, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classify(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, classify(err)
	}

	c.logger.Debug("HTTP response received",
		"url", rawURL,
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &Response{StatusCode: resp.StatusCode, Body: string(body)}, nil
}

// Timeout returns the effective per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.config.Timeout
}

// String returns a human-readable representation of the client configuration.
func (c *Client) String() string {
	return fmt.Sprintf("HTTPClient{timeout=%s, proxy=%q}", c.config.Timeout, c.config.ProxyURL)
}

func classify(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errors.Wrap(errors.ErrTimeout, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(errors.ErrTimeout, err.Error())
	}
	return errors.Wrap(errors.ErrConnectionFailed, err.Error())
}
