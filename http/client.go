package http

import (
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// clientConfig holds configuration for HTTP client creation.
type clientConfig struct {
	timeout       time.Duration
	dialTimeout   time.Duration
	idleTimeout   time.Duration
	maxIdleConns  int
	baseTransport http.RoundTripper
}

// ClientOption configures an HTTP client.
type ClientOption func(*clientConfig)

// WithTimeout sets the request timeout for the client.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *clientConfig) { c.timeout = d }
}

// WithDialTimeout sets the timeout for dialing TCP connections.
func WithDialTimeout(d time.Duration) ClientOption {
	return func(c *clientConfig) { c.dialTimeout = d }
}

// WithIdleConnTimeout sets how long an idle keep-alive connection stays open.
func WithIdleConnTimeout(d time.Duration) ClientOption {
	return func(c *clientConfig) { c.idleTimeout = d }
}

// WithMaxIdleConns sets the max idle connections across all hosts.
func WithMaxIdleConns(n int) ClientOption {
	return func(c *clientConfig) { c.maxIdleConns = n }
}

// WithTransport sets a custom base transport. Settings configured on the
// transport itself take precedence over the other options.
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *clientConfig) { c.baseTransport = rt }
}

// NewClient creates an http.Client whose requests carry trace context and
// produce client spans, using the globally registered providers.
func NewClient(opts ...ClientOption) *http.Client {
	cfg := clientConfig{
		timeout:      30 * time.Second,
		dialTimeout:  5 * time.Second,
		idleTimeout:  90 * time.Second,
		maxIdleConns: 100,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	base := cfg.baseTransport
	if base == nil {
		base = &http.Transport{
			DialContext:     (&net.Dialer{Timeout: cfg.dialTimeout}).DialContext,
			MaxIdleConns:    cfg.maxIdleConns,
			IdleConnTimeout: cfg.idleTimeout,
		}
	}

	return &http.Client{
		Timeout:   cfg.timeout,
		Transport: Transport(base),
	}
}

// Transport wraps an http.RoundTripper with tracing for client calls, using
// the globally registered providers. If base is nil, http.DefaultTransport
// is used.
func Transport(base http.RoundTripper, opts ...otelhttp.Option) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}

	return otelhttp.NewTransport(base, opts...)
}
