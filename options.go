package expander

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

type clientConfig struct {
	baseURL     string
	bearerToken string
	token       string
	httpClient  *http.Client
	authTimeout time.Duration
	userAgent   string
	logger      zerolog.Logger
}

// WithBaseURL overrides the default Expander API base URL.
func WithBaseURL(url string) ClientOption {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithBearerToken sets the long-lived bearer credential used by Authenticate
// to mint a short-lived ID token.
func WithBearerToken(token string) ClientOption {
	return func(c *clientConfig) {
		c.bearerToken = token
	}
}

// WithToken sets a pre-minted ID token, skipping the need to call
// Authenticate. The token is used as-is and never validated locally.
func WithToken(token string) ClientOption {
	return func(c *clientConfig) {
		c.token = token
	}
}

// WithHTTPClient sets a custom HTTP client.
//
// Note that resource-page requests carry no timeout by default; set one on
// the provided client only if partial pagination failures are acceptable.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithAuthTimeout bounds the ID token exchange. The default is 10 seconds.
// Resource-page requests are not affected.
func WithAuthTimeout(d time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.authTimeout = d
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger used for request-level debug logging.
// The default discards everything.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// RequestOption configures individual API requests.
type RequestOption func(*requestConfig)

type requestConfig struct {
	headers http.Header
}

func newRequestConfig() *requestConfig {
	return &requestConfig{
		headers: make(http.Header),
	}
}

func (r *requestConfig) apply(opts ...RequestOption) {
	for _, opt := range opts {
		opt(r)
	}
}

// WithHeader adds a custom header to a request.
func WithHeader(key, value string) RequestOption {
	return func(r *requestConfig) {
		r.headers.Set(key, value)
	}
}

// WithHeaders adds multiple custom headers to a request.
func WithHeaders(headers map[string]string) RequestOption {
	return func(r *requestConfig) {
		for k, v := range headers {
			r.headers.Set(k, v)
		}
	}
}

// WithRequestID sets the X-Request-ID header for tracing. When absent, the
// transport generates one per request.
func WithRequestID(id string) RequestOption {
	return WithHeader("X-Request-ID", id)
}
