// Package api provides low-level HTTP transport for Expander API calls.
package api

import (
	"context"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

const defaultMaxBodySize = 50 * 1024 * 1024 // 50MB

// Prometheus metrics for Expander API requests.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "expander_requests_total",
		Help: "Total Expander API requests by endpoint and HTTP status",
	}, []string{"endpoint", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "expander_request_duration_seconds",
		Help:    "Expander API request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
	}, []string{"endpoint"})

	requestErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "expander_request_errors_total",
		Help: "Total Expander API transport failures by endpoint",
	}, []string{"endpoint"})
)

// Transport handles HTTP communication with the Expander API.
type Transport struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
	UserAgent  string
	Logger     zerolog.Logger
}

// NewTransport creates a Transport for the given base URL.
func NewTransport(baseURL string, httpClient *http.Client) (*Transport, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	if httpClient == nil {
		// No client-wide timeout: pagination requests are unbounded by
		// contract and the auth call carries a per-request deadline.
		httpClient = &http.Client{}
	}

	return &Transport{
		BaseURL:    u,
		HTTPClient: httpClient,
		UserAgent:  "go-expander/1.0",
		Logger:     zerolog.Nop(),
	}, nil
}

// URL resolves a path against the transport's base URL.
func (t *Transport) URL(path string) string {
	return t.BaseURL.JoinPath(path).String()
}

// Request represents a single GET against an absolute API URL.
type Request struct {
	// URL is the absolute request URL. Pagination follows server-supplied
	// cursor URLs, so this is not restricted to the base URL's host.
	URL string

	// Query is merged into the URL's existing query string. Keys already
	// present in the URL are overridden rather than duplicated.
	Query url.Values

	// Authorization is the full Authorization header value.
	Authorization string

	// Headers holds additional request headers.
	Headers http.Header

	// Timeout bounds this request only. Zero means no deadline beyond the
	// caller's context.
	Timeout time.Duration
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// Get executes the request and returns the raw response.
func (t *Transport) Get(ctx context.Context, req *Request) (*Response, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	httpReq, err := t.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	endpoint := httpReq.URL.Path
	requestID := httpReq.Header.Get("X-Request-ID")
	start := time.Now()

	httpResp, err := t.HTTPClient.Do(httpReq)
	if err != nil {
		requestErrorsTotal.WithLabelValues(endpoint).Inc()
		t.Logger.Debug().
			Str("url", httpReq.URL.String()).
			Str("request_id", requestID).
			Dur("duration", time.Since(start)).
			Err(err).
			Msg("request failed")
		return nil, err
	}
	defer func() { _ = httpResp.Body.Close() }()

	// Limit response body size to prevent memory exhaustion
	limitedReader := io.LimitReader(httpResp.Body, defaultMaxBodySize+1)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		requestErrorsTotal.WithLabelValues(endpoint).Inc()
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if int64(len(body)) > defaultMaxBodySize {
		return nil, fmt.Errorf("response too large: exceeds %d bytes", defaultMaxBodySize)
	}

	duration := time.Since(start)
	requestsTotal.WithLabelValues(endpoint, strconv.Itoa(httpResp.StatusCode)).Inc()
	requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())

	t.Logger.Debug().
		Str("url", httpReq.URL.String()).
		Str("request_id", requestID).
		Int("status_code", httpResp.StatusCode).
		Dur("duration", duration).
		Msg("request completed")

	return &Response{
		StatusCode: httpResp.StatusCode,
		Body:       body,
		Headers:    httpResp.Header,
	}, nil
}

func (t *Transport) buildRequest(ctx context.Context, req *Request) (*http.Request, error) {
	u, err := url.Parse(req.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid request URL: %w", err)
	}

	if len(req.Query) > 0 {
		q := u.Query()
		for key, values := range req.Query {
			q.Del(key)
			for _, v := range values {
				q.Add(key, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", t.UserAgent)
	if req.Authorization != "" {
		httpReq.Header.Set("Authorization", req.Authorization)
	}

	maps.Copy(httpReq.Header, req.Headers)

	if httpReq.Header.Get("X-Request-ID") == "" {
		httpReq.Header.Set("X-Request-ID", uuid.NewString())
	}

	return httpReq, nil
}
