package expander

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tphakala/go-expander/internal/api"
	"github.com/tphakala/go-expander/internal/auth"
)

// DefaultBaseURL is the production Expander API host.
const DefaultBaseURL = "https://expander.expanse.co"

const (
	defaultAuthTimeout = 10 * time.Second
	idTokenPath        = "/api/v1/idtoken"
)

// Client is the Expander API client.
//
// Authenticate exchanges the bearer credential for a short-lived ID token
// once per client; the token is held for the client's lifetime and never
// refreshed, cached elsewhere, or validated locally. The client is intended
// for a single logical thread of control.
type Client struct {
	// CloudAssets provides access to the cloud assets collection.
	CloudAssets CloudAssetService

	// IPRanges provides access to the on-prem IP range collection.
	IPRanges IPRangeService

	// Exposures provides access to the exposures collection.
	Exposures ExposureService

	// Events provides access to the events collection.
	Events EventService

	transport   *api.Transport
	creds       *auth.Credentials
	token       auth.Token
	authTimeout time.Duration
}

// NewClient creates a new Expander client with the given options. Either a
// bearer credential (WithBearerToken) or a pre-minted ID token (WithToken)
// is required.
func NewClient(opts ...ClientOption) (*Client, error) {
	cfg := &clientConfig{
		baseURL:     DefaultBaseURL,
		authTimeout: defaultAuthTimeout,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.bearerToken == "" && cfg.token == "" {
		return nil, ErrNoBearerToken
	}

	transport, err := api.NewTransport(cfg.baseURL, cfg.httpClient)
	if err != nil {
		return nil, err
	}

	if cfg.userAgent != "" {
		transport.UserAgent = cfg.userAgent
	}
	transport.Logger = cfg.logger

	client := &Client{
		transport:   transport,
		creds:       &auth.Credentials{Bearer: cfg.bearerToken},
		token:       auth.Token(cfg.token),
		authTimeout: cfg.authTimeout,
	}

	// Initialize services
	client.CloudAssets = newCloudAssetService(client)
	client.IPRanges = newIPRangeService(client)
	client.Exposures = newExposureService(client)
	client.Events = newEventService(client)

	return client, nil
}

// idTokenResponse is the envelope of the ID token endpoint: exactly one of
// the two fields is populated.
type idTokenResponse struct {
	Token string `json:"token"`
	Error string `json:"error"`
}

// Authenticate exchanges the configured bearer credential for a short-lived
// ID token and stores it for subsequent resource calls. The call is bounded
// by the auth timeout (default 10s).
//
// An explicit error payload from the API yields an *AuthError; any
// transport-level failure yields a *TransportError.
func (c *Client) Authenticate(ctx context.Context, opts ...RequestOption) (string, error) {
	if !c.creds.Valid() {
		return "", ErrNoBearerToken
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)
	reqCfg.headers.Set("Content-Type", "application/json")

	resp, err := c.transport.Get(ctx, &api.Request{
		URL:           c.transport.URL(idTokenPath),
		Authorization: c.creds.Header(),
		Headers:       reqCfg.headers,
		Timeout:       c.authTimeout,
	})
	if err != nil {
		return "", &TransportError{Err: err}
	}

	var payload idTokenResponse
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return "", &TransportError{Err: fmt.Errorf("decoding token response: %w", err)}
	}

	if payload.Error != "" {
		return "", &AuthError{Reason: payload.Error}
	}

	if payload.Token == "" {
		return "", &TransportError{Err: errors.New("token response missing token field")}
	}

	c.token = auth.Token(payload.Token)
	return payload.Token, nil
}

// Authenticated reports whether the client holds an ID token.
func (c *Client) Authenticated() bool {
	return c.token.Valid()
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.transport.BaseURL.String()
}

// EndpointURL resolves a collection path against the configured base URL.
func (c *Client) EndpointURL(path string) string {
	return c.transport.URL(path)
}
