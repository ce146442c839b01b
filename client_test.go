package expander_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	expander "github.com/tphakala/go-expander"
)

func TestNewClient(t *testing.T) {
	t.Run("success with bearer token", func(t *testing.T) {
		client, err := expander.NewClient(
			expander.WithBearerToken("bearer-secret"),
		)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.NotNil(t, client.CloudAssets)
		assert.NotNil(t, client.IPRanges)
		assert.NotNil(t, client.Exposures)
		assert.NotNil(t, client.Events)
		assert.Equal(t, expander.DefaultBaseURL, client.BaseURL())
		assert.False(t, client.Authenticated())
	})

	t.Run("success with pre-minted token", func(t *testing.T) {
		client, err := expander.NewClient(
			expander.WithToken("jwt-token"),
		)
		require.NoError(t, err)
		assert.True(t, client.Authenticated())
	})

	t.Run("error without any credential", func(t *testing.T) {
		_, err := expander.NewClient()
		require.Error(t, err)
		assert.ErrorIs(t, err, expander.ErrNoBearerToken)
	})

	t.Run("success with all options", func(t *testing.T) {
		client, err := expander.NewClient(
			expander.WithBaseURL("https://expander.example.com"),
			expander.WithBearerToken("bearer-secret"),
			expander.WithUserAgent("test-agent/1.0"),
			expander.WithAuthTimeout(5*time.Second),
			expander.WithHTTPClient(&http.Client{}),
		)
		require.NoError(t, err)
		assert.Equal(t, "https://expander.example.com", client.BaseURL())
	})

	t.Run("endpoint URL resolution", func(t *testing.T) {
		client, err := expander.NewClient(
			expander.WithBaseURL("https://expander.example.com"),
			expander.WithBearerToken("bearer-secret"),
		)
		require.NoError(t, err)
		assert.Equal(t,
			"https://expander.example.com/api/v1/assets/cloud/ips",
			client.EndpointURL(expander.CloudAssetsPath))
	})
}

func TestClient_Authenticate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/v1/idtoken", r.URL.Path)
			assert.Equal(t, "Bearer bearer-secret", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			_, err := w.Write([]byte(`{"token": "short-lived-jwt"}`))
			assert.NoError(t, err)
		}))
		t.Cleanup(server.Close)

		client, err := expander.NewClient(
			expander.WithBaseURL(server.URL),
			expander.WithBearerToken("bearer-secret"),
		)
		require.NoError(t, err)

		token, err := client.Authenticate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "short-lived-jwt", token)
		assert.True(t, client.Authenticated())
	})

	t.Run("API error payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte(`{"error": "invalid bearer token"}`))
			assert.NoError(t, err)
		}))
		t.Cleanup(server.Close)

		client, err := expander.NewClient(
			expander.WithBaseURL(server.URL),
			expander.WithBearerToken("bearer-secret"),
		)
		require.NoError(t, err)

		_, err = client.Authenticate(context.Background())
		require.Error(t, err)

		var authErr *expander.AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "API returned an error: invalid bearer token", err.Error())
		assert.False(t, client.Authenticated())
	})

	t.Run("transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // connection refused from here on

		client, err := expander.NewClient(
			expander.WithBaseURL(server.URL),
			expander.WithBearerToken("bearer-secret"),
		)
		require.NoError(t, err)

		_, err = client.Authenticate(context.Background())
		require.Error(t, err)

		var transportErr *expander.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Contains(t, err.Error(), "Request returned an exception:")
	})

	t.Run("malformed response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte(`not json`))
			assert.NoError(t, err)
		}))
		t.Cleanup(server.Close)

		client, err := expander.NewClient(
			expander.WithBaseURL(server.URL),
			expander.WithBearerToken("bearer-secret"),
		)
		require.NoError(t, err)

		_, err = client.Authenticate(context.Background())
		require.Error(t, err)

		var transportErr *expander.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Contains(t, err.Error(), "Request returned an exception:")
	})

	t.Run("timeout is bounded", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		t.Cleanup(func() {
			close(release)
			server.Close()
		})

		client, err := expander.NewClient(
			expander.WithBaseURL(server.URL),
			expander.WithBearerToken("bearer-secret"),
			expander.WithAuthTimeout(50*time.Millisecond),
		)
		require.NoError(t, err)

		start := time.Now()
		_, err = client.Authenticate(context.Background())
		require.Error(t, err)
		assert.Less(t, time.Since(start), 5*time.Second)

		var transportErr *expander.TransportError
		require.ErrorAs(t, err, &transportErr)
	})

	t.Run("error without bearer token", func(t *testing.T) {
		client, err := expander.NewClient(
			expander.WithToken("jwt-only"),
		)
		require.NoError(t, err)

		_, err = client.Authenticate(context.Background())
		assert.ErrorIs(t, err, expander.ErrNoBearerToken)
	})
}
