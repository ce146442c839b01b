package expander_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	expander "github.com/tphakala/go-expander"
)

func TestExposureService_List(t *testing.T) {
	t.Run("single terminal page", func(t *testing.T) {
		client := setupCollectionClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v2/exposures/ip-ports", r.URL.Path)
			assert.Equal(t, "JWT test-token", r.Header.Get("Authorization"))

			_, err := w.Write(pageBody(t, nil, 1, `{"port":22,"severity":"CRITICAL"}`))
			assert.NoError(t, err)
		})

		records, err := expander.Collect(client.Exposures.List(context.Background(), nil))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.JSONEq(t, `{"port":22,"severity":"CRITICAL"}`, string(records[0]))
	})

	t.Run("filter parameters are forwarded", func(t *testing.T) {
		client := setupCollectionClient(t, func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "active", q.Get("activityStatus"))
			assert.Equal(t, "22,3389", q.Get("portNumber"))
			assert.Equal(t, "true", q.Get("cloud"))

			_, err := w.Write(pageBody(t, nil, 0))
			assert.NoError(t, err)
		})

		filter := &expander.ExposureFilter{
			ActivityStatus: expander.String("active"),
			PortNumber:     expander.String("22,3389"),
			Cloud:          expander.Bool(true),
		}
		records, err := expander.Collect(client.Exposures.List(context.Background(), filter))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("non-2xx status yields APIError", func(t *testing.T) {
		client := setupCollectionClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, err := w.Write([]byte("forbidden"))
			assert.NoError(t, err)
		})

		_, err := client.Exposures.ListPage(context.Background(), nil)
		require.Error(t, err)

		var apiErr *expander.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	})

	t.Run("malformed envelope yields TransportError", func(t *testing.T) {
		client := setupCollectionClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte("<html>gateway error</html>"))
			assert.NoError(t, err)
		})

		_, err := client.Exposures.ListPage(context.Background(), nil)
		require.Error(t, err)

		var transportErr *expander.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Contains(t, err.Error(), "Request returned an exception:")
	})
}
