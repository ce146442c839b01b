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

func TestValidateDateRange(t *testing.T) {
	today := time.Now()
	format := func(t time.Time) string { return t.Format(expander.DateLayout) }

	t.Run("valid window in the past", func(t *testing.T) {
		err := expander.ValidateDateRange("2020-01-01", "2020-01-05")
		assert.NoError(t, err)
	})

	t.Run("single-day window is valid", func(t *testing.T) {
		err := expander.ValidateDateRange("2020-01-01", "2020-01-01")
		assert.NoError(t, err)
	})

	t.Run("window ending yesterday is valid", func(t *testing.T) {
		yesterday := format(today.AddDate(0, 0, -1))
		err := expander.ValidateDateRange("2020-01-01", yesterday)
		assert.NoError(t, err)
	})

	t.Run("end before start", func(t *testing.T) {
		err := expander.ValidateDateRange("2020-01-05", "2020-01-01")
		assert.ErrorIs(t, err, expander.ErrEndDateBeforeStart)
	})

	t.Run("end equal to today", func(t *testing.T) {
		err := expander.ValidateDateRange("2020-01-01", format(today))
		assert.ErrorIs(t, err, expander.ErrEndDateToday)
	})

	t.Run("end in the future", func(t *testing.T) {
		tomorrow := format(today.AddDate(0, 0, 1))
		err := expander.ValidateDateRange("2020-01-01", tomorrow)
		assert.ErrorIs(t, err, expander.ErrEndDateToday)
	})

	t.Run("malformed start date", func(t *testing.T) {
		err := expander.ValidateDateRange("01/01/2020", "2020-01-05")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid start_date")
	})

	t.Run("malformed end date", func(t *testing.T) {
		err := expander.ValidateDateRange("2020-01-01", "Jan 5 2020")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid end_date")
	})
}

func TestEventService_List(t *testing.T) {
	t.Run("date window is sent and envelope has no meta", func(t *testing.T) {
		client := setupCollectionClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/events", r.URL.Path)
			assert.Equal(t, "JWT test-token", r.Header.Get("Authorization"))
			assert.Equal(t, "2020-01-01", r.URL.Query().Get("startDateUtc"))
			assert.Equal(t, "2020-01-05", r.URL.Query().Get("endDateUtc"))

			_, err := w.Write([]byte(`{
				"data": [{"eventType": "ON_PREM_EXPOSURE_APPEARANCE"}],
				"pagination": {"next": null, "prev": null}
			}`))
			assert.NoError(t, err)
		})

		ctx := context.Background()
		page, err := client.Events.ListPage(ctx, "2020-01-01", "2020-01-05", nil)
		require.NoError(t, err)
		require.Len(t, page.Data, 1)

		_, ok := page.TotalCount()
		assert.False(t, ok)
	})

	t.Run("invalid window rejected before any network call", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected network call")
		}))
		t.Cleanup(server.Close)

		client, err := expander.NewClient(
			expander.WithBaseURL(server.URL),
			expander.WithToken("test-token"),
		)
		require.NoError(t, err)

		ctx := context.Background()
		today := time.Now().Format(expander.DateLayout)

		_, err = client.Events.ListPage(ctx, "2020-01-01", today, nil)
		assert.ErrorIs(t, err, expander.ErrEndDateToday)

		_, err = expander.Collect(client.Events.List(ctx, "2020-01-05", "2020-01-01", nil))
		assert.ErrorIs(t, err, expander.ErrEndDateBeforeStart)

		_, err = expander.Collect(client.Events.Pages(ctx, "2020-01-05", "2020-01-01", nil))
		assert.ErrorIs(t, err, expander.ErrEndDateBeforeStart)
	})

	t.Run("event filter parameters are forwarded", func(t *testing.T) {
		client := setupCollectionClient(t, func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "ON_PREM_EXPOSURE_APPEARANCE", q.Get("eventType"))
			assert.Equal(t, "10000", q.Get("limit"))

			_, err := w.Write([]byte(`{"data": [], "pagination": {"next": null, "prev": null}}`))
			assert.NoError(t, err)
		})

		filter := &expander.EventFilter{
			EventType: expander.String("ON_PREM_EXPOSURE_APPEARANCE"),
			Limit:     expander.Int(10000),
		}
		records, err := expander.Collect(client.Events.List(context.Background(), "2020-01-01", "2020-01-05", filter))
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
