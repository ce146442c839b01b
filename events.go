package expander

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"net/url"
	"time"
)

// EventsPath is the events collection endpoint.
const EventsPath = "/api/v1/events"

// DateLayout is the wire format of event window dates.
const DateLayout = "2006-01-02"

// EventService provides operations on the events collection.
//
// Every operation requires an explicit date window: startDate and endDate in
// YYYY-MM-DD form. The window is validated locally before any network call:
// the end date must not precede the start date and must be strictly earlier
// than the current date.
type EventService interface {
	// List returns an iterator over all event records in the date window,
	// fetching pages lazily as you iterate.
	List(ctx context.Context, startDate, endDate string, filter *EventFilter, opts ...RequestOption) iter.Seq2[json.RawMessage, error]

	// Pages returns an iterator over page envelopes, following the
	// server-supplied pagination cursor until exhausted. Event envelopes
	// carry no meta block, so Page.TotalCount reports absent.
	Pages(ctx context.Context, startDate, endDate string, filter *EventFilter, opts ...RequestOption) iter.Seq2[*Page, error]

	// ListPage returns the first page of results.
	ListPage(ctx context.Context, startDate, endDate string, filter *EventFilter, opts ...RequestOption) (*Page, error)

	// NextPage returns the page following the given one, or nil when the
	// cursor is exhausted.
	NextPage(ctx context.Context, page *Page, opts ...RequestOption) (*Page, error)
}

// ValidateDateRange checks an event query window against the process-local
// current date. It returns ErrEndDateBeforeStart when the window ends before
// it starts and ErrEndDateToday when the window does not end strictly before
// today.
func ValidateDateRange(startDate, endDate string) error {
	return checkDateRange(startDate, endDate, time.Now())
}

func checkDateRange(startDate, endDate string, now time.Time) error {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return fmt.Errorf("invalid start_date %q: expected YYYY-MM-DD", startDate)
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return fmt.Errorf("invalid end_date %q: expected YYYY-MM-DD", endDate)
	}
	if end.Before(start) {
		return ErrEndDateBeforeStart
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !end.Before(today) {
		return ErrEndDateToday
	}
	return nil
}

type eventService struct {
	collection
}

func newEventService(client *Client) *eventService {
	return &eventService{collection{client: client, path: EventsPath}}
}

// eventQuery merges the date window into the filter parameters.
func eventQuery(startDate, endDate string, filter *EventFilter) url.Values {
	q := filter.Values()
	q.Set("startDateUtc", startDate)
	q.Set("endDateUtc", endDate)
	return q
}

func (s *eventService) List(ctx context.Context, startDate, endDate string, filter *EventFilter, opts ...RequestOption) iter.Seq2[json.RawMessage, error] {
	return func(yield func(json.RawMessage, error) bool) {
		if err := ValidateDateRange(startDate, endDate); err != nil {
			yield(nil, err)
			return
		}
		for record, err := range s.records(ctx, eventQuery(startDate, endDate, filter), opts...) {
			if !yield(record, err) || err != nil {
				return
			}
		}
	}
}

func (s *eventService) Pages(ctx context.Context, startDate, endDate string, filter *EventFilter, opts ...RequestOption) iter.Seq2[*Page, error] {
	return func(yield func(*Page, error) bool) {
		if err := ValidateDateRange(startDate, endDate); err != nil {
			yield(nil, err)
			return
		}
		for page, err := range s.pages(ctx, eventQuery(startDate, endDate, filter), opts...) {
			if !yield(page, err) || err != nil {
				return
			}
		}
	}
}

func (s *eventService) ListPage(ctx context.Context, startDate, endDate string, filter *EventFilter, opts ...RequestOption) (*Page, error) {
	if err := ValidateDateRange(startDate, endDate); err != nil {
		return nil, err
	}
	return s.firstPage(ctx, eventQuery(startDate, endDate, filter), opts...)
}

func (s *eventService) NextPage(ctx context.Context, page *Page, opts ...RequestOption) (*Page, error) {
	return s.nextPage(ctx, page, opts...)
}
