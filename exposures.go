package expander

import (
	"context"
	"encoding/json"
	"iter"
)

// ExposuresPath is the exposures collection endpoint.
const ExposuresPath = "/api/v2/exposures/ip-ports"

// ExposureService provides operations on the exposures collection.
type ExposureService interface {
	// List returns an iterator over all exposure records matching the
	// filter, fetching pages lazily as you iterate.
	List(ctx context.Context, filter *ExposureFilter, opts ...RequestOption) iter.Seq2[json.RawMessage, error]

	// Pages returns an iterator over page envelopes, following the
	// server-supplied pagination cursor until exhausted.
	Pages(ctx context.Context, filter *ExposureFilter, opts ...RequestOption) iter.Seq2[*Page, error]

	// ListPage returns the first page of results.
	ListPage(ctx context.Context, filter *ExposureFilter, opts ...RequestOption) (*Page, error)

	// NextPage returns the page following the given one, or nil when the
	// cursor is exhausted.
	NextPage(ctx context.Context, page *Page, opts ...RequestOption) (*Page, error)
}

type exposureService struct {
	collection
}

func newExposureService(client *Client) *exposureService {
	return &exposureService{collection{client: client, path: ExposuresPath}}
}

func (s *exposureService) List(ctx context.Context, filter *ExposureFilter, opts ...RequestOption) iter.Seq2[json.RawMessage, error] {
	return s.records(ctx, filter.Values(), opts...)
}

func (s *exposureService) Pages(ctx context.Context, filter *ExposureFilter, opts ...RequestOption) iter.Seq2[*Page, error] {
	return s.pages(ctx, filter.Values(), opts...)
}

func (s *exposureService) ListPage(ctx context.Context, filter *ExposureFilter, opts ...RequestOption) (*Page, error) {
	return s.firstPage(ctx, filter.Values(), opts...)
}

func (s *exposureService) NextPage(ctx context.Context, page *Page, opts ...RequestOption) (*Page, error) {
	return s.nextPage(ctx, page, opts...)
}
