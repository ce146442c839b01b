package expander

import (
	"context"
	"encoding/json"
	"iter"
)

// IPRangesPath is the on-prem IP range collection endpoint (Assets V2).
const IPRangesPath = "/api/v2/ip-range"

// IPRangeService provides operations on the on-prem IP range collection.
type IPRangeService interface {
	// List returns an iterator over all IP range records matching the
	// filter, fetching pages lazily as you iterate.
	List(ctx context.Context, filter *IPRangeFilter, opts ...RequestOption) iter.Seq2[json.RawMessage, error]

	// Pages returns an iterator over page envelopes, following the
	// server-supplied pagination cursor until exhausted.
	Pages(ctx context.Context, filter *IPRangeFilter, opts ...RequestOption) iter.Seq2[*Page, error]

	// ListPage returns the first page of results.
	ListPage(ctx context.Context, filter *IPRangeFilter, opts ...RequestOption) (*Page, error)

	// NextPage returns the page following the given one, or nil when the
	// cursor is exhausted.
	NextPage(ctx context.Context, page *Page, opts ...RequestOption) (*Page, error)
}

type ipRangeService struct {
	collection
}

func newIPRangeService(client *Client) *ipRangeService {
	return &ipRangeService{collection{client: client, path: IPRangesPath}}
}

func (s *ipRangeService) List(ctx context.Context, filter *IPRangeFilter, opts ...RequestOption) iter.Seq2[json.RawMessage, error] {
	return s.records(ctx, filter.Values(), opts...)
}

func (s *ipRangeService) Pages(ctx context.Context, filter *IPRangeFilter, opts ...RequestOption) iter.Seq2[*Page, error] {
	return s.pages(ctx, filter.Values(), opts...)
}

func (s *ipRangeService) ListPage(ctx context.Context, filter *IPRangeFilter, opts ...RequestOption) (*Page, error) {
	return s.firstPage(ctx, filter.Values(), opts...)
}

func (s *ipRangeService) NextPage(ctx context.Context, page *Page, opts ...RequestOption) (*Page, error) {
	return s.nextPage(ctx, page, opts...)
}
