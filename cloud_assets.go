package expander

import (
	"context"
	"encoding/json"
	"iter"
)

// CloudAssetsPath is the cloud assets collection endpoint.
const CloudAssetsPath = "/api/v1/assets/cloud/ips"

// CloudAssetService provides operations on the cloud assets collection.
type CloudAssetService interface {
	// List returns an iterator over all cloud asset records matching the
	// filter, fetching pages lazily as you iterate.
	List(ctx context.Context, filter *CloudAssetFilter, opts ...RequestOption) iter.Seq2[json.RawMessage, error]

	// Pages returns an iterator over page envelopes, following the
	// server-supplied pagination cursor until exhausted.
	Pages(ctx context.Context, filter *CloudAssetFilter, opts ...RequestOption) iter.Seq2[*Page, error]

	// ListPage returns the first page of results.
	// Use this with NextPage for manual pagination control.
	ListPage(ctx context.Context, filter *CloudAssetFilter, opts ...RequestOption) (*Page, error)

	// NextPage returns the page following the given one, or nil when the
	// cursor is exhausted.
	NextPage(ctx context.Context, page *Page, opts ...RequestOption) (*Page, error)
}

type cloudAssetService struct {
	collection
}

func newCloudAssetService(client *Client) *cloudAssetService {
	return &cloudAssetService{collection{client: client, path: CloudAssetsPath}}
}

func (s *cloudAssetService) List(ctx context.Context, filter *CloudAssetFilter, opts ...RequestOption) iter.Seq2[json.RawMessage, error] {
	return s.records(ctx, filter.Values(), opts...)
}

func (s *cloudAssetService) Pages(ctx context.Context, filter *CloudAssetFilter, opts ...RequestOption) iter.Seq2[*Page, error] {
	return s.pages(ctx, filter.Values(), opts...)
}

func (s *cloudAssetService) ListPage(ctx context.Context, filter *CloudAssetFilter, opts ...RequestOption) (*Page, error) {
	return s.firstPage(ctx, filter.Values(), opts...)
}

func (s *cloudAssetService) NextPage(ctx context.Context, page *Page, opts ...RequestOption) (*Page, error) {
	return s.nextPage(ctx, page, opts...)
}
