package expander

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"net/url"

	"github.com/tphakala/go-expander/internal/api"
)

// collection is the shared pagination engine behind the four resource
// services: fetch a page, follow the pagination cursor until the server
// reports none, fail fast on the first error.
type collection struct {
	client *Client
	path   string
}

// fetch retrieves a single page envelope from an absolute URL. The query is
// merged into the URL on every page request, first and subsequent alike.
func (col *collection) fetch(ctx context.Context, pageURL string, query url.Values, opts ...RequestOption) (*Page, error) {
	if !col.client.token.Valid() {
		return nil, ErrNotAuthenticated
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	resp, err := col.client.transport.Get(ctx, &api.Request{
		URL:           pageURL,
		Query:         query,
		Authorization: col.client.token.Header(),
		Headers:       reqCfg.headers,
	})
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode >= 400 {
		return nil, newAPIError(resp.StatusCode, resp.Body, col.path)
	}

	var page Page
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("decoding page envelope: %w", err)}
	}
	page.query = query

	return &page, nil
}

// firstPage retrieves the collection's first page.
func (col *collection) firstPage(ctx context.Context, query url.Values, opts ...RequestOption) (*Page, error) {
	return col.fetch(ctx, col.client.transport.URL(col.path), query, opts...)
}

// nextPage retrieves the page after the given one, or nil when the cursor is
// exhausted.
func (col *collection) nextPage(ctx context.Context, page *Page, opts ...RequestOption) (*Page, error) {
	if page == nil || !page.HasNext() {
		return nil, nil
	}
	return col.fetch(ctx, page.NextURL(), page.query, opts...)
}

// pages returns an iterator over page envelopes in cursor order. The first
// error ends the iteration; there is no retry and no partial-page recovery.
func (col *collection) pages(ctx context.Context, query url.Values, opts ...RequestOption) iter.Seq2[*Page, error] {
	return func(yield func(*Page, error) bool) {
		page, err := col.firstPage(ctx, query, opts...)
		for {
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(page, nil) {
				return
			}
			if !page.HasNext() {
				return
			}
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}
			page, err = col.fetch(ctx, page.NextURL(), query, opts...)
		}
	}
}

// records flattens pages into individual result records in arrival order.
func (col *collection) records(ctx context.Context, query url.Values, opts ...RequestOption) iter.Seq2[json.RawMessage, error] {
	return func(yield func(json.RawMessage, error) bool) {
		for page, err := range col.pages(ctx, query, opts...) {
			if err != nil {
				yield(nil, err)
				return
			}
			for _, record := range page.Data {
				if !yield(record, nil) {
					return
				}
			}
		}
	}
}
