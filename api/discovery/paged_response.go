package discovery

import (
	"context"
	"log/slog"

	"tm-discovery/models"
)

// pageFetcher is the single capability the pagination driver needs
// from the client: dereference a next-page URL into a Page.
type pageFetcher interface {
	FetchPage(ctx context.Context, pageURL string) (*models.Page, error)
}

// PagedResponse wraps the first page of a search and hands out lazy
// traversals over the rest. It performs no caching: every traversal
// past the first page costs one request per page, and a traversal
// cannot be rewound.
type PagedResponse struct {
	first   *models.Page
	fetcher pageFetcher
	logger  *slog.Logger
}

func newPagedResponse(first *models.Page, fetcher pageFetcher, logger *slog.Logger) *PagedResponse {
	if logger == nil {
		logger = slog.Default()
	}
	return &PagedResponse{first: first, fetcher: fetcher, logger: logger}
}

// NewPagedResponse builds a PagedResponse from an already-decoded
// first page and a page-fetch capability.
func NewPagedResponse(first *models.Page, fetcher pageFetcher, logger *slog.Logger) *PagedResponse {
	return newPagedResponse(first, fetcher, logger)
}

// FirstPage returns the already-fetched first page. No network calls.
func (r *PagedResponse) FirstPage() *models.Page {
	return r.first
}

// One returns the first page's entities only. No further requests are
// made; calling it repeatedly is free.
func (r *PagedResponse) One() []models.Entity {
	return r.first.Entities()
}

// Limit consumes up to maxPages pages (the first page included) and
// concatenates their entities. maxPages <= 0 means unbounded, which
// still stops at the API's paging depth ceiling. On a mid-traversal
// failure the entities collected so far are returned alongside the
// error.
func (r *PagedResponse) Limit(ctx context.Context, maxPages int) ([]models.Entity, error) {
	it := r.iterator(maxPages)
	var entities []models.Entity
	for it.Next(ctx) {
		entities = append(entities, it.Page().Entities()...)
	}
	return entities, it.Err()
}

// All exhausts every retrievable page and flattens the results. Broad
// searches can burn a lot of the daily request quota; prefer Limit.
func (r *PagedResponse) All(ctx context.Context) ([]models.Entity, error) {
	return r.Limit(ctx, 0)
}

// Iterator starts an unbounded page traversal.
func (r *PagedResponse) Iterator() *PageIterator {
	return r.iterator(0)
}

func (r *PagedResponse) iterator(maxPages int) *PageIterator {
	return &PageIterator{
		pending:  r.first,
		fetcher:  r.fetcher,
		maxPages: maxPages,
		logger:   r.logger,
	}
}

// PageIterator walks a result set page by page, fetching lazily as the
// consumer advances. Usage follows the scanner pattern:
//
//	it := resp.Iterator()
//	for it.Next(ctx) {
//	    handle(it.Page())
//	}
//	if err := it.Err(); err != nil { ... }
//
// A single iterator is single-owner and not safe for concurrent use.
type PageIterator struct {
	fetcher pageFetcher
	logger  *slog.Logger

	// pending holds the first page until it is yielded. The first
	// page is always yielded, even with zero entities.
	pending  *models.Page
	current  *models.Page
	yielded  int
	maxPages int // 0 = unbounded
	done     bool
	err      error
}

// NewPageIterator builds an iterator over first and the pages behind
// its next links. maxPages <= 0 means unbounded.
func NewPageIterator(first *models.Page, fetcher pageFetcher, maxPages int, logger *slog.Logger) *PageIterator {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageIterator{pending: first, fetcher: fetcher, maxPages: maxPages, logger: logger}
}

// Next advances to the next page, fetching it if needed. It returns
// false when the traversal is over; check Err to distinguish normal
// exhaustion from a failed fetch.
func (it *PageIterator) Next(ctx context.Context) bool {
	if it.done || it.err != nil {
		return false
	}

	if it.pending != nil {
		it.current = it.pending
		it.pending = nil
		it.yielded++
		return true
	}

	// Termination checks, in order: page limit, depth ceiling,
	// missing next link. A next link that disappears while
	// totalPages implies more pages is authoritative termination,
	// not an error.
	if it.maxPages > 0 && it.yielded >= it.maxPages {
		it.done = true
		return false
	}
	if it.current.MaxDepthReached() {
		it.logger.Debug("paging depth ceiling reached", "page", it.current.Number, "size", it.current.Size)
		it.done = true
		return false
	}
	nextURL, ok := it.current.NextLink()
	if !ok {
		it.done = true
		return false
	}

	it.logger.Debug("requesting page", "url", nextURL)
	page, err := it.fetcher.FetchPage(ctx, nextURL)
	if err != nil {
		// No retry here: the API enforces a daily request quota
		// and retrying is the caller's decision.
		it.err = err
		it.done = true
		return false
	}
	it.current = page
	it.yielded++
	return true
}

// Page returns the page yielded by the last successful Next.
func (it *PageIterator) Page() *models.Page {
	return it.current
}

// Err returns the error that stopped the traversal, nil on normal
// exhaustion. Pages yielded before the failure remain valid.
func (it *PageIterator) Err() error {
	return it.err
}
