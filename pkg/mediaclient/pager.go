package mediaclient

import (
	"context"
	"sync"

	"github.com/watchloghq/watchlog/pkg/pagination"
)

// Pager accumulates pages from List and caches them until a mutation
// invalidates the set. It is safe for concurrent use.
type Pager struct {
	client *Client
	limit  int

	mu      sync.Mutex
	pages   map[int][]Media
	next    int
	total   int64
	fetched bool
	loading bool
	// gen is bumped by Refresh; a fetch started under an older gen must not
	// write its result into the rebuilt cache.
	gen uint64
}

func NewPager(client *Client, limit int) *Pager {
	limit = pagination.NormalizeLimit(limit)
	return &Pager{
		client: client,
		limit:  limit,
		pages:  map[int][]Media{},
		next:   pagination.DefaultPage,
	}
}

// Items returns every cached record in page order.
func (p *Pager) Items() []Media {
	p.mu.Lock()
	defer p.mu.Unlock()

	items := make([]Media, 0, len(p.pages)*p.limit)
	for page := pagination.DefaultPage; page < p.next; page++ {
		items = append(items, p.pages[page]...)
	}
	return items
}

// Total reports the server-side record count as of the last fetch.
func (p *Pager) Total() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

// HasNext reports whether more pages remain on the server.
func (p *Pager) HasNext() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasNextLocked()
}

func (p *Pager) hasNextLocked() bool {
	if !p.fetched {
		return true
	}
	return p.next <= pagination.TotalPages(p.total, p.limit)
}

// LoadMore fetches the next uncached page. Calls made while a fetch is
// already in flight, and calls after the last page is cached, are no-ops.
func (p *Pager) LoadMore(ctx context.Context) error {
	p.mu.Lock()
	if p.loading || !p.hasNextLocked() {
		p.mu.Unlock()
		return nil
	}
	p.loading = true
	page := p.next
	gen := p.gen
	p.mu.Unlock()

	result, err := p.client.List(ctx, page, p.limit)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		// A Refresh superseded this fetch while it was in flight; its result
		// belongs to the pre-mutation cache and is discarded.
		return nil
	}
	p.loading = false
	if err != nil {
		return err
	}
	p.pages[page] = result.Items
	p.total = result.Total
	p.fetched = true
	if page >= p.next {
		p.next = page + 1
	}
	return nil
}

// Refresh drops the cache and reloads the first page, invalidating any fetch
// still in flight. Call it after any mutation so stale pages never survive a
// write.
func (p *Pager) Refresh(ctx context.Context) error {
	p.mu.Lock()
	p.gen++
	p.pages = map[int][]Media{}
	p.next = pagination.DefaultPage
	p.total = 0
	p.fetched = false
	p.loading = false
	p.mu.Unlock()

	return p.LoadMore(ctx)
}

// Create adds a record through the client and invalidates the cache.
func (p *Pager) Create(ctx context.Context, req CreateMediaRequest) (*Media, error) {
	record, err := p.client.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := p.Refresh(ctx); err != nil {
		return record, err
	}
	return record, nil
}

// Update applies a partial update through the client and invalidates the
// cache.
func (p *Pager) Update(ctx context.Context, id int64, req UpdateMediaRequest) (*Media, error) {
	record, err := p.client.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if err := p.Refresh(ctx); err != nil {
		return record, err
	}
	return record, nil
}

// Delete removes a record through the client and invalidates the cache.
func (p *Pager) Delete(ctx context.Context, id int64) error {
	if err := p.client.Delete(ctx, id); err != nil {
		return err
	}
	return p.Refresh(ctx)
}
