package viewcache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// InvoicesListPath is the dashboard view whose cached copy every invoice
// mutation must invalidate.
const InvoicesListPath = "/dashboard/invoices"

// Cache keeps rendered dashboard views keyed by their path until a mutation
// invalidates them. Entries are bounded by an LRU so a burst of distinct
// views cannot grow memory without limit.
type Cache struct {
	entries *lru.Cache[string, any]
}

// New creates a view cache holding at most size entries.
func New(size int) (*Cache, error) {
	entries, err := lru.New[string, any](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Get returns the cached view for path when present.
func (c *Cache) Get(path string) (any, bool) {
	return c.entries.Get(path)
}

// Put stores the rendered view for path.
func (c *Cache) Put(path string, view any) {
	c.entries.Add(path, view)
}

// Invalidate drops the cached view for path so the next read recomputes it.
func (c *Cache) Invalidate(path string) {
	c.entries.Remove(path)
}

// Len reports the number of cached views.
func (c *Cache) Len() int {
	return c.entries.Len()
}
