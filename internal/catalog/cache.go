package catalog

import (
	"context"
	"log"
)

// Source fetches the menu from wherever it lives. Implementations must
// return items sorted by category then name.
type Source interface {
	Fetch(ctx context.Context) ([]Item, error)
}

// Cache holds the catalog for a browsing session. A failed fetch is
// swapped for the built-in fallback catalog instead of being reported,
// so the ordering pages stay usable when the menu source is down.
type Cache struct {
	source Source
}

// NewCache creates a Cache over the given source.
func NewCache(source Source) *Cache {
	return &Cache{source: source}
}

// Load fetches the catalog from the source. On any error it logs the
// failure and returns the fallback catalog; callers never see the error.
func (c *Cache) Load(ctx context.Context) []Item {
	items, err := c.source.Fetch(ctx)
	if err != nil {
		log.Printf("Cache.Load - menu source failed, serving fallback catalog: %v", err)
		return Fallback()
	}
	return items
}
