package catalog

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/InventoryApp_Go/internal/domain"
)

// itemCache keeps recently looked-up items by exact name. Items are never
// updated in place, so the only invalidation needed is on create.
type itemCache struct {
	lru *expirable.LRU[string, domain.Item]
}

func newItemCache(size int, ttl time.Duration) *itemCache {
	return &itemCache{
		lru: expirable.NewLRU[string, domain.Item](size, nil, ttl),
	}
}

// Get returns a copy so callers can't mutate the cached value
func (c *itemCache) Get(name string) (*domain.Item, bool) {
	item, ok := c.lru.Get(name)
	if !ok {
		return nil, false
	}
	return &item, true
}

func (c *itemCache) Set(item *domain.Item) {
	c.lru.Add(item.Name, *item)
}

func (c *itemCache) Invalidate(name string) {
	c.lru.Remove(name)
}
