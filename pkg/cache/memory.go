package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryReceiptCache is a process-local ReceiptCache used when no Redis URL
// is configured.
type MemoryReceiptCache struct {
	store *gocache.Cache
}

// NewMemoryReceiptCache returns an in-memory cache whose entries expire after
// ttl (DefaultReceiptTTL when non-positive). Expired entries are swept every
// ttl/2.
func NewMemoryReceiptCache(ttl time.Duration) *MemoryReceiptCache {
	if ttl <= 0 {
		ttl = DefaultReceiptTTL
	}
	return &MemoryReceiptCache{store: gocache.New(ttl, ttl/2)}
}

// Get returns a copy of the cached receipt or ErrMiss.
func (c *MemoryReceiptCache) Get(_ context.Context, key string) (*CachedReceipt, error) {
	v, ok := c.store.Get(key)
	if !ok {
		return nil, ErrMiss
	}
	r := v.(CachedReceipt)
	return &r, nil
}

// Set stores a copy of r under r.Key with the default expiration.
func (c *MemoryReceiptCache) Set(_ context.Context, r *CachedReceipt) error {
	c.store.Set(r.Key, *r, gocache.DefaultExpiration)
	return nil
}

// Delete removes the receipt stored under key.
func (c *MemoryReceiptCache) Delete(_ context.Context, key string) error {
	c.store.Delete(key)
	return nil
}

// Ping always succeeds; it lets the memory cache stand in for Redis in
// health checks.
func (c *MemoryReceiptCache) Ping(_ context.Context) error {
	return nil
}

// Len reports the number of stored entries, expired ones included until
// the next sweep.
func (c *MemoryReceiptCache) Len() int {
	return c.store.ItemCount()
}
