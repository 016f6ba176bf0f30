package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache implements in-memory caching with a bounded entry count
type MemoryCache struct {
	cache      *gocache.Cache
	maxEntries int
}

// NewMemoryCache creates a memory cache. Inserting past maxEntries evicts
// expired entries first, then the entry closest to expiry.
func NewMemoryCache(defaultTTL time.Duration, maxEntries int) *MemoryCache {
	return &MemoryCache{
		cache:      gocache.New(defaultTTL, 10*time.Minute),
		maxEntries: maxEntries,
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	if val, found := c.cache.Get(key); found {
		return val.([]byte), true
	}
	return nil, false
}

// Set stores a value in the cache with the given TTL
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	if c.maxEntries > 0 && c.cache.ItemCount() >= c.maxEntries {
		c.cache.DeleteExpired()
		for c.cache.ItemCount() >= c.maxEntries && c.evictOldest() {
		}
	}
	c.cache.Set(key, value, ttl)
	return nil
}

// evictOldest removes the entry with the earliest expiration, which with a
// uniform TTL is the oldest entry. Entries without an expiration go first.
func (c *MemoryCache) evictOldest() bool {
	var oldestKey string
	var oldestExp int64
	for key, item := range c.cache.Items() {
		if item.Expiration == 0 {
			oldestKey = key
			break
		}
		if oldestKey == "" || item.Expiration < oldestExp {
			oldestKey = key
			oldestExp = item.Expiration
		}
	}
	if oldestKey == "" {
		return false
	}
	c.cache.Delete(oldestKey)
	return true
}

// Delete removes a value from the cache
func (c *MemoryCache) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Clear removes all values from the cache
func (c *MemoryCache) Clear() error {
	c.cache.Flush()
	return nil
}
