// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Values are copied in and out so callers never share backing arrays

package memory

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ErrCacheMiss is returned when a key is absent or expired
var ErrCacheMiss = errors.New("cache: key not found")

const (
	defaultExpiration = 5 * time.Minute
	cleanupInterval   = 10 * time.Minute
)

// MemoryCache implements the Cache interface using go-cache
type MemoryCache struct {
	items *gocache.Cache
}

// NewMemoryCache creates a cache whose zero-TTL entries live for five minutes
func NewMemoryCache() *MemoryCache {
	return NewMemoryCacheWithExpiration(defaultExpiration, cleanupInterval)
}

// NewMemoryCacheWithExpiration creates a cache with explicit default expiration
// and janitor interval. A negative expiration means entries never expire by default.
func NewMemoryCacheWithExpiration(expiration, cleanup time.Duration) *MemoryCache {
	return &MemoryCache{items: gocache.New(expiration, cleanup)}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, ok := c.items.Get(key)
	if !ok {
		return nil, ErrCacheMiss
	}

	stored := value.([]byte)
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value in the cache. A zero TTL uses the cache default.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	c.items.Set(key, valueCopy, ttl)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.items.Delete(key)
	return nil
}

// Len reports the number of stored entries, including expired ones not yet purged
func (c *MemoryCache) Len() int {
	return c.items.ItemCount()
}
