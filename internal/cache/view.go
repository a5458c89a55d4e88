package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	viewKeyPrefix       = "view:"
	viewGenerationField = ":generation"
)

// ViewCache stores rendered view payloads keyed by page path and variant (query
// string, page number). Invalidating a path bumps its generation counter so
// every variant cached under the old generation is never read again and
// expires on its own TTL.
type ViewCache struct {
	cache *Client
	ttl   time.Duration
}

// NewViewCache creates a view cache on top of client.
func NewViewCache(client *Client, ttl time.Duration) *ViewCache {
	return &ViewCache{cache: client, ttl: ttl}
}

// Key resolves the cache key for path and variant under the path's current
// generation. A render should resolve its key once, before reading the data
// it renders, and use it for both Get and Set: an Invalidate that lands in
// between then leaves the payload in a generation nobody reads.
func (v *ViewCache) Key(ctx context.Context, path, variant string) string {
	generation := "0"
	if data, _ := v.cache.Get(ctx, viewKeyPrefix+path+viewGenerationField); data != nil {
		generation = string(data)
	}
	return fmt.Sprintf("%s%s:%s:%s", viewKeyPrefix, path, generation, variant)
}

// Get returns the payload cached under key, or nil on a miss.
func (v *ViewCache) Get(ctx context.Context, key string) []byte {
	data, _ := v.cache.Get(ctx, key)
	return data
}

// Set caches payload under key.
func (v *ViewCache) Set(ctx context.Context, key string, payload []byte) {
	_ = v.cache.Set(ctx, key, payload, v.ttl)
}

// Invalidate marks every cached variant of the given paths stale.
func (v *ViewCache) Invalidate(ctx context.Context, paths ...string) {
	for _, path := range paths {
		v.cache.Incr(ctx, viewKeyPrefix+path+viewGenerationField)
	}
}
