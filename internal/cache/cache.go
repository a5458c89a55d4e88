// Package cache holds the Redis-backed stores of the dashboard: rendered
// invoice list pages (ViewCache) and live sign-in sessions (auth.SessionStore).
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is the key/value store behind the view cache and the session store.
// It fails safe: with Redis unreachable, reads miss, writes are dropped and
// counters read zero, so list pages render uncached and every session resolves
// as signed out rather than the request failing.
type Client struct {
	client *redis.Client
}

// New connects to the Redis instance at addr. The connection is lazy; a Redis
// that is down at startup only turns the stores into misses.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

// Get returns value or nil if missing or redis unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil and connectivity errors both read as a miss
		return nil, nil
	}
	return res, nil
}

// Set stores value with TTL, ignoring redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	_ = c.client.Set(ctx, key, value, ttl).Err()
	return nil
}

// Delete removes a key, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	_ = c.client.Del(ctx, key).Err()
	return nil
}

// Incr bumps an integer counter and returns the new value, or 0 if redis is unavailable.
func (c *Client) Incr(ctx context.Context, key string) int64 {
	if c == nil || c.client == nil {
		return 0
	}
	n, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0
	}
	return n
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
