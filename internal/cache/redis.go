// Package cache provides an optional Redis layer for the job catalog. When
// Redis is unreachable every operation silently degrades to a miss, so the
// server runs identically with or without it.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds staleness for cached catalog entries even when
// invalidation misses a mutation.
const DefaultTTL = 5 * time.Minute

// Cache wraps a Redis client. A nil inner client means Redis was unreachable
// at startup; all methods then no-op.
type Cache struct {
	client *redis.Client

	warnedUnavailable atomic.Bool
}

// New connects to Redis at redisURL. An empty URL or an unreachable server
// yields a bypassing cache rather than an error.
func New(redisURL string) *Cache {
	if redisURL == "" {
		return &Cache{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("[CACHE] invalid REDIS_URL, bypassing cache: %v", err)
		return &Cache{}
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[CACHE] Redis unavailable, bypassing cache: %v", err)
		_ = client.Close()
		return &Cache{}
	}

	return &Cache{client: client}
}

// Enabled reports whether a live Redis connection backs this cache.
func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

func (c *Cache) warnUnavailableOnce(err error) {
	if c == nil {
		return
	}
	if c.warnedUnavailable.CompareAndSwap(false, true) {
		log.Printf("[CACHE] Redis unavailable, bypassing cache: %v", err)
	}
}

// GetJSON loads a cached value into out, reporting whether it was present.
// Unavailability and decode failures are both treated as misses.
func (c *Cache) GetJSON(ctx context.Context, key string, out any) bool {
	if !c.Enabled() {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.warnUnavailableOnce(err)
		}
		return false
	}
	if json.Unmarshal(data, out) != nil {
		return false
	}
	return true
}

// SetJSON stores a value under key with the default TTL. Failures are logged
// once and otherwise ignored.
func (c *Cache) SetJSON(ctx context.Context, key string, value any) {
	if !c.Enabled() {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, DefaultTTL).Err(); err != nil {
		c.warnUnavailableOnce(err)
	}
}

// Invalidate removes keys after a catalog mutation.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.warnUnavailableOnce(err)
	}
}

// Close releases the underlying connection.
func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}
