// Package cache provides a Redis-backed cache for generated recommendation
// sets. Recommendation runs are expensive (several provider calls each), so
// repeat requests within the TTL are served from here. When Redis is
// unreachable the cache degrades to a no-op rather than failing requests.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long a cached recommendation set stays fresh.
const DefaultTTL = 6 * time.Hour

// ErrMiss is returned when the key is absent or the cache is unavailable.
var ErrMiss = errors.New("cache miss")

// Cache wraps a Redis client. A nil or connectionless Cache is safe to use;
// every operation becomes a miss.
type Cache struct {
	client *redis.Client
	ttl    time.Duration

	warnedUnavailable atomic.Bool
}

// New connects to Redis at addr. When the initial ping fails the returned
// Cache bypasses Redis entirely.
func New(addr, password string, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[cache] Redis unavailable, bypassing cache: %v", err)
		_ = client.Close()
		return &Cache{client: nil, ttl: ttl}
	}

	return &Cache{client: client, ttl: ttl}
}

// Get loads a cached value into dest. Returns ErrMiss when absent or when
// the cache is unavailable.
func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	if c == nil || c.client == nil {
		return ErrMiss
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		c.warnOnce(err)
		return ErrMiss
	}

	if err := json.Unmarshal(data, dest); err != nil {
		// Corrupt entry; drop it and report a miss.
		_ = c.client.Del(ctx, key).Err()
		return ErrMiss
	}
	return nil
}

// Set stores a value under key with the configured TTL. Failures are logged
// once and otherwise ignored; caching is best-effort.
func (c *Cache) Set(ctx context.Context, key string, value any) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("[cache] failed to encode value for %s: %v", key, err)
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.warnOnce(err)
	}
}

// Invalidate removes a cached entry.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.warnOnce(err)
	}
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Key builds the cache key for a user's recommendation set of a given kind.
func Key(userID, kind string) string {
	return fmt.Sprintf("recommendations:%s:%s", kind, userID)
}

func (c *Cache) warnOnce(err error) {
	if c.warnedUnavailable.CompareAndSwap(false, true) {
		log.Printf("[cache] Redis error, continuing without cache: %v", err)
	}
}
