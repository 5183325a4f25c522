// Package cache is an optional redis-backed cache for raw feed windows.
// Every operation fails open: a nil cache or an unreachable redis is
// observable only as a miss.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps a redis client. A nil *Cache is valid and behaves as an
// always-miss cache.
type Cache struct {
	client *redis.Client
}

// New connects to redis at redisURL and verifies connectivity. Returns nil
// (cache disabled) when the URL is empty or malformed, or when redis does
// not answer a ping.
func New(redisURL string) *Cache {
	if redisURL == "" {
		return nil
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Warning: invalid REDIS_URL, feed cache disabled: %v", err)
		return nil
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: redis unreachable, feed cache disabled: %v", err)
		_ = client.Close()
		return nil
	}
	return &Cache{client: client}
}

// Get unmarshals the cached value for key into out. Returns false on any
// miss or error.
func (c *Cache) Get(ctx context.Context, key string, out interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

// Set stores value under key with the given TTL. Failures are logged and
// dropped.
func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Printf("Warning: cache set failed for %s: %v", key, err)
	}
}

// Close releases the redis connection.
func (c *Cache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
