package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is used when NewCache is given a non-positive TTL.
const DefaultTTL = time.Hour

// Cache wraps a Redis client and stores JSON-encoded resource lists.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a Cache. A non-positive ttl falls back to DefaultTTL.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// key returns the Redis key for the given resource.
func key(resource string) string {
	return "catalog:" + strings.ToLower(strings.TrimSpace(resource))
}

// Get decodes the cached value for resource into dst.
// Returns false, nil on a cache miss (not an error).
func (c *Cache) Get(ctx context.Context, resource string, dst any) (bool, error) {
	val, err := c.client.Get(ctx, key(resource)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get for %s: %w", resource, err)
	}

	if err := json.Unmarshal(val, dst); err != nil {
		return false, fmt.Errorf("unmarshaling cached %s: %w", resource, err)
	}

	return true, nil
}

// Set stores v for resource with the configured TTL.
func (c *Cache) Set(ctx context.Context, resource string, v any) error {
	if v == nil {
		return nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", resource, err)
	}

	if err := c.client.Set(ctx, key(resource), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set for %s: %w", resource, err)
	}

	return nil
}

// Delete removes the cached entry for resource.
func (c *Cache) Delete(ctx context.Context, resource string) error {
	if err := c.client.Del(ctx, key(resource)).Err(); err != nil {
		return fmt.Errorf("cache delete for %s: %w", resource, err)
	}
	return nil
}

// Ping checks Redis connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
