package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"foresight/pkg/platform/sentinel"
)

// DefaultKeyPrefix namespaces derived metrics in a shared Redis.
const DefaultKeyPrefix = "foresight:metrics:"

// Redis stores derived metrics in Redis strings with a TTL.
type Redis struct {
	client redis.UniversalClient
	prefix string
}

// NewRedis wraps client. An empty prefix uses DefaultKeyPrefix.
func NewRedis(client redis.UniversalClient, prefix string) *Redis {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Redis{client: client, prefix: prefix}
}

// Get returns sentinel.ErrNotFound on a miss and wraps sentinel.ErrUnavailable
// around transport failures.
func (c *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("cache key %q: %w", key, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %q: %w: %w", key, sentinel.ErrUnavailable, err)
	}
	return val, nil
}

// Set writes value with ttl. A non-positive ttl never expires.
func (c *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w: %w", key, sentinel.ErrUnavailable, err)
	}
	return nil
}

// Health pings the server.
func (c *Redis) Health(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
