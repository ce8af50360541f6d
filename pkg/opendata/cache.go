package opendata

import (
	"context"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
)

// ResponseCache keeps raw upstream formation responses for a fixed time to live.
type ResponseCache struct {
	Cache *cache.Cache[string]
}

func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	redisStore := redisstore.NewRedis(client, store.WithExpiration(ttl))

	return &ResponseCache{
		Cache: cache.New[string](redisStore),
	}
}

func (c *ResponseCache) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.Cache.Get(ctx, key)
	if err != nil || value == "" {
		return "", false
	}

	return value, true
}

func (c *ResponseCache) Set(ctx context.Context, key string, value string) error {
	return c.Cache.Set(ctx, key, value)
}
