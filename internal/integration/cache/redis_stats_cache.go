// Package cache implements the stats cache on top of Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inventory-tracker/backend/internal/application/adapter"
)

// redisStatsCache implements the adapter.StatsCache interface.
type redisStatsCache struct {
	client *redis.Client
}

// NewRedisStatsCache creates a new Redis-backed stats cache.
func NewRedisStatsCache(client *redis.Client) adapter.StatsCache {
	return &redisStatsCache{
		client: client,
	}
}

// Get loads the JSON value stored under key into dest.
func (c *redisStatsCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read stats cache entry: %w", err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to decode stats cache entry: %w", err)
	}
	return true, nil
}

// Set stores value as JSON under key for ttl.
func (c *redisStatsCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode stats cache entry: %w", err)
	}

	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write stats cache entry: %w", err)
	}
	return nil
}
