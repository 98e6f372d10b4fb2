// Package cache stores the last good normalized candidate pool per duration
// band in Redis. The fallback ladder consults it before resorting to the
// curated pools, so a healthy pool from a recent request can paper over a
// generator outage.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/neexbeast/tripmuse/internal/engine"
)

const defaultTTL = time.Hour

// PoolCache wraps a Redis client with typed get/set for candidate pools.
type PoolCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPoolCache constructs a PoolCache with a 1-hour TTL.
func NewPoolCache(client *redis.Client) *PoolCache {
	return &PoolCache{client: client, ttl: defaultTTL}
}

// key returns the Redis key for a duration band.
func key(band string) string {
	return "pool:" + band
}

// Get retrieves the cached pool for a band. Returns nil, nil on a miss.
func (c *PoolCache) Get(ctx context.Context, band string) ([]engine.Candidate, error) {
	val, err := c.client.Get(ctx, key(band)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("pool cache get for band %s: %w", band, err)
	}

	var pool []engine.Candidate
	if err := json.Unmarshal([]byte(val), &pool); err != nil {
		return nil, fmt.Errorf("unmarshaling cached pool for band %s: %w", band, err)
	}
	return pool, nil
}

// Set stores a pool for a band with the configured TTL. Empty pools are not
// worth caching and are skipped.
func (c *PoolCache) Set(ctx context.Context, band string, pool []engine.Candidate) error {
	if len(pool) == 0 {
		return nil
	}

	b, err := json.Marshal(pool)
	if err != nil {
		return fmt.Errorf("marshaling pool for band %s: %w", band, err)
	}

	if err := c.client.Set(ctx, key(band), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("pool cache set for band %s: %w", band, err)
	}
	return nil
}

// Connect parses redisURL, creates a client, and verifies connectivity.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return client, nil
}
