package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/construction-tracker/backend/internal/application/adapter"
)

// redisReportCache implements adapter.ReportCache on redis, storing report
// payloads as JSON.
type redisReportCache struct {
	client *redis.Client
}

// NewRedisReportCache creates a report cache backed by the given redis URL.
func NewRedisReportCache(url string) (adapter.ReportCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	return &redisReportCache{
		client: redis.NewClient(opts),
	}, nil
}

// NewRedisReportCacheFromClient wraps an existing client. Used by tests.
func NewRedisReportCacheFromClient(client *redis.Client) adapter.ReportCache {
	return &redisReportCache{
		client: client,
	}
}

// Get unmarshals the cached payload for key into dest and reports whether a
// cached value was present.
func (c *redisReportCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read cache: %w", err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("failed to decode cached payload: %w", err)
	}
	return true, nil
}

// Set stores the payload under key with the given TTL.
func (c *redisReportCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}
