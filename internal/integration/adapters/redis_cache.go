// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-advisor/backend/internal/application/adapter"
)

const dashboardKeyPrefix = "dashboard:"

// redisMetricsCache implements the adapter.MetricsCache interface using Redis.
type redisMetricsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisMetricsCache creates a new Redis-backed metrics cache.
func NewRedisMetricsCache(client *redis.Client, ttl time.Duration) adapter.MetricsCache {
	return &redisMetricsCache{
		client: client,
		ttl:    ttl,
	}
}

// GetDashboard retrieves the cached dashboard payload for a user.
func (c *redisMetricsCache) GetDashboard(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	payload, err := c.client.Get(ctx, dashboardKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, adapter.ErrCacheMiss
		}
		return nil, err
	}
	return payload, nil
}

// SetDashboard stores the dashboard payload for a user.
func (c *redisMetricsCache) SetDashboard(ctx context.Context, userID uuid.UUID, payload []byte) error {
	return c.client.Set(ctx, dashboardKey(userID), payload, c.ttl).Err()
}

// InvalidateDashboard drops the cached payload for a user.
func (c *redisMetricsCache) InvalidateDashboard(ctx context.Context, userID uuid.UUID) error {
	return c.client.Del(ctx, dashboardKey(userID)).Err()
}

func dashboardKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s%s", dashboardKeyPrefix, userID)
}
