package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/deudalibre/debt_payoff_app/internal/core/payoff"
	portsrepo "github.com/deudalibre/debt_payoff_app/internal/core/ports/repositories"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// RedisPlanCache stores serialized strategy comparisons in Redis with a TTL.
// Every failure degrades to a cache miss; the planner recomputes.
type RedisPlanCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisPlanCache connects a plan cache to the Redis instance at addr.
func NewRedisPlanCache(addr string, ttl time.Duration, logger *slog.Logger) *RedisPlanCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisPlanCache{
		client: rdb,
		ttl:    ttl,
		logger: logger,
	}
}

var _ portsrepo.PlanCache = (*RedisPlanCache)(nil)

// GetComparison returns the cached comparison for key, or found=false.
func (c *RedisPlanCache) GetComparison(ctx context.Context, key string) (*payoff.SimulationComparison, bool) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil && c.logger != nil {
			c.logger.Warn("Plan cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return nil, false
	}

	var comparison payoff.SimulationComparison
	if err := json.Unmarshal(val, &comparison); err != nil {
		if c.logger != nil {
			c.logger.Warn("Plan cache payload corrupt, discarding", slog.String("key", key), slog.String("error", err.Error()))
		}
		// A corrupt entry will only keep failing; drop it.
		c.client.Del(ctx, key)
		return nil, false
	}
	return &comparison, true
}

// SetComparison stores a comparison under key with the configured TTL.
func (c *RedisPlanCache) SetComparison(ctx context.Context, key string, comparison *payoff.SimulationComparison) {
	payload, err := json.Marshal(comparison)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("Failed to serialize comparison for cache", slog.String("key", key), slog.String("error", err.Error()))
		}
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil && c.logger != nil {
		c.logger.Warn("Plan cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Close releases the underlying Redis connection.
func (c *RedisPlanCache) Close() error {
	return c.client.Close()
}
