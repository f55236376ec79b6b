package health

import (
	"context"
	"fmt"
	"time"

	"constraintsvc/internal/platform/database/redis"
	"constraintsvc/internal/platform/health"
)

// RedisChecker pings the schema cache and reports pool usage.
type RedisChecker struct {
	client  *redis.Client
	name    string
	timeout time.Duration
}

func NewRedisChecker(client *redis.Client, name string, timeout time.Duration) *RedisChecker {
	return &RedisChecker{
		client:  client,
		name:    name,
		timeout: timeout,
	}
}

func (c *RedisChecker) Name() string {
	return c.name
}

func (c *RedisChecker) Check(ctx context.Context) health.CheckResult {
	if err := c.client.Ping(ctx, c.timeout); err != nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "ping failed",
			Error:   err.Error(),
		}
	}

	stats := c.client.PoolStats()
	return health.CheckResult{
		Status:  health.StatusHealthy,
		Message: fmt.Sprintf("%d open, %d idle", stats.TotalConns, stats.IdleConns),
	}
}
