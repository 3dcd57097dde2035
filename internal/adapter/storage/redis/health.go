package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// HealthCheck implements ports.HealthChecker for Redis. A failing ping
// marks /health degraded; the stores themselves fail open.
type HealthCheck struct {
	client *goredis.Client
}

// NewHealthCheck creates a Redis health checker.
func NewHealthCheck(client *goredis.Client) *HealthCheck {
	return &HealthCheck{client: client}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, ioTimeout)
	defer cancel()

	if err := h.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "redis"
}
