package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// defaultReplayTTL applies when a caller passes a non-positive TTL.
const defaultReplayTTL = 24 * time.Hour

// IdempotencyCache implements ports.IdempotencyCache. It holds the replay
// body of keyed withdrawals in front of the idempotency_logs table.
type IdempotencyCache struct {
	client *goredis.Client
	prefix string
}

func NewIdempotencyCache(client *goredis.Client) *IdempotencyCache {
	return &IdempotencyCache{
		client: client,
		prefix: keyspace + "withdraw:idem:",
	}
}

// Get returns the cached replay body, or nil when the key is unknown or expired.
func (c *IdempotencyCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get withdrawal replay: %w", err)
	}
	return val, nil
}

// Set stores value only if the key is absent. The first committed
// withdrawal owns the key; a later write never replaces its replay body.
func (c *IdempotencyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultReplayTTL
	}
	if err := c.client.SetNX(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("set withdrawal replay: %w", err)
	}
	return nil
}
