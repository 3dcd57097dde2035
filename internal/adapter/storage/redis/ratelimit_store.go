package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RateLimitStore implements ports.RateLimitStore with fixed-window counters.
type RateLimitStore struct {
	client *goredis.Client
	prefix string
}

// NewRateLimitStore creates a new Redis-backed rate limit store.
func NewRateLimitStore(client *goredis.Client) *RateLimitStore {
	return &RateLimitStore{
		client: client,
		prefix: keyspace + "ratelimit:",
	}
}

// Allow counts one request against key in the current window and reports
// whether it is within limit, plus the requests left in the window.
func (s *RateLimitStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, int, error) {
	seconds := int64(window.Seconds())
	if seconds < 1 {
		seconds = 1
	}
	windowID := time.Now().Unix() / seconds
	redisKey := fmt.Sprintf("%s%s:%d", s.prefix, key, windowID)

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("redis rate limit incr: %w", err)
	}

	count := int(incr.Val())
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return count <= limit, remaining, nil
}
