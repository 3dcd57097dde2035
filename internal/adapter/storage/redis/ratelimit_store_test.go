package redis_test

import (
	"context"
	"testing"
	"time"

	"marketplace-wallet/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitStore_Allow(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redis.NewRateLimitStore(client)
	ctx := context.Background()

	t.Run("allows requests within limit", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			allowed, remaining, err := store.Allow(ctx, "ip:10.0.0.1:webhook", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, allowed, "request %d should be allowed", i)
			assert.Equal(t, 3-i, remaining)
		}
	})

	t.Run("blocks requests over limit", func(t *testing.T) {
		allowed, remaining, err := store.Allow(ctx, "ip:10.0.0.1:webhook", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Equal(t, 0, remaining)
	})

	t.Run("different keys are independent", func(t *testing.T) {
		allowed, remaining, err := store.Allow(ctx, "owner:abc:withdraw", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 4, remaining)
	})

	t.Run("reset after window expires", func(t *testing.T) {
		key := "owner:def:checkout"
		_, _, err := store.Allow(ctx, key, 1, time.Minute)
		require.NoError(t, err)

		allowed, _, err := store.Allow(ctx, key, 1, time.Minute)
		require.NoError(t, err)
		assert.False(t, allowed)

		mr.FastForward(61 * time.Second)

		allowed, _, err = store.Allow(ctx, key, 1, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	})
}
