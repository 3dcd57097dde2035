package redis

import (
	"context"
	"testing"
	"time"

	"marketplace-wallet/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptStore_MarkAndSeen(t *testing.T) {
	s := miniredis.RunT(t)
	store := NewReceiptStore(goredis.NewClient(&goredis.Options{Addr: s.Addr()}))
	ctx := context.Background()

	seen, err := store.Seen(ctx, domain.ProviderBank, "92704")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, store.Mark(ctx, domain.ProviderBank, "92704", time.Hour))

	seen, err = store.Seen(ctx, domain.ProviderBank, "92704")
	require.NoError(t, err)
	assert.True(t, seen)
	assert.True(t, s.Exists("mpw:receipt:bank:92704"))
}

func TestReceiptStore_ProvidersAreIndependent(t *testing.T) {
	s := miniredis.RunT(t)
	store := NewReceiptStore(goredis.NewClient(&goredis.Options{Addr: s.Addr()}))
	ctx := context.Background()

	require.NoError(t, store.Mark(ctx, domain.ProviderBank, "1", time.Hour))

	seen, err := store.Seen(ctx, domain.ProviderTest, "1")
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestReceiptStore_MarkTwiceKeepsFirst(t *testing.T) {
	s := miniredis.RunT(t)
	store := NewReceiptStore(goredis.NewClient(&goredis.Options{Addr: s.Addr()}))
	ctx := context.Background()

	require.NoError(t, store.Mark(ctx, domain.ProviderVNPay, "14123456", time.Minute))
	require.NoError(t, store.Mark(ctx, domain.ProviderVNPay, "14123456", time.Hour))

	assert.Equal(t, time.Minute, s.TTL("mpw:receipt:vnpay:14123456"))
}

func TestReceiptStore_Expires(t *testing.T) {
	s := miniredis.RunT(t)
	store := NewReceiptStore(goredis.NewClient(&goredis.Options{Addr: s.Addr()}))
	ctx := context.Background()

	require.NoError(t, store.Mark(ctx, domain.ProviderBank, "77", time.Minute))
	s.FastForward(2 * time.Minute)

	seen, err := store.Seen(ctx, domain.ProviderBank, "77")
	require.NoError(t, err)
	assert.False(t, seen)
}
