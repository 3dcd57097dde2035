package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-wallet/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ReceiptStore implements ports.ReceiptStore. It remembers provider
// notification references that were already applied so redeliveries are
// acknowledged without touching the ledger.
type ReceiptStore struct {
	client *goredis.Client
	prefix string
}

// NewReceiptStore creates a new Redis-backed receipt store.
func NewReceiptStore(client *goredis.Client) *ReceiptStore {
	return &ReceiptStore{
		client: client,
		prefix: keyspace + "receipt:",
	}
}

func (s *ReceiptStore) key(provider domain.Provider, reference string) string {
	return s.prefix + string(provider) + ":" + reference
}

// Seen reports whether the reference was marked and has not expired.
func (s *ReceiptStore) Seen(ctx context.Context, provider domain.Provider, reference string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(provider, reference)).Result()
	if err != nil {
		return false, fmt.Errorf("redis receipt exists: %w", err)
	}
	return n > 0, nil
}

// Mark records the reference for ttl. Marking twice keeps the first expiry.
func (s *ReceiptStore) Mark(ctx context.Context, provider domain.Provider, reference string, ttl time.Duration) error {
	err := s.client.SetArgs(ctx, s.key(provider, reference), time.Now().Unix(), goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Err()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return fmt.Errorf("redis receipt mark: %w", err)
	}
	return nil
}
