package postgres

import (
	"context"
	"errors"
	"fmt"

	"marketplace-wallet/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// IdempotencyRepo implements ports.IdempotencyRepository over idempotency_logs,
// the durable record behind the Redis replay cache.
type IdempotencyRepo struct {
	pool Pool
}

func NewIdempotencyRepo(pool Pool) *IdempotencyRepo {
	return &IdempotencyRepo{pool: pool}
}

// Create claims log.Key inside the withdrawal's transaction. A key that is
// already claimed yields domain.ErrDuplicate without aborting tx.
func (r *IdempotencyRepo) Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error {
	const query = `INSERT INTO idempotency_logs (key, transaction_id, response_json, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO NOTHING`

	tag, err := on(r.pool, tx).Exec(ctx, query, log.Key, log.TransactionID, log.ResponseJSON, log.CreatedAt)
	if err != nil {
		return mapWriteError(err, "claim idempotency key")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("claim idempotency key %q: %w", log.Key, domain.ErrDuplicate)
	}
	return nil
}

func (r *IdempotencyRepo) Get(ctx context.Context, key string) (*domain.IdempotencyLog, error) {
	const query = `SELECT key, transaction_id, response_json, created_at
		FROM idempotency_logs WHERE key = $1`

	var log domain.IdempotencyLog
	err := r.pool.QueryRow(ctx, query, key).Scan(&log.Key, &log.TransactionID, &log.ResponseJSON, &log.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get idempotency log: %w", err)
	}
	return &log, nil
}
