package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Transactor implements ports.DBTransactor on the connection pool.
type Transactor struct {
	pool Pool
}

// NewTransactor creates a new Transactor wrapping the connection pool.
func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

// Begin starts a read-committed transaction. Balance statements are
// conditional, so no stronger isolation is needed.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return tx, nil
}
