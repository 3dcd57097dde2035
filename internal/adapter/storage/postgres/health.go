package postgres

import (
	"context"
	"fmt"
	"time"
)

const healthTimeout = 2 * time.Second

// HealthCheck implements ports.HealthChecker for the ledger database.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping runs one round trip that also proves the ledger schema is migrated.
func (h *HealthCheck) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	var exists bool
	if err := h.pool.QueryRow(ctx, `SELECT to_regclass('public.wallet_transactions') IS NOT NULL`).Scan(&exists); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}
	if !exists {
		return fmt.Errorf("postgres schema check: wallet_transactions table is missing")
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "postgres"
}
