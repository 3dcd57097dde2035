package postgres

import (
	"context"
	"errors"
	"fmt"

	"marketplace-wallet/config"
	"marketplace-wallet/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// uniqueViolation is the SQLSTATE PostgreSQL raises for a duplicate key.
const uniqueViolation = "23505"

// Querier is the statement surface shared by the pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Pool is satisfied by *pgxpool.Pool and by pgxmock pools in tests.
type Pool interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
}

// NewPool creates a PostgreSQL connection pool using pgx.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	if cfg.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	log.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("dbname", cfg.DBName).
		Int32("max_conns", cfg.MaxConns).
		Msg("PostgreSQL connection pool established")

	return pool, nil
}

// on returns tx when set, otherwise the pool.
func on(pool Pool, tx pgx.Tx) Querier {
	if tx != nil {
		return tx
	}
	return pool
}

// mapWriteError turns a unique violation into domain.ErrDuplicate.
func mapWriteError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}
