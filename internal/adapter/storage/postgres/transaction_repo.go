package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const txColumnList = `id, owner_id, type, amount, status, related_order_id, related_payment_id,
	external_reference, description, metadata, created_at, completed_at, expires_at`

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create appends a ledger entry.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.WalletTransaction) error {
	meta, err := json.Marshal(t.Metadata)
	if err != nil {
		return fmt.Errorf("marshal transaction metadata: %w", err)
	}

	query := `INSERT INTO wallet_transactions (id, owner_id, type, amount, status, related_order_id,
		related_payment_id, external_reference, description, metadata, created_at, completed_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err = on(r.pool, tx).Exec(ctx, query,
		t.ID, t.OwnerID, t.Type, t.Amount, t.Status,
		t.RelatedOrderID, t.RelatedPaymentID, t.ExternalReference,
		t.Description, meta, t.CreatedAt, t.CompletedAt, t.ExpiresAt,
	)
	if err != nil {
		return mapWriteError(err, "insert transaction")
	}
	return nil
}

// GetByID fetches a transaction by UUID.
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletTransaction, error) {
	query := `SELECT ` + txColumnList + ` FROM wallet_transactions WHERE id = $1`
	return scanTransaction(r.pool.QueryRow(ctx, query, id))
}

// GetByExternalReference finds the newest transaction carrying ref, ignoring case.
func (r *TransactionRepo) GetByExternalReference(ctx context.Context, ref string) (*domain.WalletTransaction, error) {
	query := `SELECT ` + txColumnList + ` FROM wallet_transactions
		WHERE lower(external_reference) = lower($1)
		ORDER BY created_at DESC LIMIT 1`
	return scanTransaction(r.pool.QueryRow(ctx, query, ref))
}

// MarkCompleted moves a PENDING transaction to COMPLETED and merges patch
// into its metadata. Returns nil when no PENDING row matched.
func (r *TransactionRepo) MarkCompleted(ctx context.Context, tx pgx.Tx, id uuid.UUID, at time.Time, patch domain.TransactionMetadata) (*domain.WalletTransaction, error) {
	meta, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata patch: %w", err)
	}

	query := `UPDATE wallet_transactions
		SET status = 'COMPLETED', completed_at = $2, metadata = metadata || $3::jsonb
		WHERE id = $1 AND status = 'PENDING'
		RETURNING ` + txColumnList

	return scanTransaction(on(r.pool, tx).QueryRow(ctx, query, id, at, meta))
}

// MarkFailed moves a PENDING transaction to FAILED.
func (r *TransactionRepo) MarkFailed(ctx context.Context, tx pgx.Tx, id uuid.UUID, patch domain.TransactionMetadata) (bool, error) {
	meta, err := json.Marshal(patch)
	if err != nil {
		return false, fmt.Errorf("marshal metadata patch: %w", err)
	}

	query := `UPDATE wallet_transactions
		SET status = 'FAILED', metadata = metadata || $2::jsonb
		WHERE id = $1 AND status = 'PENDING'`

	tag, err := on(r.pool, tx).Exec(ctx, query, id, meta)
	if err != nil {
		return false, fmt.Errorf("mark transaction failed: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// List fetches an owner's transactions with filtering and pagination.
func (r *TransactionRepo) List(ctx context.Context, params ports.TransactionListParams) ([]domain.WalletTransaction, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, fmt.Sprintf("owner_id = $%d", argIdx))
	args = append(args, params.OwnerID)
	argIdx++

	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.Type != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argIdx))
		args = append(args, *params.Type)
		argIdx++
	}
	if params.From != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= to_timestamp($%d)", argIdx))
		args = append(args, *params.From)
		argIdx++
	}
	if params.To != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= to_timestamp($%d)", argIdx))
		args = append(args, *params.To)
		argIdx++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM wallet_transactions %s", where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT %s FROM wallet_transactions %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, txColumnList, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.WalletTransaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, err
		}
		txns = append(txns, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return txns, total, nil
}

// SumCompleted returns the signed sum of the owner's COMPLETED transactions.
func (r *TransactionRepo) SumCompleted(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0)::bigint FROM wallet_transactions
		WHERE owner_id = $1 AND status = 'COMPLETED'`

	var sum int64
	if err := r.pool.QueryRow(ctx, query, ownerID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum completed transactions: %w", err)
	}
	return sum, nil
}

func scanTransaction(row pgx.Row) (*domain.WalletTransaction, error) {
	t := &domain.WalletTransaction{}
	var meta []byte
	err := row.Scan(
		&t.ID, &t.OwnerID, &t.Type, &t.Amount, &t.Status,
		&t.RelatedOrderID, &t.RelatedPaymentID, &t.ExternalReference,
		&t.Description, &meta, &t.CreatedAt, &t.CompletedAt, &t.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &t.Metadata); err != nil {
			return nil, fmt.Errorf("decode transaction metadata: %w", err)
		}
	}
	return t, nil
}
