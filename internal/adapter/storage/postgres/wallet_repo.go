package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const walletColumnList = `id, owner_id, balance, bank_code, account_name, account_number_enc, account_last4,
	last_transaction_at, is_verified, created_at, updated_at`

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// EnsureExists creates an empty balance row for the owner if none exists.
func (r *WalletRepo) EnsureExists(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID) error {
	query := `INSERT INTO wallet_balances (id, owner_id, balance, created_at, updated_at)
		VALUES ($1, $2, 0, NOW(), NOW())
		ON CONFLICT (owner_id) DO NOTHING`

	if _, err := on(r.pool, tx).Exec(ctx, query, uuid.New(), ownerID); err != nil {
		return fmt.Errorf("ensure wallet: %w", err)
	}
	return nil
}

// Credit adds amount to the owner's balance, creating the row on first use.
func (r *WalletRepo) Credit(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID, amount int64, at time.Time) (int64, error) {
	query := `INSERT INTO wallet_balances (id, owner_id, balance, last_transaction_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4, $4)
		ON CONFLICT (owner_id) DO UPDATE
		SET balance = wallet_balances.balance + EXCLUDED.balance,
			last_transaction_at = EXCLUDED.last_transaction_at,
			updated_at = EXCLUDED.updated_at
		RETURNING balance`

	var balance int64
	if err := on(r.pool, tx).QueryRow(ctx, query, uuid.New(), ownerID, amount, at).Scan(&balance); err != nil {
		return 0, fmt.Errorf("credit wallet: %w", err)
	}
	return balance, nil
}

// Debit subtracts amount only when the balance covers it.
func (r *WalletRepo) Debit(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID, amount int64, at time.Time) (int64, bool, error) {
	query := `UPDATE wallet_balances
		SET balance = balance - $2, last_transaction_at = $3, updated_at = $3
		WHERE owner_id = $1 AND balance >= $2
		RETURNING balance`

	var balance int64
	err := on(r.pool, tx).QueryRow(ctx, query, ownerID, amount, at).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("debit wallet: %w", err)
	}
	return balance, true, nil
}

// GetByOwnerID fetches the owner's balance record, or nil if none exists.
func (r *WalletRepo) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.WalletBalance, error) {
	query := `SELECT ` + walletColumnList + ` FROM wallet_balances WHERE owner_id = $1`

	var (
		w                                        domain.WalletBalance
		bankCode, accountName, accountEnc, last4 *string
	)
	err := r.pool.QueryRow(ctx, query, ownerID).Scan(
		&w.ID, &w.OwnerID, &w.Balance,
		&bankCode, &accountName, &accountEnc, &last4,
		&w.LastTransactionAt, &w.IsVerified, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by owner: %w", err)
	}

	if bankCode != nil || accountName != nil || accountEnc != nil {
		w.PayoutInfo = &domain.PayoutInfo{
			BankCode:         deref(bankCode),
			AccountName:      deref(accountName),
			AccountNumberEnc: deref(accountEnc),
			AccountLast4:     deref(last4),
		}
	}
	return &w, nil
}

// UpdatePayoutInfo replaces the owner's payout bank account.
func (r *WalletRepo) UpdatePayoutInfo(ctx context.Context, ownerID uuid.UUID, info domain.PayoutInfo) error {
	query := `UPDATE wallet_balances
		SET bank_code = $2, account_name = $3, account_number_enc = $4, account_last4 = $5, updated_at = NOW()
		WHERE owner_id = $1`

	tag, err := r.pool.Exec(ctx, query, ownerID, info.BankCode, info.AccountName, info.AccountNumberEnc, info.AccountLast4)
	if err != nil {
		return fmt.Errorf("update payout info: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", ownerID)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
