package memory

import (
	"context"
	"fmt"
	"time"

	"marketplace-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	s *Store
}

// ensure returns the owner's row, creating it if needed. Caller holds the lock.
func (r *WalletRepo) ensure(tx pgx.Tx, ownerID uuid.UUID, at time.Time) *domain.WalletBalance {
	w, ok := r.s.wallets[ownerID]
	if ok {
		return w
	}
	w = &domain.WalletBalance{ID: uuid.New(), OwnerID: ownerID, CreatedAt: at, UpdatedAt: at}
	r.s.wallets[ownerID] = w
	record(tx, func() {
		if cur, ok := r.s.wallets[ownerID]; ok && cur == w && w.Balance == 0 {
			delete(r.s.wallets, ownerID)
		}
	})
	return w
}

func (r *WalletRepo) EnsureExists(_ context.Context, tx pgx.Tx, ownerID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.ensure(tx, ownerID, time.Now().UTC())
	return nil
}

func (r *WalletRepo) Credit(_ context.Context, tx pgx.Tx, ownerID uuid.UUID, amount int64, at time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	w := r.ensure(tx, ownerID, at)
	prevAt := w.LastTransactionAt
	w.Balance += amount
	w.LastTransactionAt = &at
	w.UpdatedAt = at
	record(tx, func() {
		w.Balance -= amount
		w.LastTransactionAt = prevAt
	})
	return w.Balance, nil
}

func (r *WalletRepo) Debit(_ context.Context, tx pgx.Tx, ownerID uuid.UUID, amount int64, at time.Time) (int64, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	w, ok := r.s.wallets[ownerID]
	if !ok || w.Balance < amount {
		return 0, false, nil
	}
	prevAt := w.LastTransactionAt
	w.Balance -= amount
	w.LastTransactionAt = &at
	w.UpdatedAt = at
	record(tx, func() {
		w.Balance += amount
		w.LastTransactionAt = prevAt
	})
	return w.Balance, true, nil
}

func (r *WalletRepo) GetByOwnerID(_ context.Context, ownerID uuid.UUID) (*domain.WalletBalance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	w, ok := r.s.wallets[ownerID]
	if !ok {
		return nil, nil
	}
	cp := *w
	if w.PayoutInfo != nil {
		info := *w.PayoutInfo
		cp.PayoutInfo = &info
	}
	return &cp, nil
}

func (r *WalletRepo) UpdatePayoutInfo(_ context.Context, ownerID uuid.UUID, info domain.PayoutInfo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	w, ok := r.s.wallets[ownerID]
	if !ok {
		return fmt.Errorf("wallet not found: %s", ownerID)
	}
	w.PayoutInfo = &info
	w.UpdatedAt = time.Now().UTC()
	return nil
}
