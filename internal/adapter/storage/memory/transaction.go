package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	s *Store
}

func (r *TransactionRepo) Create(_ context.Context, tx pgx.Tx, t *domain.WalletTransaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.transactions[t.ID]; exists {
		return fmt.Errorf("insert transaction: %w", domain.ErrDuplicate)
	}
	cp := *t
	r.s.transactions[t.ID] = &cp
	r.s.txOrder = append(r.s.txOrder, t.ID)
	record(tx, func() {
		delete(r.s.transactions, t.ID)
		r.s.txOrder = without(r.s.txOrder, t.ID)
	})
	return nil
}

func (r *TransactionRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.WalletTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return copyTx(r.s.transactions[id]), nil
}

func (r *TransactionRepo) GetByExternalReference(_ context.Context, ref string) (*domain.WalletTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := len(r.s.txOrder) - 1; i >= 0; i-- {
		t := r.s.transactions[r.s.txOrder[i]]
		if t.ExternalReference != nil && strings.EqualFold(*t.ExternalReference, ref) {
			return copyTx(t), nil
		}
	}
	return nil, nil
}

func (r *TransactionRepo) MarkCompleted(_ context.Context, tx pgx.Tx, id uuid.UUID, at time.Time, patch domain.TransactionMetadata) (*domain.WalletTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.transactions[id]
	if !ok || t.Status != domain.TransactionStatusPending {
		return nil, nil
	}
	prev := *t
	t.Status = domain.TransactionStatusCompleted
	t.CompletedAt = &at
	t.Metadata = mergeMetadata(t.Metadata, patch)
	record(tx, func() { *t = prev })
	return copyTx(t), nil
}

func (r *TransactionRepo) MarkFailed(_ context.Context, tx pgx.Tx, id uuid.UUID, patch domain.TransactionMetadata) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.transactions[id]
	if !ok || t.Status != domain.TransactionStatusPending {
		return false, nil
	}
	prev := *t
	t.Status = domain.TransactionStatusFailed
	t.Metadata = mergeMetadata(t.Metadata, patch)
	record(tx, func() { *t = prev })
	return true, nil
}

func (r *TransactionRepo) List(_ context.Context, params ports.TransactionListParams) ([]domain.WalletTransaction, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var matched []domain.WalletTransaction
	for _, id := range r.s.txOrder {
		t := r.s.transactions[id]
		if t.OwnerID != params.OwnerID {
			continue
		}
		if params.Status != nil && t.Status != *params.Status {
			continue
		}
		if params.Type != nil && t.Type != *params.Type {
			continue
		}
		if params.From != nil && t.CreatedAt.Unix() < *params.From {
			continue
		}
		if params.To != nil && t.CreatedAt.Unix() > *params.To {
			continue
		}
		matched = append(matched, *t)
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	start := (params.Page - 1) * params.PageSize
	if start < 0 || start >= len(matched) {
		return nil, total, nil
	}
	end := start + params.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *TransactionRepo) SumCompleted(_ context.Context, ownerID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var sum int64
	for _, t := range r.s.transactions {
		if t.OwnerID == ownerID && t.Status == domain.TransactionStatusCompleted {
			sum += t.Amount
		}
	}
	return sum, nil
}

// mergeMetadata applies the non-empty fields of patch, like jsonb ||.
func mergeMetadata(base, patch domain.TransactionMetadata) domain.TransactionMetadata {
	if patch.OriginalAmount != nil {
		base.OriginalAmount = patch.OriginalAmount
	}
	if patch.ClampedAmount != nil {
		base.ClampedAmount = patch.ClampedAmount
	}
	if patch.TestMode {
		base.TestMode = true
	}
	if patch.PaymentCode != "" {
		base.PaymentCode = patch.PaymentCode
	}
	if patch.QRCode != "" {
		base.QRCode = patch.QRCode
	}
	if patch.ProviderReference != "" {
		base.ProviderReference = patch.ProviderReference
	}
	if patch.ConfirmationSource != "" {
		base.ConfirmationSource = patch.ConfirmationSource
	}
	if patch.ObservedAmount != nil {
		base.ObservedAmount = patch.ObservedAmount
	}
	if patch.FailureReason != "" {
		base.FailureReason = patch.FailureReason
	}
	return base
}

func copyTx(t *domain.WalletTransaction) *domain.WalletTransaction {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

func without(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
