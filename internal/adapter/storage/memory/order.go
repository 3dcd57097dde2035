package memory

import (
	"context"
	"fmt"
	"time"

	"marketplace-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct {
	s *Store
}

func (r *OrderRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *OrderRepo) MarkPaid(_ context.Context, tx pgx.Tx, id uuid.UUID, status domain.OrderStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.orders[id]
	if !ok {
		return fmt.Errorf("order not found: %s", id)
	}
	prev := *o
	o.IsPay = true
	o.Status = status
	o.UpdatedAt = time.Now().UTC()
	record(tx, func() { *o = prev })
	return nil
}

func (r *OrderRepo) CompareAndSetStatus(_ context.Context, id uuid.UUID, from, to domain.OrderStatus) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.orders[id]
	if !ok || o.Status != from {
		return false, nil
	}
	o.Status = to
	o.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *OrderRepo) SetWalletTransferred(_ context.Context, id uuid.UUID, transferred bool, at *time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.orders[id]
	if !ok {
		return fmt.Errorf("order not found: %s", id)
	}
	o.WalletTransferred = transferred
	o.WalletTransferredAt = at
	o.UpdatedAt = time.Now().UTC()
	return nil
}

// ShopRepo implements ports.ShopRepository.
type ShopRepo struct {
	s *Store
}

func (r *ShopRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Shop, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sh, ok := r.s.shops[id]
	if !ok {
		return nil, nil
	}
	cp := *sh
	return &cp, nil
}
