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

// OrderRepo implements ports.OrderRepository over the platform's orders table.
// Only is_pay, status and the wallet_transferred guard are written here.
type OrderRepo struct {
	pool Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// GetByID fetches an order by UUID.
func (r *OrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	query := `SELECT id, buyer_id, shop_id, total_amount, status, is_pay, wallet_transferred,
		wallet_transferred_at, created_at, updated_at
		FROM orders WHERE id = $1`

	o := &domain.Order{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.BuyerID, &o.ShopID, &o.TotalAmount, &o.Status, &o.IsPay,
		&o.WalletTransferred, &o.WalletTransferredAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return o, nil
}

// MarkPaid sets is_pay and moves the order to status.
func (r *OrderRepo) MarkPaid(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.OrderStatus) error {
	query := `UPDATE orders SET is_pay = TRUE, status = $2, updated_at = NOW() WHERE id = $1`

	tag, err := on(r.pool, tx).Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order not found: %s", id)
	}
	return nil
}

// CompareAndSetStatus writes to only while the order is still in from.
func (r *OrderRepo) CompareAndSetStatus(ctx context.Context, id uuid.UUID, from, to domain.OrderStatus) (bool, error) {
	query := `UPDATE orders SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`

	tag, err := r.pool.Exec(ctx, query, id, from, to)
	if err != nil {
		return false, fmt.Errorf("update order status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// SetWalletTransferred records whether revenue currently sits in the payee wallet.
func (r *OrderRepo) SetWalletTransferred(ctx context.Context, id uuid.UUID, transferred bool, at *time.Time) error {
	query := `UPDATE orders SET wallet_transferred = $2, wallet_transferred_at = $3, updated_at = NOW() WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id, transferred, at); err != nil {
		return fmt.Errorf("set wallet transferred: %w", err)
	}
	return nil
}

// ShopRepo implements ports.ShopRepository.
type ShopRepo struct {
	pool Pool
}

// NewShopRepo creates a new ShopRepo.
func NewShopRepo(pool Pool) *ShopRepo {
	return &ShopRepo{pool: pool}
}

// GetByID fetches a shop with its payee override.
func (r *ShopRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Shop, error) {
	query := `SELECT id, owner_id, payee_owner_id, name FROM shops WHERE id = $1`

	s := &domain.Shop{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.OwnerID, &s.PayeeOwnerID, &s.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shop by id: %w", err)
	}
	return s, nil
}
