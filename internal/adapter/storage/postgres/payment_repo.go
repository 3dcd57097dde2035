package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const paymentColumnList = `id, order_id, owner_id, amount, method, status, qr_code, transaction_id,
	wallet_transaction_id, expires_at, gateway_response, paid_at, created_at, updated_at`

// PaymentRepo implements ports.PaymentRepository. At most one PENDING,
// PROCESSING or COMPLETED payment may exist per order; the partial unique
// index payments_one_active_per_order enforces it.
type PaymentRepo struct {
	pool Pool
}

// NewPaymentRepo creates a new PaymentRepo.
func NewPaymentRepo(pool Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// Create inserts a payment. A second active payment for the same order
// fails with domain.ErrDuplicate.
func (r *PaymentRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
	gw, err := json.Marshal(p.GatewayResponse)
	if err != nil {
		return fmt.Errorf("marshal gateway response: %w", err)
	}

	query := `INSERT INTO payments (id, order_id, owner_id, amount, method, status, qr_code, transaction_id,
		wallet_transaction_id, expires_at, gateway_response, paid_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err = on(r.pool, tx).Exec(ctx, query,
		p.ID, p.OrderID, p.OwnerID, p.Amount, p.Method, p.Status,
		p.QRCode, p.TransactionID, p.WalletTransactionID, p.ExpiresAt,
		gw, p.PaidAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "insert payment")
	}
	return nil
}

// GetByID fetches a payment by UUID.
func (r *PaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumnList + ` FROM payments WHERE id = $1`
	return scanPayment(r.pool.QueryRow(ctx, query, id))
}

// GetLatestByOrderID fetches the newest payment of an order.
func (r *PaymentRepo) GetLatestByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumnList + ` FROM payments
		WHERE order_id = $1 ORDER BY created_at DESC LIMIT 1`
	return scanPayment(r.pool.QueryRow(ctx, query, orderID))
}

// GetLatestByOrderAndMethod fetches the newest payment of an order made with method.
func (r *PaymentRepo) GetLatestByOrderAndMethod(ctx context.Context, orderID uuid.UUID, method domain.PaymentMethod) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumnList + ` FROM payments
		WHERE order_id = $1 AND method = $2 ORDER BY created_at DESC LIMIT 1`
	return scanPayment(r.pool.QueryRow(ctx, query, orderID, method))
}

// MarkCompleted flips a confirmable payment to COMPLETED exactly once.
func (r *PaymentRepo) MarkCompleted(ctx context.Context, tx pgx.Tx, id uuid.UUID, providerRef *string, paidAt time.Time, gw domain.GatewayResponse) (*domain.Payment, error) {
	patch, err := json.Marshal(gw)
	if err != nil {
		return nil, fmt.Errorf("marshal gateway response: %w", err)
	}

	query := `UPDATE payments
		SET status = 'COMPLETED', transaction_id = COALESCE($2, transaction_id), paid_at = $3,
			gateway_response = gateway_response || $4::jsonb, updated_at = $3
		WHERE id = $1 AND status IN ('PENDING', 'PROCESSING')
		RETURNING ` + paymentColumnList

	return scanPayment(on(r.pool, tx).QueryRow(ctx, query, id, providerRef, paidAt, patch))
}

// MarkFailed records a declined gateway result.
func (r *PaymentRepo) MarkFailed(ctx context.Context, id uuid.UUID, gw domain.GatewayResponse) (bool, error) {
	patch, err := json.Marshal(gw)
	if err != nil {
		return false, fmt.Errorf("marshal gateway response: %w", err)
	}

	query := `UPDATE payments
		SET status = 'FAILED', gateway_response = gateway_response || $2::jsonb, updated_at = NOW()
		WHERE id = $1 AND status IN ('PENDING', 'PROCESSING')`

	tag, err := r.pool.Exec(ctx, query, id, patch)
	if err != nil {
		return false, fmt.Errorf("mark payment failed: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// CancelPending cancels a payment nobody has paid yet.
func (r *PaymentRepo) CancelPending(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `UPDATE payments SET status = 'CANCELLED', updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("cancel payment: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Reopen puts a FAILED or CANCELLED payment back to PENDING with the
// freshly prepared amount, QR code, expiry and gateway fields.
func (r *PaymentRepo) Reopen(ctx context.Context, p *domain.Payment) (bool, error) {
	gw, err := json.Marshal(p.GatewayResponse)
	if err != nil {
		return false, fmt.Errorf("marshal gateway response: %w", err)
	}

	query := `UPDATE payments
		SET status = 'PENDING', amount = $2, qr_code = $3, expires_at = $4, gateway_response = $5,
			transaction_id = NULL, paid_at = NULL, updated_at = NOW()
		WHERE id = $1 AND status IN ('FAILED', 'CANCELLED')`

	tag, err := r.pool.Exec(ctx, query, p.ID, p.Amount, p.QRCode, p.ExpiresAt, gw)
	if err != nil {
		return false, mapWriteError(err, "reopen payment")
	}
	return tag.RowsAffected() == 1, nil
}

// UpdateQRCode stores a regenerated QR descriptor.
func (r *PaymentRepo) UpdateQRCode(ctx context.Context, id uuid.UUID, qrCode string) error {
	query := `UPDATE payments SET qr_code = $2, updated_at = NOW() WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id, qrCode); err != nil {
		return fmt.Errorf("update payment qr code: %w", err)
	}
	return nil
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	p := &domain.Payment{}
	var gw []byte
	err := row.Scan(
		&p.ID, &p.OrderID, &p.OwnerID, &p.Amount, &p.Method, &p.Status,
		&p.QRCode, &p.TransactionID, &p.WalletTransactionID, &p.ExpiresAt,
		&gw, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	if len(gw) > 0 {
		if err := json.Unmarshal(gw, &p.GatewayResponse); err != nil {
			return nil, fmt.Errorf("decode gateway response: %w", err)
		}
	}
	return p, nil
}
