package memory

import (
	"context"
	"fmt"
	"time"

	"marketplace-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PaymentRepo implements ports.PaymentRepository, including the one
// active payment per order rule.
type PaymentRepo struct {
	s *Store
}

// activeFor reports whether another active payment exists for orderID.
// Caller holds the lock.
func (r *PaymentRepo) activeFor(orderID, except uuid.UUID) bool {
	for _, p := range r.s.payments {
		if p.OrderID == orderID && p.ID != except && p.IsActive() {
			return true
		}
	}
	return false
}

func (r *PaymentRepo) Create(_ context.Context, tx pgx.Tx, p *domain.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.payments[p.ID]; exists {
		return fmt.Errorf("insert payment: %w", domain.ErrDuplicate)
	}
	if p.IsActive() && r.activeFor(p.OrderID, p.ID) {
		return fmt.Errorf("insert payment: %w", domain.ErrDuplicate)
	}
	cp := *p
	r.s.payments[p.ID] = &cp
	r.s.payOrder = append(r.s.payOrder, p.ID)
	record(tx, func() {
		delete(r.s.payments, p.ID)
		r.s.payOrder = without(r.s.payOrder, p.ID)
	})
	return nil
}

func (r *PaymentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return copyPayment(r.s.payments[id]), nil
}

func (r *PaymentRepo) GetLatestByOrderID(_ context.Context, orderID uuid.UUID) (*domain.Payment, error) {
	return r.latest(func(p *domain.Payment) bool { return p.OrderID == orderID }), nil
}

func (r *PaymentRepo) GetLatestByOrderAndMethod(_ context.Context, orderID uuid.UUID, method domain.PaymentMethod) (*domain.Payment, error) {
	return r.latest(func(p *domain.Payment) bool { return p.OrderID == orderID && p.Method == method }), nil
}

func (r *PaymentRepo) latest(match func(*domain.Payment) bool) *domain.Payment {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := len(r.s.payOrder) - 1; i >= 0; i-- {
		if p := r.s.payments[r.s.payOrder[i]]; match(p) {
			return copyPayment(p)
		}
	}
	return nil
}

func (r *PaymentRepo) MarkCompleted(_ context.Context, tx pgx.Tx, id uuid.UUID, providerRef *string, paidAt time.Time, gw domain.GatewayResponse) (*domain.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.payments[id]
	if !ok || !p.IsConfirmable() {
		return nil, nil
	}
	prev := *p
	p.Status = domain.PaymentStatusCompleted
	if providerRef != nil {
		ref := *providerRef
		p.TransactionID = &ref
	}
	p.PaidAt = &paidAt
	p.UpdatedAt = paidAt
	p.GatewayResponse = mergeGateway(p.GatewayResponse, gw)
	record(tx, func() { *p = prev })
	return copyPayment(p), nil
}

func (r *PaymentRepo) MarkFailed(_ context.Context, id uuid.UUID, gw domain.GatewayResponse) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.payments[id]
	if !ok || !p.IsConfirmable() {
		return false, nil
	}
	p.Status = domain.PaymentStatusFailed
	p.GatewayResponse = mergeGateway(p.GatewayResponse, gw)
	p.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *PaymentRepo) CancelPending(_ context.Context, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.payments[id]
	if !ok || p.Status != domain.PaymentStatusPending {
		return false, nil
	}
	p.Status = domain.PaymentStatusCancelled
	p.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *PaymentRepo) Reopen(_ context.Context, payment *domain.Payment) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.payments[payment.ID]
	if !ok || !p.IsRetryable() {
		return false, nil
	}
	if r.activeFor(p.OrderID, p.ID) {
		return false, fmt.Errorf("reopen payment: %w", domain.ErrDuplicate)
	}
	p.Status = domain.PaymentStatusPending
	p.Amount = payment.Amount
	p.QRCode = payment.QRCode
	p.ExpiresAt = payment.ExpiresAt
	p.GatewayResponse = payment.GatewayResponse
	p.TransactionID = nil
	p.PaidAt = nil
	p.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *PaymentRepo) UpdateQRCode(_ context.Context, id uuid.UUID, qrCode string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if p, ok := r.s.payments[id]; ok {
		p.QRCode = &qrCode
		p.UpdatedAt = time.Now().UTC()
	}
	return nil
}

func mergeGateway(base, patch domain.GatewayResponse) domain.GatewayResponse {
	if patch.OriginalAmount != 0 {
		base.OriginalAmount = patch.OriginalAmount
	}
	if patch.ClampedAmount != nil {
		base.ClampedAmount = patch.ClampedAmount
	}
	if patch.PaymentCode != "" {
		base.PaymentCode = patch.PaymentCode
	}
	if patch.PaymentURL != "" {
		base.PaymentURL = patch.PaymentURL
	}
	if patch.ProviderReference != "" {
		base.ProviderReference = patch.ProviderReference
	}
	if patch.ResponseCode != "" {
		base.ResponseCode = patch.ResponseCode
	}
	if patch.ConfirmedBy != "" {
		base.ConfirmedBy = patch.ConfirmedBy
	}
	if patch.FailureReason != "" {
		base.FailureReason = patch.FailureReason
	}
	return base
}

func copyPayment(p *domain.Payment) *domain.Payment {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}
