package service

import (
	"context"
	"encoding/json"
	"fmt"

	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports"
	"marketplace-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderServiceImpl implements ports.OrderService.
type OrderServiceImpl struct {
	orderRepo ports.OrderRepository
	shopRepo  ports.ShopRepository
	escrow    ports.EscrowService
	notifier  ports.NotificationService
	audit     ports.AuditService
	log       zerolog.Logger
}

// NewOrderService creates a new OrderServiceImpl.
func NewOrderService(
	orderRepo ports.OrderRepository,
	shopRepo ports.ShopRepository,
	escrow ports.EscrowService,
	notifier ports.NotificationService,
	audit ports.AuditService,
	log zerolog.Logger,
) *OrderServiceImpl {
	return &OrderServiceImpl{
		orderRepo: orderRepo,
		shopRepo:  shopRepo,
		escrow:    escrow,
		notifier:  notifier,
		audit:     audit,
		log:       log,
	}
}

// UpdateStatus writes the new order status, then lets escrow react to the
// transition. Escrow failures are logged and never fail the update; the
// walletTransferred flag stays as it was, and sending DELIVERED again
// retries the payout.
func (s *OrderServiceImpl) UpdateStatus(ctx context.Context, actor ports.Principal, orderID uuid.UUID, status domain.OrderStatus) (*domain.Order, error) {
	if !status.IsValid() {
		return nil, apperror.Validation(fmt.Sprintf("Invalid order status: %s", status))
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("Order")
	}

	if err := s.authorize(ctx, actor, order, status); err != nil {
		return nil, err
	}

	if order.Status == status {
		if status == domain.OrderStatusDelivered && order.IsPay && !order.WalletTransferred {
			s.retryRelease(ctx, order)
		}
		return order, nil
	}
	if order.Status == domain.OrderStatusCancelled {
		return nil, apperror.StateConflict("Order is CANCELLED")
	}

	previous := order.Status
	ok, err := s.orderRepo.CompareAndSetStatus(ctx, order.ID, previous, status)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update order status: %w", err))
	}
	if !ok {
		return nil, apperror.StateConflict("Order status changed concurrently, reload and retry")
	}
	order.Status = status

	if err := s.escrow.OnStatusChange(ctx, order, previous); err != nil {
		s.log.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Str("from", string(previous)).
			Str("to", string(status)).
			Msg("escrow processing failed")
	}

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("from", string(previous)).
		Str("to", string(status)).
		Str("actor_id", actor.OwnerID.String()).
		Msg("order status updated")

	s.notifier.Notify(ctx, domain.Notification{
		OwnerID: order.BuyerID,
		Type:    domain.NotificationOrderStatusChanged,
		Title:   "Order updated",
		Message: fmt.Sprintf("Order %s is now %s", order.ID, status),
		Data: map[string]interface{}{
			"orderId":  order.ID.String(),
			"previous": string(previous),
			"status":   string(status),
		},
	})

	details, _ := json.Marshal(map[string]string{"from": string(previous), "to": string(status)})
	owner := actor.OwnerID
	s.audit.Log(ctx, &domain.AuditLog{
		OwnerID:      &owner,
		Action:       domain.AuditActionOrderStatus,
		ResourceType: "order",
		ResourceID:   order.ID.String(),
		Details:      string(details),
	})

	return order, nil
}

// retryRelease re-runs escrow for an order already DELIVERED whose payout
// never completed. walletTransferred is the only guard against paying twice.
func (s *OrderServiceImpl) retryRelease(ctx context.Context, order *domain.Order) {
	if err := s.escrow.OnStatusChange(ctx, order, order.Status); err != nil {
		s.log.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Msg("escrow release retry failed")
		return
	}
	s.log.Info().
		Str("order_id", order.ID.String()).
		Bool("wallet_transferred", order.WalletTransferred).
		Msg("escrow release retried")
}

// authorize lets admins and the shop owner set any status. Buyers may only
// confirm delivery or cancel before the order ships.
func (s *OrderServiceImpl) authorize(ctx context.Context, actor ports.Principal, order *domain.Order, status domain.OrderStatus) error {
	if actor.IsAdmin() {
		return nil
	}

	shop, err := s.shopRepo.GetByID(ctx, order.ShopID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get shop: %w", err))
	}
	if shop != nil && shop.OwnerID == actor.OwnerID {
		return nil
	}

	if order.BuyerID != actor.OwnerID {
		return apperror.ErrForbidden()
	}
	switch status {
	case domain.OrderStatusDelivered:
		return nil
	case domain.OrderStatusCancelled:
		if order.Status == domain.OrderStatusPending || order.Status == domain.OrderStatusConfirmed {
			return nil
		}
	}
	return apperror.ErrForbidden()
}

var _ ports.OrderService = (*OrderServiceImpl)(nil)
