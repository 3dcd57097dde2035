package service

import (
	"context"
	"fmt"
	"time"

	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports"
	"marketplace-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EscrowServiceImpl implements ports.EscrowService.
//
// Funds move only on two transitions: DELIVERED releases the order total
// to the shop payee, CANCELLED reverses a release and refunds the buyer.
// The walletTransferred flag guards both directions. The flag write is not
// in the same DB transaction as the credit.
type EscrowServiceImpl struct {
	orderRepo   ports.OrderRepository
	shopRepo    ports.ShopRepository
	paymentRepo ports.PaymentRepository
	ledger      ports.LedgerService
	notifier    ports.NotificationService
	log         zerolog.Logger
}

// NewEscrowService creates a new EscrowServiceImpl.
func NewEscrowService(
	orderRepo ports.OrderRepository,
	shopRepo ports.ShopRepository,
	paymentRepo ports.PaymentRepository,
	ledger ports.LedgerService,
	notifier ports.NotificationService,
	log zerolog.Logger,
) *EscrowServiceImpl {
	return &EscrowServiceImpl{
		orderRepo:   orderRepo,
		shopRepo:    shopRepo,
		paymentRepo: paymentRepo,
		ledger:      ledger,
		notifier:    notifier,
		log:         log,
	}
}

// OnStatusChange reacts to an order that has just moved from previous to
// order.Status.
func (s *EscrowServiceImpl) OnStatusChange(ctx context.Context, order *domain.Order, previous domain.OrderStatus) error {
	switch order.Status {
	case domain.OrderStatusDelivered:
		return s.release(ctx, order)
	case domain.OrderStatusCancelled:
		if previous == domain.OrderStatusCancelled {
			return nil
		}
		return s.reverse(ctx, order)
	default:
		return nil
	}
}

func (s *EscrowServiceImpl) release(ctx context.Context, order *domain.Order) error {
	if !order.IsPay || order.WalletTransferred {
		s.log.Debug().
			Str("order_id", order.ID.String()).
			Bool("is_pay", order.IsPay).
			Bool("wallet_transferred", order.WalletTransferred).
			Msg("escrow release skipped")
		return nil
	}

	payee, err := s.payee(ctx, order)
	if err != nil {
		return err
	}

	payment, err := s.paymentRepo.GetLatestByOrderID(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("get payment: %w", err)
	}

	meta := domain.TxMeta{
		Type:           domain.TransactionTypeRevenue,
		RelatedOrderID: &order.ID,
		Description:    fmt.Sprintf("Revenue for order %s", order.ID),
	}
	if payment != nil {
		meta.RelatedPaymentID = &payment.ID
	}

	if _, err := s.ledger.Credit(ctx, payee, order.TotalAmount, meta); err != nil {
		return fmt.Errorf("credit revenue: %w", err)
	}

	now := time.Now().UTC()
	if err := s.orderRepo.SetWalletTransferred(ctx, order.ID, true, &now); err != nil {
		return fmt.Errorf("set wallet transferred: %w", err)
	}
	order.WalletTransferred = true
	order.WalletTransferredAt = &now

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("payee_id", payee.String()).
		Int64("amount", order.TotalAmount).
		Msg("escrow released to shop")

	s.notifier.Notify(ctx, domain.Notification{
		OwnerID: payee,
		Type:    domain.NotificationRevenueReleased,
		Title:   "Revenue received",
		Message: fmt.Sprintf("%d VND for order %s was added to your wallet", order.TotalAmount, order.ID),
		Data:    map[string]interface{}{"orderId": order.ID.String(), "amount": order.TotalAmount},
	})
	return nil
}

func (s *EscrowServiceImpl) reverse(ctx context.Context, order *domain.Order) error {
	payment, err := s.paymentRepo.GetLatestByOrderID(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("get payment: %w", err)
	}

	meta := func(desc string) domain.TxMeta {
		m := domain.TxMeta{
			Type:           domain.TransactionTypeRefund,
			RelatedOrderID: &order.ID,
			Description:    desc,
		}
		if payment != nil {
			m.RelatedPaymentID = &payment.ID
		}
		return m
	}

	if order.WalletTransferred {
		payee, err := s.payee(ctx, order)
		if err != nil {
			return err
		}

		_, err = s.ledger.Debit(ctx, payee, order.TotalAmount, meta(fmt.Sprintf("Revenue reversal for cancelled order %s", order.ID)))
		switch {
		case apperror.Is(err, apperror.CodeInsufficientFunds):
			s.log.Warn().
				Str("order_id", order.ID.String()).
				Str("payee_id", payee.String()).
				Int64("amount", order.TotalAmount).
				Msg("payee cannot cover revenue reversal, recording failed refund")
			failed := meta(fmt.Sprintf("Revenue reversal for cancelled order %s skipped: insufficient funds", order.ID))
			failed.Metadata.FailureReason = "insufficient funds"
			if _, err := s.ledger.RecordFailed(ctx, payee, -order.TotalAmount, failed); err != nil {
				s.log.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to record skipped reversal")
			}
		case err != nil:
			return fmt.Errorf("reverse revenue: %w", err)
		}
	}

	if order.IsPay && payment != nil && payment.Method != domain.PaymentMethodCOD && payment.Status == domain.PaymentStatusCompleted {
		if _, err := s.ledger.Credit(ctx, order.BuyerID, order.TotalAmount, meta(fmt.Sprintf("Refund for cancelled order %s", order.ID))); err != nil {
			return fmt.Errorf("refund buyer: %w", err)
		}
		s.notifier.Notify(ctx, domain.Notification{
			OwnerID: order.BuyerID,
			Type:    domain.NotificationRefundIssued,
			Title:   "Refund issued",
			Message: fmt.Sprintf("%d VND for cancelled order %s was returned to your wallet", order.TotalAmount, order.ID),
			Data:    map[string]interface{}{"orderId": order.ID.String(), "amount": order.TotalAmount},
		})
	}

	if order.WalletTransferred {
		if err := s.orderRepo.SetWalletTransferred(ctx, order.ID, false, nil); err != nil {
			return fmt.Errorf("reset wallet transferred: %w", err)
		}
		order.WalletTransferred = false
		order.WalletTransferredAt = nil
	}

	if payment != nil && payment.IsConfirmable() {
		if _, err := s.paymentRepo.CancelPending(ctx, payment.ID); err != nil {
			return fmt.Errorf("cancel pending payment: %w", err)
		}
	}

	s.log.Info().Str("order_id", order.ID.String()).Msg("escrow reversed for cancelled order")
	return nil
}

func (s *EscrowServiceImpl) payee(ctx context.Context, order *domain.Order) (uuid.UUID, error) {
	shop, err := s.shopRepo.GetByID(ctx, order.ShopID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get shop: %w", err)
	}
	if shop == nil {
		return uuid.Nil, apperror.ErrNotFound("Shop")
	}
	return shop.PayeeID(), nil
}

var _ ports.EscrowService = (*EscrowServiceImpl)(nil)
