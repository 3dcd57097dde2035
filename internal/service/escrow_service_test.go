package service

import (
	"context"
	"testing"

	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports/mocks"
	"marketplace-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type escrowTestDeps struct {
	svc         *EscrowServiceImpl
	orderRepo   *mocks.MockOrderRepository
	shopRepo    *mocks.MockShopRepository
	paymentRepo *mocks.MockPaymentRepository
	ledger      *mocks.MockLedgerService
	notifier    *mocks.MockNotificationService
	ctrl        *gomock.Controller
}

func setupEscrowService(t *testing.T) *escrowTestDeps {
	ctrl := gomock.NewController(t)
	d := &escrowTestDeps{
		orderRepo:   mocks.NewMockOrderRepository(ctrl),
		shopRepo:    mocks.NewMockShopRepository(ctrl),
		paymentRepo: mocks.NewMockPaymentRepository(ctrl),
		ledger:      mocks.NewMockLedgerService(ctrl),
		notifier:    mocks.NewMockNotificationService(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewEscrowService(d.orderRepo, d.shopRepo, d.paymentRepo, d.ledger, d.notifier, zerolog.Nop())
	return d
}

func paidOrder(total int64, status domain.OrderStatus) *domain.Order {
	o := newOrder(total)
	o.IsPay = true
	o.Status = status
	return o
}

func TestEscrowService_Delivered_ReleasesToPayee(t *testing.T) {
	d := setupEscrowService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	order := paidOrder(200000, domain.OrderStatusDelivered)
	payee := uuid.New()
	shop := &domain.Shop{ID: order.ShopID, OwnerID: uuid.New(), PayeeOwnerID: &payee}
	payment := &domain.Payment{ID: uuid.New(), OrderID: order.ID, Status: domain.PaymentStatusCompleted}

	d.shopRepo.EXPECT().GetByID(ctx, order.ShopID).Return(shop, nil)
	d.paymentRepo.EXPECT().GetLatestByOrderID(ctx, order.ID).Return(payment, nil)
	d.ledger.EXPECT().Credit(ctx, payee, int64(200000), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, _ int64, meta domain.TxMeta) (*domain.WalletTransaction, error) {
			assert.Equal(t, domain.TransactionTypeRevenue, meta.Type)
			assert.Equal(t, order.ID, *meta.RelatedOrderID)
			assert.Equal(t, payment.ID, *meta.RelatedPaymentID)
			return &domain.WalletTransaction{}, nil
		},
	)
	d.orderRepo.EXPECT().SetWalletTransferred(ctx, order.ID, true, gomock.Not(gomock.Nil())).Return(nil)
	d.notifier.EXPECT().Notify(ctx, gomock.Any())

	require.NoError(t, d.svc.OnStatusChange(ctx, order, domain.OrderStatusShipping))
	assert.True(t, order.WalletTransferred)
	assert.NotNil(t, order.WalletTransferredAt)
}

func TestEscrowService_Delivered_GuardedNoOps(t *testing.T) {
	ctx := context.Background()

	t.Run("already transferred", func(t *testing.T) {
		d := setupEscrowService(t)
		defer d.ctrl.Finish()

		order := paidOrder(200000, domain.OrderStatusDelivered)
		order.WalletTransferred = true
		require.NoError(t, d.svc.OnStatusChange(ctx, order, domain.OrderStatusShipping))
	})

	t.Run("not paid", func(t *testing.T) {
		d := setupEscrowService(t)
		defer d.ctrl.Finish()

		order := newOrder(200000)
		order.Status = domain.OrderStatusDelivered
		require.NoError(t, d.svc.OnStatusChange(ctx, order, domain.OrderStatusShipping))
	})

	t.Run("other transitions move nothing", func(t *testing.T) {
		d := setupEscrowService(t)
		defer d.ctrl.Finish()

		order := paidOrder(200000, domain.OrderStatusShipping)
		require.NoError(t, d.svc.OnStatusChange(ctx, order, domain.OrderStatusConfirmed))
	})

	t.Run("cancelled again", func(t *testing.T) {
		d := setupEscrowService(t)
		defer d.ctrl.Finish()

		order := paidOrder(200000, domain.OrderStatusCancelled)
		order.WalletTransferred = true
		require.NoError(t, d.svc.OnStatusChange(ctx, order, domain.OrderStatusCancelled))
	})
}

func TestEscrowService_Cancelled_ReversesAndRefunds(t *testing.T) {
	d := setupEscrowService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	order := paidOrder(200000, domain.OrderStatusCancelled)
	order.WalletTransferred = true
	shop := &domain.Shop{ID: order.ShopID, OwnerID: uuid.New()}
	payment := &domain.Payment{ID: uuid.New(), OrderID: order.ID, Method: domain.PaymentMethodBankTransfer, Status: domain.PaymentStatusCompleted}

	d.paymentRepo.EXPECT().GetLatestByOrderID(ctx, order.ID).Return(payment, nil)
	d.shopRepo.EXPECT().GetByID(ctx, order.ShopID).Return(shop, nil)
	d.ledger.EXPECT().Debit(ctx, shop.OwnerID, int64(200000), gomock.Any()).Return(&domain.WalletTransaction{}, nil)
	d.ledger.EXPECT().Credit(ctx, order.BuyerID, int64(200000), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, _ int64, meta domain.TxMeta) (*domain.WalletTransaction, error) {
			assert.Equal(t, domain.TransactionTypeRefund, meta.Type)
			return &domain.WalletTransaction{}, nil
		},
	)
	d.notifier.EXPECT().Notify(ctx, gomock.Any())
	d.orderRepo.EXPECT().SetWalletTransferred(ctx, order.ID, false, nil).Return(nil)

	require.NoError(t, d.svc.OnStatusChange(ctx, order, domain.OrderStatusDelivered))
	assert.False(t, order.WalletTransferred)
}

func TestEscrowService_Cancelled_PayeeShortRecordsFailedRefund(t *testing.T) {
	d := setupEscrowService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	order := paidOrder(200000, domain.OrderStatusCancelled)
	order.WalletTransferred = true
	shop := &domain.Shop{ID: order.ShopID, OwnerID: uuid.New()}
	payment := &domain.Payment{ID: uuid.New(), OrderID: order.ID, Method: domain.PaymentMethodCOD, Status: domain.PaymentStatusCompleted}

	d.paymentRepo.EXPECT().GetLatestByOrderID(ctx, order.ID).Return(payment, nil)
	d.shopRepo.EXPECT().GetByID(ctx, order.ShopID).Return(shop, nil)
	d.ledger.EXPECT().Debit(ctx, shop.OwnerID, int64(200000), gomock.Any()).Return(nil, apperror.ErrInsufficientFunds())
	d.ledger.EXPECT().RecordFailed(ctx, shop.OwnerID, int64(-200000), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, _ int64, meta domain.TxMeta) (*domain.WalletTransaction, error) {
			assert.Equal(t, domain.TransactionTypeRefund, meta.Type)
			assert.Equal(t, "insufficient funds", meta.Metadata.FailureReason)
			return &domain.WalletTransaction{}, nil
		},
	)
	d.orderRepo.EXPECT().SetWalletTransferred(ctx, order.ID, false, nil).Return(nil)

	require.NoError(t, d.svc.OnStatusChange(ctx, order, domain.OrderStatusDelivered))
}

func TestEscrowService_Cancelled_CancelsPendingPayment(t *testing.T) {
	d := setupEscrowService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	order := newOrder(200000)
	order.Status = domain.OrderStatusCancelled
	payment := &domain.Payment{ID: uuid.New(), OrderID: order.ID, Method: domain.PaymentMethodBankTransfer, Status: domain.PaymentStatusPending}

	d.paymentRepo.EXPECT().GetLatestByOrderID(ctx, order.ID).Return(payment, nil)
	d.paymentRepo.EXPECT().CancelPending(ctx, payment.ID).Return(true, nil)

	require.NoError(t, d.svc.OnStatusChange(ctx, order, domain.OrderStatusPending))
}
