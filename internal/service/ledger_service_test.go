package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports/mocks"
	"marketplace-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ledgerTestDeps struct {
	svc        *LedgerServiceImpl
	walletRepo *mocks.MockWalletRepository
	txRepo     *mocks.MockTransactionRepository
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func setupLedgerService(t *testing.T) *ledgerTestDeps {
	ctrl := gomock.NewController(t)
	d := &ledgerTestDeps{
		walletRepo: mocks.NewMockWalletRepository(ctrl),
		txRepo:     mocks.NewMockTransactionRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewLedgerService(d.walletRepo, d.txRepo, d.transactor, zerolog.Nop())
	return d
}

// mockTx implements pgx.Tx for testing
type mockTx struct {
	pgx.Tx
	committed bool
}

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error {
	m.committed = true
	return nil
}

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}

func TestLedgerService_Credit_Success(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ownerID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().Credit(ctx, tx, ownerID, int64(100000), gomock.Any()).Return(int64(100000), nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, txn *domain.WalletTransaction) error {
			assert.Equal(t, domain.TransactionStatusCompleted, txn.Status)
			assert.Equal(t, int64(100000), txn.Amount)
			assert.NotNil(t, txn.CompletedAt)
			return nil
		},
	)

	txn, err := d.svc.Credit(ctx, ownerID, 100000, domain.TxMeta{Type: domain.TransactionTypeRevenue})
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionTypeRevenue, txn.Type)
	assert.True(t, tx.committed)
}

func TestLedgerService_Credit_InvalidAmount(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.transactor.EXPECT().Begin(ctx).Return(&mockTx{}, nil)

	_, err := d.svc.Credit(ctx, uuid.New(), 0, domain.TxMeta{Type: domain.TransactionTypeDeposit})
	assertAppError(t, err, apperror.CodeValidation)
}

func TestLedgerService_Debit_RecordsNegativeAmount(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ownerID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().EnsureExists(ctx, tx, ownerID).Return(nil)
	d.walletRepo.EXPECT().Debit(ctx, tx, ownerID, int64(30000), gomock.Any()).Return(int64(70000), true, nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	txn, err := d.svc.Debit(ctx, ownerID, 30000, domain.TxMeta{Type: domain.TransactionTypeWithdraw})
	require.NoError(t, err)
	assert.Equal(t, int64(-30000), txn.Amount)
	assert.True(t, tx.committed)
}

func TestLedgerService_Debit_InsufficientFunds(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ownerID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().EnsureExists(ctx, tx, ownerID).Return(nil)
	d.walletRepo.EXPECT().Debit(ctx, tx, ownerID, int64(500000), gomock.Any()).Return(int64(0), false, nil)

	_, err := d.svc.Debit(ctx, ownerID, 500000, domain.TxMeta{Type: domain.TransactionTypePayment})
	assertAppError(t, err, apperror.CodeInsufficientFunds)
	assert.False(t, tx.committed)
}

func TestLedgerService_CompletePending_AppliesCredit(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txID := uuid.New()
	ownerID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.txRepo.EXPECT().MarkCompleted(ctx, tx, txID, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, _ uuid.UUID, _ time.Time, patch domain.TransactionMetadata) (*domain.WalletTransaction, error) {
			assert.Equal(t, "FT123", patch.ProviderReference)
			assert.Equal(t, string(domain.SourceBankWebhook), patch.ConfirmationSource)
			return &domain.WalletTransaction{ID: txID, OwnerID: ownerID, Amount: 100000, Status: domain.TransactionStatusCompleted}, nil
		},
	)
	d.walletRepo.EXPECT().Credit(ctx, tx, ownerID, int64(100000), gomock.Any()).Return(int64(100000), nil)

	txn, applied, err := d.svc.CompletePending(ctx, txID, domain.Completion{
		ExternalReference: "FT123",
		Source:            domain.SourceBankWebhook,
	})
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, txID, txn.ID)
	assert.True(t, tx.committed)
}

func TestLedgerService_CompletePending_AlreadyCompleted(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.txRepo.EXPECT().MarkCompleted(ctx, tx, txID, gomock.Any(), gomock.Any()).Return(nil, nil)
	d.txRepo.EXPECT().GetByID(ctx, txID).Return(&domain.WalletTransaction{ID: txID, Status: domain.TransactionStatusCompleted}, nil)

	txn, applied, err := d.svc.CompletePending(ctx, txID, domain.Completion{Source: domain.SourceManual})
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, txID, txn.ID)
	assert.False(t, tx.committed)
}

func TestLedgerService_CompletePending_FailedIsConflict(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.txRepo.EXPECT().MarkCompleted(ctx, tx, txID, gomock.Any(), gomock.Any()).Return(nil, nil)
	d.txRepo.EXPECT().GetByID(ctx, txID).Return(&domain.WalletTransaction{ID: txID, Status: domain.TransactionStatusFailed}, nil)

	_, _, err := d.svc.CompletePending(ctx, txID, domain.Completion{})
	assertAppError(t, err, apperror.CodeStateConflict)
}

func TestLedgerService_CompletePending_NotFound(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txID := uuid.New()

	d.transactor.EXPECT().Begin(ctx).Return(&mockTx{}, nil)
	d.txRepo.EXPECT().MarkCompleted(ctx, gomock.Any(), txID, gomock.Any(), gomock.Any()).Return(nil, nil)
	d.txRepo.EXPECT().GetByID(ctx, txID).Return(nil, nil)

	_, _, err := d.svc.CompletePending(ctx, txID, domain.Completion{})
	assertAppError(t, err, apperror.CodeNotFound)
}

func TestLedgerService_CompletePending_NegativeAmountDebits(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txID := uuid.New()
	ownerID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.txRepo.EXPECT().MarkCompleted(ctx, tx, txID, gomock.Any(), gomock.Any()).
		Return(&domain.WalletTransaction{ID: txID, OwnerID: ownerID, Amount: -5000}, nil)
	d.walletRepo.EXPECT().EnsureExists(ctx, tx, ownerID).Return(nil)
	d.walletRepo.EXPECT().Debit(ctx, tx, ownerID, int64(5000), gomock.Any()).Return(int64(0), false, nil)

	_, _, err := d.svc.CompletePending(ctx, txID, domain.Completion{})
	assertAppError(t, err, apperror.CodeInsufficientFunds)
	assert.False(t, tx.committed)
}

func TestLedgerService_FailPending(t *testing.T) {
	ctx := context.Background()
	txID := uuid.New()

	t.Run("pending becomes failed", func(t *testing.T) {
		d := setupLedgerService(t)
		defer d.ctrl.Finish()

		d.txRepo.EXPECT().MarkFailed(ctx, nil, txID, domain.TransactionMetadata{FailureReason: "expired"}).Return(true, nil)

		ok, err := d.svc.FailPending(ctx, txID, "expired")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("completed cannot fail", func(t *testing.T) {
		d := setupLedgerService(t)
		defer d.ctrl.Finish()

		d.txRepo.EXPECT().MarkFailed(ctx, nil, txID, gomock.Any()).Return(false, nil)
		d.txRepo.EXPECT().GetByID(ctx, txID).Return(&domain.WalletTransaction{Status: domain.TransactionStatusCompleted}, nil)

		_, err := d.svc.FailPending(ctx, txID, "late")
		assertAppError(t, err, apperror.CodeStateConflict)
	})

	t.Run("already failed is a no-op", func(t *testing.T) {
		d := setupLedgerService(t)
		defer d.ctrl.Finish()

		d.txRepo.EXPECT().MarkFailed(ctx, nil, txID, gomock.Any()).Return(false, nil)
		d.txRepo.EXPECT().GetByID(ctx, txID).Return(&domain.WalletTransaction{Status: domain.TransactionStatusFailed}, nil)

		ok, err := d.svc.FailPending(ctx, txID, "again")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("repository error", func(t *testing.T) {
		d := setupLedgerService(t)
		defer d.ctrl.Finish()

		d.txRepo.EXPECT().MarkFailed(ctx, nil, txID, gomock.Any()).Return(false, errors.New("db down"))

		_, err := d.svc.FailPending(ctx, txID, "x")
		assertAppError(t, err, apperror.CodeInternal)
	})
}

func TestLedgerService_RecordFailed(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ownerID := uuid.New()

	d.txRepo.EXPECT().Create(ctx, nil, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, txn *domain.WalletTransaction) error {
			assert.Equal(t, domain.TransactionStatusFailed, txn.Status)
			assert.Nil(t, txn.CompletedAt)
			return nil
		},
	)

	txn, err := d.svc.RecordFailed(ctx, ownerID, -200000, domain.TxMeta{Type: domain.TransactionTypeRefund})
	require.NoError(t, err)
	assert.Equal(t, int64(-200000), txn.Amount)
}
