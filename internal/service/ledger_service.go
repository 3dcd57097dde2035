package service

import (
	"context"
	"fmt"
	"time"

	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports"
	"marketplace-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService.
//
// Balances change only through single conditional statements on the
// wallet row (upsert-and-add, or subtract-if-covered), so concurrent
// mutations for the same owner serialize on that row and never lose an
// update. Every applied change has exactly one COMPLETED transaction.
type LedgerServiceImpl struct {
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		transactor: transactor,
		log:        log,
	}
}

// Credit adds amount to the owner's wallet in its own DB transaction.
func (s *LedgerServiceImpl) Credit(ctx context.Context, ownerID uuid.UUID, amount int64, meta domain.TxMeta) (*domain.WalletTransaction, error) {
	return s.inTx(ctx, func(dbTx pgx.Tx) (*domain.WalletTransaction, error) {
		return s.CreditTx(ctx, dbTx, ownerID, amount, meta)
	})
}

// Debit subtracts amount from the owner's wallet in its own DB transaction.
func (s *LedgerServiceImpl) Debit(ctx context.Context, ownerID uuid.UUID, amount int64, meta domain.TxMeta) (*domain.WalletTransaction, error) {
	return s.inTx(ctx, func(dbTx pgx.Tx) (*domain.WalletTransaction, error) {
		return s.DebitTx(ctx, dbTx, ownerID, amount, meta)
	})
}

// CreditTx credits inside the caller's DB transaction.
func (s *LedgerServiceImpl) CreditTx(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID, amount int64, meta domain.TxMeta) (*domain.WalletTransaction, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	now := time.Now().UTC()
	balance, err := s.walletRepo.Credit(ctx, tx, ownerID, amount, now)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit wallet: %w", err))
	}

	txn := newCompletedTransaction(ownerID, amount, meta, now)
	if err := s.txRepo.Create(ctx, tx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("owner_id", ownerID.String()).
		Str("type", string(meta.Type)).
		Int64("amount", amount).
		Int64("balance", balance).
		Msg("wallet credited")

	return txn, nil
}

// DebitTx debits inside the caller's DB transaction. The conditional
// update is the per-owner critical section: it fails with
// InsufficientFunds instead of ever producing a negative balance.
func (s *LedgerServiceImpl) DebitTx(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID, amount int64, meta domain.TxMeta) (*domain.WalletTransaction, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	if err := s.walletRepo.EnsureExists(ctx, tx, ownerID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("ensure wallet: %w", err))
	}

	now := time.Now().UTC()
	balance, ok, err := s.walletRepo.Debit(ctx, tx, ownerID, amount, now)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("debit wallet: %w", err))
	}
	if !ok {
		return nil, apperror.ErrInsufficientFunds()
	}

	txn := newCompletedTransaction(ownerID, -amount, meta, now)
	if err := s.txRepo.Create(ctx, tx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("owner_id", ownerID.String()).
		Str("type", string(meta.Type)).
		Int64("amount", -amount).
		Int64("balance", balance).
		Msg("wallet debited")

	return txn, nil
}

// CompletePending confirms a PENDING transaction and applies its signed
// amount to the balance in the same DB transaction. A transaction that is
// already COMPLETED is reported back with applied=false.
func (s *LedgerServiceImpl) CompletePending(ctx context.Context, txID uuid.UUID, completion domain.Completion) (*domain.WalletTransaction, bool, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	now := time.Now().UTC()
	patch := domain.TransactionMetadata{
		ProviderReference:  completion.ExternalReference,
		ConfirmationSource: string(completion.Source),
		ObservedAmount:     completion.ObservedAmount,
	}

	txn, err := s.txRepo.MarkCompleted(ctx, dbTx, txID, now, patch)
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("mark completed: %w", err))
	}
	if txn == nil {
		current, err := s.txRepo.GetByID(ctx, txID)
		if err != nil {
			return nil, false, apperror.InternalError(fmt.Errorf("reload transaction: %w", err))
		}
		if current == nil {
			return nil, false, apperror.ErrNotFound("Transaction")
		}
		if current.Status == domain.TransactionStatusCompleted {
			s.log.Debug().Str("tx_id", txID.String()).Msg("transaction already completed, skipping")
			return current, false, nil
		}
		return nil, false, apperror.StateConflict(fmt.Sprintf("Transaction is %s and cannot be completed", current.Status))
	}

	if txn.Amount >= 0 {
		if _, err := s.walletRepo.Credit(ctx, dbTx, txn.OwnerID, txn.Amount, now); err != nil {
			return nil, false, apperror.InternalError(fmt.Errorf("credit wallet: %w", err))
		}
	} else {
		if err := s.walletRepo.EnsureExists(ctx, dbTx, txn.OwnerID); err != nil {
			return nil, false, apperror.InternalError(fmt.Errorf("ensure wallet: %w", err))
		}
		_, ok, err := s.walletRepo.Debit(ctx, dbTx, txn.OwnerID, -txn.Amount, now)
		if err != nil {
			return nil, false, apperror.InternalError(fmt.Errorf("debit wallet: %w", err))
		}
		if !ok {
			return nil, false, apperror.ErrInsufficientFunds()
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("owner_id", txn.OwnerID.String()).
		Int64("amount", txn.Amount).
		Str("source", string(completion.Source)).
		Msg("pending transaction completed")

	return txn, true, nil
}

// FailPending moves a PENDING transaction to FAILED. Returns false if it was
// already FAILED; a COMPLETED transaction cannot fail.
func (s *LedgerServiceImpl) FailPending(ctx context.Context, txID uuid.UUID, reason string) (bool, error) {
	ok, err := s.txRepo.MarkFailed(ctx, nil, txID, domain.TransactionMetadata{FailureReason: reason})
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("mark failed: %w", err))
	}
	if ok {
		s.log.Info().Str("tx_id", txID.String()).Str("reason", reason).Msg("pending transaction failed")
		return true, nil
	}

	current, err := s.txRepo.GetByID(ctx, txID)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("reload transaction: %w", err))
	}
	if current == nil {
		return false, apperror.ErrNotFound("Transaction")
	}
	if current.Status == domain.TransactionStatusCompleted {
		return false, apperror.StateConflict("Transaction is already COMPLETED")
	}
	return false, nil
}

// RecordFailed appends a FAILED entry for audit. It does not touch the balance.
func (s *LedgerServiceImpl) RecordFailed(ctx context.Context, ownerID uuid.UUID, amount int64, meta domain.TxMeta) (*domain.WalletTransaction, error) {
	now := time.Now().UTC()
	txn := &domain.WalletTransaction{
		ID:                uuid.New(),
		OwnerID:           ownerID,
		Type:              meta.Type,
		Amount:            amount,
		Status:            domain.TransactionStatusFailed,
		RelatedOrderID:    meta.RelatedOrderID,
		RelatedPaymentID:  meta.RelatedPaymentID,
		ExternalReference: meta.ExternalReference,
		Description:       meta.Description,
		Metadata:          meta.Metadata,
		CreatedAt:         now,
	}
	if err := s.txRepo.Create(ctx, nil, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create failed transaction: %w", err))
	}
	return txn, nil
}

func (s *LedgerServiceImpl) inTx(ctx context.Context, fn func(pgx.Tx) (*domain.WalletTransaction, error)) (*domain.WalletTransaction, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	txn, err := fn(dbTx)
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return txn, nil
}

func newCompletedTransaction(ownerID uuid.UUID, signedAmount int64, meta domain.TxMeta, now time.Time) *domain.WalletTransaction {
	return &domain.WalletTransaction{
		ID:                uuid.New(),
		OwnerID:           ownerID,
		Type:              meta.Type,
		Amount:            signedAmount,
		Status:            domain.TransactionStatusCompleted,
		RelatedOrderID:    meta.RelatedOrderID,
		RelatedPaymentID:  meta.RelatedPaymentID,
		ExternalReference: meta.ExternalReference,
		Description:       meta.Description,
		Metadata:          meta.Metadata,
		CreatedAt:         now,
		CompletedAt:       &now,
	}
}
