package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports"
	"marketplace-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	idempotencyTTL   = 24 * time.Hour
	defaultPageSize  = 20
	maxPageSize      = 100
	accountLastChars = 4
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	idempRepo  ports.IdempotencyRepository
	idempCache ports.IdempotencyCache
	ledger     ports.LedgerService
	encSvc     ports.EncryptionService
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl. idempCache may be nil.
func NewWalletService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	idempRepo ports.IdempotencyRepository,
	idempCache ports.IdempotencyCache,
	ledger ports.LedgerService,
	encSvc ports.EncryptionService,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		idempRepo:  idempRepo,
		idempCache: idempCache,
		ledger:     ledger,
		encSvc:     encSvc,
		transactor: transactor,
		log:        log,
	}
}

// GetBalance returns the owner's wallet, creating an empty one on first use.
func (s *WalletServiceImpl) GetBalance(ctx context.Context, ownerID uuid.UUID) (*domain.WalletBalance, error) {
	wallet, err := s.walletRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet != nil {
		return wallet, nil
	}

	if err := s.walletRepo.EnsureExists(ctx, nil, ownerID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("ensure wallet: %w", err))
	}
	wallet, err = s.walletRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("Wallet")
	}
	return wallet, nil
}

// Withdraw debits the wallet synchronously. A client Idempotency-Key is
// checked in Redis first, then in the idempotency_logs table, and a repeat
// returns the original transaction without debiting again.
func (s *WalletServiceImpl) Withdraw(ctx context.Context, req ports.WithdrawRequest) (*domain.WalletTransaction, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	idempKey := ""
	if req.IdempotencyKey != "" {
		if err := domain.ValidateIdempotencyKey(req.IdempotencyKey); err != nil {
			return nil, apperror.Validation(err.Error())
		}
		idempKey = domain.BuildIdempotencyKey(req.OwnerID, domain.IdempotencyScopeWithdraw, req.IdempotencyKey)

		prior, err := s.lookupWithdrawal(ctx, idempKey)
		if err != nil {
			return nil, err
		}
		if prior != nil {
			if prior.Amount != -req.Amount {
				return nil, apperror.StateConflict("Idempotency-Key was already used for a different amount")
			}
			return prior, nil
		}
	}

	wallet, err := s.walletRepo.GetByOwnerID(ctx, req.OwnerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil || !wallet.PayoutInfo.IsComplete() {
		return nil, apperror.Validation("Payout information is required before withdrawing")
	}

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Withdrawal to %s ****%s", wallet.PayoutInfo.BankCode, wallet.PayoutInfo.AccountLast4)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	txn, err := s.ledger.DebitTx(ctx, dbTx, req.OwnerID, req.Amount, domain.TxMeta{
		Type:        domain.TransactionTypeWithdraw,
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	var entry *domain.IdempotencyLog
	if idempKey != "" {
		if entry, err = domain.NewIdempotencyLog(idempKey, txn); err != nil {
			return nil, apperror.InternalError(err)
		}
		if err := s.idempRepo.Create(ctx, dbTx, entry); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return nil, apperror.StateConflict("A withdrawal with this Idempotency-Key is already in progress")
			}
			return nil, apperror.InternalError(fmt.Errorf("save idempotency log: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if idempKey != "" && s.idempCache != nil {
		if err := s.idempCache.Set(ctx, idempKey, entry.ResponseJSON, idempotencyTTL); err != nil {
			s.log.Warn().Err(err).Str("key", idempKey).Msg("failed to cache idempotency in redis")
		}
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("owner_id", req.OwnerID.String()).
		Int64("amount", req.Amount).
		Msg("withdrawal processed")

	return txn, nil
}

// lookupWithdrawal finds the stored outcome of a keyed withdrawal. Redis is
// consulted first; an unreachable or corrupt cache entry falls through to
// idempotency_logs.
func (s *WalletServiceImpl) lookupWithdrawal(ctx context.Context, key string) (*domain.WalletTransaction, error) {
	if s.idempCache != nil {
		cached, err := s.idempCache.Get(ctx, key)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Str("key", key).Msg("redis idempotency check failed, falling through to DB")
		case cached != nil:
			txn, err := domain.DecodeReplay(cached)
			if err == nil {
				return txn, nil
			}
			s.log.Warn().Err(err).Str("key", key).Msg("discarding unreadable cached withdrawal")
		}
	}

	entry, err := s.idempRepo.Get(ctx, key)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("db idempotency check: %w", err))
	}
	if entry == nil {
		return nil, nil
	}
	txn, err := domain.DecodeReplay(entry.ResponseJSON)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return txn, nil
}

// ListTransactions returns a page of the owner's ledger, newest first.
func (s *WalletServiceImpl) ListTransactions(ctx context.Context, params ports.TransactionListParams) ([]domain.WalletTransaction, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = defaultPageSize
	}
	if params.PageSize > maxPageSize {
		params.PageSize = maxPageSize
	}

	txns, total, err := s.txRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list transactions: %w", err))
	}
	return txns, total, nil
}

// UpdatePayoutInfo stores the owner's bank account with the number
// encrypted at rest.
func (s *WalletServiceImpl) UpdatePayoutInfo(ctx context.Context, req ports.PayoutInfoRequest) (*domain.WalletBalance, error) {
	bankCode := strings.TrimSpace(req.BankCode)
	accountName := strings.TrimSpace(req.AccountName)
	accountNumber := strings.TrimSpace(req.AccountNumber)
	if bankCode == "" || accountName == "" || accountNumber == "" {
		return nil, apperror.Validation("bank_code, account_name and account_number are required")
	}

	enc, err := s.encSvc.Encrypt(accountNumber)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("encrypt account number: %w", err))
	}

	last4 := accountNumber
	if len(last4) > accountLastChars {
		last4 = last4[len(last4)-accountLastChars:]
	}

	if err := s.walletRepo.EnsureExists(ctx, nil, req.OwnerID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("ensure wallet: %w", err))
	}
	info := domain.PayoutInfo{
		BankCode:         strings.ToUpper(bankCode),
		AccountName:      strings.ToUpper(accountName),
		AccountNumberEnc: enc,
		AccountLast4:     last4,
	}
	if err := s.walletRepo.UpdatePayoutInfo(ctx, req.OwnerID, info); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update payout info: %w", err))
	}

	s.log.Info().Str("owner_id", req.OwnerID.String()).Str("bank_code", info.BankCode).Msg("payout info updated")
	return s.GetBalance(ctx, req.OwnerID)
}

// ResolvePayoutAccount decrypts the owner's saved account. It returns nil
// when the owner has not saved complete payout info.
func (s *WalletServiceImpl) ResolvePayoutAccount(ctx context.Context, ownerID uuid.UUID) (*domain.BankAccount, error) {
	wallet, err := s.walletRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil || !wallet.PayoutInfo.IsComplete() {
		return nil, nil
	}

	number, err := s.encSvc.Decrypt(wallet.PayoutInfo.AccountNumberEnc)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("decrypt account number: %w", err))
	}
	return &domain.BankAccount{
		BankCode:      wallet.PayoutInfo.BankCode,
		AccountNumber: number,
		AccountName:   wallet.PayoutInfo.AccountName,
	}, nil
}

// Reconcile compares the stored balance with the sum of COMPLETED ledger
// entries.
func (s *WalletServiceImpl) Reconcile(ctx context.Context, ownerID uuid.UUID) (*ports.ReconcileReport, error) {
	wallet, err := s.walletRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	sum, err := s.txRepo.SumCompleted(ctx, ownerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sum ledger: %w", err))
	}

	var balance int64
	if wallet != nil {
		balance = wallet.Balance
	}

	report := &ports.ReconcileReport{
		OwnerID:    ownerID,
		Balance:    balance,
		LedgerSum:  sum,
		Consistent: balance == sum,
	}
	if !report.Consistent {
		s.log.Error().
			Str("owner_id", ownerID.String()).
			Int64("balance", balance).
			Int64("ledger_sum", sum).
			Msg("wallet balance diverges from ledger")
	}
	return report, nil
}

var _ ports.WalletService = (*WalletServiceImpl)(nil)
