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

// DepositConfig holds the deposit flow settings.
type DepositConfig struct {
	Policy      domain.AmountPolicy
	DefaultBank domain.BankAccount
	Expiry      time.Duration
}

// DepositServiceImpl implements ports.DepositService.
type DepositServiceImpl struct {
	ledger   ports.LedgerService
	txRepo   ports.TransactionRepository
	wallets  ports.WalletService
	qr       ports.QRGenerator
	notifier ports.NotificationService
	cfg      DepositConfig
	log      zerolog.Logger
}

// NewDepositService creates a new DepositServiceImpl.
func NewDepositService(
	ledger ports.LedgerService,
	txRepo ports.TransactionRepository,
	wallets ports.WalletService,
	qr ports.QRGenerator,
	notifier ports.NotificationService,
	cfg DepositConfig,
	log zerolog.Logger,
) *DepositServiceImpl {
	return &DepositServiceImpl{
		ledger:   ledger,
		txRepo:   txRepo,
		wallets:  wallets,
		qr:       qr,
		notifier: notifier,
		cfg:      cfg,
		log:      log,
	}
}

// CreateDeposit records a PENDING top-up and returns the QR descriptor the
// owner pays with. In test mode the QR shows the clamped amount while the
// transaction keeps the original.
func (s *DepositServiceImpl) CreateDeposit(ctx context.Context, req ports.DepositRequest) (*ports.DepositResult, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	account, err := s.resolveAccount(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	code := domain.DepositCode(id)
	original := req.Amount
	clamped := s.cfg.Policy.Clamp(original)
	qrCode := s.qr.Generate(account, clamped, code)

	description := "Wallet deposit"
	if req.Description != nil && *req.Description != "" {
		description = *req.Description
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.cfg.Expiry)
	txn := &domain.WalletTransaction{
		ID:                id,
		OwnerID:           req.OwnerID,
		Type:              domain.TransactionTypeDeposit,
		Amount:            original,
		Status:            domain.TransactionStatusPending,
		ExternalReference: &code,
		Description:       description,
		Metadata: domain.TransactionMetadata{
			OriginalAmount: &original,
			ClampedAmount:  &clamped,
			TestMode:       s.cfg.Policy.TestMode,
			PaymentCode:    code,
			QRCode:         qrCode,
		},
		CreatedAt: now,
		ExpiresAt: &expiresAt,
	}

	if err := s.txRepo.Create(ctx, nil, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create deposit: %w", err))
	}

	s.log.Info().
		Str("tx_id", id.String()).
		Str("owner_id", req.OwnerID.String()).
		Int64("amount", original).
		Int64("clamped_amount", clamped).
		Bool("test_mode", s.cfg.Policy.TestMode).
		Msg("deposit created")

	return &ports.DepositResult{
		Transaction:   txn,
		QRCode:        qrCode,
		ClampedAmount: clamped,
		ExpiresAt:     expiresAt,
		BankAccount:   account,
		Instructions:  transferInstructions(account, clamped, code),
	}, nil
}

// ConfirmDeposit credits a deposit once. Repeated confirmations of a
// COMPLETED deposit succeed without touching the balance.
func (s *DepositServiceImpl) ConfirmDeposit(ctx context.Context, req ports.ConfirmDepositRequest) (*ports.ConfirmResult, error) {
	txn, err := s.txRepo.GetByID(ctx, req.TransactionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get deposit: %w", err))
	}
	if txn == nil || txn.Type != domain.TransactionTypeDeposit {
		return nil, apperror.ErrNotFound("Deposit")
	}

	switch txn.Status {
	case domain.TransactionStatusCompleted:
		s.log.Info().Str("tx_id", txn.ID.String()).Str("source", string(req.Source)).Msg("deposit already completed, skipping")
		return &ports.ConfirmResult{Transaction: txn, Applied: false}, nil
	case domain.TransactionStatusFailed:
		return nil, apperror.StateConflict("Deposit has FAILED and cannot be confirmed")
	}

	expected := s.cfg.Policy.Expected(txn.Amount, txn.Metadata.ClampedAmount)
	if !s.cfg.Policy.Accepts(expected, req.ObservedAmount) {
		s.log.Warn().
			Str("tx_id", txn.ID.String()).
			Int64("expected", expected).
			Int64("observed", req.ObservedAmount).
			Msg("deposit amount mismatch")
		return nil, apperror.ErrAmountMismatch(expected, req.ObservedAmount)
	}

	completed, applied, err := s.ledger.CompletePending(ctx, txn.ID, domain.Completion{
		ExternalReference: req.ExternalRef,
		ObservedAmount:    domain.Int64Ptr(req.ObservedAmount),
		Source:            req.Source,
	})
	if err != nil {
		return nil, err
	}

	if applied {
		s.notifier.Notify(ctx, domain.Notification{
			OwnerID: completed.OwnerID,
			Type:    domain.NotificationDepositCompleted,
			Title:   "Deposit received",
			Message: fmt.Sprintf("%d VND was added to your wallet", completed.Amount),
			Data: map[string]interface{}{
				"transactionId": completed.ID.String(),
				"amount":        completed.Amount,
			},
		})
	}

	return &ports.ConfirmResult{Transaction: completed, Applied: applied}, nil
}

// FailDeposit marks a PENDING deposit FAILED.
func (s *DepositServiceImpl) FailDeposit(ctx context.Context, txID uuid.UUID, reason string) error {
	_, err := s.ledger.FailPending(ctx, txID, reason)
	return err
}

// GetDeposit returns one of the owner's deposits with its expiry flag.
func (s *DepositServiceImpl) GetDeposit(ctx context.Context, ownerID, txID uuid.UUID) (*ports.DepositView, error) {
	txn, err := s.txRepo.GetByID(ctx, txID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get deposit: %w", err))
	}
	if txn == nil || txn.Type != domain.TransactionTypeDeposit || txn.OwnerID != ownerID {
		return nil, apperror.ErrNotFound("Deposit")
	}
	return &ports.DepositView{Transaction: txn, IsExpired: txn.IsExpired(time.Now().UTC())}, nil
}

// resolveAccount prefers the owner's saved bank info and falls back to the
// platform account.
func (s *DepositServiceImpl) resolveAccount(ctx context.Context, ownerID uuid.UUID) (domain.BankAccount, error) {
	account, err := s.wallets.ResolvePayoutAccount(ctx, ownerID)
	if err != nil {
		s.log.Warn().Err(err).Str("owner_id", ownerID.String()).Msg("payout account lookup failed, using platform account")
	}
	if account != nil {
		return *account, nil
	}
	if s.cfg.DefaultBank.AccountNumber == "" {
		return domain.BankAccount{}, apperror.InternalError(fmt.Errorf("no platform bank account configured"))
	}
	return s.cfg.DefaultBank, nil
}

func transferInstructions(account domain.BankAccount, amount int64, code string) string {
	return fmt.Sprintf(
		"Transfer exactly %d VND to %s account %s (%s) with the transfer note %s",
		amount, account.BankCode, account.AccountNumber, account.AccountName, code,
	)
}
