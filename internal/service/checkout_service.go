package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports"
	"marketplace-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CheckoutConfig holds the checkout settings.
type CheckoutConfig struct {
	Policy             domain.AmountPolicy
	Bank               domain.BankAccount
	BankTransferExpiry time.Duration
	RedirectExpiry     time.Duration
}

// CheckoutServiceImpl implements ports.CheckoutService.
type CheckoutServiceImpl struct {
	orderRepo   ports.OrderRepository
	paymentRepo ports.PaymentRepository
	ledger      ports.LedgerService
	transactor  ports.DBTransactor
	qr          ports.QRGenerator
	redirect    ports.RedirectGateway
	notifier    ports.NotificationService
	cfg         CheckoutConfig
	log         zerolog.Logger
}

// NewCheckoutService creates a new CheckoutServiceImpl.
func NewCheckoutService(
	orderRepo ports.OrderRepository,
	paymentRepo ports.PaymentRepository,
	ledger ports.LedgerService,
	transactor ports.DBTransactor,
	qr ports.QRGenerator,
	redirect ports.RedirectGateway,
	notifier ports.NotificationService,
	cfg CheckoutConfig,
	log zerolog.Logger,
) *CheckoutServiceImpl {
	return &CheckoutServiceImpl{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		ledger:      ledger,
		transactor:  transactor,
		qr:          qr,
		redirect:    redirect,
		notifier:    notifier,
		cfg:         cfg,
		log:         log,
	}
}

// CreateCheckout creates, reuses or reopens the payment of an order and
// dispatches it by method.
func (s *CheckoutServiceImpl) CreateCheckout(ctx context.Context, req ports.CheckoutRequest) (*ports.CheckoutResult, error) {
	if !req.Method.IsValid() {
		return nil, apperror.Validation(fmt.Sprintf("Unsupported payment method: %s", req.Method))
	}

	order, err := s.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("Order")
	}
	if order.BuyerID != req.OwnerID {
		return nil, apperror.ErrForbidden()
	}
	if order.Status == domain.OrderStatusCancelled {
		return nil, apperror.StateConflict("Order is CANCELLED")
	}

	existing, err := s.paymentRepo.GetLatestByOrderID(ctx, order.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get latest payment: %w", err))
	}
	if existing != nil && existing.IsActive() {
		return s.describe(existing, true), nil
	}
	if order.IsPay {
		return nil, apperror.StateConflict("Order is already paid")
	}
	if existing != nil && existing.IsRetryable() && existing.Method == req.Method && isAsyncMethod(req.Method) {
		return s.reopen(ctx, order, existing, req)
	}

	switch req.Method {
	case domain.PaymentMethodCOD:
		return s.checkoutCOD(ctx, order)
	case domain.PaymentMethodWallet:
		return s.checkoutWallet(ctx, order)
	case domain.PaymentMethodBankTransfer:
		return s.checkoutBankTransfer(ctx, order)
	default:
		return s.checkoutRedirect(ctx, order, req)
	}
}

func (s *CheckoutServiceImpl) checkoutCOD(ctx context.Context, order *domain.Order) (*ports.CheckoutResult, error) {
	now := time.Now().UTC()
	payment := s.newPayment(order, domain.PaymentMethodCOD, now)
	payment.Status = domain.PaymentStatusCompleted
	payment.PaidAt = &now

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.paymentRepo.Create(ctx, dbTx, payment); err != nil {
		return s.handleCreateError(ctx, order, err)
	}
	if err := s.orderRepo.MarkPaid(ctx, dbTx, order.ID, order.StatusAfterPayment()); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark order paid: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.logPayment(payment, "cash-on-delivery checkout completed")
	return s.describe(payment, false), nil
}

// checkoutWallet debits the buyer, appends the PAYMENT transaction and
// stores the payment in one DB transaction. Insufficient funds roll
// everything back.
func (s *CheckoutServiceImpl) checkoutWallet(ctx context.Context, order *domain.Order) (*ports.CheckoutResult, error) {
	now := time.Now().UTC()
	payment := s.newPayment(order, domain.PaymentMethodWallet, now)

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	txn, err := s.ledger.DebitTx(ctx, dbTx, order.BuyerID, order.TotalAmount, domain.TxMeta{
		Type:             domain.TransactionTypePayment,
		RelatedOrderID:   &order.ID,
		RelatedPaymentID: &payment.ID,
		Description:      fmt.Sprintf("Payment for order %s", order.ID),
	})
	if err != nil {
		return nil, err
	}

	payment.Status = domain.PaymentStatusCompleted
	payment.WalletTransactionID = &txn.ID
	payment.PaidAt = &now

	if err := s.paymentRepo.Create(ctx, dbTx, payment); err != nil {
		return s.handleCreateError(ctx, order, err)
	}
	if err := s.orderRepo.MarkPaid(ctx, dbTx, order.ID, order.StatusAfterPayment()); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark order paid: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.logPayment(payment, "wallet checkout completed")
	s.notifyPaid(ctx, payment)
	return s.describe(payment, false), nil
}

func (s *CheckoutServiceImpl) checkoutBankTransfer(ctx context.Context, order *domain.Order) (*ports.CheckoutResult, error) {
	now := time.Now().UTC()
	payment := s.newPayment(order, domain.PaymentMethodBankTransfer, now)
	s.prepareBankTransfer(payment, now)

	if err := s.paymentRepo.Create(ctx, nil, payment); err != nil {
		return s.handleCreateError(ctx, order, err)
	}

	s.logPayment(payment, "bank transfer checkout created")
	return s.describe(payment, false), nil
}

func (s *CheckoutServiceImpl) checkoutRedirect(ctx context.Context, order *domain.Order, req ports.CheckoutRequest) (*ports.CheckoutResult, error) {
	now := time.Now().UTC()
	payment := s.newPayment(order, req.Method, now)
	if err := s.prepareRedirect(payment, req, now); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Create(ctx, nil, payment); err != nil {
		return s.handleCreateError(ctx, order, err)
	}

	s.logPayment(payment, "gateway checkout created")
	return s.describe(payment, false), nil
}

// reopen puts a FAILED or CANCELLED payment back to PENDING with a fresh
// descriptor so the buyer can retry with the same method.
func (s *CheckoutServiceImpl) reopen(ctx context.Context, order *domain.Order, payment *domain.Payment, req ports.CheckoutRequest) (*ports.CheckoutResult, error) {
	now := time.Now().UTC()
	payment.Amount = order.TotalAmount
	payment.Status = domain.PaymentStatusPending
	payment.GatewayResponse = domain.GatewayResponse{}

	if payment.Method == domain.PaymentMethodBankTransfer {
		s.prepareBankTransfer(payment, now)
	} else if err := s.prepareRedirect(payment, req, now); err != nil {
		return nil, err
	}

	ok, err := s.paymentRepo.Reopen(ctx, payment)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return s.handleCreateError(ctx, order, err)
		}
		return nil, apperror.InternalError(fmt.Errorf("reopen payment: %w", err))
	}
	if !ok {
		current, err := s.paymentRepo.GetByID(ctx, payment.ID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("reload payment: %w", err))
		}
		if current == nil {
			return nil, apperror.ErrNotFound("Payment")
		}
		return s.describe(current, true), nil
	}

	s.logPayment(payment, "payment reopened for retry")
	return s.describe(payment, false), nil
}

func (s *CheckoutServiceImpl) prepareBankTransfer(payment *domain.Payment, now time.Time) {
	code := domain.OrderCode(payment.OrderID)
	clamped := s.cfg.Policy.Clamp(payment.Amount)
	qr := s.qr.Generate(s.cfg.Bank, clamped, code)
	expiresAt := now.Add(s.cfg.BankTransferExpiry)

	payment.QRCode = &qr
	payment.ExpiresAt = &expiresAt
	payment.GatewayResponse.OriginalAmount = payment.Amount
	payment.GatewayResponse.ClampedAmount = &clamped
	payment.GatewayResponse.PaymentCode = code
}

func (s *CheckoutServiceImpl) prepareRedirect(payment *domain.Payment, req ports.CheckoutRequest, now time.Time) error {
	returnURL := ""
	if req.ReturnURL != nil {
		returnURL = *req.ReturnURL
	}

	url, err := s.redirect.PaymentURL(ports.RedirectRequest{
		PaymentID: payment.ID,
		Amount:    payment.Amount,
		OrderInfo: fmt.Sprintf("Thanh toan don hang %s", payment.OrderID),
		ReturnURL: returnURL,
		ClientIP:  req.ClientIP,
		CreatedAt: now,
	})
	if err != nil {
		return apperror.InternalError(fmt.Errorf("build payment url: %w", err))
	}

	expiresAt := now.Add(s.cfg.RedirectExpiry)
	payment.ExpiresAt = &expiresAt
	payment.GatewayResponse.OriginalAmount = payment.Amount
	payment.GatewayResponse.PaymentURL = url
	return nil
}

// handleCreateError turns a lost race for the order's single active payment
// into a reuse of the winner.
func (s *CheckoutServiceImpl) handleCreateError(ctx context.Context, order *domain.Order, err error) (*ports.CheckoutResult, error) {
	if !errors.Is(err, domain.ErrDuplicate) {
		return nil, apperror.InternalError(fmt.Errorf("create payment: %w", err))
	}

	winner, getErr := s.paymentRepo.GetLatestByOrderID(ctx, order.ID)
	if getErr != nil {
		return nil, apperror.InternalError(fmt.Errorf("get latest payment: %w", getErr))
	}
	if winner == nil {
		return nil, apperror.InternalError(fmt.Errorf("create payment: %w", err))
	}
	return s.describe(winner, true), nil
}

// GetPaymentStatus returns the latest payment of an order. A PENDING bank
// transfer whose QR code went missing gets it regenerated with the same
// amount and transfer note.
func (s *CheckoutServiceImpl) GetPaymentStatus(ctx context.Context, ownerID, orderID uuid.UUID) (*ports.PaymentStatusResult, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("Order")
	}
	if order.BuyerID != ownerID {
		return nil, apperror.ErrForbidden()
	}

	payment, err := s.paymentRepo.GetLatestByOrderID(ctx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get latest payment: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrNotFound("Payment")
	}

	if payment.Method == domain.PaymentMethodBankTransfer &&
		payment.Status == domain.PaymentStatusPending &&
		(payment.QRCode == nil || *payment.QRCode == "") {
		s.healQRCode(ctx, payment)
	}

	return &ports.PaymentStatusResult{
		Payment:   payment,
		IsExpired: payment.IsExpired(time.Now().UTC()),
	}, nil
}

func (s *CheckoutServiceImpl) healQRCode(ctx context.Context, payment *domain.Payment) {
	amount := s.cfg.Policy.Expected(payment.Amount, payment.GatewayResponse.ClampedAmount)
	code := payment.GatewayResponse.PaymentCode
	if code == "" {
		code = domain.OrderCode(payment.OrderID)
	}

	qr := s.qr.Generate(s.cfg.Bank, amount, code)
	if err := s.paymentRepo.UpdateQRCode(ctx, payment.ID, qr); err != nil {
		s.log.Warn().Err(err).Str("payment_id", payment.ID.String()).Msg("failed to persist regenerated qr code")
	}
	payment.QRCode = &qr
}

// ConfirmBankTransferFromWebhook completes the order's latest bank-transfer
// payment after a clamp-aware amount check.
func (s *CheckoutServiceImpl) ConfirmBankTransferFromWebhook(ctx context.Context, orderID uuid.UUID, externalRef string, observedAmount int64) (*ports.PaymentConfirmResult, error) {
	payment, err := s.paymentRepo.GetLatestByOrderAndMethod(ctx, orderID, domain.PaymentMethodBankTransfer)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get bank transfer payment: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrNotFound("Payment")
	}
	if payment.Status == domain.PaymentStatusCompleted {
		return &ports.PaymentConfirmResult{Payment: payment, Applied: false}, nil
	}
	if !payment.IsConfirmable() {
		return nil, apperror.StateConflict(fmt.Sprintf("Payment is %s and cannot be confirmed", payment.Status))
	}

	expected := s.cfg.Policy.Expected(payment.Amount, payment.GatewayResponse.ClampedAmount)
	if !s.cfg.Policy.Accepts(expected, observedAmount) {
		s.log.Warn().
			Str("payment_id", payment.ID.String()).
			Int64("expected", expected).
			Int64("observed", observedAmount).
			Msg("bank transfer amount mismatch")
		return nil, apperror.ErrAmountMismatch(expected, observedAmount)
	}

	var ref *string
	if externalRef != "" {
		ref = &externalRef
	}
	return s.complete(ctx, payment, ref, domain.GatewayResponse{
		ProviderReference: externalRef,
		ConfirmedBy:       string(domain.SourceBankWebhook),
	})
}

// ConfirmPayment is the manual admin override. It races safely with the
// webhook path: whichever commits first wins and the other no-ops.
func (s *CheckoutServiceImpl) ConfirmPayment(ctx context.Context, paymentID uuid.UUID, actor ports.Principal) (*ports.PaymentConfirmResult, error) {
	if !actor.IsAdmin() {
		return nil, apperror.ErrForbidden()
	}

	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get payment: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrNotFound("Payment")
	}
	if payment.Status == domain.PaymentStatusCompleted {
		return &ports.PaymentConfirmResult{Payment: payment, Applied: false}, nil
	}
	if !payment.IsConfirmable() {
		return nil, apperror.StateConflict(fmt.Sprintf("Payment is %s and cannot be confirmed", payment.Status))
	}

	return s.complete(ctx, payment, nil, domain.GatewayResponse{
		ConfirmedBy: fmt.Sprintf("%s:%s", domain.SourceManual, actor.OwnerID),
	})
}

// HandleGatewayResult applies a verified redirect-gateway outcome.
func (s *CheckoutServiceImpl) HandleGatewayResult(ctx context.Context, paymentID uuid.UUID, result ports.GatewayResult) (*ports.PaymentConfirmResult, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get payment: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrNotFound("Payment")
	}
	if payment.Status == domain.PaymentStatusCompleted {
		return &ports.PaymentConfirmResult{Payment: payment, Applied: false}, nil
	}
	if !payment.IsConfirmable() {
		return nil, apperror.StateConflict(fmt.Sprintf("Payment is %s and cannot be confirmed", payment.Status))
	}

	gw := domain.GatewayResponse{
		ProviderReference: result.ProviderReference,
		ResponseCode:      result.ResponseCode,
	}

	if !result.Success {
		gw.FailureReason = "gateway reported failure"
		ok, err := s.paymentRepo.MarkFailed(ctx, payment.ID, gw)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("mark payment failed: %w", err))
		}
		if ok {
			payment.Status = domain.PaymentStatusFailed
		}
		s.log.Info().
			Str("payment_id", payment.ID.String()).
			Str("response_code", result.ResponseCode).
			Bool("applied", ok).
			Msg("gateway payment failed")
		return &ports.PaymentConfirmResult{Payment: payment, Applied: ok}, nil
	}

	if result.Amount != payment.Amount {
		return nil, apperror.ErrAmountMismatch(payment.Amount, result.Amount)
	}

	gw.ConfirmedBy = string(domain.SourceVNPay)
	var ref *string
	if result.ProviderReference != "" {
		ref = &result.ProviderReference
	}
	return s.complete(ctx, payment, ref, gw)
}

// complete flips a confirmable payment to COMPLETED and marks the order
// paid in one DB transaction.
func (s *CheckoutServiceImpl) complete(ctx context.Context, payment *domain.Payment, providerRef *string, gw domain.GatewayResponse) (*ports.PaymentConfirmResult, error) {
	order, err := s.orderRepo.GetByID(ctx, payment.OrderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("Order")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	updated, err := s.paymentRepo.MarkCompleted(ctx, dbTx, payment.ID, providerRef, time.Now().UTC(), gw)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark payment completed: %w", err))
	}
	if updated == nil {
		return s.reloadAfterLostRace(ctx, payment.ID)
	}

	if err := s.orderRepo.MarkPaid(ctx, dbTx, order.ID, order.StatusAfterPayment()); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark order paid: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.logPayment(updated, "payment confirmed")
	s.notifyPaid(ctx, updated)
	return &ports.PaymentConfirmResult{Payment: updated, Applied: true}, nil
}

func (s *CheckoutServiceImpl) reloadAfterLostRace(ctx context.Context, id uuid.UUID) (*ports.PaymentConfirmResult, error) {
	current, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("reload payment: %w", err))
	}
	if current == nil {
		return nil, apperror.ErrNotFound("Payment")
	}
	if current.Status == domain.PaymentStatusCompleted {
		return &ports.PaymentConfirmResult{Payment: current, Applied: false}, nil
	}
	return nil, apperror.StateConflict(fmt.Sprintf("Payment is %s and cannot be confirmed", current.Status))
}

func (s *CheckoutServiceImpl) newPayment(order *domain.Order, method domain.PaymentMethod, now time.Time) *domain.Payment {
	return &domain.Payment{
		ID:        uuid.New(),
		OrderID:   order.ID,
		OwnerID:   order.BuyerID,
		Amount:    order.TotalAmount,
		Method:    method,
		Status:    domain.PaymentStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *CheckoutServiceImpl) describe(payment *domain.Payment, reused bool) *ports.CheckoutResult {
	res := &ports.CheckoutResult{Payment: payment, Reused: reused}

	switch payment.Method {
	case domain.PaymentMethodBankTransfer:
		if payment.QRCode != nil {
			res.QRCode = *payment.QRCode
		}
		bank := s.cfg.Bank
		res.BankAccount = &bank
		amount := s.cfg.Policy.Expected(payment.Amount, payment.GatewayResponse.ClampedAmount)
		code := payment.GatewayResponse.PaymentCode
		if code == "" {
			code = domain.OrderCode(payment.OrderID)
		}
		res.Instructions = transferInstructions(bank, amount, code)
	case domain.PaymentMethodVNPay:
		res.PaymentURL = payment.GatewayResponse.PaymentURL
	case domain.PaymentMethodCOD:
		res.Instructions = "Pay the courier on delivery"
	}
	return res
}

func (s *CheckoutServiceImpl) notifyPaid(ctx context.Context, payment *domain.Payment) {
	s.notifier.Notify(ctx, domain.Notification{
		OwnerID: payment.OwnerID,
		Type:    domain.NotificationPaymentCompleted,
		Title:   "Payment successful",
		Message: fmt.Sprintf("Your payment of %d VND for order %s was received", payment.Amount, payment.OrderID),
		Data: map[string]interface{}{
			"orderId":   payment.OrderID.String(),
			"paymentId": payment.ID.String(),
			"method":    string(payment.Method),
		},
	})
}

func (s *CheckoutServiceImpl) logPayment(payment *domain.Payment, msg string) {
	s.log.Info().
		Str("payment_id", payment.ID.String()).
		Str("order_id", payment.OrderID.String()).
		Str("method", string(payment.Method)).
		Str("status", string(payment.Status)).
		Int64("amount", payment.Amount).
		Msg(msg)
}

func isAsyncMethod(m domain.PaymentMethod) bool {
	return m == domain.PaymentMethodBankTransfer || m == domain.PaymentMethodVNPay
}

var _ ports.CheckoutService = (*CheckoutServiceImpl)(nil)
