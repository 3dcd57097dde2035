package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports"
	"marketplace-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// VNPay IPN response codes.
const (
	rspConfirmed        = "00"
	rspNotFound         = "01"
	rspAlreadyConfirmed = "02"
	rspInvalidAmount    = "04"
	rspInvalidSignature = "97"
	rspUnknown          = "99"
)

var errUnmatched = errors.New("no deposit or payment matches the notification")

// ReconciliationServiceImpl implements ports.ReconciliationService.
type ReconciliationServiceImpl struct {
	deposits    ports.DepositService
	checkout    ports.CheckoutService
	txRepo      ports.TransactionRepository
	paymentRepo ports.PaymentRepository
	events      ports.WebhookEventRepository
	parsers     map[domain.Provider]ports.NotificationParser
	redirect    ports.RedirectGateway
	receipts    ports.ReceiptStore
	receiptTTL  time.Duration
	log         zerolog.Logger
}

// NewReconciliationService creates a new ReconciliationServiceImpl.
// receipts may be nil, in which case only the status guards dedupe.
func NewReconciliationService(
	deposits ports.DepositService,
	checkout ports.CheckoutService,
	txRepo ports.TransactionRepository,
	paymentRepo ports.PaymentRepository,
	events ports.WebhookEventRepository,
	parsers map[domain.Provider]ports.NotificationParser,
	redirect ports.RedirectGateway,
	receipts ports.ReceiptStore,
	receiptTTL time.Duration,
	log zerolog.Logger,
) *ReconciliationServiceImpl {
	return &ReconciliationServiceImpl{
		deposits:    deposits,
		checkout:    checkout,
		txRepo:      txRepo,
		paymentRepo: paymentRepo,
		events:      events,
		parsers:     parsers,
		redirect:    redirect,
		receipts:    receipts,
		receiptTTL:  receiptTTL,
		log:         log,
	}
}

// HandleNotification records, classifies and applies a bank or test
// notification. The returned error is informational; receivers ack anyway.
func (s *ReconciliationServiceImpl) HandleNotification(ctx context.Context, provider domain.Provider, raw []byte) error {
	record := s.record(ctx, provider, "", string(raw))

	parser, ok := s.parsers[provider]
	if !ok {
		err := fmt.Errorf("no parser for provider %q", provider)
		s.finish(ctx, record, domain.WebhookEventFailed, err)
		return err
	}

	event, err := parser.Parse(raw)
	if err != nil {
		s.log.Warn().Err(err).Str("provider", string(provider)).Msg("unparseable notification")
		s.finish(ctx, record, domain.WebhookEventFailed, err)
		return err
	}
	if record != nil {
		record.Reference = event.Reference
	}

	if event.Outgoing {
		s.log.Info().Str("provider", string(provider)).Str("reference", event.Reference).Msg("outgoing transfer ignored")
		s.finish(ctx, record, domain.WebhookEventIgnored, nil)
		return nil
	}

	if s.seen(ctx, event) {
		s.log.Info().Str("provider", string(provider)).Str("reference", event.Reference).Msg("duplicate notification, already applied")
		s.finish(ctx, record, domain.WebhookEventIgnored, nil)
		return nil
	}

	kind, targetID, err := s.resolveTarget(ctx, event)
	if err != nil {
		s.finish(ctx, record, domain.WebhookEventFailed, err)
		return err
	}
	if kind == domain.EventKindUnknown {
		s.log.Info().
			Str("provider", string(provider)).
			Str("reference", event.Reference).
			Str("content", event.Content).
			Msg("notification does not reference a deposit or order")
		s.finish(ctx, record, domain.WebhookEventIgnored, errUnmatched)
		return nil
	}

	if err := s.apply(ctx, event, kind, targetID); err != nil {
		s.log.Error().
			Err(err).
			Str("provider", string(provider)).
			Str("kind", string(kind)).
			Str("target_id", targetID.String()).
			Msg("notification could not be applied")
		s.finish(ctx, record, domain.WebhookEventFailed, err)
		return err
	}

	s.markSeen(ctx, event)
	s.finish(ctx, record, domain.WebhookEventProcessed, nil)
	return nil
}

// resolveTarget correlates a structured code with a stored external
// reference first, then falls back to scanning the free text.
func (s *ReconciliationServiceImpl) resolveTarget(ctx context.Context, event domain.ReconciliationEvent) (domain.EventKind, uuid.UUID, error) {
	if event.Code != "" {
		txn, err := s.txRepo.GetByExternalReference(ctx, event.Code)
		if err != nil {
			return domain.EventKindUnknown, uuid.Nil, fmt.Errorf("lookup external reference: %w", err)
		}
		if txn != nil && txn.Type == domain.TransactionTypeDeposit {
			return domain.EventKindDeposit, txn.ID, nil
		}
		if kind, id, ok := domain.ParseReference(event.Code); ok {
			return kind, id, nil
		}
	}

	if event.Kind != "" && event.Kind != domain.EventKindUnknown && event.TargetID != uuid.Nil {
		return event.Kind, event.TargetID, nil
	}

	if kind, id, ok := domain.ParseReference(event.Content); ok {
		return kind, id, nil
	}
	return domain.EventKindUnknown, uuid.Nil, nil
}

func (s *ReconciliationServiceImpl) apply(ctx context.Context, event domain.ReconciliationEvent, kind domain.EventKind, targetID uuid.UUID) error {
	externalRef := event.ExternalRef
	if externalRef == "" {
		externalRef = event.Reference
	}

	switch kind {
	case domain.EventKindDeposit:
		if !event.Success {
			return s.deposits.FailDeposit(ctx, targetID, fmt.Sprintf("%s reported failure", event.Provider))
		}
		res, err := s.deposits.ConfirmDeposit(ctx, ports.ConfirmDepositRequest{
			TransactionID:  targetID,
			ExternalRef:    externalRef,
			ObservedAmount: event.Amount,
			Source:         sourceFor(event.Provider),
		})
		if err != nil {
			return err
		}
		s.log.Info().
			Str("tx_id", targetID.String()).
			Bool("applied", res.Applied).
			Msg("deposit reconciled")
		return nil
	case domain.EventKindPayment:
		if !event.Success {
			s.log.Info().Str("order_id", targetID.String()).Msg("failed transfer for order ignored")
			return nil
		}
		res, err := s.checkout.ConfirmBankTransferFromWebhook(ctx, targetID, externalRef, event.Amount)
		if err != nil {
			return err
		}
		s.log.Info().
			Str("order_id", targetID.String()).
			Bool("applied", res.Applied).
			Msg("bank transfer payment reconciled")
		return nil
	default:
		return errUnmatched
	}
}

// HandleRedirectCallback authenticates the callback before any lookup and
// maps the outcome onto the provider's response codes.
func (s *ReconciliationServiceImpl) HandleRedirectCallback(ctx context.Context, params map[string]string) ports.CallbackAck {
	event, err := s.redirect.VerifyCallback(params)
	if err != nil {
		if apperror.Is(err, apperror.CodeInvalidSignature) {
			s.log.Warn().Str("txn_ref", params["vnp_TxnRef"]).Msg("gateway callback signature mismatch")
			return ports.CallbackAck{RspCode: rspInvalidSignature, Message: "Invalid signature"}
		}
		s.log.Warn().Err(err).Msg("gateway callback rejected")
		return ports.CallbackAck{RspCode: rspUnknown, Message: "Unknown error"}
	}

	record := s.record(ctx, event.Provider, event.Reference, encodeParams(params))

	payment, err := s.paymentRepo.GetByID(ctx, event.TargetID)
	if err != nil {
		s.finish(ctx, record, domain.WebhookEventFailed, err)
		return ports.CallbackAck{RspCode: rspUnknown, Message: "Unknown error"}
	}
	if payment == nil {
		s.finish(ctx, record, domain.WebhookEventIgnored, errUnmatched)
		return ports.CallbackAck{RspCode: rspNotFound, Message: "Order not found"}
	}
	if payment.Amount != event.Amount {
		err := apperror.ErrAmountMismatch(payment.Amount, event.Amount)
		s.finish(ctx, record, domain.WebhookEventFailed, err)
		return ports.CallbackAck{RspCode: rspInvalidAmount, Message: "Invalid amount"}
	}
	if !payment.IsConfirmable() {
		s.finish(ctx, record, domain.WebhookEventIgnored, nil)
		return ports.CallbackAck{RspCode: rspAlreadyConfirmed, Message: "Order already confirmed"}
	}

	_, err = s.checkout.HandleGatewayResult(ctx, payment.ID, ports.GatewayResult{
		Success:           event.Success,
		ProviderReference: event.ExternalRef,
		ResponseCode:      event.Code,
		Amount:            event.Amount,
	})
	if err != nil {
		s.finish(ctx, record, domain.WebhookEventFailed, err)
		switch {
		case apperror.Is(err, apperror.CodeNotFound):
			return ports.CallbackAck{RspCode: rspNotFound, Message: "Order not found"}
		case apperror.Is(err, apperror.CodeStateConflict):
			return ports.CallbackAck{RspCode: rspAlreadyConfirmed, Message: "Order already confirmed"}
		default:
			return ports.CallbackAck{RspCode: rspUnknown, Message: "Unknown error"}
		}
	}

	s.finish(ctx, record, domain.WebhookEventProcessed, nil)
	return ports.CallbackAck{RspCode: rspConfirmed, Message: "Confirm Success"}
}

func (s *ReconciliationServiceImpl) seen(ctx context.Context, event domain.ReconciliationEvent) bool {
	if s.receipts == nil || event.Reference == "" {
		return false
	}
	ok, err := s.receipts.Seen(ctx, event.Provider, event.Reference)
	if err != nil {
		s.log.Warn().Err(err).Msg("receipt lookup failed, falling back to status guards")
		return false
	}
	return ok
}

func (s *ReconciliationServiceImpl) markSeen(ctx context.Context, event domain.ReconciliationEvent) {
	if s.receipts == nil || event.Reference == "" {
		return
	}
	if err := s.receipts.Mark(ctx, event.Provider, event.Reference, s.receiptTTL); err != nil {
		s.log.Warn().Err(err).Str("reference", event.Reference).Msg("failed to store notification receipt")
	}
}

// record persists the inbound notification. Storage failures are logged
// and never block reconciliation.
func (s *ReconciliationServiceImpl) record(ctx context.Context, provider domain.Provider, reference, payload string) *domain.WebhookEvent {
	now := time.Now().UTC()
	event := &domain.WebhookEvent{
		ID:        uuid.New(),
		Provider:  provider,
		Reference: reference,
		Payload:   payload,
		Status:    domain.WebhookEventReceived,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.events.Create(ctx, event); err != nil {
		s.log.Error().Err(err).Str("provider", string(provider)).Msg("failed to record webhook event")
		return nil
	}
	return event
}

func (s *ReconciliationServiceImpl) finish(ctx context.Context, event *domain.WebhookEvent, status domain.WebhookEventStatus, cause error) {
	if event == nil {
		return
	}
	var msg *string
	if cause != nil {
		m := cause.Error()
		msg = &m
	}
	if err := s.events.UpdateStatus(ctx, event.ID, status, msg); err != nil {
		s.log.Error().Err(err).Str("event_id", event.ID.String()).Msg("failed to update webhook event")
	}
}

func sourceFor(p domain.Provider) domain.ConfirmationSource {
	switch p {
	case domain.ProviderTest:
		return domain.SourceTestWebhook
	case domain.ProviderVNPay:
		return domain.SourceVNPay
	default:
		return domain.SourceBankWebhook
	}
}

func encodeParams(params map[string]string) string {
	b, err := json.Marshal(params)
	if err != nil {
		return "{}"
	}
	return string(b)
}

var _ ports.ReconciliationService = (*ReconciliationServiceImpl)(nil)
