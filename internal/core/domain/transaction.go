package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the kind of money movement.
type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "DEPOSIT"
	TransactionTypeWithdraw TransactionType = "WITHDRAW"
	TransactionTypePayment  TransactionType = "PAYMENT"
	TransactionTypeRefund   TransactionType = "REFUND"
	TransactionTypeRevenue  TransactionType = "REVENUE"
)

// TransactionStatus represents the lifecycle state of a transaction.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

// TransactionMetadata is the JSONB audit payload attached to a transaction.
// It is the only part of a COMPLETED record that may still change.
type TransactionMetadata struct {
	OriginalAmount     *int64 `json:"original_amount,omitempty"`
	ClampedAmount      *int64 `json:"clamped_amount,omitempty"`
	TestMode           bool   `json:"test_mode,omitempty"`
	PaymentCode        string `json:"payment_code,omitempty"`
	QRCode             string `json:"qr_code,omitempty"`
	ProviderReference  string `json:"provider_reference,omitempty"`
	ConfirmationSource string `json:"confirmation_source,omitempty"`
	ObservedAmount     *int64 `json:"observed_amount,omitempty"`
	FailureReason      string `json:"failure_reason,omitempty"`
}

// WalletTransaction is an append-only ledger entry. Amount is signed:
// credits are positive, debits negative.
type WalletTransaction struct {
	ID                uuid.UUID           `json:"id"`
	OwnerID           uuid.UUID           `json:"owner_id"`
	Type              TransactionType     `json:"type"`
	Amount            int64               `json:"amount"`
	Status            TransactionStatus   `json:"status"`
	RelatedOrderID    *uuid.UUID          `json:"related_order_id,omitempty"`
	RelatedPaymentID  *uuid.UUID          `json:"related_payment_id,omitempty"`
	ExternalReference *string             `json:"external_reference,omitempty"`
	Description       string              `json:"description"`
	Metadata          TransactionMetadata `json:"metadata"`
	CreatedAt         time.Time           `json:"created_at"`
	CompletedAt       *time.Time          `json:"completed_at,omitempty"`
	ExpiresAt         *time.Time          `json:"expires_at,omitempty"` // advisory, deposits only
}

// IsExpired checks the advisory expiry. It never changes the status.
func (t *WalletTransaction) IsExpired(now time.Time) bool {
	return t.Status == TransactionStatusPending && t.ExpiresAt != nil && now.After(*t.ExpiresAt)
}

// IsTerminal returns true if the transaction is in a final state.
func (t *WalletTransaction) IsTerminal() bool {
	return t.Status == TransactionStatusCompleted || t.Status == TransactionStatusFailed
}

// TxMeta describes the ledger entry a credit or debit appends.
type TxMeta struct {
	Type              TransactionType
	RelatedOrderID    *uuid.UUID
	RelatedPaymentID  *uuid.UUID
	ExternalReference *string
	Description       string
	Metadata          TransactionMetadata
}

// Completion carries the facts recorded when a pending transaction is confirmed.
type Completion struct {
	ExternalReference string
	ObservedAmount    *int64
	Source            ConfirmationSource
}

// ConfirmationSource names the channel that confirmed a deposit or payment.
type ConfirmationSource string

const (
	SourceBankWebhook ConfirmationSource = "bank_webhook"
	SourceVNPay       ConfirmationSource = "vnpay_ipn"
	SourceTestWebhook ConfirmationSource = "test_webhook"
	SourceManual      ConfirmationSource = "manual"
	SourceWalletCLI   ConfirmationSource = "walletctl"
)

// Int64Ptr returns a pointer to v.
func Int64Ptr(v int64) *int64 {
	return &v
}
