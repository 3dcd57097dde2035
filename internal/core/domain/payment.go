package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is how a buyer settles an order.
type PaymentMethod string

const (
	PaymentMethodCOD          PaymentMethod = "COD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodWallet       PaymentMethod = "WALLET"
	PaymentMethodVNPay        PaymentMethod = "VNPAY"
)

// IsValid reports whether m is a supported method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodBankTransfer, PaymentMethodWallet, PaymentMethodVNPay:
		return true
	}
	return false
}

// PaymentStatus represents the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusCompleted  PaymentStatus = "COMPLETED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
	PaymentStatusCancelled  PaymentStatus = "CANCELLED"
)

// GatewayResponse is the JSONB blob stored alongside a payment.
type GatewayResponse struct {
	OriginalAmount    int64  `json:"original_amount,omitempty"`
	ClampedAmount     *int64 `json:"clamped_amount,omitempty"`
	PaymentCode       string `json:"payment_code,omitempty"`
	PaymentURL        string `json:"payment_url,omitempty"`
	ProviderReference string `json:"provider_reference,omitempty"`
	ResponseCode      string `json:"response_code,omitempty"`
	ConfirmedBy       string `json:"confirmed_by,omitempty"`
	FailureReason     string `json:"failure_reason,omitempty"`
}

// Payment binds a settlement attempt to an order.
type Payment struct {
	ID                  uuid.UUID       `json:"id"`
	OrderID             uuid.UUID       `json:"order_id"`
	OwnerID             uuid.UUID       `json:"owner_id"`
	Amount              int64           `json:"amount"`
	Method              PaymentMethod   `json:"method"`
	Status              PaymentStatus   `json:"status"`
	QRCode              *string         `json:"qr_code,omitempty"`
	TransactionID       *string         `json:"transaction_id,omitempty"` // provider reference
	WalletTransactionID *uuid.UUID      `json:"wallet_transaction_id,omitempty"`
	ExpiresAt           *time.Time      `json:"expires_at,omitempty"`
	GatewayResponse     GatewayResponse `json:"gateway_response"`
	PaidAt              *time.Time      `json:"paid_at,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// IsConfirmable returns true while the payment may still be completed.
func (p *Payment) IsConfirmable() bool {
	return p.Status == PaymentStatusPending || p.Status == PaymentStatusProcessing
}

// IsActive returns true if a new checkout must reuse this payment unchanged.
func (p *Payment) IsActive() bool {
	return p.Status == PaymentStatusCompleted || p.IsConfirmable()
}

// IsRetryable returns true if the payment may be reopened with the same method.
func (p *Payment) IsRetryable() bool {
	return p.Status == PaymentStatusFailed || p.Status == PaymentStatusCancelled
}

// IsExpired checks the advisory expiry. It never changes the status.
func (p *Payment) IsExpired(now time.Time) bool {
	return p.Status == PaymentStatusPending && p.ExpiresAt != nil && now.After(*p.ExpiresAt)
}
