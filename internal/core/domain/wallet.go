package domain

import (
	"time"

	"github.com/google/uuid"
)

// PayoutInfo is the bank account an owner receives transfers on.
type PayoutInfo struct {
	BankCode         string `json:"bank_code"`
	AccountName      string `json:"account_name"`
	AccountNumberEnc string `json:"-"` // AES-256-GCM encrypted, never expose
	AccountLast4     string `json:"account_last4"`
}

// IsComplete returns true if the descriptor can be printed on a QR code.
func (p *PayoutInfo) IsComplete() bool {
	return p != nil && p.BankCode != "" && p.AccountName != "" && p.AccountNumberEnc != ""
}

// WalletBalance is the single balance record of an owner. An owner may be a
// buyer, a shop payee, or both.
type WalletBalance struct {
	ID                uuid.UUID   `json:"id"`
	OwnerID           uuid.UUID   `json:"owner_id"`
	Balance           int64       `json:"balance"` // Minor units (VND), never negative
	PayoutInfo        *PayoutInfo `json:"payout_info,omitempty"`
	LastTransactionAt *time.Time  `json:"last_transaction_at,omitempty"`
	IsVerified        bool        `json:"is_verified"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// BankAccount is a resolved, printable payout descriptor.
type BankAccount struct {
	BankCode      string `json:"bank_code"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}
