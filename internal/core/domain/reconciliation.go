package domain

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Provider identifies the sender of an inbound notification.
type Provider string

const (
	ProviderBank  Provider = "bank"
	ProviderVNPay Provider = "vnpay"
	ProviderTest  Provider = "test"
)

// EventKind says which orchestrator a notification belongs to.
type EventKind string

const (
	EventKindDeposit EventKind = "deposit"
	EventKindPayment EventKind = "payment"
	EventKindUnknown EventKind = "unknown"
)

const (
	depositCodePrefix = "WLT"
	orderCodePrefix   = "ORD"
)

var referencePattern = regexp.MustCompile(`(?i)(WLT|ORD)([0-9a-f]{32})`)

// ReconciliationEvent is a provider notification normalized for matching.
// TargetID is the deposit transaction id or the order id, depending on Kind;
// for VNPay it is the payment id.
type ReconciliationEvent struct {
	Provider    Provider
	Kind        EventKind
	TargetID    uuid.UUID
	Reference   string // provider's own id, used for duplicate detection
	ExternalRef string
	Code        string // structured payment code, if the provider extracted one
	Content     string
	Amount      int64
	Success     bool
	Outgoing    bool
}

// DepositCode is the transfer note printed on a deposit QR code.
func DepositCode(transactionID uuid.UUID) string {
	return depositCodePrefix + compactID(transactionID)
}

// OrderCode is the transfer note printed on a bank-transfer checkout QR code.
func OrderCode(orderID uuid.UUID) string {
	return orderCodePrefix + compactID(orderID)
}

// ParseReference finds a deposit or order code inside free text.
func ParseReference(text string) (EventKind, uuid.UUID, bool) {
	m := referencePattern.FindStringSubmatch(text)
	if m == nil {
		return EventKindUnknown, uuid.Nil, false
	}
	id, err := uuid.Parse(strings.ToLower(m[2]))
	if err != nil {
		return EventKindUnknown, uuid.Nil, false
	}
	if strings.EqualFold(m[1], depositCodePrefix) {
		return EventKindDeposit, id, true
	}
	return EventKindPayment, id, true
}

func compactID(id uuid.UUID) string {
	return strings.ReplaceAll(id.String(), "-", "")
}
