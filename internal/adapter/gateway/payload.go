package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports"

	"github.com/google/uuid"
)

var (
	// ErrUnknownPayload is returned for bodies that carry no provider markers.
	ErrUnknownPayload = errors.New("unrecognized notification payload")
	// ErrUnsignedVNPay is returned when VNPay parameters arrive on a receiver
	// that cannot verify them.
	ErrUnsignedVNPay = errors.New("vnpay parameters must be delivered to the signed callback endpoint")
)

// Payload is a provider notification body.
type Payload interface {
	Event() domain.ReconciliationEvent
}

// BankTransferPayload is the balance-change notification posted by the
// bank-feed integration.
type BankTransferPayload struct {
	ID              int64  `json:"id"`
	Gateway         string `json:"gateway"`
	TransactionDate string `json:"transactionDate"`
	AccountNumber   string `json:"accountNumber"`
	Code            string `json:"code"`
	Content         string `json:"content"`
	TransferType    string `json:"transferType"`
	TransferAmount  int64  `json:"transferAmount"`
	Accumulated     int64  `json:"accumulated"`
	SubAccount      string `json:"subAccount"`
	ReferenceCode   string `json:"referenceCode"`
	Description     string `json:"description"`
}

// Event normalizes the bank notification.
func (p BankTransferPayload) Event() domain.ReconciliationEvent {
	content := p.Content
	if content == "" {
		content = p.Description
	} else if p.Description != "" && !strings.Contains(p.Description, content) {
		content = content + " " + p.Description
	}

	reference := strconv.FormatInt(p.ID, 10)
	if p.ID == 0 {
		reference = p.ReferenceCode
	}

	return domain.ReconciliationEvent{
		Provider:    domain.ProviderBank,
		Kind:        domain.EventKindUnknown,
		Reference:   reference,
		ExternalRef: p.ReferenceCode,
		Code:        p.Code,
		Content:     content,
		Amount:      p.TransferAmount,
		Success:     true,
		Outgoing:    strings.EqualFold(p.TransferType, "out"),
	}
}

// VNPayPayload is a set of vnp_* parameters posted as JSON.
type VNPayPayload map[string]string

// Event returns the unverified parameters as an event. Parse never returns
// it for processing; use VNPay.VerifyCallback instead.
func (p VNPayPayload) Event() domain.ReconciliationEvent {
	return domain.ReconciliationEvent{
		Provider:  domain.ProviderVNPay,
		Kind:      domain.EventKindPayment,
		Reference: p["vnp_TransactionNo"],
		Code:      p["vnp_ResponseCode"],
	}
}

// TestPayload drives the confirmation logic from non-production tooling.
type TestPayload struct {
	Kind          string `json:"kind"`
	TransactionID string `json:"transactionId"`
	OrderID       string `json:"orderId"`
	Amount        int64  `json:"amount"`
	Success       *bool  `json:"success"`
	Reference     string `json:"reference"`
	Content       string `json:"content"`
}

// Event normalizes the test notification. Success defaults to true.
func (p TestPayload) Event() domain.ReconciliationEvent {
	ev := domain.ReconciliationEvent{
		Provider:    domain.ProviderTest,
		Kind:        domain.EventKindUnknown,
		Reference:   p.Reference,
		ExternalRef: p.Reference,
		Content:     p.Content,
		Amount:      p.Amount,
		Success:     p.Success == nil || *p.Success,
	}

	switch strings.ToLower(p.Kind) {
	case string(domain.EventKindDeposit):
		if id, err := uuid.Parse(p.TransactionID); err == nil {
			ev.Kind, ev.TargetID = domain.EventKindDeposit, id
		}
	case string(domain.EventKindPayment):
		if id, err := uuid.Parse(p.OrderID); err == nil {
			ev.Kind, ev.TargetID = domain.EventKindPayment, id
		}
	}
	return ev
}

// Parser classifies a raw body by provider markers and decodes it.
type Parser struct {
	provider domain.Provider
}

// NewParser creates a parser for bodies arriving on provider's receiver.
func NewParser(provider domain.Provider) *Parser {
	return &Parser{provider: provider}
}

// Decode classifies raw into one of the payload types.
func Decode(raw []byte) (Payload, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode notification: %w", err)
	}

	switch {
	case has(fields, "vnp_TxnRef", "vnp_SecureHash"):
		var p VNPayPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode vnpay payload: %w", err)
		}
		return p, nil
	case has(fields, "transferType", "transferAmount", "gateway"):
		var p BankTransferPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode bank payload: %w", err)
		}
		return p, nil
	case has(fields, "kind"):
		var p TestPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode test payload: %w", err)
		}
		return p, nil
	default:
		return nil, ErrUnknownPayload
	}
}

// Parse implements ports.NotificationParser.
func (p *Parser) Parse(raw []byte) (domain.ReconciliationEvent, error) {
	payload, err := Decode(raw)
	if err != nil {
		return domain.ReconciliationEvent{}, err
	}

	switch payload.(type) {
	case VNPayPayload:
		return domain.ReconciliationEvent{}, ErrUnsignedVNPay
	case TestPayload:
		if p.provider != domain.ProviderTest {
			return domain.ReconciliationEvent{}, fmt.Errorf("test payload received on %s receiver", p.provider)
		}
	}
	return payload.Event(), nil
}

func has(fields map[string]json.RawMessage, keys ...string) bool {
	for _, k := range keys {
		if _, ok := fields[k]; ok {
			return true
		}
	}
	return false
}

var _ ports.NotificationParser = (*Parser)(nil)
