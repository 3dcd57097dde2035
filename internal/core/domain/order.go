package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the marketplace order lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipping   OrderStatus = "SHIPPING"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// IsValid reports whether s is a known order status.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipping, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is owned by the marketplace; this service reads it and writes only
// the payment flag, the status and the escrow guard.
type Order struct {
	ID                  uuid.UUID   `json:"id"`
	BuyerID             uuid.UUID   `json:"buyer_id"`
	ShopID              uuid.UUID   `json:"shop_id"`
	TotalAmount         int64       `json:"total_amount"`
	Status              OrderStatus `json:"status"`
	IsPay               bool        `json:"is_pay"`
	WalletTransferred   bool        `json:"wallet_transferred"`
	WalletTransferredAt *time.Time  `json:"wallet_transferred_at,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// StatusAfterPayment is the status an order moves to once paid.
// Only a PENDING order advances; later statuses are left alone.
func (o *Order) StatusAfterPayment() OrderStatus {
	if o.Status == OrderStatusPending {
		return OrderStatusConfirmed
	}
	return o.Status
}

// Shop resolves who receives an order's revenue.
type Shop struct {
	ID           uuid.UUID  `json:"id"`
	OwnerID      uuid.UUID  `json:"owner_id"`
	PayeeOwnerID *uuid.UUID `json:"payee_owner_id,omitempty"`
	Name         string     `json:"name"`
}

// PayeeID returns the wallet owner credited with the shop's revenue.
func (s *Shop) PayeeID() uuid.UUID {
	if s.PayeeOwnerID != nil && *s.PayeeOwnerID != uuid.Nil {
		return *s.PayeeOwnerID
	}
	return s.OwnerID
}
