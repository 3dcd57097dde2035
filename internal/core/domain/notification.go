package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType names a user-facing message.
type NotificationType string

const (
	NotificationDepositCompleted   NotificationType = "DEPOSIT_COMPLETED"
	NotificationPaymentCompleted   NotificationType = "PAYMENT_COMPLETED"
	NotificationOrderStatusChanged NotificationType = "ORDER_STATUS_CHANGED"
	NotificationRevenueReleased    NotificationType = "REVENUE_RELEASED"
	NotificationRefundIssued       NotificationType = "REFUND_ISSUED"
)

// Notification is a fire-and-forget message for the notification service.
type Notification struct {
	ID        uuid.UUID              `json:"id"`
	OwnerID   uuid.UUID              `json:"owner_id"`
	Type      NotificationType       `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}
