package domain

import (
	"time"

	"github.com/google/uuid"
)

// WebhookEventStatus is the processing outcome of an inbound notification.
type WebhookEventStatus string

const (
	WebhookEventReceived  WebhookEventStatus = "RECEIVED"
	WebhookEventProcessed WebhookEventStatus = "PROCESSED"
	WebhookEventIgnored   WebhookEventStatus = "IGNORED"
	WebhookEventFailed    WebhookEventStatus = "FAILED"
)

// WebhookEvent records an inbound provider notification for operators.
type WebhookEvent struct {
	ID        uuid.UUID          `json:"id"`
	Provider  Provider           `json:"provider"`
	Reference string             `json:"reference"`
	Payload   string             `json:"payload"` // JSON string
	Status    WebhookEventStatus `json:"status"`
	Error     *string            `json:"error,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
