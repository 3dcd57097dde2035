package postgres

import (
	"context"
	"fmt"

	"marketplace-wallet/internal/core/domain"

	"github.com/google/uuid"
)

// WebhookEventRepo implements ports.WebhookEventRepository.
type WebhookEventRepo struct {
	pool Pool
}

// NewWebhookEventRepo creates a PostgreSQL-backed WebhookEventRepository.
func NewWebhookEventRepo(pool Pool) *WebhookEventRepo {
	return &WebhookEventRepo{pool: pool}
}

func (r *WebhookEventRepo) Create(ctx context.Context, e *domain.WebhookEvent) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO webhook_events (id, provider, reference, payload, status, error, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.Provider, e.Reference, e.Payload, e.Status, e.Error, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert webhook event: %w", err)
	}
	return nil
}

func (r *WebhookEventRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.WebhookEventStatus, errMsg *string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE webhook_events SET status = $2, error = $3, updated_at = NOW() WHERE id = $1`,
		id, status, errMsg,
	)
	if err != nil {
		return fmt.Errorf("update webhook event: %w", err)
	}
	return nil
}

// ListRecent returns the newest events, optionally filtered by status.
func (r *WebhookEventRepo) ListRecent(ctx context.Context, status *domain.WebhookEventStatus, limit int) ([]domain.WebhookEvent, error) {
	query := `SELECT id, provider, reference, payload, status, error, created_at, updated_at
		FROM webhook_events`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1 ORDER BY created_at DESC LIMIT $2`
		args = append(args, *status, limit)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list webhook events: %w", err)
	}
	defer rows.Close()

	var events []domain.WebhookEvent
	for rows.Next() {
		var e domain.WebhookEvent
		if err := rows.Scan(
			&e.ID, &e.Provider, &e.Reference, &e.Payload, &e.Status, &e.Error,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan webhook event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
