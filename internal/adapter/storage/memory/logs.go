package memory

import (
	"context"
	"fmt"
	"time"

	"marketplace-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// IdempotencyRepo implements ports.IdempotencyRepository.
type IdempotencyRepo struct {
	s *Store
}

func (r *IdempotencyRepo) Create(_ context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.idempotency[log.Key]; exists {
		return fmt.Errorf("insert idempotency log: %w", domain.ErrDuplicate)
	}
	cp := *log
	r.s.idempotency[log.Key] = &cp
	record(tx, func() { delete(r.s.idempotency, log.Key) })
	return nil
}

func (r *IdempotencyRepo) Get(_ context.Context, key string) (*domain.IdempotencyLog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	log, ok := r.s.idempotency[key]
	if !ok {
		return nil, nil
	}
	cp := *log
	return &cp, nil
}

// WebhookEventRepo implements ports.WebhookEventRepository.
type WebhookEventRepo struct {
	s *Store
}

func (r *WebhookEventRepo) Create(_ context.Context, e *domain.WebhookEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cp := *e
	r.s.events[e.ID] = &cp
	r.s.eventOrder = append(r.s.eventOrder, e.ID)
	return nil
}

func (r *WebhookEventRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.WebhookEventStatus, errMsg *string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.events[id]
	if !ok {
		return fmt.Errorf("webhook event not found: %s", id)
	}
	e.Status = status
	e.Error = errMsg
	e.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *WebhookEventRepo) ListRecent(_ context.Context, status *domain.WebhookEventStatus, limit int) ([]domain.WebhookEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []domain.WebhookEvent
	for i := len(r.s.eventOrder) - 1; i >= 0 && len(out) < limit; i-- {
		e := r.s.events[r.s.eventOrder[i]]
		if status != nil && e.Status != *status {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	s *Store
}

func (r *AuditRepo) Create(_ context.Context, entry *domain.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.audits = append(r.s.audits, *entry)
	return nil
}

// Entries returns a snapshot of the audit log.
func (r *AuditRepo) Entries() []domain.AuditLog {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]domain.AuditLog(nil), r.s.audits...)
}
