package service

import (
	"context"
	"time"

	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService creates a new audit service.
// If repo is nil, audit logs are only written to the logger.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Log records an audit entry asynchronously (fire-and-forget).
func (s *auditService) Log(_ context.Context, entry *domain.AuditLog) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	go func() {
		ev := s.log.Info().
			Str("action", string(entry.Action)).
			Str("resource_type", entry.ResourceType).
			Str("resource_id", entry.ResourceID).
			Str("ip", entry.IPAddress)
		if entry.OwnerID != nil {
			ev = ev.Str("owner_id", entry.OwnerID.String())
		}
		ev.Msg("audit")

		if s.repo != nil {
			if err := s.repo.Create(context.Background(), entry); err != nil {
				s.log.Warn().Err(err).Str("action", string(entry.Action)).Msg("failed to persist audit log")
			}
		}
	}()
}
