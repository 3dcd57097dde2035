package postgres

import (
	"context"
	"fmt"

	"marketplace-wallet/internal/core/domain"
)

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	pool Pool
}

// NewAuditRepo creates a PostgreSQL-backed AuditRepository.
func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

func (r *AuditRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_logs (id, owner_id, action, resource_type, resource_id, details, ip_address, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.OwnerID, entry.Action, entry.ResourceType,
		entry.ResourceID, entry.Details, entry.IPAddress, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}
