package postgres

import (
	"context"

	"payout-gateway/internal/core/domain"
	"payout-gateway/internal/core/ports"
)

type auditRepo struct {
	pool Pool
}

// NewAuditRepository creates a PostgreSQL-backed AuditRepository.
func NewAuditRepository(pool Pool) ports.AuditRepository {
	return &auditRepo{pool: pool}
}

func (r *auditRepo) Create(ctx context.Context, entry *domain.AuditEntry) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_entries (id, user_id, action, resource_id, outcome, details, ip_address, created_at)
 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.UserID, string(entry.Action), entry.ResourceID,
		entry.Outcome, entry.Details, entry.IPAddress, entry.CreatedAt,
	)
	return err
}
