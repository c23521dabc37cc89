package ports

import (
	"context"

	"payout-gateway/internal/core/domain"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories_mock.go -package=mocks

// AuditRepository persists the audit trail of PIN-gated mutations.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
}
