package service

import (
	"context"

	"payout-gateway/internal/core/domain"
	"payout-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService creates a new audit service.
// If repo is nil, audit entries are only written to the logger.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Record writes an audit entry asynchronously (fire-and-forget). Entries
// never contain PINs or plaintext account fields.
func (s *auditService) Record(ctx context.Context, entry *domain.AuditEntry) {
	go func() {
		s.log.Info().
			Str("action", string(entry.Action)).
			Str("user_id", entry.UserID).
			Str("resource_id", entry.ResourceID).
			Str("outcome", entry.Outcome).
			Str("ip", entry.IPAddress).
			Msg("audit")

		if s.repo != nil {
			if err := s.repo.Create(context.Background(), entry); err != nil {
				s.log.Warn().Err(err).Str("action", string(entry.Action)).Msg("failed to persist audit entry")
			}
		}
	}()
}
