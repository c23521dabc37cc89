package service

import (
	"context"
	"time"

	"payout-gateway/internal/core/domain"
	"payout-gateway/internal/core/ports"
	"payout-gateway/pkg/apperror"
	"payout-gateway/pkg/requestmeta"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RevealServiceImpl implements ports.RevealService as a pure relay: the
// masked fields are decrypted upstream and returned one-shot. No plaintext
// or PIN ever touches a store or a log line on this side.
type RevealServiceImpl struct {
	ledger ports.LedgerClient
	audit  ports.AuditService
	log    zerolog.Logger
}

// NewRevealService creates a new RevealServiceImpl.
func NewRevealService(ledger ports.LedgerClient, audit ports.AuditService, log zerolog.Logger) *RevealServiceImpl {
	return &RevealServiceImpl{ledger: ledger, audit: audit, log: log}
}

// Reveal relays a PIN-gated disclosure request. The PIN is checked for
// shape locally so malformed input never reaches the upstream, then the
// call is forwarded verbatim.
func (s *RevealServiceImpl) Reveal(ctx context.Context, userID string, pin string) (*domain.RevealedFields, error) {
	if !validPinShape(pin) {
		return nil, apperror.ErrMalformedPin()
	}

	fields, err := s.ledger.RevealFields(ctx, userID, pin)
	s.recordAudit(ctx, userID, err)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Msg("payout fields revealed")
	return fields, nil
}

func (s *RevealServiceImpl) recordAudit(ctx context.Context, userID string, err error) {
	if s.audit == nil {
		return
	}
	s.audit.Record(ctx, &domain.AuditEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Action:    domain.AuditActionRevealFields,
		Outcome:   auditOutcome(err),
		IPAddress: requestmeta.ClientIP(ctx),
		CreatedAt: time.Now().UTC(),
	})
}

// validPinShape checks the 4-digit PIN format without interpreting it.
func validPinShape(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// auditOutcome maps an error to the audit outcome column.
func auditOutcome(err error) string {
	if err == nil {
		return "ok"
	}
	if appErr, ok := err.(*apperror.AppError); ok {
		return appErr.Code
	}
	return "error"
}
