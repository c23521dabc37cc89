package service

import (
	"context"
	"fmt"
	"time"

	"payout-gateway/internal/core/domain"
	"payout-gateway/internal/core/ports"
	"payout-gateway/pkg/apperror"
	"payout-gateway/pkg/requestmeta"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const accountSnapshotTTL = 5 * time.Minute

// PayoutAccountServiceImpl implements ports.PayoutAccountService. The
// upstream ledger owns the account; this service keeps a single cached
// snapshot and invalidates it explicitly after every mutation, so stale
// copies cannot outlive a change.
type PayoutAccountServiceImpl struct {
	ledger    ports.LedgerClient
	cache     ports.AccountSnapshotCache
	revealSvc ports.RevealService
	audit     ports.AuditService
	log       zerolog.Logger
}

// NewPayoutAccountService creates a new PayoutAccountServiceImpl.
func NewPayoutAccountService(
	ledger ports.LedgerClient,
	cache ports.AccountSnapshotCache,
	revealSvc ports.RevealService,
	audit ports.AuditService,
	log zerolog.Logger,
) *PayoutAccountServiceImpl {
	return &PayoutAccountServiceImpl{
		ledger:    ledger,
		cache:     cache,
		revealSvc: revealSvc,
		audit:     audit,
		log:       log,
	}
}

// Get returns the masked payout account snapshot, or nil when no account
// is configured. A cached "no account" answer is a valid hit; only a true
// miss goes upstream.
func (s *PayoutAccountServiceImpl) Get(ctx context.Context, userID string) (*domain.PayoutAccount, error) {
	account, hit, err := s.cache.Get(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("account cache read failed, falling through to ledger")
	}
	if hit && err == nil {
		return account, nil
	}

	account, err = s.ledger.GetPayoutAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	if cacheErr := s.cache.Set(ctx, userID, account, accountSnapshotTTL); cacheErr != nil {
		s.log.Warn().Err(cacheErr).Str("user_id", userID).Msg("account cache write failed")
	}
	return account, nil
}

// Save creates or replaces the payout account. The first phase goes up
// without a PIN; when the upstream answers "PIN confirmation required"
// the caller re-submits with the PIN populated. The snapshot cache is
// invalidated only after the upstream accepted the change.
func (s *PayoutAccountServiceImpl) Save(ctx context.Context, userID string, input domain.PayoutAccountInput, pin string) (*ports.SaveAccountResult, error) {
	if issue := input.Validate(); issue != nil {
		return nil, apperror.Validation(issue.Field, issue.Reason)
	}
	if pin != "" && !validPinShape(pin) {
		return nil, apperror.ErrMalformedPin()
	}

	result, err := s.ledger.SavePayoutAccount(ctx, userID, input, pin)
	if err != nil {
		// The confirmation round-trip is part of the protocol, not a failure
		// worth an audit entry.
		if appErr, ok := err.(*apperror.AppError); !ok || appErr.Code != "BIZ_003" {
			s.recordAudit(ctx, userID, domain.AuditActionSaveAccount, string(input.Method), err)
		}
		return nil, err
	}

	if cacheErr := s.cache.Invalidate(ctx, userID); cacheErr != nil {
		s.log.Warn().Err(cacheErr).Str("user_id", userID).Msg("account cache invalidation failed")
	}
	s.recordAudit(ctx, userID, domain.AuditActionSaveAccount, string(input.Method), nil)

	s.log.Info().
		Str("user_id", userID).
		Str("method", string(input.Method)).
		Bool("verification_required", result.VerificationRequired).
		Msg("payout account saved")
	return result, nil
}

// Remove hard-deletes the payout account after PIN verification upstream.
func (s *PayoutAccountServiceImpl) Remove(ctx context.Context, userID string, pin string) error {
	if !validPinShape(pin) {
		return apperror.ErrMalformedPin()
	}

	err := s.ledger.DeletePayoutAccount(ctx, userID, pin)
	s.recordAudit(ctx, userID, domain.AuditActionDeleteAccount, "", err)
	if err != nil {
		return err
	}

	if cacheErr := s.cache.Invalidate(ctx, userID); cacheErr != nil {
		s.log.Warn().Err(cacheErr).Str("user_id", userID).Msg("account cache invalidation failed")
	}
	s.log.Info().Str("user_id", userID).Msg("payout account removed")
	return nil
}

// Reveal delegates the PIN-gated disclosure to the reveal service.
func (s *PayoutAccountServiceImpl) Reveal(ctx context.Context, userID string, pin string) (*domain.RevealedFields, error) {
	return s.revealSvc.Reveal(ctx, userID, pin)
}

func (s *PayoutAccountServiceImpl) recordAudit(ctx context.Context, userID string, action domain.AuditAction, resourceID string, err error) {
	if s.audit == nil {
		return
	}
	entry := &domain.AuditEntry{
		ID:         uuid.New(),
		UserID:     userID,
		Action:     action,
		ResourceID: resourceID,
		Outcome:    auditOutcome(err),
		IPAddress:  requestmeta.ClientIP(ctx),
		CreatedAt:  time.Now().UTC(),
	}
	if resourceID != "" {
		entry.Details = fmt.Sprintf(`{"method":%q}`, resourceID)
	}
	s.audit.Record(ctx, entry)
}
