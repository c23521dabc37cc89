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

const historySnapshotTTL = 2 * time.Minute

// HistoryServiceImpl implements ports.HistoryService. The ledger owns all
// withdrawal state; this service holds the last fetched snapshot, filters
// it locally, and discards it whenever anything could have changed it.
type HistoryServiceImpl struct {
	ledger ports.LedgerClient
	cache  ports.HistoryCache
	audit  ports.AuditService
	log    zerolog.Logger
}

// NewHistoryService creates a new HistoryServiceImpl.
func NewHistoryService(
	ledger ports.LedgerClient,
	cache ports.HistoryCache,
	audit ports.AuditService,
	log zerolog.Logger,
) *HistoryServiceImpl {
	return &HistoryServiceImpl{ledger: ledger, cache: cache, audit: audit, log: log}
}

// List returns the withdrawal history, filtered by status when a filter is
// given. Filtering happens against the snapshot; only a missing snapshot
// triggers an upstream fetch, so switching filters never refetches.
func (s *HistoryServiceImpl) List(ctx context.Context, userID string, statusFilter domain.WithdrawalStatus) ([]domain.WithdrawalRequest, error) {
	if statusFilter != "" && !statusFilter.Valid() {
		return nil, apperror.Validation("status", "unknown withdrawal status")
	}

	items, hit, err := s.cache.Get(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("history cache read failed, falling through to ledger")
	}
	if !hit || err != nil {
		items, err = s.fetchAndCache(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	return filterByStatus(items, statusFilter), nil
}

// Refresh discards the snapshot and refetches from the ledger.
func (s *HistoryServiceImpl) Refresh(ctx context.Context, userID string) ([]domain.WithdrawalRequest, error) {
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("history cache invalidation failed")
	}
	return s.fetchAndCache(ctx, userID)
}

// Cancel asks the ledger to cancel a non-terminal withdrawal. The local
// cancellability check is advisory; the ledger decides whether the
// cancellation wins the race against its own status advancement, so the
// snapshot is discarded afterwards regardless of outcome.
func (s *HistoryServiceImpl) Cancel(ctx context.Context, userID string, uid string) error {
	if uid == "" {
		return apperror.Validation("uid", "withdrawal uid is required")
	}

	if items, hit, err := s.cache.Get(ctx, userID); hit && err == nil {
		for i := range items {
			if items[i].UID == uid && !items[i].Cancellable() {
				return apperror.ErrCancelNotAllowed()
			}
		}
	}

	err := s.ledger.CancelWithdrawal(ctx, userID, uid)
	s.recordAudit(ctx, userID, uid, err)

	if cacheErr := s.cache.Invalidate(ctx, userID); cacheErr != nil {
		s.log.Warn().Err(cacheErr).Str("user_id", userID).Msg("history cache invalidation failed")
	}
	if err != nil {
		return err
	}

	s.log.Info().Str("user_id", userID).Str("uid", uid).Msg("withdrawal cancelled")
	return nil
}

// Balance fetches the authoritative funds snapshot. Never cached: every
// caller sees the ledger's current figures.
func (s *HistoryServiceImpl) Balance(ctx context.Context, userID string) (*domain.Balance, error) {
	return s.ledger.GetBalance(ctx, userID)
}

func (s *HistoryServiceImpl) fetchAndCache(ctx context.Context, userID string) ([]domain.WithdrawalRequest, error) {
	items, err := s.ledger.ListWithdrawals(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cacheErr := s.cache.Set(ctx, userID, items, historySnapshotTTL); cacheErr != nil {
		s.log.Warn().Err(cacheErr).Str("user_id", userID).Msg("history cache write failed")
	}
	return items, nil
}

func (s *HistoryServiceImpl) recordAudit(ctx context.Context, userID, uid string, err error) {
	if s.audit == nil {
		return
	}
	s.audit.Record(ctx, &domain.AuditEntry{
		ID:         uuid.New(),
		UserID:     userID,
		Action:     domain.AuditActionCancelWithdrawal,
		ResourceID: uid,
		Outcome:    auditOutcome(err),
		IPAddress:  requestmeta.ClientIP(ctx),
		CreatedAt:  time.Now().UTC(),
	})
}

func filterByStatus(items []domain.WithdrawalRequest, status domain.WithdrawalStatus) []domain.WithdrawalRequest {
	if status == "" {
		return items
	}
	filtered := make([]domain.WithdrawalRequest, 0, len(items))
	for _, it := range items {
		if it.Status == status {
			filtered = append(filtered, it)
		}
	}
	return filtered
}
