package ports

import (
	"context"
	"time"

	"payout-gateway/internal/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=stores.go -destination=mocks/stores_mock.go -package=mocks

// WizardSessionStore persists wizard sessions so the service stays
// stateless across replicas. Sessions expire on their own after the
// configured TTL.
type WizardSessionStore interface {
	// Get returns (nil, nil) when the session does not exist or expired.
	Get(ctx context.Context, id uuid.UUID) (*domain.WizardSession, error)
	Save(ctx context.Context, session *domain.WizardSession, ttl time.Duration) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AccountSnapshotCache is the single cached copy of the upstream payout
// account, invalidated explicitly after every mutation instead of being
// overwritten ad hoc by callers.
type AccountSnapshotCache interface {
	// Get returns (nil, false, nil) on a miss. A cached "no account" is a
	// hit with a nil account.
	Get(ctx context.Context, userID string) (*domain.PayoutAccount, bool, error)
	Set(ctx context.Context, userID string, account *domain.PayoutAccount, ttl time.Duration) error
	Invalidate(ctx context.Context, userID string) error
}

// HistoryCache holds the last fetched withdrawal list snapshot, the basis
// for client-side status filtering.
type HistoryCache interface {
	// Get returns (nil, false, nil) on a miss.
	Get(ctx context.Context, userID string) ([]domain.WithdrawalRequest, bool, error)
	Set(ctx context.Context, userID string, items []domain.WithdrawalRequest, ttl time.Duration) error
	Invalidate(ctx context.Context, userID string) error
}

// SubmitLock serializes mutating calls: at most one submission per session
// may be in flight.
type SubmitLock interface {
	// Acquire returns true when the lock was taken, false when another
	// submission holds it.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
