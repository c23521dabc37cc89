package ports

import (
	"context"

	"payout-gateway/internal/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

// --- Service Ports (Business Logic) ---

// WizardService drives the withdrawal wizard state machine. Sessions are
// persisted between calls; every transition loads, validates, mutates,
// and saves the session.
type WizardService interface {
	Start(ctx context.Context, userID string) (*WizardView, error)
	Get(ctx context.Context, userID string, sessionID uuid.UUID) (*WizardView, error)
	EnterAmount(ctx context.Context, userID string, sessionID uuid.UUID, amount int64) (*WizardView, error)
	ConfirmAccount(ctx context.Context, userID string, sessionID uuid.UUID, notes string) (*WizardView, error)
	// RevealDuringConfirm relays a reveal without leaving account_confirm.
	RevealDuringConfirm(ctx context.Context, userID string, sessionID uuid.UUID, pin string) (*domain.RevealedFields, error)
	ConfirmSummary(ctx context.Context, userID string, sessionID uuid.UUID) (*WizardView, error)
	Submit(ctx context.Context, userID string, sessionID uuid.UUID, pin string) (*WizardView, error)
	Back(ctx context.Context, userID string, sessionID uuid.UUID) (*WizardView, error)
}

// WizardView is the session state projected for the caller, with the fee
// breakdown and step-relevant context recomputed on every read.
type WizardView struct {
	Session *domain.WizardSession
	Quote   *FeeQuote             // populated from amount_entry onward
	Account *domain.PayoutAccount // populated at account_confirm and later
	Presets []PresetOption        // populated at amount_entry
	Closed  bool                  // true when Back from amount_entry ended the session
}

// PresetOption is a quick-select amount with server-side availability.
// Presets above the available balance are disabled functionally, not just
// visually: EnterAmount re-validates regardless.
type PresetOption struct {
	Amount  int64 `json:"amount"`
	Enabled bool  `json:"enabled"`
}

// FeeQuote is the deterministic fee breakdown for an amount. fee + net ==
// amount always holds.
type FeeQuote struct {
	Amount int64 `json:"amount"`
	Fee    int64 `json:"fee"`
	Net    int64 `json:"net"`
}

// PayoutAccountService owns the payout destination lifecycle: a single
// cached snapshot with explicit invalidation after every mutation.
type PayoutAccountService interface {
	Get(ctx context.Context, userID string) (*domain.PayoutAccount, error)
	Save(ctx context.Context, userID string, input domain.PayoutAccountInput, pin string) (*SaveAccountResult, error)
	Remove(ctx context.Context, userID string, pin string) error
	Reveal(ctx context.Context, userID string, pin string) (*domain.RevealedFields, error)
}

// RevealService is the PIN-gated, session-scoped disclosure of masked
// payout fields. The PIN is never retained after the call resolves.
type RevealService interface {
	Reveal(ctx context.Context, userID string, pin string) (*domain.RevealedFields, error)
}

// HistoryService keeps the withdrawal list consistent with the
// backend-authoritative state and drives cancellation.
type HistoryService interface {
	// List filters the last fetched snapshot client-side; it refetches only
	// when no snapshot exists. An empty filter returns everything.
	List(ctx context.Context, userID string, statusFilter domain.WithdrawalStatus) ([]domain.WithdrawalRequest, error)
	// Refresh discards the snapshot and refetches from the ledger.
	Refresh(ctx context.Context, userID string) ([]domain.WithdrawalRequest, error)
	// Cancel requests cancellation of a non-terminal withdrawal, then
	// forces a re-fetch of both the list and the balance.
	Cancel(ctx context.Context, userID string, uid string) error
	// Balance fetches the authoritative funds snapshot (never cached).
	Balance(ctx context.Context, userID string) (*domain.Balance, error)
}

// TokenService validates the bearer tokens issued by the platform's auth
// service for end users.
type TokenService interface {
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID string
}

// AuditService records audited actions (fire-and-forget).
type AuditService interface {
	Record(ctx context.Context, entry *domain.AuditEntry)
}
