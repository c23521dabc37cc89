package ports

import (
	"context"

	"payout-gateway/internal/core/domain"
)

//go:generate mockgen -source=ledger.go -destination=mocks/ledger_mock.go -package=mocks

// LedgerClient is the upstream ledger REST API. The ledger is the single
// source of truth for balances, the payout account, the PIN credential,
// and withdrawal request state; this service never derives any of them
// locally.
//
// Implementations map upstream failures onto pkg/apperror: HTTP 401 on a
// PIN-bearing call becomes ErrInvalidPin, HTTP 400 business codes become
// the matching BIZ error, and transport failures/timeouts become
// ErrLedgerUnavailable.
type LedgerClient interface {
	// GetBalance fetches the current funds snapshot.
	GetBalance(ctx context.Context, userID string) (*domain.Balance, error)

	// GetPayoutAccount fetches the masked payout account snapshot.
	// Returns (nil, nil) when no account is configured.
	GetPayoutAccount(ctx context.Context, userID string) (*domain.PayoutAccount, error)

	// SavePayoutAccount creates or replaces the payout account. An empty
	// pin performs the first phase of the two-phase save: the upstream may
	// answer with "PIN confirmation required" (ErrPinConfirmationRequired),
	// after which the caller re-submits with the pin populated.
	SavePayoutAccount(ctx context.Context, userID string, input domain.PayoutAccountInput, pin string) (*SaveAccountResult, error)

	// DeletePayoutAccount hard-deletes the payout account.
	DeletePayoutAccount(ctx context.Context, userID string, pin string) error

	// RevealFields performs the PIN-gated server-side decryption of the
	// masked payout fields. Pure relay: no local cryptography.
	RevealFields(ctx context.Context, userID string, pin string) (*domain.RevealedFields, error)

	// SubmitWithdrawal creates a withdrawal request.
	SubmitWithdrawal(ctx context.Context, userID string, req SubmitWithdrawalRequest) (*domain.WithdrawalRequest, error)

	// ListWithdrawals fetches the full withdrawal request history.
	ListWithdrawals(ctx context.Context, userID string) ([]domain.WithdrawalRequest, error)

	// CancelWithdrawal asks the ledger to cancel an in-flight request. The
	// ledger decides whether cancellation wins the race against its own
	// status advancement; callers must re-fetch afterwards.
	CancelWithdrawal(ctx context.Context, userID string, uid string) error
}

// SaveAccountResult is the upstream response to a successful account save.
type SaveAccountResult struct {
	VerificationRequired bool
	Message              string
}

// SubmitWithdrawalRequest carries a withdrawal submission. The PIN lives
// only for the duration of the call.
type SubmitWithdrawalRequest struct {
	Amount int64
	Pin    string
	Notes  string
}
