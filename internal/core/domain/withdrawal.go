package domain

import (
	"time"
)

// WithdrawalStatus is the lifecycle state of a withdrawal request. The
// upstream ledger owns all transitions except cancellation, which the
// tenant may trigger while the request is still non-terminal.
type WithdrawalStatus string

const (
	WithdrawalStatusPending    WithdrawalStatus = "pending"
	WithdrawalStatusProcessing WithdrawalStatus = "processing"
	WithdrawalStatusCompleted  WithdrawalStatus = "completed"
	WithdrawalStatusFailed     WithdrawalStatus = "failed"
	WithdrawalStatusRejected   WithdrawalStatus = "rejected"
)

// Valid reports whether the status is part of the known vocabulary.
func (s WithdrawalStatus) Valid() bool {
	switch s {
	case WithdrawalStatusPending, WithdrawalStatusProcessing,
		WithdrawalStatusCompleted, WithdrawalStatusFailed, WithdrawalStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s WithdrawalStatus) IsTerminal() bool {
	switch s {
	case WithdrawalStatusCompleted, WithdrawalStatusFailed, WithdrawalStatusRejected:
		return true
	}
	return false
}

// CanTransitionTo enumerates the legal status moves:
// pending -> processing -> {completed|failed}, and
// pending|processing -> rejected via cancellation.
func (s WithdrawalStatus) CanTransitionTo(next WithdrawalStatus) bool {
	switch s {
	case WithdrawalStatusPending:
		return next == WithdrawalStatusProcessing || next == WithdrawalStatusRejected
	case WithdrawalStatusProcessing:
		return next == WithdrawalStatusCompleted ||
			next == WithdrawalStatusFailed ||
			next == WithdrawalStatusRejected
	}
	return false
}

// WithdrawalRequest is a tenant withdrawal as reported by the ledger.
// Immutable from this service's point of view except through Cancel.
type WithdrawalRequest struct {
	UID         string           `json:"uid"`
	Amount      int64            `json:"amount"`     // whole currency units
	FeeAmount   int64            `json:"fee_amount"` // derived upstream; mirrored for display
	Status      WithdrawalStatus `json:"status"`
	Method      PayoutMethod     `json:"method"` // snapshot of the account method used
	Notes       string           `json:"notes,omitempty"`
	RequestedAt time.Time        `json:"requested_at"`
	ProcessedAt *time.Time       `json:"processed_at,omitempty"`
}

// Cancellable reports whether the tenant may still cancel this request.
// The check is advisory: the backend decides whether cancellation wins
// the race against its own status advancement.
func (w *WithdrawalRequest) Cancellable() bool {
	return w.Status == WithdrawalStatusPending || w.Status == WithdrawalStatusProcessing
}

// NetAmount is the payout after fee deduction.
func (w *WithdrawalRequest) NetAmount() int64 {
	return w.Amount - w.FeeAmount
}

// Balance is the ledger-authoritative funds snapshot. Read-only: the
// service re-fetches it after every mutation instead of deriving locally.
type Balance struct {
	Available int64 `json:"available"`
	Pending   int64 `json:"pending"`
	OnHold    int64 `json:"on_hold"`
}
