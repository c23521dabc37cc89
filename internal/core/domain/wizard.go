package domain

import (
	"time"

	"github.com/google/uuid"
)

// WizardStep is the single tagged state of a withdrawal wizard session.
// The step plus the session payload fully describe the session; there are
// no side boolean flags, so combinations like "submitting with a pending
// validation error" cannot be represented.
type WizardStep string

const (
	StepAmountEntry    WizardStep = "amount_entry"
	StepAccountConfirm WizardStep = "account_confirm"
	StepSummary        WizardStep = "summary"
	StepPinConfirm     WizardStep = "pin_confirm"
	StepSubmitting     WizardStep = "submitting"
	StepSuccess        WizardStep = "success"
	StepFailed         WizardStep = "failed"
)

// WizardSession is one tenant withdrawal flow from amount entry to
// submission. The PIN is never part of the session: it exists only inside
// the request that carries it.
type WizardSession struct {
	ID     uuid.UUID  `json:"id"`
	UserID string     `json:"user_id"`
	Step   WizardStep `json:"step"`
	Amount int64      `json:"amount"`
	Notes  string     `json:"notes,omitempty"`
	// FailureCode carries the machine-readable reason when Step is failed,
	// or the contextual message code after a backward reroute.
	FailureCode string    `json:"failure_code,omitempty"`
	ResultUID   string    `json:"result_uid,omitempty"` // withdrawal uid on success
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewWizardSession opens a session at the amount entry step.
func NewWizardSession(userID string) *WizardSession {
	now := time.Now().UTC()
	return &WizardSession{
		ID:        uuid.New(),
		UserID:    userID,
		Step:      StepAmountEntry,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Terminal reports whether the session reached success or failed. There is
// no path back into a terminal session; a new withdrawal starts a new one.
func (s *WizardSession) Terminal() bool {
	return s.Step == StepSuccess || s.Step == StepFailed
}

func (s *WizardSession) touch() {
	s.UpdatedAt = time.Now().UTC()
}

// EnterAmount records the amount and advances to account confirmation.
// Legal only from amount_entry. Bounds checks happen in the service, which
// holds the freshly fetched balance; the machine only guards legality.
func (s *WizardSession) EnterAmount(amount int64) bool {
	if s.Step != StepAmountEntry {
		return false
	}
	s.Amount = amount
	s.FailureCode = ""
	s.Step = StepAccountConfirm
	s.touch()
	return true
}

// ConfirmAccount records optional notes and advances to the summary.
// Legal only from account_confirm.
func (s *WizardSession) ConfirmAccount(notes string) bool {
	if s.Step != StepAccountConfirm {
		return false
	}
	s.Notes = notes
	s.Step = StepSummary
	s.touch()
	return true
}

// ConfirmSummary advances to PIN confirmation. The summary itself is pure
// recomputation from Amount; it holds no state of its own.
func (s *WizardSession) ConfirmSummary() bool {
	if s.Step != StepSummary {
		return false
	}
	s.Step = StepPinConfirm
	s.touch()
	return true
}

// BeginSubmit moves pin_confirm -> submitting. From submitting only
// CompleteSubmit, FailSubmit, or the backward reroutes are reachable.
func (s *WizardSession) BeginSubmit() bool {
	if s.Step != StepPinConfirm {
		return false
	}
	s.Step = StepSubmitting
	s.touch()
	return true
}

// CompleteSubmit moves submitting -> success.
func (s *WizardSession) CompleteSubmit(withdrawalUID string) bool {
	if s.Step != StepSubmitting {
		return false
	}
	s.ResultUID = withdrawalUID
	s.Step = StepSuccess
	s.touch()
	return true
}

// FailSubmit moves submitting -> failed with a machine-readable reason.
// Used for failures that cannot be recovered by re-routing backward.
func (s *WizardSession) FailSubmit(code string) bool {
	if s.Step != StepSubmitting {
		return false
	}
	s.FailureCode = code
	s.Step = StepFailed
	s.touch()
	return true
}

// RerouteToPinEntry returns submitting -> pin_confirm after an invalid PIN.
// Amount, notes, and account selection survive; the PIN was never stored,
// so "clearing" it is inherent.
func (s *WizardSession) RerouteToPinEntry() bool {
	if s.Step != StepSubmitting {
		return false
	}
	s.Step = StepPinConfirm
	s.touch()
	return true
}

// RerouteToAmountEntry returns submitting -> amount_entry carrying a
// contextual code (insufficient balance, missing account). The previously
// entered amount is kept for correction.
func (s *WizardSession) RerouteToAmountEntry(code string) bool {
	if s.Step != StepSubmitting {
		return false
	}
	s.FailureCode = code
	s.Step = StepAmountEntry
	s.touch()
	return true
}

// Back steps to the previous state without clearing entered data. It
// returns (closed, ok): closed is true when Back from amount_entry ends
// the session; ok is false when Back is not legal from the current step
// (submitting and terminal states).
func (s *WizardSession) Back() (closed bool, ok bool) {
	switch s.Step {
	case StepAmountEntry:
		return true, true
	case StepAccountConfirm:
		s.Step = StepAmountEntry
	case StepSummary:
		s.Step = StepAccountConfirm
	case StepPinConfirm:
		s.Step = StepSummary
	default:
		return false, false
	}
	s.touch()
	return false, true
}
