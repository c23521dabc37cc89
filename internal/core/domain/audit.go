package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action. Every PIN-gated
// mutation leaves a trail entry.
type AuditAction string

const (
	AuditActionSaveAccount      AuditAction = "SAVE_PAYOUT_ACCOUNT"
	AuditActionDeleteAccount    AuditAction = "DELETE_PAYOUT_ACCOUNT"
	AuditActionRevealFields     AuditAction = "REVEAL_FIELDS"
	AuditActionSubmitWithdrawal AuditAction = "SUBMIT_WITHDRAWAL"
	AuditActionCancelWithdrawal AuditAction = "CANCEL_WITHDRAWAL"
)

// AuditEntry records a single audited action. PINs and plaintext account
// fields never appear in Details.
type AuditEntry struct {
	ID         uuid.UUID   `json:"id"`
	UserID     string      `json:"user_id"`
	Action     AuditAction `json:"action"`
	ResourceID string      `json:"resource_id,omitempty"` // withdrawal uid, session id
	Outcome    string      `json:"outcome"`               // "ok" or the apperror code
	Details    string      `json:"details,omitempty"`     // JSON string
	IPAddress  string      `json:"ip_address"`
	CreatedAt  time.Time   `json:"created_at"`
}
