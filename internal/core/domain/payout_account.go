package domain

import (
	"regexp"
	"strings"
	"time"
)

// PayoutMethod identifies the external rail a tenant withdraws to.
type PayoutMethod string

const (
	PayoutMethodCBE       PayoutMethod = "cbe"       // bank rail
	PayoutMethodAbyssinia PayoutMethod = "abyssinia" // bank rail
	PayoutMethodTelebirr  PayoutMethod = "telebirr"  // mobile-money rail
	PayoutMethodMpesa     PayoutMethod = "mpesa"     // mobile-money rail
)

// IsBankRail reports whether the method pays out to a bank account.
func (m PayoutMethod) IsBankRail() bool {
	return m == PayoutMethodCBE || m == PayoutMethodAbyssinia
}

// IsMobileRail reports whether the method pays out to a mobile-money wallet.
func (m PayoutMethod) IsMobileRail() bool {
	return m == PayoutMethodTelebirr || m == PayoutMethodMpesa
}

// Valid reports whether the method is a known rail.
func (m PayoutMethod) Valid() bool {
	return m.IsBankRail() || m.IsMobileRail()
}

// VerificationState is the payout account verification lifecycle.
type VerificationState string

const (
	VerificationPending  VerificationState = "pending"
	VerificationVerified VerificationState = "verified"
)

// PayoutAccount is the tenant's single active payout destination. The
// account number / phone number are stored encrypted upstream; this type
// only ever carries the masked placeholders unless a reveal populated them.
type PayoutAccount struct {
	Method              PayoutMethod      `json:"method"`
	AccountName         string            `json:"account_name"`
	MaskedAccountNumber string            `json:"masked_account_number,omitempty"` // bank rails
	MaskedPhoneNumber   string            `json:"masked_phone_number,omitempty"`   // mobile rails
	Verification        VerificationState `json:"verification"`
	HasPin              bool              `json:"has_pin"`
	SetAt               time.Time         `json:"set_at"`
}

// RevealedFields is the one-shot plaintext disclosure returned by the
// upstream decryption endpoint. Never persisted.
type RevealedFields struct {
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number,omitempty"`
	PhoneNumber   string `json:"phone_number,omitempty"`
}

// PayoutAccountInput is the validated payload for creating or replacing
// the payout account.
type PayoutAccountInput struct {
	Method        PayoutMethod
	AccountName   string
	AccountNumber string // bank rails
	PhoneNumber   string // mobile rails
}

var (
	bankAccountRe = regexp.MustCompile(`^[0-9]{8,}$`)
	// Country-code-prefixed, fixed total digit length (2519 + 8 digits).
	mobilePhoneRe = regexp.MustCompile(`^2519[0-9]{8}$`)
)

// ValidationIssue describes a single failed field check.
type ValidationIssue struct {
	Field  string
	Reason string
}

// Validate checks the input against the per-rail format rules. It returns
// the first failed check, or nil.
func (in PayoutAccountInput) Validate() *ValidationIssue {
	if !in.Method.Valid() {
		return &ValidationIssue{Field: "method", Reason: "unknown payout method"}
	}
	if strings.TrimSpace(in.AccountName) == "" {
		return &ValidationIssue{Field: "account_name", Reason: "account holder name is required"}
	}
	if in.Method.IsBankRail() {
		if !bankAccountRe.MatchString(in.AccountNumber) {
			return &ValidationIssue{Field: "account_number", Reason: "must be at least 8 digits, digits only"}
		}
		return nil
	}
	if !mobilePhoneRe.MatchString(in.PhoneNumber) {
		return &ValidationIssue{Field: "phone_number", Reason: "must match the national format 2519XXXXXXXX"}
	}
	return nil
}

// MaskDigits keeps the trailing 4 characters and replaces the rest with '*'.
// Used when echoing freshly saved input back before the upstream snapshot
// has been re-fetched.
func MaskDigits(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
