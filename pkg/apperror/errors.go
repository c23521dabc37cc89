package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	Field      string `json:"field,omitempty"` // Offending input field, for validation errors
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Local Validation (VAL) ----
// Never forwarded upstream; surfaced inline next to the offending field.

// Validation returns a field-scoped validation error.
func Validation(field, reason string) *AppError {
	return &AppError{
		Code:       "VAL_001",
		Message:    reason,
		Field:      field,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

func ErrAmountBelowMinimum(minimum int64) *AppError {
	e := Validation("amount", fmt.Sprintf("Amount is below the minimum of %d", minimum))
	e.Code = "VAL_002"
	return e
}

func ErrAmountExceedsAvailable() *AppError {
	e := Validation("amount", "Amount exceeds available balance")
	e.Code = "VAL_003"
	return e
}

func ErrMalformedPin() *AppError {
	e := Validation("pin", "PIN must be exactly 4 digits")
	e.Code = "VAL_004"
	return e
}

// ---- PIN Credential (PIN) ----

func ErrInvalidPin() *AppError {
	return New("PIN_001", "Incorrect PIN", http.StatusUnauthorized)
}

func ErrPinNotConfigured() *AppError {
	return New("PIN_002", "No withdrawal PIN has been set up", http.StatusForbidden)
}

// ---- Business Rules (BIZ) ----
// Recoverable, but the caller is routed to an earlier step or a setup flow.

func ErrInsufficientBalance() *AppError {
	return New("BIZ_001", "Insufficient available balance", http.StatusBadRequest)
}

func ErrNoPayoutAccount() *AppError {
	return New("BIZ_002", "No payout account is configured", http.StatusBadRequest)
}

// ErrPinConfirmationRequired signals the two-phase save: the upstream accepted
// the payload but wants it re-submitted with the PIN populated.
func ErrPinConfirmationRequired() *AppError {
	return New("BIZ_003", "PIN confirmation required to complete this change", http.StatusBadRequest)
}

func ErrCancelNotAllowed() *AppError {
	return New("BIZ_004", "Withdrawal request can no longer be cancelled", http.StatusConflict)
}

func ErrIllegalTransition(from string) *AppError {
	return New("BIZ_005", fmt.Sprintf("Action is not valid from the %q step", from), http.StatusConflict)
}

func ErrSubmitInFlight() *AppError {
	return New("BIZ_006", "A submission is already in progress", http.StatusConflict)
}

func ErrSessionNotFound() *AppError {
	return New("BIZ_007", "Withdrawal session not found or expired", http.StatusNotFound)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- Network / Upstream (NET) ----

// ErrLedgerUnavailable covers transport failures and timeouts against the
// upstream ledger. Retryable; never advances any state machine.
func ErrLedgerUnavailable(err error) *AppError {
	return Wrap("NET_001", "Ledger service is unreachable, please retry", http.StatusServiceUnavailable, err)
}

// ErrRevealFailed covers non-401 reveal failures.
func ErrRevealFailed(err error) *AppError {
	return Wrap("NET_002", "Could not reveal account details", http.StatusBadGateway, err)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_002", "Internal database error", http.StatusInternalServerError, err)
}
