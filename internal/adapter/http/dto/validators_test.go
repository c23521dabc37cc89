package dto

import (
	"testing"

	"payout-gateway/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := SavePayoutAccountRequest{
		Method:        " cbe ",
		AccountName:   "  Abebe Bikila  ",
		AccountNumber: " 10002345678901 ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "cbe", req.Method)
	assert.Equal(t, "Abebe Bikila", req.AccountName)
	assert.Equal(t, "10002345678901", req.AccountNumber)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := ConfirmAccountRequest{
		Notes: "rent <script>alert('x')</script> payment",
	}
	SanitizeStruct(&req)

	assert.Contains(t, req.Notes, "&lt;script&gt;")
	assert.NotContains(t, req.Notes, "<script>")
}

func TestSanitizeStruct_PinIsLeftUntouched(t *testing.T) {
	req := SavePayoutAccountRequest{
		Method:      "cbe",
		AccountName: "Abebe",
		Pin:         " 1234",
	}
	SanitizeStruct(&req)

	// Shape validation downstream must see the PIN exactly as submitted.
	assert.Equal(t, " 1234", req.Pin)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom validator tests ---

func TestValidatePayoutMethod(t *testing.T) {
	for _, m := range []string{"cbe", "abyssinia", "telebirr", "mpesa"} {
		assert.True(t, domain.PayoutMethod(m).Valid(), "expected valid: %s", m)
	}
	for _, m := range []string{"", "paypal", "CBE", "visa"} {
		assert.False(t, domain.PayoutMethod(m).Valid(), "expected invalid: %s", m)
	}
}
