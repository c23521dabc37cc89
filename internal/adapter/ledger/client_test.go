package ledger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"payout-gateway/config"
	"payout-gateway/internal/core/domain"
	"payout-gateway/internal/core/ports"
	"payout-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.LedgerConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	}, zerolog.Nop())
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestGetBalance_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/balance", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "user-1", r.Header.Get("X-Tenant-Id"))
		w.Write([]byte(`{"success":true,"data":{"current":{"available":42000,"pending":1000,"on_hold":500}}}`))
	})

	bal, err := c.GetBalance(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, &domain.Balance{Available: 42000, Pending: 1000, OnHold: 500}, bal)
}

func TestGetPayoutAccount_None(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"current":null,"hasPin":true}}`))
	})

	acc, err := c.GetPayoutAccount(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Nil(t, acc)
}

func TestGetPayoutAccount_Masked(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"hasPin":true,"current":{
			"method":"cbe","accountName":"Abebe Bikila",
			"maskedAccountNumber":"*******5678","verified":true}}}`))
	})

	acc, err := c.GetPayoutAccount(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, acc)
	assert.Equal(t, domain.PayoutMethodCBE, acc.Method)
	assert.Equal(t, "*******5678", acc.MaskedAccountNumber)
	assert.Equal(t, domain.VerificationVerified, acc.Verification)
	assert.True(t, acc.HasPin)
}

func TestSubmitWithdrawal_InvalidPin401(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"invalid pin"}`))
	})

	_, err := c.SubmitWithdrawal(context.Background(), "user-1", ports.SubmitWithdrawalRequest{
		Amount: 5000, Pin: "0000",
	})
	assertCode(t, err, "PIN_001")
}

func TestSubmitWithdrawal_BusinessCodes(t *testing.T) {
	for upstream, local := range map[string]string{
		"INSUFFICIENT_BALANCE":  "BIZ_001",
		"NO_WITHDRAWAL_ACCOUNT": "BIZ_002",
	} {
		code := upstream
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"success":false,"code":"` + code + `","message":"rejected"}`))
		})

		_, err := c.SubmitWithdrawal(context.Background(), "user-1", ports.SubmitWithdrawalRequest{
			Amount: 5000, Pin: "1234",
		})
		assertCode(t, err, local)
	}
}

func TestSubmitWithdrawal_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/withdraw", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{
			"uid":"wd-123","amount":10000,"fee_amount":500,"status":"pending",
			"method":"telebirr","requested_at":"2026-08-01T10:00:00Z"}}`))
	})

	wd, err := c.SubmitWithdrawal(context.Background(), "user-1", ports.SubmitWithdrawalRequest{
		Amount: 10000, Pin: "1234", Notes: "rent",
	})
	require.NoError(t, err)
	assert.Equal(t, "wd-123", wd.UID)
	assert.Equal(t, int64(500), wd.FeeAmount)
	assert.Equal(t, domain.WithdrawalStatusPending, wd.Status)
	assert.Equal(t, domain.PayoutMethodTelebirr, wd.Method)
}

func TestSavePayoutAccount_TwoPhase(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Phase 1 (no pin in body) -> upstream demands PIN confirmation.
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"code":"PIN_CONFIRMATION_REQUIRED","message":"confirm with pin"}`))
	})

	_, err := c.SavePayoutAccount(context.Background(), "user-1", domain.PayoutAccountInput{
		Method: domain.PayoutMethodCBE, AccountName: "Abebe", AccountNumber: "12345678",
	}, "")
	assertCode(t, err, "BIZ_003")
}

func TestSavePayoutAccount_VerificationRequired(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"verificationRequired":true}}`))
	})

	res, err := c.SavePayoutAccount(context.Background(), "user-1", domain.PayoutAccountInput{
		Method: domain.PayoutMethodMpesa, AccountName: "Abebe", PhoneNumber: "251911223344",
	}, "1234")
	require.NoError(t, err)
	assert.True(t, res.VerificationRequired)
}

func TestRevealFields_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reveal-withdrawal-data", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"current":{
			"accountName":"Abebe Bikila","phoneNumber":"251911223344"}}}`))
	})

	fields, err := c.RevealFields(context.Background(), "user-1", "1234")
	require.NoError(t, err)
	assert.Equal(t, "Abebe Bikila", fields.AccountName)
	assert.Equal(t, "251911223344", fields.PhoneNumber)
	assert.Empty(t, fields.AccountNumber)
}

func TestListWithdrawals_Parses(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/withdrawals", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"withdrawals":[
			{"uid":"wd-1","amount":5000,"fee_amount":250,"status":"completed","method":"cbe",
			 "requested_at":"2026-07-01T10:00:00Z","processed_at":"2026-07-02T10:00:00Z"},
			{"uid":"wd-2","amount":8000,"fee_amount":400,"status":"pending","method":"cbe",
			 "requested_at":"2026-08-01T10:00:00Z"}]}}`))
	})

	items, err := c.ListWithdrawals(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, domain.WithdrawalStatusCompleted, items[0].Status)
	require.NotNil(t, items[0].ProcessedAt)
	assert.Nil(t, items[1].ProcessedAt)
}

func TestCancelWithdrawal_NotAllowed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/withdrawals/wd-9/cancel", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"code":"CANCEL_NOT_ALLOWED","message":"already processing"}`))
	})

	err := c.CancelWithdrawal(context.Background(), "user-1", "wd-9")
	assertCode(t, err, "BIZ_004")
}

func TestClient_TimeoutBecomesNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"success":true}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(config.LedgerConfig{BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, zerolog.Nop())
	_, err := c.GetBalance(context.Background(), "user-1")
	assertCode(t, err, "NET_001")
}

func TestClient_ServerErrorBecomesNetworkError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"message":"boom"}`))
	})

	_, err := c.GetBalance(context.Background(), "user-1")
	assertCode(t, err, "NET_001")
}

func TestClient_UnknownCodePassesThrough(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"code":"ACCOUNT_FROZEN","message":"account frozen"}`))
	})

	_, err := c.GetBalance(context.Background(), "user-1")
	assertCode(t, err, "ACCOUNT_FROZEN")
}
