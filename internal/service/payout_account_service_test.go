package service

import (
	"context"
	"testing"
	"time"

	"payout-gateway/internal/core/domain"
	"payout-gateway/internal/core/ports"
	"payout-gateway/internal/core/ports/mocks"
	"payout-gateway/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type accountTestDeps struct {
	svc    *PayoutAccountServiceImpl
	ledger *mocks.MockLedgerClient
	cache  *mocks.MockAccountSnapshotCache
	reveal *mocks.MockRevealService
	audit  *mocks.MockAuditService
	ctrl   *gomock.Controller
}

func setupAccountService(t *testing.T) *accountTestDeps {
	ctrl := gomock.NewController(t)
	d := &accountTestDeps{
		ledger: mocks.NewMockLedgerClient(ctrl),
		cache:  mocks.NewMockAccountSnapshotCache(ctrl),
		reveal: mocks.NewMockRevealService(ctrl),
		audit:  mocks.NewMockAuditService(ctrl),
		ctrl:   ctrl,
	}
	d.svc = NewPayoutAccountService(d.ledger, d.cache, d.reveal, d.audit, newTestLogger())
	return d
}

func testAccount() *domain.PayoutAccount {
	return &domain.PayoutAccount{
		Method:              domain.PayoutMethodCBE,
		AccountName:         "Abebe Bikila",
		MaskedAccountNumber: "**********8901",
		Verification:        domain.VerificationVerified,
		HasPin:              true,
		SetAt:               time.Now().UTC(),
	}
}

// ==================== Get Tests ====================

func TestAccountService_Get_CacheHit(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	account := testAccount()
	d.cache.EXPECT().Get(ctx, "user-1").Return(account, true, nil)
	// No ledger call.

	got, err := d.svc.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestAccountService_Get_CachedAbsenceIsAHit(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.cache.EXPECT().Get(ctx, "user-1").Return(nil, true, nil)

	got, err := d.svc.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAccountService_Get_CacheMissFetchesAndCaches(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	account := testAccount()
	d.cache.EXPECT().Get(ctx, "user-1").Return(nil, false, nil)
	d.ledger.EXPECT().GetPayoutAccount(ctx, "user-1").Return(account, nil)
	d.cache.EXPECT().Set(ctx, "user-1", account, accountSnapshotTTL).Return(nil)

	got, err := d.svc.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestAccountService_Get_CacheErrorFallsThrough(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	account := testAccount()
	d.cache.EXPECT().Get(ctx, "user-1").Return(nil, false, assert.AnError)
	d.ledger.EXPECT().GetPayoutAccount(ctx, "user-1").Return(account, nil)
	d.cache.EXPECT().Set(ctx, "user-1", account, accountSnapshotTTL).Return(nil)

	got, err := d.svc.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, account, got)
}

// ==================== Save Tests ====================

func TestAccountService_Save_TwoPhase(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	input := domain.PayoutAccountInput{
		Method:        domain.PayoutMethodCBE,
		AccountName:   "Abebe Bikila",
		AccountNumber: "10002345678901",
	}

	// Phase 1: no PIN, upstream demands confirmation. Not audited.
	d.ledger.EXPECT().SavePayoutAccount(ctx, "user-1", input, "").
		Return(nil, apperror.ErrPinConfirmationRequired())

	_, err := d.svc.Save(ctx, "user-1", input, "")
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "BIZ_003", appErr.Code)

	// Phase 2: re-submitted with the PIN; cache invalidated, audited.
	d.ledger.EXPECT().SavePayoutAccount(ctx, "user-1", input, "1234").
		Return(&ports.SaveAccountResult{VerificationRequired: true}, nil)
	d.cache.EXPECT().Invalidate(ctx, "user-1").Return(nil)
	d.audit.EXPECT().Record(ctx, gomock.Any()).Do(func(_ context.Context, entry *domain.AuditEntry) {
		assert.Equal(t, domain.AuditActionSaveAccount, entry.Action)
		assert.Equal(t, "ok", entry.Outcome)
	})

	result, err := d.svc.Save(ctx, "user-1", input, "1234")
	require.NoError(t, err)
	assert.True(t, result.VerificationRequired)
}

func TestAccountService_Save_ValidationRejectsBeforeUpstream(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	tests := []struct {
		name      string
		input     domain.PayoutAccountInput
		wantField string
	}{
		{
			name:      "unknown method",
			input:     domain.PayoutAccountInput{Method: "paypal", AccountName: "A"},
			wantField: "method",
		},
		{
			name:      "missing name",
			input:     domain.PayoutAccountInput{Method: domain.PayoutMethodCBE, AccountNumber: "12345678"},
			wantField: "account_name",
		},
		{
			name:      "short bank account",
			input:     domain.PayoutAccountInput{Method: domain.PayoutMethodCBE, AccountName: "A", AccountNumber: "1234567"},
			wantField: "account_number",
		},
		{
			name:      "bad phone format",
			input:     domain.PayoutAccountInput{Method: domain.PayoutMethodTelebirr, AccountName: "A", PhoneNumber: "0911234567"},
			wantField: "phone_number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No ledger EXPECT: the call never goes upstream.
			_, err := d.svc.Save(context.Background(), "user-1", tt.input, "")
			require.Error(t, err)
			appErr, ok := err.(*apperror.AppError)
			require.True(t, ok)
			assert.Equal(t, "VAL_001", appErr.Code)
			assert.Equal(t, tt.wantField, appErr.Field)
		})
	}
}

func TestAccountService_Save_WrongPin(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	input := domain.PayoutAccountInput{
		Method:      domain.PayoutMethodTelebirr,
		AccountName: "Abebe Bikila",
		PhoneNumber: "251911234567",
	}

	d.ledger.EXPECT().SavePayoutAccount(ctx, "user-1", input, "9999").
		Return(nil, apperror.ErrInvalidPin())
	d.audit.EXPECT().Record(ctx, gomock.Any()).Do(func(_ context.Context, entry *domain.AuditEntry) {
		assert.Equal(t, "PIN_001", entry.Outcome)
	})
	// Cache untouched: the upstream rejected the change.

	_, err := d.svc.Save(ctx, "user-1", input, "9999")
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "PIN_001", appErr.Code)
}

// ==================== Remove Tests ====================

func TestAccountService_Remove_Success(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.ledger.EXPECT().DeletePayoutAccount(ctx, "user-1", "1234").Return(nil)
	d.cache.EXPECT().Invalidate(ctx, "user-1").Return(nil)
	d.audit.EXPECT().Record(ctx, gomock.Any()).Do(func(_ context.Context, entry *domain.AuditEntry) {
		assert.Equal(t, domain.AuditActionDeleteAccount, entry.Action)
		assert.Equal(t, "ok", entry.Outcome)
	})

	err := d.svc.Remove(ctx, "user-1", "1234")
	require.NoError(t, err)
}

func TestAccountService_Remove_MalformedPin(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	err := d.svc.Remove(context.Background(), "user-1", "12")
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "VAL_004", appErr.Code)
}

func TestAccountService_Remove_PinNotConfigured(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.ledger.EXPECT().DeletePayoutAccount(ctx, "user-1", "1234").
		Return(apperror.ErrPinNotConfigured())
	d.audit.EXPECT().Record(ctx, gomock.Any())
	// No cache invalidation on failure.

	err := d.svc.Remove(ctx, "user-1", "1234")
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "PIN_002", appErr.Code)
}

// ==================== Reveal Delegation ====================

func TestAccountService_Reveal_Delegates(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	fields := &domain.RevealedFields{AccountName: "Abebe Bikila", PhoneNumber: "251911234567"}
	d.reveal.EXPECT().Reveal(ctx, "user-1", "1234").Return(fields, nil)

	got, err := d.svc.Reveal(ctx, "user-1", "1234")
	require.NoError(t, err)
	assert.Equal(t, fields, got)
}
