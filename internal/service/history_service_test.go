package service

import (
	"context"
	"testing"
	"time"

	"payout-gateway/internal/core/domain"
	"payout-gateway/internal/core/ports/mocks"
	"payout-gateway/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type historyTestDeps struct {
	svc    *HistoryServiceImpl
	ledger *mocks.MockLedgerClient
	cache  *mocks.MockHistoryCache
	audit  *mocks.MockAuditService
	ctrl   *gomock.Controller
}

func setupHistoryService(t *testing.T) *historyTestDeps {
	ctrl := gomock.NewController(t)
	d := &historyTestDeps{
		ledger: mocks.NewMockLedgerClient(ctrl),
		cache:  mocks.NewMockHistoryCache(ctrl),
		audit:  mocks.NewMockAuditService(ctrl),
		ctrl:   ctrl,
	}
	d.svc = NewHistoryService(d.ledger, d.cache, d.audit, newTestLogger())
	return d
}

func testWithdrawals() []domain.WithdrawalRequest {
	now := time.Now().UTC()
	return []domain.WithdrawalRequest{
		{UID: "wd_001", Amount: 10000, FeeAmount: 500, Status: domain.WithdrawalStatusPending, Method: domain.PayoutMethodCBE, RequestedAt: now},
		{UID: "wd_002", Amount: 5000, FeeAmount: 250, Status: domain.WithdrawalStatusCompleted, Method: domain.PayoutMethodCBE, RequestedAt: now.Add(-24 * time.Hour)},
		{UID: "wd_003", Amount: 2000, FeeAmount: 100, Status: domain.WithdrawalStatusRejected, Method: domain.PayoutMethodTelebirr, RequestedAt: now.Add(-48 * time.Hour)},
	}
}

// ==================== List Tests ====================

func TestHistoryService_List_FiltersSnapshotLocally(t *testing.T) {
	d := setupHistoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	items := testWithdrawals()
	// Two filtered reads against one snapshot; no ledger call.
	d.cache.EXPECT().Get(ctx, "user-1").Return(items, true, nil).Times(2)

	pending, err := d.svc.List(ctx, "user-1", domain.WithdrawalStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "wd_001", pending[0].UID)

	all, err := d.svc.List(ctx, "user-1", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestHistoryService_List_MissFetchesFromLedger(t *testing.T) {
	d := setupHistoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	items := testWithdrawals()
	d.cache.EXPECT().Get(ctx, "user-1").Return(nil, false, nil)
	d.ledger.EXPECT().ListWithdrawals(ctx, "user-1").Return(items, nil)
	d.cache.EXPECT().Set(ctx, "user-1", items, historySnapshotTTL).Return(nil)

	got, err := d.svc.List(ctx, "user-1", "")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestHistoryService_List_UnknownStatusRejected(t *testing.T) {
	d := setupHistoryService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.List(context.Background(), "user-1", "exploded")
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "VAL_001", appErr.Code)
	assert.Equal(t, "status", appErr.Field)
}

// ==================== Refresh Tests ====================

func TestHistoryService_Refresh_DiscardsAndRefetches(t *testing.T) {
	d := setupHistoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	items := testWithdrawals()
	d.cache.EXPECT().Invalidate(ctx, "user-1").Return(nil)
	d.ledger.EXPECT().ListWithdrawals(ctx, "user-1").Return(items, nil)
	d.cache.EXPECT().Set(ctx, "user-1", items, historySnapshotTTL).Return(nil)

	got, err := d.svc.Refresh(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestHistoryService_Refresh_LedgerDown(t *testing.T) {
	d := setupHistoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.cache.EXPECT().Invalidate(ctx, "user-1").Return(nil)
	d.ledger.EXPECT().ListWithdrawals(ctx, "user-1").Return(nil, apperror.ErrLedgerUnavailable(assert.AnError))

	_, err := d.svc.Refresh(ctx, "user-1")
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "NET_001", appErr.Code)
}

// ==================== Cancel Tests ====================

func TestHistoryService_Cancel_Success(t *testing.T) {
	d := setupHistoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.cache.EXPECT().Get(ctx, "user-1").Return(testWithdrawals(), true, nil)
	d.ledger.EXPECT().CancelWithdrawal(ctx, "user-1", "wd_001").Return(nil)
	d.audit.EXPECT().Record(ctx, gomock.Any()).Do(func(_ context.Context, entry *domain.AuditEntry) {
		assert.Equal(t, domain.AuditActionCancelWithdrawal, entry.Action)
		assert.Equal(t, "wd_001", entry.ResourceID)
		assert.Equal(t, "ok", entry.Outcome)
	})
	d.cache.EXPECT().Invalidate(ctx, "user-1").Return(nil)

	err := d.svc.Cancel(ctx, "user-1", "wd_001")
	require.NoError(t, err)
}

func TestHistoryService_Cancel_TerminalRejectedLocally(t *testing.T) {
	d := setupHistoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.cache.EXPECT().Get(ctx, "user-1").Return(testWithdrawals(), true, nil)
	// Completed request: rejected before any upstream call.

	err := d.svc.Cancel(ctx, "user-1", "wd_002")
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "BIZ_004", appErr.Code)
}

func TestHistoryService_Cancel_RaceLostUpstream(t *testing.T) {
	d := setupHistoryService(t)
	defer d.ctrl.Finish()

	// The snapshot still says pending but the ledger already advanced the
	// request. The upstream rejection wins and the snapshot is discarded.
	ctx := context.Background()
	d.cache.EXPECT().Get(ctx, "user-1").Return(testWithdrawals(), true, nil)
	d.ledger.EXPECT().CancelWithdrawal(ctx, "user-1", "wd_001").Return(apperror.ErrCancelNotAllowed())
	d.audit.EXPECT().Record(ctx, gomock.Any()).Do(func(_ context.Context, entry *domain.AuditEntry) {
		assert.Equal(t, "BIZ_004", entry.Outcome)
	})
	d.cache.EXPECT().Invalidate(ctx, "user-1").Return(nil)

	err := d.svc.Cancel(ctx, "user-1", "wd_001")
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "BIZ_004", appErr.Code)
}

func TestHistoryService_Cancel_MissingUID(t *testing.T) {
	d := setupHistoryService(t)
	defer d.ctrl.Finish()

	err := d.svc.Cancel(context.Background(), "user-1", "")
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "VAL_001", appErr.Code)
}

// ==================== Balance Tests ====================

func TestHistoryService_Balance_NeverCached(t *testing.T) {
	d := setupHistoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	balance := &domain.Balance{Available: 42000, Pending: 10000, OnHold: 0}
	// Two calls, two ledger round-trips.
	d.ledger.EXPECT().GetBalance(ctx, "user-1").Return(balance, nil).Times(2)

	got, err := d.svc.Balance(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(42000), got.Available)

	_, err = d.svc.Balance(ctx, "user-1")
	require.NoError(t, err)
}
