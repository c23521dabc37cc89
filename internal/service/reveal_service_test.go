package service

import (
	"context"
	"testing"

	"payout-gateway/internal/core/domain"
	"payout-gateway/internal/core/ports/mocks"
	"payout-gateway/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRevealService_Reveal_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockLedgerClient(ctrl)
	audit := mocks.NewMockAuditService(ctrl)
	svc := NewRevealService(ledger, audit, newTestLogger())

	ctx := context.Background()
	ledger.EXPECT().RevealFields(ctx, "user-1", "1234").Return(&domain.RevealedFields{
		AccountName:   "Abebe Bikila",
		AccountNumber: "10002345678901",
	}, nil)
	audit.EXPECT().Record(ctx, gomock.Any()).Do(func(_ context.Context, entry *domain.AuditEntry) {
		assert.Equal(t, domain.AuditActionRevealFields, entry.Action)
		assert.Equal(t, "ok", entry.Outcome)
	})

	fields, err := svc.Reveal(ctx, "user-1", "1234")
	require.NoError(t, err)
	assert.Equal(t, "10002345678901", fields.AccountNumber)
}

func TestRevealService_Reveal_MalformedPin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockLedgerClient(ctrl)
	svc := NewRevealService(ledger, nil, newTestLogger())

	// Never reaches the ledger: no EXPECT on RevealFields.
	for _, pin := range []string{"", "12", "12345", "12a4", "abcd"} {
		_, err := svc.Reveal(context.Background(), "user-1", pin)
		require.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		require.True(t, ok)
		assert.Equal(t, "VAL_004", appErr.Code)
	}
}

func TestRevealService_Reveal_WrongPin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockLedgerClient(ctrl)
	audit := mocks.NewMockAuditService(ctrl)
	svc := NewRevealService(ledger, audit, newTestLogger())

	ctx := context.Background()
	ledger.EXPECT().RevealFields(ctx, "user-1", "9999").Return(nil, apperror.ErrInvalidPin())
	audit.EXPECT().Record(ctx, gomock.Any()).Do(func(_ context.Context, entry *domain.AuditEntry) {
		assert.Equal(t, "PIN_001", entry.Outcome)
	})

	_, err := svc.Reveal(ctx, "user-1", "9999")
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "PIN_001", appErr.Code)
}

func TestValidPinShape(t *testing.T) {
	assert.True(t, validPinShape("0000"))
	assert.True(t, validPinShape("9876"))
	assert.False(t, validPinShape("123"))
	assert.False(t, validPinShape("12345"))
	assert.False(t, validPinShape("12 4"))
	assert.False(t, validPinShape("١٢٣٤")) // non-ASCII digits
}
