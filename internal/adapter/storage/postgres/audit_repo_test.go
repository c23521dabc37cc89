package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"payout-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepository(mock)

	entry := &domain.AuditEntry{
		ID:         uuid.New(),
		UserID:     "user-1",
		Action:     domain.AuditActionSubmitWithdrawal,
		ResourceID: "wd-123",
		Outcome:    "ok",
		Details:    `{"amount":10000}`,
		IPAddress:  "1.2.3.4",
		CreatedAt:  time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO audit_entries").
		WithArgs(entry.ID, entry.UserID, string(entry.Action), entry.ResourceID,
			entry.Outcome, entry.Details, entry.IPAddress, entry.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_Create_DBError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepository(mock)

	mock.ExpectExec("INSERT INTO audit_entries").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	err = repo.Create(context.Background(), &domain.AuditEntry{ID: uuid.New(), CreatedAt: time.Now()})
	assert.Error(t, err)
}

func TestHealthCheck_Ping(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	hc := NewHealthCheck(mock)
	assert.Equal(t, "postgresql", hc.Name())

	mock.ExpectExec("SELECT 1").WillReturnResult(pgxmock.NewResult("SELECT", 1))
	assert.NoError(t, hc.Ping(context.Background()))
}
