package transaction

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunray-eu/payment-service/pkg/domain"
	"github.com/sunray-eu/payment-service/pkg/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() }) //nolint:errcheck

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestCreate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := New(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "transactions"`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), repository.TransactionCreate{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		Amount:           decimal.RequireFromString("100.00"),
		Currency:         "USD",
		Provider:         "paypal",
		Status:           domain.StatusNew,
		PaymentLink:      "https://paypal.example/approve/1",
		PendingReference: "ORDER-1",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := New(db)
	id := uuid.New()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "amount", "currency", "provider",
		"status", "payment_link", "pending_reference",
	}).AddRow(
		id.String(), uuid.New().String(), "100.00", "USD", "paypal",
		"processing", "https://paypal.example/approve/1", "ORDER-1",
	)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "transactions" WHERE id = $1`)).
		WithArgs(id, 1).
		WillReturnRows(rows)

	tx, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, tx.ID)
	assert.Equal(t, domain.StatusProcessing, tx.Status)
	assert.Equal(t, "ORDER-1", tx.PendingReference)
	assert.True(t, decimal.RequireFromString("100.00").Equal(tx.Amount))
}

func TestGet_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := New(db)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "transactions"`)).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestUpdateStatus_CompareAndSet(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := New(db)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "transactions"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), id, repository.StatusUpdate{
		From:                  domain.StatusProcessing,
		To:                    domain.StatusCompleted,
		ClearPendingReference: true,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_ConflictWhenRowMoved(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := New(db)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "transactions"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), id, repository.StatusUpdate{
		From: domain.StatusNew,
		To:   domain.StatusProcessing,
	})
	assert.ErrorIs(t, err, domain.ErrStatusConflict)
}
