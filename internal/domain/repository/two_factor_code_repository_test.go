package repository

import (
	"context"
	"testing"
	"time"

	"calendo/internal/domain/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgTwoFactorCodeRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPgTwoFactorCodeRepository(db)
	code := &model.TwoFactorCode{
		UserID:    "u-1",
		Code:      "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	mock.ExpectQuery(`INSERT INTO two_factor_codes`).
		WithArgs(code.UserID, code.Code, code.ExpiresAt, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	require.NoError(t, repo.Create(context.Background(), code))
	assert.Equal(t, int64(7), code.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgTwoFactorCodeRepository_Consume(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPgTwoFactorCodeRepository(db)
	now := time.Now()

	// One row claimed.
	mock.ExpectExec(`UPDATE two_factor_codes SET used = true`).
		WithArgs("u-1", "123456", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	claimed, err := repo.Consume(context.Background(), "u-1", "123456", now)
	require.NoError(t, err)
	assert.True(t, claimed)

	// No matching unused, unexpired row.
	mock.ExpectExec(`UPDATE two_factor_codes SET used = true`).
		WithArgs("u-1", "123456", now).
		WillReturnResult(sqlmock.NewResult(0, 0))

	claimed, err = repo.Consume(context.Background(), "u-1", "123456", now)
	require.NoError(t, err)
	assert.False(t, claimed)

	assert.NoError(t, mock.ExpectationsWereMet())
}
