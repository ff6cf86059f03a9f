package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medical-directory/internal/apperror"
	"medical-directory/internal/model"
)

func TestJWTRepository_ReplaceForUser(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewJWTRepository(db)
	expires := time.Now().Add(7 * 24 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM refresh_tokens WHERE user_id = \$1`).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO refresh_tokens \(token, user_id, expires_at\) VALUES \(\$1, \$2, \$3\)`).
		WithArgs("tok", "u1", expires).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ReplaceForUser(context.Background(), &model.RefreshToken{Token: "tok", UserID: "u1", ExpiresAt: expires})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJWTRepository_ReplaceForUser_RollsBackOnInsertError(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewJWTRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM refresh_tokens WHERE user_id = \$1`).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO refresh_tokens`).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.ReplaceForUser(context.Background(), &model.RefreshToken{Token: "tok", UserID: "u1", ExpiresAt: time.Now()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJWTRepository_Consume(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewJWTRepository(db)
	expires := time.Now().Add(time.Hour)
	created := time.Now()

	mock.ExpectQuery(`DELETE FROM refresh_tokens WHERE token = \$1 RETURNING token, user_id, expires_at, created_at`).
		WithArgs("tok").
		WillReturnRows(sqlmock.NewRows([]string{"token", "user_id", "expires_at", "created_at"}).
			AddRow("tok", "u1", expires, created))

	row, err := repo.Consume(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", row.UserID)
	assert.Equal(t, expires, row.ExpiresAt)
}

func TestJWTRepository_Consume_NotFound(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewJWTRepository(db)

	mock.ExpectQuery(`DELETE FROM refresh_tokens WHERE token = \$1`).
		WithArgs("gone").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Consume(context.Background(), "gone")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestJWTRepository_DeleteByToken_ZeroRows(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewJWTRepository(db)

	mock.ExpectExec(`DELETE FROM refresh_tokens WHERE token = \$1`).
		WithArgs("garbage").
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.DeleteByToken(context.Background(), "garbage")
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestJWTRepository_DeleteExpired(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewJWTRepository(db)
	now := time.Now()

	mock.ExpectExec(`DELETE FROM refresh_tokens WHERE expires_at < \$1`).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.DeleteExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}
