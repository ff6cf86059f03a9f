package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"medical-directory/config"
	"medical-directory/internal/apperror"
	"medical-directory/internal/model"
	"medical-directory/internal/util"
)

type JWTRepository struct {
	*config.Database
}

func NewJWTRepository(database *config.Database) *JWTRepository {
	return &JWTRepository{database}
}

// ReplaceForUser : deletes every refresh token of the user and stores the new one.
// Both statements run in one transaction, so a user never ends up with two live rows.
func (r *JWTRepository) ReplaceForUser(ctx context.Context, refreshToken *model.RefreshToken) (err error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return util.LogError("[JWTRepo] begin transaction failed", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, refreshToken.UserID); err != nil {
		return util.LogError("[JWTRepo] deleting previous tokens failed", err)
	}

	query := `INSERT INTO refresh_tokens (token, user_id, expires_at) VALUES ($1, $2, $3)`
	if _, err = tx.ExecContext(ctx, query, refreshToken.Token, refreshToken.UserID, refreshToken.ExpiresAt); err != nil {
		return util.LogError("[JWTRepo] inserting refresh token failed", err)
	}

	if err = tx.Commit(); err != nil {
		return util.LogError("[JWTRepo] commit failed", err)
	}
	return nil
}

// Consume : deletes the row and returns it. Of two concurrent callers with the
// same token only one gets the row, the other gets ErrNotFound.
func (r *JWTRepository) Consume(ctx context.Context, token string) (*model.RefreshToken, error) {
	query := `DELETE FROM refresh_tokens WHERE token = $1 RETURNING token, user_id, expires_at, created_at`

	refreshToken := &model.RefreshToken{}
	err := sqlx.GetContext(ctx, r.DB, refreshToken, query, token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("[JWTRepo] refresh token: %w", apperror.ErrNotFound)
	}
	if err != nil {
		return nil, util.LogError("[JWTRepo] consuming refresh token failed", err)
	}

	return refreshToken, nil
}

// DeleteByToken : number of deleted rows, zero is not an error
func (r *JWTRepository) DeleteByToken(ctx context.Context, token string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE token = $1`, token)
	if err != nil {
		return 0, util.LogError("[JWTRepo] deleting refresh token failed", err)
	}
	return result.RowsAffected()
}

func (r *JWTRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE expires_at < $1`, now)
	if err != nil {
		return 0, util.LogError("[JWTRepo] purging expired tokens failed", err)
	}
	return result.RowsAffected()
}
