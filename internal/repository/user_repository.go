package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"medical-directory/config"
	"medical-directory/internal/apperror"
	"medical-directory/internal/model"
	"medical-directory/internal/util"
)

const userColumns = `id, full_name, email, phone, password_hash, created_at`

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : inserts the user. Unique violations come back as *pq.Error.
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (id, full_name, email, phone, password_hash)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING ` + userColumns

	createdUser := &model.User{}
	err := sqlx.GetContext(ctx, r.DB, createdUser, query,
		user.ID, user.FullName, user.Email, user.Phone, user.PasswordHash)
	if err != nil {
		return nil, util.LogError("[UserRepo] insert failed", err)
	}

	return createdUser, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepository) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE phone = $1`, phone)
}

// FindByEmailOrPhone : first user matching either identifier; an empty identifier never matches
func (r *UserRepository) FindByEmailOrPhone(ctx context.Context, email, phone string) (*model.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1 <> '' AND email = $1) OR ($2 <> '' AND phone = $2)
		ORDER BY created_at ASC
		LIMIT 1
	`
	return r.findOne(ctx, query, email, phone)
}

// UpdatePassword : replaces the stored hash
func (r *UserRepository) UpdatePassword(ctx context.Context, id, newPasswordHash string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE users SET password_hash = $2 WHERE id = $1`, id, newPasswordHash)
	if err != nil {
		return util.LogError("[UserRepo] password update failed", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[UserRepo] reading affected rows failed", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("[UserRepo] user %s: %w", id, apperror.ErrNotFound)
	}

	return nil
}

func (r *UserRepository) findOne(ctx context.Context, query string, args ...interface{}) (*model.User, error) {
	var user model.User
	err := sqlx.GetContext(ctx, r.DB, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("[UserRepo] user: %w", apperror.ErrNotFound)
	}
	if err != nil {
		return nil, util.LogError("[UserRepo] user lookup failed", err)
	}
	return &user, nil
}
