package ports

import (
	"context"

	"medical-directory/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByPhone(ctx context.Context, phone string) (*model.User, error)
	FindByEmailOrPhone(ctx context.Context, email, phone string) (*model.User, error)
	UpdatePassword(ctx context.Context, id, newPasswordHash string) error
}
