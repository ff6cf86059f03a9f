package ports

import (
	"context"
	"time"

	"medical-directory/internal/model"
	"medical-directory/internal/security"
)

type JWTRepositoryInterface interface {
	ReplaceForUser(ctx context.Context, refreshToken *model.RefreshToken) error
	Consume(ctx context.Context, token string) (*model.RefreshToken, error)
	DeleteByToken(ctx context.Context, token string) (int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type JWTServiceInterface interface {
	GenerateTokensPair(userID, email string) (*model.TokensPair, error)
	ParseAccessToken(tokenStr string) (*security.Claims, error)
	ParseRefreshToken(tokenStr string) (*security.Claims, error)
	RefreshTokenTTL() time.Duration
}
