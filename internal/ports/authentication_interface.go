package ports

import (
	"context"

	"medical-directory/internal/model"
	"medical-directory/internal/model/requestresponse"
	"medical-directory/internal/security"
)

type AuthenticationService interface {
	Register(ctx context.Context, request *requestresponse.RegisterRequest) (*requestresponse.AuthData, error)
	Login(ctx context.Context, request *requestresponse.LoginRequest) (*requestresponse.AuthData, error)
	Refresh(ctx context.Context, refreshToken string) (*model.RotationResult, error)
	Logout(ctx context.Context, refreshToken string) error
	ChangePassword(ctx context.Context, userID string, request *requestresponse.ChangePasswordRequest) error
	CheckEmailAvailability(ctx context.Context, email string) (*requestresponse.EmailAvailabilityData, error)
	CheckPhoneAvailability(ctx context.Context, phone string) (*requestresponse.PhoneAvailabilityData, error)
}

// TokenService : issuance, verification, rotation and revocation of token pairs
type TokenService interface {
	IssueTokenPair(ctx context.Context, userID, email string) (*model.TokensPair, error)
	VerifyAccess(token string) (*security.Claims, bool)
	RotateRefresh(ctx context.Context, refreshToken string) (*model.RotationResult, error)
	Revoke(ctx context.Context, refreshToken string) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
