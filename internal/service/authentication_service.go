package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"medical-directory/internal/apperror"
	"medical-directory/internal/model"
	"medical-directory/internal/model/requestresponse"
	"medical-directory/internal/ports"
)

type AuthenticationService struct {
	userRepository ports.UserRepository
	tokenService   ports.TokenService
	hasher         ports.PasswordHasher
}

func NewAuthenticationService(
	userRepository ports.UserRepository,
	tokenService ports.TokenService,
	hasher ports.PasswordHasher,
) *AuthenticationService {
	return &AuthenticationService{
		userRepository: userRepository,
		tokenService:   tokenService,
		hasher:         hasher,
	}
}

// Register validates the request, creates the user and issues its first token pair.
// Checks run in order and the first failure is returned:
// required fields, email format, password length, phone format, uniqueness.
func (s *AuthenticationService) Register(ctx context.Context, request *requestresponse.RegisterRequest) (*requestresponse.AuthData, error) {
	missing := missingFields(
		field{"fullName", request.FullName},
		field{"email", request.Email},
		field{"phone", request.Phone},
		field{"password", request.Password},
	)
	if len(missing) > 0 {
		return nil, apperror.Validation("missing required fields: " + strings.Join(missing, ", "))
	}

	if !validEmail(request.Email) {
		return nil, apperror.Validation("invalid email format")
	}
	if !validPassword(request.Password) {
		return nil, apperror.Validation("password must be at least 6 characters")
	}
	if !validPhone(request.Phone) {
		return nil, apperror.Validation("invalid phone format")
	}

	email := normalizeEmail(request.Email)
	phone := strings.TrimSpace(request.Phone)

	existing, err := s.userRepository.FindByEmailOrPhone(ctx, email, phone)
	switch {
	case err == nil:
		conflictField := "phone"
		if existing.Email == email {
			conflictField = "email"
		}
		return nil, apperror.Conflict("a user with this " + conflictField + " already exists")
	case !errors.Is(err, apperror.ErrNotFound):
		return nil, fmt.Errorf("[AuthService] uniqueness check: %w", err)
	}

	hash, err := s.hasher.Hash(request.Password)
	if err != nil {
		return nil, fmt.Errorf("[AuthService] hashing password: %w", err)
	}

	created, err := s.userRepository.CreateUser(ctx, &model.User{
		ID:           uuid.NewString(),
		FullName:     strings.TrimSpace(request.FullName),
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, fmt.Errorf("[AuthService] creating user: %w", err)
	}

	tokens, err := s.tokenService.IssueTokenPair(ctx, created.ID, created.Email)
	if err != nil {
		return nil, err
	}

	return &requestresponse.AuthData{User: created.Public(), Tokens: tokens}, nil
}

// Login : an unknown identifier and a wrong password fail with the same error
func (s *AuthenticationService) Login(ctx context.Context, request *requestresponse.LoginRequest) (*requestresponse.AuthData, error) {
	email := normalizeEmail(request.Email)
	phone := strings.TrimSpace(request.Phone)
	if (email == "" && phone == "") || request.Password == "" {
		return nil, apperror.Validation("email or phone and password are required")
	}

	user, err := s.userRepository.FindByEmailOrPhone(ctx, email, phone)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("[AuthService] user lookup: %w", err)
	}

	if !s.hasher.Verify(request.Password, user.PasswordHash) {
		return nil, apperror.ErrInvalidCredentials
	}

	tokens, err := s.tokenService.IssueTokenPair(ctx, user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &requestresponse.AuthData{User: user.Public(), Tokens: tokens}, nil
}

func (s *AuthenticationService) Refresh(ctx context.Context, refreshToken string) (*model.RotationResult, error) {
	if refreshToken == "" {
		return nil, apperror.Validation("refresh token is required")
	}
	return s.tokenService.RotateRefresh(ctx, refreshToken)
}

func (s *AuthenticationService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return apperror.Validation("refresh token is required for logout")
	}
	return s.tokenService.Revoke(ctx, refreshToken)
}

func (s *AuthenticationService) ChangePassword(ctx context.Context, userID string, request *requestresponse.ChangePasswordRequest) error {
	if request.CurrentPassword == "" || request.NewPassword == "" {
		return apperror.Validation("current password and new password are required")
	}
	if !validPassword(request.NewPassword) {
		return apperror.Validation("new password must be at least 6 characters")
	}

	user, err := s.userRepository.FindByID(ctx, userID)
	if errors.Is(err, apperror.ErrNotFound) {
		return apperror.NotFound("user not found")
	}
	if err != nil {
		return fmt.Errorf("[AuthService] user lookup: %w", err)
	}

	if !s.hasher.Verify(request.CurrentPassword, user.PasswordHash) {
		return apperror.Validation("current password is incorrect")
	}

	hash, err := s.hasher.Hash(request.NewPassword)
	if err != nil {
		return fmt.Errorf("[AuthService] hashing password: %w", err)
	}

	err = s.userRepository.UpdatePassword(ctx, user.ID, hash)
	if errors.Is(err, apperror.ErrNotFound) {
		return apperror.NotFound("user not found")
	}
	return err
}

func (s *AuthenticationService) CheckEmailAvailability(ctx context.Context, email string) (*requestresponse.EmailAvailabilityData, error) {
	if email == "" {
		return nil, apperror.Validation("email is required")
	}
	if !validEmail(email) {
		return nil, apperror.Validation("invalid email format")
	}

	available, err := s.available(s.userRepository.FindByEmail(ctx, normalizeEmail(email)))
	if err != nil {
		return nil, err
	}
	return &requestresponse.EmailAvailabilityData{Available: available, Email: email}, nil
}

func (s *AuthenticationService) CheckPhoneAvailability(ctx context.Context, phone string) (*requestresponse.PhoneAvailabilityData, error) {
	if phone == "" {
		return nil, apperror.Validation("phone is required")
	}
	if !validPhone(phone) {
		return nil, apperror.Validation("invalid phone format")
	}

	available, err := s.available(s.userRepository.FindByPhone(ctx, strings.TrimSpace(phone)))
	if err != nil {
		return nil, err
	}
	return &requestresponse.PhoneAvailabilityData{Available: available, Phone: phone}, nil
}

func (s *AuthenticationService) available(_ *model.User, err error) (bool, error) {
	if errors.Is(err, apperror.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("[AuthService] availability check: %w", err)
	}
	return false, nil
}
