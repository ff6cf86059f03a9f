package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"medical-directory/internal/apperror"
	"medical-directory/internal/model"
	"medical-directory/internal/ports"
	"medical-directory/internal/security"
	"medical-directory/internal/util"
)

// TokenService : issues token pairs and keeps the refresh_tokens table in step
// with them. The persisted row is the source of truth for refresh validity.
type TokenService struct {
	jwtService     ports.JWTServiceInterface
	jwtRepository  ports.JWTRepositoryInterface
	userRepository ports.UserRepository
	now            func() time.Time
}

func NewTokenService(
	jwtService ports.JWTServiceInterface,
	jwtRepository ports.JWTRepositoryInterface,
	userRepository ports.UserRepository,
) *TokenService {
	return &TokenService{
		jwtService:     jwtService,
		jwtRepository:  jwtRepository,
		userRepository: userRepository,
		now:            time.Now,
	}
}

// WithClock : replaces the time source, used by tests
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// IssueTokenPair : signs a new pair and stores its refresh token as the only
// live one for the user
func (s *TokenService) IssueTokenPair(ctx context.Context, userID, email string) (*model.TokensPair, error) {
	tokens, err := s.jwtService.GenerateTokensPair(userID, email)
	if err != nil {
		return nil, fmt.Errorf("[TokenService] generating tokens: %w", err)
	}

	refreshToken := &model.RefreshToken{
		Token:     tokens.RefreshToken,
		UserID:    userID,
		ExpiresAt: s.now().Add(s.jwtService.RefreshTokenTTL()),
	}
	if err := s.jwtRepository.ReplaceForUser(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("[TokenService] saving refresh token: %w", err)
	}

	return tokens, nil
}

// VerifyAccess : claims of a valid access token, false for anything else
func (s *TokenService) VerifyAccess(token string) (*security.Claims, bool) {
	claims, err := s.jwtService.ParseAccessToken(token)
	if err != nil {
		return nil, false
	}
	return claims, true
}

// RotateRefresh exchanges a refresh token for a new pair.
// The stored row is consumed before anything else is checked, so a token
// can be rotated at most once even under concurrent requests, and the
// expired and orphaned cases leave no row behind.
func (s *TokenService) RotateRefresh(ctx context.Context, refreshToken string) (*model.RotationResult, error) {
	if _, err := s.jwtService.ParseRefreshToken(refreshToken); err != nil {
		log.Printf("[TokenService] refresh token rejected: %v", err)
		return nil, apperror.ErrInvalidToken
	}

	stored, err := s.jwtRepository.Consume(ctx, refreshToken)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("[TokenService] consuming refresh token: %w", err)
	}

	if stored.Expired(s.now()) {
		log.Printf("[TokenService] refresh token of user %s expired at %s", stored.UserID, stored.ExpiresAt.Format(time.RFC3339))
		return nil, apperror.ErrTokenExpired
	}

	user, err := s.userRepository.FindByID(ctx, stored.UserID)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.ErrTokenUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("[TokenService] loading token owner: %w", err)
	}

	tokens, err := s.IssueTokenPair(ctx, user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &model.RotationResult{Tokens: tokens, User: user.Public()}, nil
}

// Revoke : deletes the refresh token. An unknown token is not an error.
func (s *TokenService) Revoke(ctx context.Context, refreshToken string) error {
	deleted, err := s.jwtRepository.DeleteByToken(ctx, refreshToken)
	if err != nil {
		return fmt.Errorf("[TokenService] revoking refresh token: %w", err)
	}
	if deleted == 0 {
		log.Printf("[TokenService] revoke: refresh token was already gone")
	}
	return nil
}

// PurgeExpired : removes refresh tokens past their expiry
func (s *TokenService) PurgeExpired(ctx context.Context) (int64, error) {
	deleted, err := s.jwtRepository.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, util.LogError("[TokenService] purging expired refresh tokens", err)
	}
	return deleted, nil
}
