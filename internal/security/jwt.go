package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"medical-directory/config"
	"medical-directory/internal/model"
	"medical-directory/internal/util"
)

// Claims : payload shared by access and refresh tokens
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService signs and parses tokens. Access and refresh tokens use separate
// secrets, so one can never be accepted in place of the other.
type JWTService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
	now           func() time.Time
}

func NewJWTService(cfg *config.JWTConfig) (*JWTService, error) {
	accessTTL, err := time.ParseDuration(cfg.AccessTokenTTL)
	if err != nil {
		return nil, util.LogError("invalid access token ttl", err)
	}
	refreshTTL, err := time.ParseDuration(cfg.RefreshTokenTTL)
	if err != nil {
		return nil, util.LogError("invalid refresh token ttl", err)
	}

	return &JWTService{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		issuer:        cfg.Issuer,
		now:           time.Now,
	}, nil
}

// WithClock : replaces the time source, used by tests
func (s *JWTService) WithClock(now func() time.Time) *JWTService {
	s.now = now
	return s
}

func (s *JWTService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}

// GenerateTokensPair : signs an access and a refresh token for the user
func (s *JWTService) GenerateTokensPair(userID, email string) (*model.TokensPair, error) {
	accessToken, err := s.sign(userID, email, s.accessTTL, s.accessSecret)
	if err != nil {
		return nil, util.LogError("signing access token failed", err)
	}

	refreshToken, err := s.sign(userID, email, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return nil, util.LogError("signing refresh token failed", err)
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *JWTService) sign(userID, email string, ttl time.Duration, secret []byte) (string, error) {
	issuedAt := s.now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(secret)
}

func (s *JWTService) ParseAccessToken(tokenStr string) (*Claims, error) {
	return s.parse(tokenStr, s.accessSecret)
}

func (s *JWTService) ParseRefreshToken(tokenStr string) (*Claims, error) {
	return s.parse(tokenStr, s.refreshSecret)
}

func (s *JWTService) parse(tokenStr string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	token, err := parser.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == "" {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
