package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"medical-directory/internal/model"
	"medical-directory/internal/security"
)

// ===== MOCKS =====

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) user(args mock.Arguments) (*model.User, error) {
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	return m.user(m.Called(ctx, user))
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return m.user(m.Called(ctx, email))
}

func (m *MockUserRepository) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	return m.user(m.Called(ctx, phone))
}

func (m *MockUserRepository) FindByEmailOrPhone(ctx context.Context, email, phone string) (*model.User, error) {
	return m.user(m.Called(ctx, email, phone))
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id, newPasswordHash string) error {
	return m.Called(ctx, id, newPasswordHash).Error(0)
}

type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateTokensPair(userID, email string) (*model.TokensPair, error) {
	args := m.Called(userID, email)
	if t, ok := args.Get(0).(*model.TokensPair); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJWTService) ParseAccessToken(tokenStr string) (*security.Claims, error) {
	args := m.Called(tokenStr)
	if c, ok := args.Get(0).(*security.Claims); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJWTService) ParseRefreshToken(tokenStr string) (*security.Claims, error) {
	args := m.Called(tokenStr)
	if c, ok := args.Get(0).(*security.Claims); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJWTService) RefreshTokenTTL() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

type MockJWTRepo struct {
	mock.Mock
}

func (m *MockJWTRepo) ReplaceForUser(ctx context.Context, refreshToken *model.RefreshToken) error {
	return m.Called(ctx, refreshToken).Error(0)
}

func (m *MockJWTRepo) Consume(ctx context.Context, token string) (*model.RefreshToken, error) {
	args := m.Called(ctx, token)
	if t, ok := args.Get(0).(*model.RefreshToken); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJWTRepo) DeleteByToken(ctx context.Context, token string) (int64, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJWTRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) IssueTokenPair(ctx context.Context, userID, email string) (*model.TokensPair, error) {
	args := m.Called(ctx, userID, email)
	if t, ok := args.Get(0).(*model.TokensPair); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTokenService) VerifyAccess(token string) (*security.Claims, bool) {
	args := m.Called(token)
	claims, _ := args.Get(0).(*security.Claims)
	return claims, args.Bool(1)
}

func (m *MockTokenService) RotateRefresh(ctx context.Context, refreshToken string) (*model.RotationResult, error) {
	args := m.Called(ctx, refreshToken)
	if r, ok := args.Get(0).(*model.RotationResult); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTokenService) Revoke(ctx context.Context, refreshToken string) error {
	return m.Called(ctx, refreshToken).Error(0)
}

type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Verify(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) List(ctx context.Context, filter model.DoctorFilter) ([]model.Doctor, error) {
	args := m.Called(ctx, filter)
	if d, ok := args.Get(0).([]model.Doctor); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDoctorRepository) Specialties(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if s, ok := args.Get(0).([]string); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDoctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	return m.Called(ctx, doctor).Error(0)
}

type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) SetDoctors(ctx context.Context, filter model.DoctorFilter, doctors []model.Doctor) error {
	return m.Called(ctx, filter, doctors).Error(0)
}

func (m *MockCacheRepository) GetDoctors(ctx context.Context, filter model.DoctorFilter) ([]model.Doctor, error) {
	args := m.Called(ctx, filter)
	if d, ok := args.Get(0).([]model.Doctor); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCacheRepository) SetSpecialties(ctx context.Context, specialties []string) error {
	return m.Called(ctx, specialties).Error(0)
}

func (m *MockCacheRepository) GetSpecialties(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if s, ok := args.Get(0).([]string); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCacheRepository) InvalidateDoctors(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GeneratePresignedGetURL(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}
