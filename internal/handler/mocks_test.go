package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"medical-directory/internal/model"
	"medical-directory/internal/model/requestresponse"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, request *requestresponse.RegisterRequest) (*requestresponse.AuthData, error) {
	args := m.Called(ctx, request)
	if d, ok := args.Get(0).(*requestresponse.AuthData); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, request *requestresponse.LoginRequest) (*requestresponse.AuthData, error) {
	args := m.Called(ctx, request)
	if d, ok := args.Get(0).(*requestresponse.AuthData); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*model.RotationResult, error) {
	args := m.Called(ctx, refreshToken)
	if r, ok := args.Get(0).(*model.RotationResult); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	return m.Called(ctx, refreshToken).Error(0)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID string, request *requestresponse.ChangePasswordRequest) error {
	return m.Called(ctx, userID, request).Error(0)
}

func (m *MockAuthService) CheckEmailAvailability(ctx context.Context, email string) (*requestresponse.EmailAvailabilityData, error) {
	args := m.Called(ctx, email)
	if d, ok := args.Get(0).(*requestresponse.EmailAvailabilityData); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) CheckPhoneAvailability(ctx context.Context, phone string) (*requestresponse.PhoneAvailabilityData, error) {
	args := m.Called(ctx, phone)
	if d, ok := args.Get(0).(*requestresponse.PhoneAvailabilityData); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDoctorService struct {
	mock.Mock
}

func (m *MockDoctorService) ListDoctors(ctx context.Context, specialty, search string) ([]model.Doctor, error) {
	args := m.Called(ctx, specialty, search)
	if d, ok := args.Get(0).([]model.Doctor); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDoctorService) ListSpecialties(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if s, ok := args.Get(0).([]string); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) PingContext(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
