package ports

import (
	"context"

	"medical-directory/internal/model"
)

// CacheRepository : Redis layer for the doctor directory
type CacheRepository interface {
	SetDoctors(ctx context.Context, filter model.DoctorFilter, doctors []model.Doctor) error
	GetDoctors(ctx context.Context, filter model.DoctorFilter) ([]model.Doctor, error)
	SetSpecialties(ctx context.Context, specialties []string) error
	GetSpecialties(ctx context.Context) ([]string, error)
	InvalidateDoctors(ctx context.Context) error
}
