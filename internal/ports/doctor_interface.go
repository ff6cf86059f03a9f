package ports

import (
	"context"

	"medical-directory/internal/model"
)

// DoctorRepository : SQL layer
type DoctorRepository interface {
	List(ctx context.Context, filter model.DoctorFilter) ([]model.Doctor, error)
	Specialties(ctx context.Context) ([]string, error)
	Create(ctx context.Context, doctor *model.Doctor) error
}

type DoctorService interface {
	ListDoctors(ctx context.Context, specialty, search string) ([]model.Doctor, error)
	ListSpecialties(ctx context.Context) ([]string, error)
}
