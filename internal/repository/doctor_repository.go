package repository

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"medical-directory/config"
	"medical-directory/internal/model"
	"medical-directory/internal/util"
)

type DoctorRepository struct {
	*config.Database
}

func NewDoctorRepository(database *config.Database) *DoctorRepository {
	return &DoctorRepository{database}
}

// List : exact specialty match and case-insensitive substring search on first
// or last name, ordered by last name
func (r *DoctorRepository) List(ctx context.Context, filter model.DoctorFilter) ([]model.Doctor, error) {
	query := `
		SELECT id, first_name, last_name, specialty, avatar, email, phone, address
		FROM doctors
		WHERE ($1 = '' OR specialty = $1)
		  AND ($2 = '' OR first_name ILIKE $3 OR last_name ILIKE $3)
		ORDER BY last_name ASC, first_name ASC
	`

	doctors := []model.Doctor{}
	err := sqlx.SelectContext(ctx, r.DB, &doctors, query,
		filter.Specialty, filter.Search, "%"+escapeLike(filter.Search)+"%")
	if err != nil {
		return nil, util.LogError("[DoctorRepo] listing doctors failed", err)
	}

	return doctors, nil
}

func (r *DoctorRepository) Specialties(ctx context.Context) ([]string, error) {
	specialties := []string{}
	err := sqlx.SelectContext(ctx, r.DB, &specialties,
		`SELECT DISTINCT specialty FROM doctors ORDER BY specialty ASC`)
	if err != nil {
		return nil, util.LogError("[DoctorRepo] listing specialties failed", err)
	}
	return specialties, nil
}

func (r *DoctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	query := `
		INSERT INTO doctors (id, first_name, last_name, specialty, avatar, email, phone, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.ExecContext(ctx, query,
		doctor.ID,
		doctor.FirstName,
		doctor.LastName,
		doctor.Specialty,
		doctor.Avatar,
		doctor.Email,
		doctor.Phone,
		doctor.Address)
	if err != nil {
		return util.LogError("[DoctorRepo] insert failed", err)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
