package requestresponse

import "medical-directory/internal/model"

// DoctorsData : payload of GET /api/doctors
type DoctorsData struct {
	Doctors []model.Doctor `json:"doctors"`
	Count   int            `json:"count" example:"5"`
}

// SpecialtiesData : payload of GET /api/doctors/specialties
type SpecialtiesData struct {
	Specialties []string `json:"specialties" example:"Cardiologie,Dermatologie"`
}
