package handler

import (
	"net/http"

	"medical-directory/internal/model/requestresponse"
	"medical-directory/internal/ports"
	"medical-directory/internal/util"
)

type DoctorHandler struct {
	ports.DoctorService
	responder *util.Responder
}

func NewDoctorHandler(doctorService ports.DoctorService, responder *util.Responder) *DoctorHandler {
	return &DoctorHandler{doctorService, responder}
}

// ListDoctors godoc
// @Summary List doctors
// @Description Filters by exact specialty ("all" or empty means any) and by a case-insensitive search on first or last name. Sorted by last name.
// @Tags Doctors
// @Produce json
// @Param specialty query string false "Specialty" example(Cardiologie)
// @Param search query string false "Part of the first or last name"
// @Success 200 {object} requestresponse.Envelope{data=requestresponse.DoctorsData}
// @Failure 500 {object} requestresponse.Envelope
// @Router /api/doctors [get]
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	doctors, err := h.DoctorService.ListDoctors(r.Context(), query.Get("specialty"), query.Get("search"))
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "", requestresponse.DoctorsData{
		Doctors: doctors,
		Count:   len(doctors),
	})
}

// ListSpecialties godoc
// @Summary List specialties
// @Tags Doctors
// @Produce json
// @Success 200 {object} requestresponse.Envelope{data=requestresponse.SpecialtiesData}
// @Failure 500 {object} requestresponse.Envelope
// @Router /api/doctors/specialties [get]
func (h *DoctorHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.DoctorService.ListSpecialties(r.Context())
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "", requestresponse.SpecialtiesData{Specialties: specialties})
}
