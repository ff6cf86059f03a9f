package handler

import (
	"context"
	"net/http"
	"time"

	"medical-directory/internal/model/requestresponse"
	"medical-directory/internal/util"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db        Pinger
	responder *util.Responder
}

func NewHealthHandler(db Pinger, responder *util.Responder) *HealthHandler {
	return &HealthHandler{db, responder}
}

// Health godoc
// @Summary Liveness and database check
// @Tags Health
// @Produce json
// @Success 200 {object} requestresponse.Envelope{data=requestresponse.HealthData}
// @Failure 503 {object} requestresponse.Envelope
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.responder.Fail(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	h.responder.Success(w, http.StatusOK, "", requestresponse.HealthData{Status: "ok"})
}
