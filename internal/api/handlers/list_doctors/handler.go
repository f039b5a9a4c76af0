package list_doctors

import (
	"net/http"

	"github.com/docaid/DocAid-BookingService/internal/api/handlers"
)

type Handler struct {
	service DoctorService
	logger  Logger
}

func NewHandler(service DoctorService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors
// Query params: specialty (опционально, название или slug)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	specialty := r.URL.Query().Get("specialty")

	result := h.service.List(specialty)

	h.logger.Info("GET /doctors - Doctors retrieved successfully: specialty=%q, count=%d", specialty, len(result.Doctors))
	handlers.RespondJSON(w, http.StatusOK, result)
}
