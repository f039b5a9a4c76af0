package list_reviews

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/docaid/DocAid-BookingService/internal/api/handlers"
	"github.com/docaid/DocAid-BookingService/internal/service/feedback"
)

const msgDoctorNotFound = "doctor not found"

type Handler struct {
	service FeedbackService
	logger  Logger
}

func NewHandler(service FeedbackService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]

	result, err := h.service.ListReviews(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, feedback.ErrDoctorNotFound) {
			h.logger.Warn("GET /doctors/{id}/reviews - Doctor not found: doctor_id=%s", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)
			return
		}
		h.logger.Error("GET /doctors/{id}/reviews - Failed to list reviews: doctor_id=%s, error=%v", doctorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /doctors/{id}/reviews - Reviews retrieved successfully: doctor_id=%s, count=%d",
		doctorID, len(result.Reviews))
	handlers.RespondJSON(w, http.StatusOK, result)
}
