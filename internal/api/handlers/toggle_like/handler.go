package toggle_like

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/docaid/DocAid-BookingService/internal/api/handlers"
	"github.com/docaid/DocAid-BookingService/internal/api/middleware"
	"github.com/docaid/DocAid-BookingService/internal/service/feedback"
)

const (
	msgMissingUserID  = "missing user id"
	msgDoctorNotFound = "doctor not found"
)

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

// Handle POST /api/v1/doctors/{doctorId}/likes/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /doctors/{id}/likes/toggle - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.ToggleLike(r.Context(), doctorID, userID)
	if err != nil {
		if errors.Is(err, feedback.ErrDoctorNotFound) {
			h.logger.Warn("POST /doctors/{id}/likes/toggle - Doctor not found: doctor_id=%s", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)
			return
		}
		h.logger.Error("POST /doctors/{id}/likes/toggle - Failed to toggle like: doctor_id=%s, error=%v", doctorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /doctors/{id}/likes/toggle - Like toggled: doctor_id=%s, user_id=%s, liked=%t",
		doctorID, userID, result.Liked)
	handlers.RespondJSON(w, http.StatusOK, result)
}
