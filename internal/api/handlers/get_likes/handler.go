package get_likes

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/docaid/DocAid-BookingService/internal/api/handlers"
	"github.com/docaid/DocAid-BookingService/internal/api/middleware"
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

// Handle GET /api/v1/doctors/{doctorId}/likes
// Авторизация опциональна: для анонимного запроса liked всегда false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]
	userID, _ := middleware.GetUserID(r.Context())

	result, err := h.service.Likes(r.Context(), doctorID, userID)
	if err != nil {
		if errors.Is(err, feedback.ErrDoctorNotFound) {
			h.logger.Warn("GET /doctors/{id}/likes - Doctor not found: doctor_id=%s", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)
			return
		}
		h.logger.Error("GET /doctors/{id}/likes - Failed to get likes: doctor_id=%s, error=%v", doctorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /doctors/{id}/likes - Likes retrieved: doctor_id=%s, count=%d", doctorID, result.Count)
	handlers.RespondJSON(w, http.StatusOK, result)
}
