package get_doctor

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/docaid/DocAid-BookingService/internal/api/handlers"
	"github.com/docaid/DocAid-BookingService/internal/service/doctors"
)

const (
	msgNotFound     = "doctor not found"
	msgInvalidLimit = "suggested must be a non-negative integer"
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

// Handle GET /api/v1/doctors/{doctorId}
// Query params: suggested (опционально, сколько похожих врачей вернуть)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]

	limit := 0
	if raw := r.URL.Query().Get("suggested"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.logger.Warn("GET /doctors/{id} - Invalid suggested limit: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.service.Get(doctorID, limit)
	if err != nil {
		if errors.Is(err, doctors.ErrDoctorNotFound) {
			h.logger.Warn("GET /doctors/{id} - Doctor not found: doctor_id=%s", doctorID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /doctors/{id} - Failed to get doctor: doctor_id=%s, error=%v", doctorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /doctors/{id} - Doctor retrieved successfully: doctor_id=%s, suggested=%d",
		doctorID, len(result.Suggested))
	handlers.RespondJSON(w, http.StatusOK, result)
}
