package get_available_doctors

import (
	"errors"
	"net/http"

	"github.com/docaid/DocAid-BookingService/internal/api/handlers"
	getAvailableDoctors "github.com/docaid/DocAid-BookingService/internal/usecase/get_available_doctors"
)

const (
	msgMissingDate = "date is required"
	msgInvalidDate = "date must be in YYYY-MM-DD format"
)

type Handler struct {
	useCase GetAvailableDoctorsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDoctorsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-doctors
// Query params: date (required, YYYY-MM-DD)
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	result, err := h.useCase.Execute(r.Context(), &getAvailableDoctors.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDoctors.ErrInvalidInput):
			h.logger.Warn("GET /available-doctors - Missing date")
			handlers.RespondFieldError(w, http.StatusBadRequest, handlers.CodeBadRequest, msgMissingDate, "date")

		case errors.Is(err, getAvailableDoctors.ErrInvalidDate):
			h.logger.Warn("GET /available-doctors - Invalid date: %q", date)
			handlers.RespondFieldError(w, http.StatusBadRequest, handlers.CodeBadRequest, msgInvalidDate, "date")

		default:
			h.logger.Error("GET /available-doctors - Failed to get doctors: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-doctors - Doctors retrieved successfully: date=%s, count=%d",
		date, len(result.Doctors))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
