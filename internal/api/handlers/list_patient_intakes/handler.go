package list_patient_intakes

import (
	"errors"
	"net/http"

	"github.com/docaid/DocAid-BookingService/internal/api/handlers"
	"github.com/docaid/DocAid-BookingService/internal/api/middleware"
	"github.com/docaid/DocAid-BookingService/internal/service/intake"
	"github.com/docaid/DocAid-BookingService/internal/service/intake/models"
)

const (
	msgMissingUserID = "missing user id"
	msgAccessDenied  = "only clinic staff can view patient intakes"
)

type Handler struct {
	service IntakeService
	logger  Logger
}

func NewHandler(service IntakeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/patient-intake?visitType=
// Только для администратора
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /patient-intake - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListIntakeRequest{
		VisitType: r.URL.Query().Get("visitType"),
		Admin:     middleware.IsAdmin(r.Context()),
	})
	if err != nil {
		var fieldErr *intake.FieldError
		switch {
		case errors.Is(err, intake.ErrAccessDenied):
			h.logger.Warn("GET /patient-intake - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.As(err, &fieldErr):
			handlers.RespondFieldError(w, http.StatusBadRequest, fieldErr.Code(), fieldErr.Message(), fieldErr.Field)

		default:
			h.logger.Error("GET /patient-intake - Failed to list intakes: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /patient-intake - Intakes retrieved: user_id=%s, count=%d", userID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
