package submit_patient_intake

import (
	"errors"
	"net/http"

	"github.com/docaid/DocAid-BookingService/internal/api/handlers"
	"github.com/docaid/DocAid-BookingService/internal/api/middleware"
	"github.com/docaid/DocAid-BookingService/internal/service/intake"
)

const msgInvalidRequestBody = "invalid request body"

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

// Handle POST /api/v1/patient-intake
// Авторизация опциональна: для вошедшего пользователя запоминается его id
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	var req SubmitIntakeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /patient-intake - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Submit(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		var fieldErr *intake.FieldError
		if errors.As(err, &fieldErr) {
			h.logger.Warn("POST /patient-intake - Validation failed: kind=%s, field=%s", fieldErr.Code(), fieldErr.Field)
			handlers.RespondFieldError(w, http.StatusBadRequest, fieldErr.Code(), fieldErr.Message(), fieldErr.Field)
			return
		}
		h.logger.Error("POST /patient-intake - Failed to save intake: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /patient-intake - Intake saved: intake_id=%s, visit_type=%s", result.ID, result.VisitType)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
