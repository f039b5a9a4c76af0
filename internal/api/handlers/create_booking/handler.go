package create_booking

import (
	"errors"
	"net/http"

	"github.com/docaid/DocAid-BookingService/internal/api/handlers"
	"github.com/docaid/DocAid-BookingService/internal/api/middleware"
	"github.com/docaid/DocAid-BookingService/internal/service/bookings/models"
	createBooking "github.com/docaid/DocAid-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user id"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.UserID != "" && req.UserID != userID {
		h.logger.Warn("POST /bookings - Body userId ignored: body=%s, auth=%s", req.UserID, userID)
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, middleware.IsAdmin(r.Context())))
	if err != nil {
		var validationErr *createBooking.ValidationError
		switch {
		case errors.As(err, &validationErr) && errors.Is(err, createBooking.ErrDuplicateSlot):
			h.logger.Warn("POST /bookings - Duplicate slot: user_id=%s, date=%s, slot=%s", userID, req.Date, req.TimeSlot)
			handlers.RespondFieldError(w, http.StatusConflict, validationErr.Code(), validationErr.Message(), validationErr.Field)

		case errors.As(err, &validationErr):
			h.logger.Warn("POST /bookings - Validation failed: user_id=%s, kind=%s, field=%s",
				userID, validationErr.Code(), validationErr.Field)
			handlers.RespondFieldError(w, http.StatusBadRequest, validationErr.Code(), validationErr.Message(), validationErr.Field)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, doctor_id=%s, error=%v",
				userID, req.DoctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, reference=%s, user_id=%s",
		result.Booking.ID, result.Booking.Reference, userID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainBooking(result.Booking))
}
