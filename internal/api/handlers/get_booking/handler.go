package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/docaid/DocAid-BookingService/internal/api/handlers"
	"github.com/docaid/DocAid-BookingService/internal/api/middleware"
	"github.com/docaid/DocAid-BookingService/internal/service/bookings"
	"github.com/docaid/DocAid-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgNotFound         = "booking not found"
	msgMissingUserID    = "missing user id"
	msgForbidden        = "access denied"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
// bookingId - числовой ID или номер бронирования (REF-...)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	caller := models.Caller{UserID: userID, Admin: middleware.IsAdmin(r.Context())}

	// Получаем бронирование (сервис сам проверит права доступа)
	booking, err := h.service.Get(r.Context(), bookingID, caller)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{id} - Invalid booking ID: %q", bookingID)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id} - Access denied: booking_id=%s, user_id=%s", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /bookings/{id} - Failed to get booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id} - Booking retrieved successfully: booking_id=%d, user_id=%s",
		booking.ID, userID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
