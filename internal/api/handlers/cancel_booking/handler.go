package cancel_booking

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

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
// Повторная отмена возвращает 200 с уже отменённым бронированием.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	caller := models.Caller{UserID: userID, Admin: middleware.IsAdmin(r.Context())}

	// Отменяем бронирование
	booking, err := h.service.Cancel(r.Context(), bookingID, caller)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking ID: %q", bookingID)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: booking_id=%s, user_id=%s",
				bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled: booking_id=%d, user_id=%s",
		booking.ID, userID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
