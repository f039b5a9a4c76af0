package get_booking_confirmation

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

// Handle GET /api/v1/bookings/{bookingId}/confirmation
// Отдаёт подтверждение как text/plain, готовое к сохранению в файл.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id}/confirmation - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	caller := models.Caller{UserID: userID, Admin: middleware.IsAdmin(r.Context())}

	text, err := h.service.Confirmation(r.Context(), bookingID, caller)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/confirmation - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id}/confirmation - Access denied: booking_id=%s, user_id=%s",
				bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /bookings/{id}/confirmation - Failed to render: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/confirmation - Confirmation rendered: booking_id=%s", bookingID)
	w.Header().Set("Content-Disposition", `attachment; filename="booking-confirmation.txt"`)
	handlers.RespondText(w, http.StatusOK, text)
}
