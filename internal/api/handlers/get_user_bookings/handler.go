package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/docaid/DocAid-BookingService/internal/api/handlers"
	"github.com/docaid/DocAid-BookingService/internal/api/middleware"
	"github.com/docaid/DocAid-BookingService/internal/service/bookings"
	"github.com/docaid/DocAid-BookingService/internal/service/bookings/models"
)

const (
	msgMissingUserID = "missing user id"
	msgInvalidQuery  = "invalid query parameters"
	msgUnavailable   = "bookings are temporarily unavailable, please try again later"
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

// Handle GET /api/v1/bookings
// Query params: status, from, to, order, doctorId, userId (только администратор)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	caller := models.Caller{UserID: userID, Admin: middleware.IsAdmin(r.Context())}

	result, err := h.service.List(r.Context(), ToServiceRequest(r.URL.Query(), caller))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid query: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, bookings.ErrUnavailable):
			h.logger.Error("GET /bookings - Storage unavailable: user_id=%s, error=%v", userID, err)
			handlers.RespondUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("GET /bookings - Failed to get bookings: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: user_id=%s, count=%d, from_cache=%t",
		userID, len(result.Bookings), result.FromCache)
	handlers.RespondJSON(w, http.StatusOK, result)
}
