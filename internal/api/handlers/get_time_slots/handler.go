package get_time_slots

import (
	"net/http"

	"github.com/docaid/DocAid-BookingService/internal/api/handlers"
)

type Handler struct {
	slots  SlotProvider
	logger Logger
}

func NewHandler(slots SlotProvider, logger Logger) *Handler {
	return &Handler{
		slots:  slots,
		logger: logger,
	}
}

// Handle GET /api/v1/time-slots
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slots := h.slots.Slots()

	h.logger.Info("GET /time-slots - Slots retrieved successfully: count=%d", len(slots))
	handlers.RespondJSON(w, http.StatusOK, FromSlots(slots))
}
