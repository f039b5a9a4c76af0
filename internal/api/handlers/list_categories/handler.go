package list_categories

import (
	"net/http"

	"github.com/docaid/DocAid-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/categories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.Categories()

	h.logger.Info("GET /categories - Categories retrieved successfully: count=%d", len(result.Categories))
	handlers.RespondJSON(w, http.StatusOK, result)
}
