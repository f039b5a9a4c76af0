package add_review

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/docaid/DocAid-BookingService/internal/api/handlers"
	"github.com/docaid/DocAid-BookingService/internal/api/middleware"
	"github.com/docaid/DocAid-BookingService/internal/service/feedback"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user id"
	msgDoctorNotFound     = "doctor not found"
	msgInvalidAuthor      = "author name is too long"
)

type Handler struct {
	service FeedbackService
	logger  Logger
}

func NewHandler(service FeedbackService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/doctors/{doctorId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /doctors/{id}/reviews - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AddReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /doctors/{id}/reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	review, err := h.service.AddReview(r.Context(), req.ToServiceRequest(doctorID, userID))
	if err != nil {
		switch {
		case errors.Is(err, feedback.ErrDoctorNotFound):
			h.logger.Warn("POST /doctors/{id}/reviews - Doctor not found: doctor_id=%s", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, feedback.ErrInvalidRating):
			handlers.RespondFieldError(w, http.StatusBadRequest, handlers.CodeBadRequest, feedback.ErrInvalidRating.Error(), "rating")

		case errors.Is(err, feedback.ErrInvalidComment):
			handlers.RespondFieldError(w, http.StatusBadRequest, handlers.CodeBadRequest, feedback.ErrInvalidComment.Error(), "comment")

		case errors.Is(err, feedback.ErrInvalidInput):
			handlers.RespondFieldError(w, http.StatusBadRequest, handlers.CodeBadRequest, msgInvalidAuthor, "authorName")

		default:
			h.logger.Error("POST /doctors/{id}/reviews - Failed to add review: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /doctors/{id}/reviews - Review added: review_id=%s, doctor_id=%s, user_id=%s",
		review.ID, doctorID, userID)
	handlers.RespondJSON(w, http.StatusCreated, review)
}
