package add_review

import (
	"context"

	"github.com/docaid/DocAid-BookingService/internal/service/feedback/models"
)

type FeedbackService interface {
	AddReview(ctx context.Context, req *models.AddReviewRequest) (*models.ReviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
