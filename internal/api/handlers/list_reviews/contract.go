package list_reviews

import (
	"context"

	"github.com/docaid/DocAid-BookingService/internal/service/feedback/models"
)

type FeedbackService interface {
	ListReviews(ctx context.Context, doctorID string) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
