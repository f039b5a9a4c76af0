package get_likes

import (
	"context"

	"github.com/docaid/DocAid-BookingService/internal/service/feedback/models"
)

type FeedbackService interface {
	Likes(ctx context.Context, doctorID, userID string) (*models.LikesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
