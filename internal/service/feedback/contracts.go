package feedback

import (
	"context"
	"time"

	"github.com/docaid/DocAid-BookingService/internal/domain"
)

// FeedbackRepository интерфейс хранилища отзывов и лайков
type FeedbackRepository interface {
	AddReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ListReviews(ctx context.Context, doctorID string) ([]*domain.Review, error)
	ToggleLike(ctx context.Context, doctorID, userID string) (domain.LikeSummary, error)
	Likes(ctx context.Context, doctorID, userID string) (domain.LikeSummary, error)
}

// DoctorRepository интерфейс справочника врачей
type DoctorRepository interface {
	GetByID(id string) (*domain.Doctor, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
