package bookings

import (
	"context"
	"time"

	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/internal/infra/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	FindAll(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	FindByID(ctx context.Context, id int64) (*domain.Booking, error)
	FindByReference(ctx context.Context, reference string) (*domain.Booking, error)
	Update(ctx context.Context, id int64, patch domain.BookingPatch) (*domain.Booking, error)
}

// SnapshotCache последняя удачно прочитанная выборка бронирований
type SnapshotCache interface {
	Put(ctx context.Context, key string, bookings []*domain.Booking) error
	Get(ctx context.Context, key string) ([]*domain.Booking, error)
}

// EventPublisher интерфейс издателя событий
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Metrics счётчики сервиса бронирований
type Metrics interface {
	BookingCancelled()
	CacheFallback(result string)
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
