package create_booking

import (
	"context"
	"time"

	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/internal/infra/events"
)

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	Append(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindAll(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
}

// DoctorRepository интерфейс справочника врачей
type DoctorRepository interface {
	GetByID(id string) (*domain.Doctor, error)
}

// ReferenceGenerator интерфейс генератора номеров бронирований
type ReferenceGenerator interface {
	NewReference(demo bool) string
}

// EventPublisher интерфейс издателя событий
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Metrics счётчики бронирований
type Metrics interface {
	BookingCreated(status string)
	BookingRejected(kind string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
