package get_available_doctors

import (
	"time"

	"github.com/docaid/DocAid-BookingService/internal/domain"
)

// DoctorRepository интерфейс справочника врачей
type DoctorRepository interface {
	// All возвращает всех врачей в порядке справочника
	All() []domain.Doctor
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
