package doctors

import "github.com/docaid/DocAid-BookingService/internal/domain"

// DoctorRepository интерфейс справочника врачей
type DoctorRepository interface {
	All() []domain.Doctor
	GetByID(id string) (*domain.Doctor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
