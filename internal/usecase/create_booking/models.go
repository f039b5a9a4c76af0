package create_booking

import (
	"time"

	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования.
// Дата и время приходят строками, разбор выполняет валидатор.
type Request struct {
	UserID   string  // ID пользователя
	DoctorID string  // ID врача
	Date     string  // Дата в формате YYYY-MM-DD
	TimeSlot string  // Слот "10:00 AM" или "10:00"
	Name     string  // Имя пациента
	Email    string  // Email пациента
	Phone    *string // Телефон (опционально)
	Admin    bool    // Административный вызов: другой начальный статус
}

// Policy настройки создания бронирования
type Policy struct {
	InitialStatus      domain.BookingStatus
	AdminInitialStatus domain.BookingStatus
	DuplicateScope     domain.DuplicateScope
	DemoMode           bool
	Location           *time.Location
}

// DefaultPolicy pending для пользователей, confirmed для администраторов, уникальность по пользователю
func DefaultPolicy() Policy {
	return Policy{
		InitialStatus:      domain.StatusPending,
		AdminInitialStatus: domain.StatusConfirmed,
		DuplicateScope:     domain.DuplicateScopeUser,
		Location:           time.Local,
	}
}

// ValidatedRequest нормализованный запрос, прошедший все проверки кроме дубликата
type ValidatedRequest struct {
	UserID   string
	Doctor   *domain.Doctor
	Date     time.Time
	TimeSlot types.TimeString
	Name     string
	Email    string
	Phone    *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}
