package create_booking

import (
	createBooking "github.com/docaid/DocAid-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model.
// UserID принимается для совместимости с веб-клиентом и игнорируется:
// владелец брони всегда берётся из аутентификации.
type CreateBookingRequest struct {
	UserID   string  `json:"userId,omitempty"`
	DoctorID string  `json:"doctorId"`
	Date     string  `json:"date"`     // "2025-06-10"
	TimeSlot string  `json:"timeSlot"` // "10:00 AM" или "10:00"
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Разбор даты и слота выполняет use case, чтобы ошибки шли в общем порядке проверок.
func (r *CreateBookingRequest) ToUseCaseRequest(userID string, admin bool) *createBooking.Request {
	return &createBooking.Request{
		UserID:   userID,
		DoctorID: r.DoctorID,
		Date:     r.Date,
		TimeSlot: r.TimeSlot,
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Admin:    admin,
	}
}
