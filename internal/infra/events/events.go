// Package events publishes booking lifecycle events.
package events

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/docaid/DocAid-BookingService/internal/domain"
)

const (
	TypeBookingCreated   = "booking.created"
	TypeBookingCancelled = "booking.cancelled"
)

// ErrPublish возвращается при ошибке отправки события
var ErrPublish = errors.New("events: failed to publish event")

// BookingPayload данные бронирования в событии
type BookingPayload struct {
	ID              int64   `json:"id"`
	Reference       string  `json:"reference"`
	UserID          string  `json:"user_id"`
	DoctorID        string  `json:"doctor_id"`
	DoctorName      string  `json:"doctor_name"`
	DoctorSpecialty string  `json:"doctor_specialty"`
	Date            string  `json:"date"`
	TimeSlot        string  `json:"time_slot"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone,omitempty"`
	Status          string  `json:"status"`
	IsDemo          bool    `json:"is_demo"`
}

// Event событие жизненного цикла бронирования
type Event struct {
	ID         string         `json:"event_id"`
	Type       string         `json:"event_type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Booking    BookingPayload `json:"booking"`
}

// Key ключ партиционирования: номер бронирования
func (e Event) Key() string {
	return e.Booking.Reference
}

// NewBookingEvent строит событие для бронирования
func NewBookingEvent(eventType string, booking *domain.Booking, occurredAt time.Time) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: occurredAt,
		Booking: BookingPayload{
			ID:              booking.ID,
			Reference:       booking.Reference,
			UserID:          booking.UserID,
			DoctorID:        booking.DoctorID,
			DoctorName:      booking.DoctorName,
			DoctorSpecialty: booking.DoctorSpecialty,
			Date:            booking.Date.Format(domain.DateFormat),
			TimeSlot:        booking.TimeSlot.Label(),
			Name:            booking.Name,
			Email:           booking.Email,
			Phone:           booking.Phone,
			Status:          string(booking.Status),
			IsDemo:          booking.IsDemo,
		},
	}
}

// NoopPublisher используется, когда брокеры не настроены
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event Event) error { return nil }

func (NoopPublisher) Close() error { return nil }
