package get_booking_confirmation

import (
	"context"

	"github.com/docaid/DocAid-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	Confirmation(ctx context.Context, idOrReference string, caller models.Caller) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
