package get_available_doctors

import (
	"context"

	getAvailableDoctors "github.com/docaid/DocAid-BookingService/internal/usecase/get_available_doctors"
)

type GetAvailableDoctorsUseCase interface {
	Execute(ctx context.Context, req *getAvailableDoctors.Request) (*getAvailableDoctors.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
