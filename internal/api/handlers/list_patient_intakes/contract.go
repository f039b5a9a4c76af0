package list_patient_intakes

import (
	"context"

	"github.com/docaid/DocAid-BookingService/internal/service/intake/models"
)

type IntakeService interface {
	List(ctx context.Context, req *models.ListIntakeRequest) (*models.IntakeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
