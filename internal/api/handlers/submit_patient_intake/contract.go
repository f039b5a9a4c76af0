package submit_patient_intake

import (
	"context"

	"github.com/docaid/DocAid-BookingService/internal/service/intake/models"
)

type IntakeService interface {
	Submit(ctx context.Context, req *models.SubmitIntakeRequest) (*models.IntakeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
