package get_doctor

import "github.com/docaid/DocAid-BookingService/internal/service/doctors/models"

type DoctorService interface {
	Get(id string, limit int) (*models.DoctorDetailsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
