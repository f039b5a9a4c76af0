package list_doctors

import "github.com/docaid/DocAid-BookingService/internal/service/doctors/models"

type DoctorService interface {
	List(specialty string) *models.DoctorListResponse
}

type Logger interface {
	Info(format string, v ...interface{})
}
