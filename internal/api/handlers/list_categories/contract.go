package list_categories

import "github.com/docaid/DocAid-BookingService/internal/service/doctors/models"

type DoctorService interface {
	Categories() *models.CategoryListResponse
}

type Logger interface {
	Info(format string, v ...interface{})
}
