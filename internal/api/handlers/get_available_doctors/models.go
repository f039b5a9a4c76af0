package get_available_doctors

import (
	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/internal/service/doctors/models"
	getAvailableDoctors "github.com/docaid/DocAid-BookingService/internal/usecase/get_available_doctors"
)

// AvailableDoctorsResponse HTTP response model
type AvailableDoctorsResponse struct {
	Date     string                  `json:"date"`
	Weekday  string                  `json:"weekday"`
	Bookable bool                    `json:"bookable"`
	Reason   string                  `json:"reason,omitempty"` // past_date | weekend_date
	Doctors  []models.DoctorResponse `json:"doctors"`
	Slots    []string                `json:"timeSlots"` // "9:00 AM"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDoctors.Response) *AvailableDoctorsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.Label())
	}

	return &AvailableDoctorsResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Weekday:  resp.Weekday.String(),
		Bookable: resp.Bookable,
		Reason:   resp.Reason,
		Doctors:  models.FromDomainDoctors(resp.Doctors),
		Slots:    slots,
	}
}
