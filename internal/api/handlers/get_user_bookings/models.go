package get_user_bookings

import (
	"net/url"

	"github.com/docaid/DocAid-BookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров.
// userId учитывается только для администратора, остальным сервис подставит их собственный ID.
func ToServiceRequest(query url.Values, caller models.Caller) *models.ListBookingsRequest {
	return &models.ListBookingsRequest{
		Caller:   caller,
		UserID:   optional(query, "userId"),
		DoctorID: optional(query, "doctorId"),
		Status:   optional(query, "status"),
		From:     optional(query, "from"),
		To:       optional(query, "to"),
		Order:    query.Get("order"),
	}
}

func optional(query url.Values, key string) *string {
	if !query.Has(key) {
		return nil
	}
	value := query.Get(key)
	if value == "" {
		return nil
	}
	return &value
}
