package bookings

import (
	"fmt"
	"strings"

	"github.com/docaid/DocAid-BookingService/internal/domain"
)

// snapshotKey строит ключ кэша для фильтра. Одинаковые фильтры дают одинаковый ключ.
func snapshotKey(filter domain.BookingFilter) string {
	parts := []string{
		"user=" + optional(filter.UserID),
		"doctor=" + optional(filter.DoctorID),
		"ref=" + optional(filter.Reference),
	}

	status := ""
	if filter.Status != nil {
		status = string(*filter.Status)
	}
	parts = append(parts, "status="+status)

	from, to := "", ""
	if filter.StartDate != nil {
		from = filter.StartDate.Format(domain.DateFormat)
	}
	if filter.EndDate != nil {
		to = filter.EndDate.Format(domain.DateFormat)
	}
	parts = append(parts, "from="+from, "to="+to)

	slot := ""
	if filter.TimeSlot != nil {
		slot = filter.TimeSlot.String()
	}
	parts = append(parts,
		"slot="+slot,
		fmt.Sprintf("active=%t", filter.ActiveOnly),
		fmt.Sprintf("newest=%t", filter.NewestFirst),
	)

	return strings.Join(parts, "|")
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
