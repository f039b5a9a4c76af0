package get_available_doctors

import (
	"time"

	"github.com/docaid/DocAid-BookingService/internal/domain"
)

// AvailableDoctors возвращает врачей, принимающих в день недели date.
// Порядок справочника сохраняется, пустой результат допустим.
func AvailableDoctors(doctors []domain.Doctor, date time.Time) []domain.Doctor {
	weekday := date.Weekday()

	result := make([]domain.Doctor, 0, len(doctors))
	for i := range doctors {
		if doctors[i].IsAvailableOn(weekday) {
			result = append(result, doctors[i])
		}
	}
	return result
}

// bookability проверяет, можно ли в принципе записаться на дату
func bookability(date, now time.Time) (bool, string) {
	today := domain.DateOnly(now.In(date.Location()))
	if domain.DateOnly(date).Before(today) {
		return false, ReasonPastDate
	}
	if domain.IsWeekend(date) {
		return false, ReasonWeekendDate
	}
	return true, ""
}
