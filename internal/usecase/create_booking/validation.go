package create_booking

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/docaid/DocAid-BookingService/internal/domain"
)

// Простая форма local@domain.tld
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRequiredFields проверяет обязательные поля в фиксированном порядке
func validateRequiredFields(req *Request) *ValidationError {
	fields := []struct {
		name  string
		value string
	}{
		{"userId", req.UserID},
		{"date", req.Date},
		{"timeSlot", req.TimeSlot},
		{"name", req.Name},
		{"email", req.Email},
		{"doctorId", req.DoctorID},
	}

	for _, f := range fields {
		if isBlank(f.value) {
			return newValidationError(ErrMissingField, f.name)
		}
	}
	return nil
}

// validateFieldLengths ограничивает длину полей размерами колонок таблицы bookings.
// Длина считается в символах, как у VARCHAR.
func validateFieldLengths(req *Request) *ValidationError {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"userId", req.UserID, domain.MaxUserIDLength},
		{"name", req.Name, domain.MaxNameLength},
		{"email", req.Email, domain.MaxEmailLength},
	}
	if req.Phone != nil {
		fields = append(fields, struct {
			name  string
			value string
			max   int
		}{"phone", *req.Phone, domain.MaxPhoneLength})
	}

	for _, f := range fields {
		if utf8.RuneCountInString(strings.TrimSpace(f.value)) > f.max {
			return newValidationError(ErrFieldTooLong, f.name)
		}
	}
	return nil
}

// isValidEmail проверяет форму адреса
func isValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// parseDate разбирает дату YYYY-MM-DD как полночь в зоне loc
func parseDate(raw string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(domain.DateFormat, strings.TrimSpace(raw), loc)
}

// isDateInPast проверяет, что дата строго раньше сегодняшнего дня.
// Сегодня вычисляется в зоне даты бронирования, время отбрасывается.
func isDateInPast(date, now time.Time) bool {
	today := domain.DateOnly(now.In(date.Location()))
	return domain.DateOnly(date).Before(today)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// normalizePhone пустой телефон считается отсутствующим
func normalizePhone(phone *string) *string {
	if phone == nil || isBlank(*phone) {
		return nil
	}
	p := strings.TrimSpace(*phone)
	return &p
}
