package create_booking

import (
	"errors"
	"fmt"
)

// Виды отказа валидации. Проверяются через errors.Is на *ValidationError.
var (
	ErrMissingField      = errors.New("missing_field")
	ErrFieldTooLong      = errors.New("field_too_long")
	ErrInvalidEmail      = errors.New("invalid_email")
	ErrInvalidDate       = errors.New("invalid_date")
	ErrPastDate          = errors.New("past_date")
	ErrWeekendDate       = errors.New("weekend_date")
	ErrInvalidTimeSlot   = errors.New("invalid_time_slot")
	ErrUnknownDoctor     = errors.New("unknown_doctor")
	ErrDoctorUnavailable = errors.New("doctor_unavailable")
	ErrDuplicateSlot     = errors.New("duplicate_slot")
)

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// Сообщения для клиента по виду отказа
var validationMessages = map[error]string{
	ErrMissingField:      "required field is missing",
	ErrFieldTooLong:      "field is too long",
	ErrInvalidEmail:      "please enter a valid email address",
	ErrInvalidDate:       "date must be in YYYY-MM-DD format",
	ErrPastDate:          "cannot book appointments in the past",
	ErrWeekendDate:       "weekend appointments are not available",
	ErrInvalidTimeSlot:   "time slot is not offered",
	ErrUnknownDoctor:     "doctor not found",
	ErrDoctorUnavailable: "doctor is not available on the selected day",
	ErrDuplicateSlot:     "you already have a booking for this date and time",
}

// ValidationError отказ валидации с видом и полем
type ValidationError struct {
	Kind  error
	Field string
}

func newValidationError(kind error, field string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field}
}

// Error реализует error
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("create_booking: %s: %s", e.Kind, e.Field)
	}
	return fmt.Sprintf("create_booking: %s", e.Kind)
}

// Unwrap позволяет errors.Is(err, ErrPastDate)
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// Code машинный код вида отказа, например "past_date"
func (e *ValidationError) Code() string {
	return e.Kind.Error()
}

// Message человекочитаемое описание
func (e *ValidationError) Message() string {
	msg, ok := validationMessages[e.Kind]
	if !ok {
		msg = e.Kind.Error()
	}
	if (e.Kind == ErrMissingField || e.Kind == ErrFieldTooLong) && e.Field != "" {
		return fmt.Sprintf("%s: %s", msg, e.Field)
	}
	return msg
}
