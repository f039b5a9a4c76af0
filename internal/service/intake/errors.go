package intake

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField возвращается, когда обязательное поле пустое
	ErrMissingField = errors.New("missing_field")

	// ErrFieldTooLong возвращается, когда поле длиннее допустимого
	ErrFieldTooLong = errors.New("field_too_long")

	// ErrInvalidAge возвращается, когда возраст не целое число 0..150
	ErrInvalidAge = errors.New("invalid_age")

	// ErrInvalidKind возвращается при неизвестном виде визита
	ErrInvalidKind = errors.New("invalid_visit_type")

	// ErrAccessDenied возвращается, когда список заявок запрашивает не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// FieldError отказ валидации с указанием поля
type FieldError struct {
	Kind  error
	Field string
}

func newFieldError(kind error, field string) *FieldError {
	return &FieldError{Kind: kind, Field: field}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("intake: %s: %s", e.Kind, e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

// Code машинный код, например "missing_field"
func (e *FieldError) Code() string {
	return e.Kind.Error()
}

// Message описание для клиента
func (e *FieldError) Message() string {
	switch e.Kind {
	case ErrMissingField:
		return "all fields are required: " + e.Field
	case ErrFieldTooLong:
		return "field is too long: " + e.Field
	case ErrInvalidAge:
		return "age must be a whole number between 0 and 150"
	case ErrInvalidKind:
		return "visitType must be clinic or home"
	}
	return e.Kind.Error()
}
