package feedback

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врач не найден
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrInvalidRating возвращается, когда оценка вне диапазона 1..5
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrInvalidComment возвращается при пустом или слишком длинном комментарии
	ErrInvalidComment = errors.New("comment must be non-empty and at most 1000 characters")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
