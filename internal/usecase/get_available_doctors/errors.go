package get_available_doctors

import "errors"

var (
	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
)
