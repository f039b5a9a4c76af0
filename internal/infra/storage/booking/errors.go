package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateBooking возвращается, когда активная запись на тот же слот уже существует
	ErrDuplicateBooking = errors.New("booking.repository: active booking for the slot already exists")

	// ErrDuplicateReference возвращается при повторном использовании номера бронирования
	ErrDuplicateReference = errors.New("booking.repository: reference already in use")

	// ErrInvalidBooking возвращается, когда запись не может быть сохранена как есть
	ErrInvalidBooking = errors.New("booking.repository: invalid booking")

	// ErrTerminalStatus возвращается при попытке вывести бронирование из статуса cancelled
	ErrTerminalStatus = errors.New("booking.repository: cancelled booking cannot change status")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrPersist возвращается, когда не удалось записать файл хранилища
	ErrPersist = errors.New("booking.repository: failed to persist bookings")
)
