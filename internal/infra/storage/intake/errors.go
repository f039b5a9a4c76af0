package intake

import "errors"

var (
	// ErrInvalidIntake возвращается, когда заявка не может быть сохранена
	ErrInvalidIntake = errors.New("intake.repository: invalid intake")

	// ErrPersist возвращается при ошибке чтения или записи файла заявок
	ErrPersist = errors.New("intake.repository: failed to persist")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("intake.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("intake.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("intake.repository: failed to scan row")
)
