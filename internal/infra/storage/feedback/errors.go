package feedback

import "errors"

var (
	// ErrInvalidReview возвращается, когда отзыв не может быть сохранён
	ErrInvalidReview = errors.New("feedback.repository: invalid review")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("feedback.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("feedback.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("feedback.repository: failed to scan row")
)
