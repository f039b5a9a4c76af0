package cache

import "errors"

var (
	// ErrMiss возвращается, когда снимка для ключа нет
	ErrMiss = errors.New("cache: snapshot not found")

	// ErrBackend возвращается при ошибке хранилища кэша
	ErrBackend = errors.New("cache: backend error")

	// ErrCodec возвращается при ошибке сериализации снимка
	ErrCodec = errors.New("cache: failed to encode snapshot")
)
