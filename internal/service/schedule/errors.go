package schedule

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация слотов не сохранена
	ErrConfigNotFound = errors.New("config not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
