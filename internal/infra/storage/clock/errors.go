package clock

import "errors"

var (
	// ErrClockNotInitialized возвращается, если строка operational_clock отсутствует
	ErrClockNotInitialized = errors.New("clock.repository: operational clock is not initialized")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("clock.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("clock.repository: failed to execute query")
)
