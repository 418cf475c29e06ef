package clock

import (
	"context"
	"time"
)

// ClockRepository хранилище операционной даты
type ClockRepository interface {
	Get(ctx context.Context) (time.Time, error)
	Set(ctx context.Context, date time.Time) (time.Time, error)
	Advance(ctx context.Context) (time.Time, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
