package business_date

import (
	"context"
	"time"
)

type ClockService interface {
	BusinessDate(ctx context.Context) (time.Time, error)
	SetBusinessDate(ctx context.Context, date time.Time) (time.Time, error)
	CloseDay(ctx context.Context) (time.Time, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
