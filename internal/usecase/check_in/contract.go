package check_in

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	LockByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus, checkinAt, checkoutAt *time.Time) error
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	LockByID(ctx context.Context, id int64) (*domain.Room, error)
	UpdateState(ctx context.Context, id int64, state domain.RoomState) error
}

// BusinessClock источник операционной даты
type BusinessClock interface {
	BusinessDate(ctx context.Context) (time.Time, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics доменные счетчики
type Metrics interface {
	Transition(event string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
