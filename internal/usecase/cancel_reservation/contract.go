package cancel_reservation

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
	CountOccupiedInRoom(ctx context.Context, roomID, excludeID int64) (int, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	LockByID(ctx context.Context, id int64) (*domain.Room, error)
	UpdateState(ctx context.Context, id int64, state domain.RoomState) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics доменные счетчики
type Metrics interface {
	Transition(event string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
