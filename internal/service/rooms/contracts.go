package rooms

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByNumber(ctx context.Context, number string) (*domain.Room, error)
	LockByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error)
	UpdateState(ctx context.Context, id int64, state domain.RoomState) error
}

// ReservationRepository бронирования для вычисления занятости
type ReservationRepository interface {
	ListOverlapping(ctx context.Context, q domain.OverlapQuery) ([]*domain.Reservation, error)
	CountOccupiedInRoom(ctx context.Context, roomID, excludeID int64) (int, error)
}

// BusinessClock операционная дата
type BusinessClock interface {
	BusinessDate(ctx context.Context) (time.Time, error)
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
