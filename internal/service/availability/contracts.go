package availability

import (
	"context"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

// ReservationRepository источник бронирований для проверки пересечений
type ReservationRepository interface {
	ListOverlapping(ctx context.Context, q domain.OverlapQuery) ([]*domain.Reservation, error)
}

// RoomRepository блокировка номера перед проверкой
type RoomRepository interface {
	LockByID(ctx context.Context, id int64) (*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
