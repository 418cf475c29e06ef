package get_available_rooms

import (
	"context"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	List(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error)
}

// AvailabilityChecker отбор номеров, свободных на весь диапазон
type AvailabilityChecker interface {
	FreeRooms(ctx context.Context, rooms []*domain.Room, rng domain.StayRange) ([]*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
