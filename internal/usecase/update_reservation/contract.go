package update_reservation

import (
	"context"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/reservations/models"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	LockByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateStay(ctx context.Context, res *domain.Reservation) error
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByNumber(ctx context.Context, number string) (*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// AvailabilityChecker проверка пересечения дат (блокирует номер)
type AvailabilityChecker interface {
	EnsureRangeFree(ctx context.Context, roomID int64, rng domain.StayRange, excludeID *int64) error
}

// Canceller отмена бронирования, присоединяется к текущей транзакции
type Canceller interface {
	Execute(ctx context.Context, id int64) (*models.ReservationResponse, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics доменные счетчики
type Metrics interface {
	AvailabilityConflict(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
