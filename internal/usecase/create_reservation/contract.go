package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByNumber(ctx context.Context, number string) (*domain.Room, error)
	UpdateState(ctx context.Context, id int64, state domain.RoomState) error
}

// GuestRepository интерфейс репозитория гостей
type GuestRepository interface {
	FindOrCreateByDocument(ctx context.Context, guest *domain.Guest) (*domain.Guest, error)
	Create(ctx context.Context, guest *domain.Guest) (*domain.Guest, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// AvailabilityChecker проверка пересечения дат (блокирует номер)
type AvailabilityChecker interface {
	EnsureRangeFree(ctx context.Context, roomID int64, rng domain.StayRange, excludeID *int64) error
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
	ReservationCreated(kind string)
	AvailabilityConflict(operation string)
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
