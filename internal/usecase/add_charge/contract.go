package add_charge

import (
	"context"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	LockByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// InvoiceRepository интерфейс репозитория счетов
type InvoiceRepository interface {
	LockByReservationID(ctx context.Context, reservationID int64) (*domain.Invoice, error)
	AddLine(ctx context.Context, line *domain.InvoiceLine) (*domain.InvoiceLine, error)
	IncrementTotal(ctx context.Context, id int64, delta domain.Money) (domain.Money, error)
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
