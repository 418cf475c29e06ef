package billing

import (
	"context"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// InvoiceRepository интерфейс репозитория счетов
type InvoiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	GetByReservationID(ctx context.Context, reservationID int64) (*domain.Invoice, error)
	LockByID(ctx context.Context, id int64) (*domain.Invoice, error)
	List(ctx context.Context, filter domain.InvoiceFilter) ([]*domain.Invoice, error)
	ListLines(ctx context.Context, invoiceID int64) ([]*domain.InvoiceLine, error)
	ListPendingLines(ctx context.Context, reservationID int64) ([]*domain.InvoiceLine, error)
	SetTotal(ctx context.Context, id int64, total domain.Money) error
}

// MovementRepository интерфейс репозитория движений
type MovementRepository interface {
	ListByReservation(ctx context.Context, reservationID int64) ([]*domain.Movement, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
