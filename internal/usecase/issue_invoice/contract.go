package issue_invoice

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	LockByID(ctx context.Context, id int64) (*domain.Reservation, error)
	MarkInvoiced(ctx context.Context, id int64) error
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// InvoiceRepository интерфейс репозитория счетов
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	GetByReservationID(ctx context.Context, reservationID int64) (*domain.Invoice, error)
	AddLine(ctx context.Context, line *domain.InvoiceLine) (*domain.InvoiceLine, error)
	ListPendingLines(ctx context.Context, reservationID int64) ([]*domain.InvoiceLine, error)
	AttachPendingLines(ctx context.Context, reservationID, invoiceID int64) (int64, error)
	ListLines(ctx context.Context, invoiceID int64) ([]*domain.InvoiceLine, error)
}

// MovementRepository интерфейс репозитория движений
type MovementRepository interface {
	ListByReservation(ctx context.Context, reservationID int64) ([]*domain.Movement, error)
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

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
