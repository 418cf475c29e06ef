package guests

import (
	"context"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

// GuestRepository интерфейс репозитория гостей
type GuestRepository interface {
	Create(ctx context.Context, guest *domain.Guest) (*domain.Guest, error)
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
	List(ctx context.Context, filter domain.GuestFilter) ([]*domain.Guest, error)
	Update(ctx context.Context, guest *domain.Guest) (*domain.Guest, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
