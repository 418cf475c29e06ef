package check_out

import (
	"context"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/reservations/models"
)

type CheckOutUseCase interface {
	Execute(ctx context.Context, reservationID int64) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
