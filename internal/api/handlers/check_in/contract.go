package check_in

import (
	"context"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/reservations/models"
)

type CheckInUseCase interface {
	Execute(ctx context.Context, reservationID int64) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
