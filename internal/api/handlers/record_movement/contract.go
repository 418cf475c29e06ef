package record_movement

import (
	"context"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/billing/models"
	recordMovement "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/record_movement"
)

type RecordMovementUseCase interface {
	Execute(ctx context.Context, req *recordMovement.Request) (*models.MovementResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
