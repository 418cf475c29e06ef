package post_consumption

import (
	"context"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	postConsumption "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/post_consumption"
)

type PostConsumptionUseCase interface {
	Execute(ctx context.Context, req *postConsumption.Request) (*domain.InvoiceLine, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
