package add_charge

import (
	"context"

	addCharge "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/add_charge"
)

type AddChargeUseCase interface {
	Execute(ctx context.Context, req *addCharge.Request) (*addCharge.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
