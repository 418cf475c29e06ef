package issue_invoice

import (
	"context"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/billing/models"
)

type IssueInvoiceUseCase interface {
	Execute(ctx context.Context, reservationID int64) (*models.InvoiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
