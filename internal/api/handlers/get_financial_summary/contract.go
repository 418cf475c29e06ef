package get_financial_summary

import (
	"context"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/billing/models"
)

type BillingService interface {
	FinancialSummary(ctx context.Context, reservationID int64) (*models.FinancialSummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
