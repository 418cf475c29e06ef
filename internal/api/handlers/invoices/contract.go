package invoices

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/billing/models"
)

type BillingService interface {
	ListInvoices(ctx context.Context, from, to *time.Time) (*models.InvoiceListResponse, error)
	GetInvoice(ctx context.Context, id int64) (*models.InvoiceResponse, error)
	ReconcileInvoice(ctx context.Context, id int64, repair bool) (*models.ReconcileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
