package add_charge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	invoiceRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/invoice"
	reservationRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/reservation"
)

// UseCase use case для дополнительного начисления к счету
type UseCase struct {
	reservationRepo ReservationRepository
	invoiceRepo     InvoiceRepository
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	invoiceRepo InvoiceRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		invoiceRepo:     invoiceRepo,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute добавляет строку к счету и увеличивает его итог
// Строка счета заблокирована до конца транзакции, итог меняется атомарным UPDATE total = total + delta
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddCharge: reservation=%d, quantity=%d, unit_price=%s", req.ReservationID, req.Quantity, req.UnitPrice.String())

	line, err := domain.NewLine(req.ReservationID, domain.LineIncidental, strings.TrimSpace(req.Description), req.Quantity, req.UnitPrice)
	if err != nil {
		uc.logger.Warn("AddCharge: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := uc.reservationRepo.LockByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("AddCharge: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("AddCharge: failed to lock reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: lock reservation: %v", ErrInternal, err)
		}

		invoice, err := uc.invoiceRepo.LockByReservationID(txCtx, req.ReservationID)
		if err != nil && !errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			uc.logger.Error("AddCharge: failed to lock invoice of reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: lock invoice: %v", ErrInternal, err)
		}

		if err := domain.CanAddCharge(reservation, invoice != nil); err != nil {
			uc.logger.Warn("AddCharge: reservation id=%d status=%s: %v", req.ReservationID, reservation.Status, err)
			return err
		}

		if err := domain.ValidateMoney("invoice total", invoice.Total.Add(line.LineTotal)); err != nil {
			uc.logger.Warn("AddCharge: invoice id=%d total would overflow: %v", invoice.ID, err)
			return err
		}

		line.InvoiceID = &invoice.ID
		created, err := uc.invoiceRepo.AddLine(txCtx, line)
		if err != nil {
			uc.logger.Error("AddCharge: failed to add line to invoice id=%d: %v", invoice.ID, err)
			return fmt.Errorf("%w: add line: %v", ErrInternal, err)
		}

		total, err := uc.invoiceRepo.IncrementTotal(txCtx, invoice.ID, created.LineTotal)
		if err != nil {
			uc.logger.Error("AddCharge: failed to increment total of invoice id=%d: %v", invoice.ID, err)
			return fmt.Errorf("%w: increment total: %v", ErrInternal, err)
		}

		result = &Response{Line: created, InvoiceTotal: total}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.Transition("charge")
	uc.logger.Info("AddCharge: line id=%d added to reservation=%d, line_total=%s, invoice_total=%s",
		result.Line.ID, req.ReservationID, result.Line.LineTotal.StringFixed(2), result.InvoiceTotal.StringFixed(2))

	return result, nil
}
