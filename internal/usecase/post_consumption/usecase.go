package post_consumption

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	invoiceRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/invoice"
	reservationRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/reservation"
)

// UseCase use case для учета услуг, потребленных до выставления счета
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

// Execute добавляет начисление без счета; при выставлении счета оно войдет в итог
// Блокировка бронирования сериализует начисление с выставлением счета
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.InvoiceLine, error) {
	uc.logger.Info("PostConsumption: reservation=%d, quantity=%d, unit_price=%s", req.ReservationID, req.Quantity, req.UnitPrice.String())

	line, err := domain.NewLine(req.ReservationID, domain.LineIncidental, strings.TrimSpace(req.Description), req.Quantity, req.UnitPrice)
	if err != nil {
		uc.logger.Warn("PostConsumption: validation failed: %v", err)
		return nil, err
	}

	var created *domain.InvoiceLine

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := uc.reservationRepo.LockByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("PostConsumption: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("PostConsumption: failed to lock reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: lock reservation: %v", ErrInternal, err)
		}

		_, err = uc.invoiceRepo.GetByReservationID(txCtx, req.ReservationID)
		hasInvoice := err == nil
		if err != nil && !errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			uc.logger.Error("PostConsumption: failed to get invoice of reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: get invoice: %v", ErrInternal, err)
		}

		if err := domain.CanPostConsumption(reservation, hasInvoice); err != nil {
			uc.logger.Warn("PostConsumption: reservation id=%d status=%s: %v", req.ReservationID, reservation.Status, err)
			return err
		}

		line.InvoiceID = nil
		created, err = uc.invoiceRepo.AddLine(txCtx, line)
		if err != nil {
			uc.logger.Error("PostConsumption: failed to add pending line: %v", err)
			return fmt.Errorf("%w: add line: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.Transition("consumption")
	uc.logger.Info("PostConsumption: pending line id=%d added to reservation=%d, line_total=%s",
		created.ID, req.ReservationID, created.LineTotal.StringFixed(2))

	return created, nil
}
