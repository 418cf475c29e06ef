package issue_invoice

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	invoiceRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/invoice"
	reservationRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/billing/models"
)

// UseCase use case для выставления счета
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	invoiceRepo     InvoiceRepository
	movementRepo    MovementRepository
	clock           BusinessClock
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	invoiceRepo InvoiceRepository,
	movementRepo MovementRepository,
	clock BusinessClock,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		invoiceRepo:     invoiceRepo,
		movementRepo:    movementRepo,
		clock:           clock,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выставляет счет по проживающему бронированию
// Счет = строка проживания + начисления, сделанные до выставления; дата счета - операционная дата
// Повторный вызов для того же бронирования отклоняется
func (uc *UseCase) Execute(ctx context.Context, reservationID int64) (*models.InvoiceResponse, error) {
	uc.logger.Info("IssueInvoice: reservation=%d", reservationID)

	var result *domain.Invoice

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := uc.reservationRepo.LockByID(txCtx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("IssueInvoice: reservation id=%d not found", reservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("IssueInvoice: failed to lock reservation id=%d: %v", reservationID, err)
			return fmt.Errorf("%w: lock reservation: %v", ErrInternal, err)
		}

		hasInvoice, err := uc.hasInvoice(txCtx, reservationID)
		if err != nil {
			return err
		}

		movements, err := uc.movementRepo.ListByReservation(txCtx, reservationID)
		if err != nil {
			uc.logger.Error("IssueInvoice: failed to list movements for reservation id=%d: %v", reservationID, err)
			return fmt.Errorf("%w: list movements: %v", ErrInternal, err)
		}

		if err := domain.CanIssueInvoice(reservation, hasInvoice, domain.TotalPaid(movements)); err != nil {
			uc.logger.Warn("IssueInvoice: reservation id=%d status=%s: %v", reservationID, reservation.Status, err)
			return err
		}

		room, err := uc.roomRepo.GetByID(txCtx, reservation.RoomID)
		if err != nil {
			uc.logger.Error("IssueInvoice: failed to get room=%d: %v", reservation.RoomID, err)
			return fmt.Errorf("%w: get room: %v", ErrInternal, err)
		}

		pending, err := uc.invoiceRepo.ListPendingLines(txCtx, reservationID)
		if err != nil {
			uc.logger.Error("IssueInvoice: failed to list pending lines: %v", err)
			return fmt.Errorf("%w: list pending lines: %v", ErrInternal, err)
		}

		issueDate, err := uc.clock.BusinessDate(txCtx)
		if err != nil {
			uc.logger.Error("IssueInvoice: failed to get business date: %v", err)
			return fmt.Errorf("%w: business date: %v", ErrInternal, err)
		}

		lodging := domain.NewLodgingLine(reservationID, room, reservation.Range())
		total := lodging.LineTotal.Add(domain.SumLines(pending))
		if err := domain.ValidateMoney("invoice total", total); err != nil {
			uc.logger.Warn("IssueInvoice: reservation id=%d total would overflow: %v", reservationID, err)
			return err
		}

		invoice, err := uc.invoiceRepo.Create(txCtx, &domain.Invoice{
			ReservationID: reservationID,
			IssueDate:     issueDate,
			Total:         total,
			Status:        domain.InvoiceIssued,
		})
		if err != nil {
			if errors.Is(err, invoiceRepo.ErrInvoiceExists) {
				uc.logger.Warn("IssueInvoice: invoice for reservation id=%d already exists", reservationID)
				return domain.ErrAlreadyInvoiced
			}
			uc.logger.Error("IssueInvoice: failed to create invoice: %v", err)
			return fmt.Errorf("%w: create invoice: %v", ErrInternal, err)
		}

		lodging.InvoiceID = &invoice.ID
		if _, err := uc.invoiceRepo.AddLine(txCtx, lodging); err != nil {
			uc.logger.Error("IssueInvoice: failed to add lodging line to invoice id=%d: %v", invoice.ID, err)
			return fmt.Errorf("%w: add lodging line: %v", ErrInternal, err)
		}

		if _, err := uc.invoiceRepo.AttachPendingLines(txCtx, reservationID, invoice.ID); err != nil {
			uc.logger.Error("IssueInvoice: failed to attach pending lines to invoice id=%d: %v", invoice.ID, err)
			return fmt.Errorf("%w: attach pending lines: %v", ErrInternal, err)
		}

		if err := uc.reservationRepo.MarkInvoiced(txCtx, reservationID); err != nil {
			uc.logger.Error("IssueInvoice: failed to mark reservation id=%d invoiced: %v", reservationID, err)
			return fmt.Errorf("%w: mark invoiced: %v", ErrInternal, err)
		}

		invoice.Lines, err = uc.invoiceRepo.ListLines(txCtx, invoice.ID)
		if err != nil {
			uc.logger.Error("IssueInvoice: failed to list lines of invoice id=%d: %v", invoice.ID, err)
			return fmt.Errorf("%w: list lines: %v", ErrInternal, err)
		}

		result = invoice
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.Transition("invoice")
	uc.logger.Info("IssueInvoice: invoice id=%d issued for reservation=%d, total=%s, lines=%d",
		result.ID, reservationID, result.Total.StringFixed(2), len(result.Lines))

	return models.FromDomainInvoice(result), nil
}

func (uc *UseCase) hasInvoice(ctx context.Context, reservationID int64) (bool, error) {
	_, err := uc.invoiceRepo.GetByReservationID(ctx, reservationID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, invoiceRepo.ErrInvoiceNotFound):
		return false, nil
	default:
		uc.logger.Error("IssueInvoice: failed to check invoice for reservation id=%d: %v", reservationID, err)
		return false, fmt.Errorf("%w: get invoice: %v", ErrInternal, err)
	}
}
