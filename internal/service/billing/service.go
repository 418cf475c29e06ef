// Package billing - чтение финансовой информации: сводка по бронированию, счета, сверка итогов.
// Изменяющие операции (выставление счета, начисления, платежи) живут в usecase.
package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	invoiceRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/invoice"
	reservationRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/billing/models"
	reservationModels "github.com/m04kA/SMC-HotelFrontDesk/internal/service/reservations/models"
)

// Service сервис финансов
type Service struct {
	reservationRepo ReservationRepository
	invoiceRepo     InvoiceRepository
	movementRepo    MovementRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса финансов
func NewService(
	reservationRepo ReservationRepository,
	invoiceRepo InvoiceRepository,
	movementRepo MovementRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		invoiceRepo:     invoiceRepo,
		movementRepo:    movementRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// FinancialSummary бронирование, платежи, счет со строками и итоги
// Если счета еще нет, в lines попадают начисления, ожидающие выставления счета
func (s *Service) FinancialSummary(ctx context.Context, reservationID int64) (*models.FinancialSummaryResponse, error) {
	var (
		reservation *domain.Reservation
		movements   []*domain.Movement
		invoice     *domain.Invoice
		lines       []*domain.InvoiceLine
	)

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		reservation, err = s.getReservation(txCtx, reservationID)
		if err != nil {
			return err
		}

		movements, err = s.movementRepo.ListByReservation(txCtx, reservationID)
		if err != nil {
			return fmt.Errorf("%w: FinancialSummary - list movements: %v", ErrInternal, err)
		}

		invoice, err = s.invoiceRepo.GetByReservationID(txCtx, reservationID)
		switch {
		case errors.Is(err, invoiceRepo.ErrInvoiceNotFound):
			invoice = nil
			lines, err = s.invoiceRepo.ListPendingLines(txCtx, reservationID)
		case err != nil:
			return fmt.Errorf("%w: FinancialSummary - get invoice: %v", ErrInternal, err)
		default:
			lines, err = s.invoiceRepo.ListLines(txCtx, invoice.ID)
		}
		if err != nil {
			return fmt.Errorf("%w: FinancialSummary - list lines: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logReadError("FinancialSummary", reservationID, err)
		return nil, err
	}

	summary := domain.ComputeSummary(movements, invoice)
	resp := &models.FinancialSummaryResponse{
		Reservation: reservationModels.FromDomainReservation(reservation),
		Payments:    models.FromDomainMovementList(movements),
		Lines:       models.FromDomainLineList(lines),
		Summary:     models.FromDomainSummary(summary),
	}
	if invoice != nil {
		resp.Invoice = models.FromDomainInvoice(invoice)
	}

	s.logger.Info("FinancialSummary: reservation=%d paid=%s invoiced=%s balance=%s",
		reservationID, summary.TotalPaid, summary.TotalInvoiced, summary.Balance)
	return resp, nil
}

// ListMovements депозиты и платежи бронирования
func (s *Service) ListMovements(ctx context.Context, reservationID int64) (*models.MovementListResponse, error) {
	if _, err := s.getReservation(ctx, reservationID); err != nil {
		s.logReadError("ListMovements", reservationID, err)
		return nil, err
	}

	movements, err := s.movementRepo.ListByReservation(ctx, reservationID)
	if err != nil {
		s.logger.Error("ListMovements: repository error for reservation=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: ListMovements - repository error: %v", ErrInternal, err)
	}

	list := models.FromDomainMovementList(movements)
	return &models.MovementListResponse{Payments: list, Total: len(list)}, nil
}

// ListInvoices счета, выставленные в период [from, to]
func (s *Service) ListInvoices(ctx context.Context, from, to *time.Time) (*models.InvoiceListResponse, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, ErrInvalidPeriod
	}

	invoices, err := s.invoiceRepo.List(ctx, domain.InvoiceFilter{From: from, To: to})
	if err != nil {
		s.logger.Error("ListInvoices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListInvoices - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		result = append(result, models.FromDomainInvoice(inv))
	}
	return &models.InvoiceListResponse{Invoices: result, Total: len(result)}, nil
}

// GetInvoice счет со строками
func (s *Service) GetInvoice(ctx context.Context, id int64) (*models.InvoiceResponse, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			s.logger.Warn("GetInvoice: invoice id=%d not found", id)
			return nil, ErrInvoiceNotFound
		}
		s.logger.Error("GetInvoice: repository error for invoice id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetInvoice - repository error: %v", ErrInternal, err)
	}

	inv.Lines, err = s.invoiceRepo.ListLines(ctx, id)
	if err != nil {
		s.logger.Error("GetInvoice: failed to list lines for invoice id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetInvoice - list lines: %v", ErrInternal, err)
	}

	return models.FromDomainInvoice(inv), nil
}

// ReconcileInvoice сверяет сохраненный total с суммой строк
// Строки - источник истины: при repair расхождение исправляется под блокировкой счета
func (s *Service) ReconcileInvoice(ctx context.Context, id int64, repair bool) (*models.ReconcileResponse, error) {
	var resp *models.ReconcileResponse

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		inv, err := s.invoiceRepo.LockByID(txCtx, id)
		if err != nil {
			if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
				return ErrInvoiceNotFound
			}
			return fmt.Errorf("%w: ReconcileInvoice - lock invoice: %v", ErrInternal, err)
		}

		lines, err := s.invoiceRepo.ListLines(txCtx, id)
		if err != nil {
			return fmt.Errorf("%w: ReconcileInvoice - list lines: %v", ErrInternal, err)
		}

		computed := domain.SumLines(lines)
		drift := inv.Total.Sub(computed)
		resp = &models.ReconcileResponse{
			InvoiceID:     id,
			StoredTotal:   inv.Total.StringFixed(2),
			ComputedTotal: computed.StringFixed(2),
			Drift:         drift.StringFixed(2),
		}

		if drift.IsZero() || !repair {
			return nil
		}

		if err := s.invoiceRepo.SetTotal(txCtx, id, computed); err != nil {
			return fmt.Errorf("%w: ReconcileInvoice - set total: %v", ErrInternal, err)
		}
		resp.Repaired = true
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvoiceNotFound) {
			s.logger.Warn("ReconcileInvoice: invoice id=%d not found", id)
		} else {
			s.logger.Error("ReconcileInvoice: invoice id=%d: %v", id, err)
		}
		return nil, err
	}

	if resp.Drift != "0.00" {
		s.logger.Warn("ReconcileInvoice: invoice id=%d stored=%s computed=%s repaired=%t",
			id, resp.StoredTotal, resp.ComputedTotal, resp.Repaired)
	}
	return resp, nil
}

func (s *Service) getReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: get reservation: %v", ErrInternal, err)
	}
	return res, nil
}

func (s *Service) logReadError(op string, reservationID int64, err error) {
	if errors.Is(err, ErrReservationNotFound) {
		s.logger.Warn("%s: reservation id=%d not found", op, reservationID)
		return
	}
	s.logger.Error("%s: reservation id=%d: %v", op, reservationID, err)
}
