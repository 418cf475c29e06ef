package check_out

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	invoiceRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/invoice"
	reservationRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/reservations/models"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/ptr"
)

// UseCase use case для выезда гостя
type UseCase struct {
	reservationRepo ReservationRepository
	invoiceRepo     InvoiceRepository
	roomRepo        RoomRepository
	clock           BusinessClock
	txManager       TransactionManager
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	invoiceRepo InvoiceRepository,
	roomRepo RoomRepository,
	clock BusinessClock,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		invoiceRepo:     invoiceRepo,
		roomRepo:        roomRepo,
		clock:           clock,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute occupied -> finalized
// Требуется выставленный счет; выезд не раньше дня, следующего за заездом
func (uc *UseCase) Execute(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	uc.logger.Info("CheckOut: id=%d", id)

	var result *domain.Reservation

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := uc.reservationRepo.LockByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("CheckOut: reservation id=%d not found", id)
				return ErrReservationNotFound
			}
			uc.logger.Error("CheckOut: failed to lock reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: lock reservation: %v", ErrInternal, err)
		}

		invoice, err := uc.invoiceRepo.GetByReservationID(txCtx, id)
		if err != nil && !errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			uc.logger.Error("CheckOut: failed to get invoice for reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: get invoice: %v", ErrInternal, err)
		}

		businessDate, err := uc.clock.BusinessDate(txCtx)
		if err != nil {
			uc.logger.Error("CheckOut: failed to get business date: %v", err)
			return fmt.Errorf("%w: business date: %v", ErrInternal, err)
		}

		if err := domain.CanCheckOut(reservation, invoice, businessDate); err != nil {
			uc.logger.Warn("CheckOut: reservation id=%d status=%s: %v", id, reservation.Status, err)
			return err
		}

		now := uc.timeProvider.Now()
		if err := uc.reservationRepo.UpdateStatus(txCtx, id, domain.StatusFinalized, nil, ptr.Ptr(now)); err != nil {
			uc.logger.Error("CheckOut: failed to update status id=%d: %v", id, err)
			return fmt.Errorf("%w: update status: %v", ErrInternal, err)
		}

		if err := uc.releaseRoom(txCtx, reservation); err != nil {
			return err
		}

		result, err = uc.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			uc.logger.Error("CheckOut: failed to reload reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: reload reservation: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.Transition("check_out")
	uc.logger.Info("CheckOut: reservation id=%d finalized, room=%s", id, result.RoomNumber)

	return models.FromDomainReservation(result), nil
}

func (uc *UseCase) releaseRoom(ctx context.Context, reservation *domain.Reservation) error {
	room, err := uc.roomRepo.LockByID(ctx, reservation.RoomID)
	if err != nil {
		uc.logger.Error("CheckOut: failed to lock room=%d: %v", reservation.RoomID, err)
		return fmt.Errorf("%w: lock room: %v", ErrInternal, err)
	}

	others, err := uc.reservationRepo.CountOccupiedInRoom(ctx, room.ID, reservation.ID)
	if err != nil {
		uc.logger.Error("CheckOut: failed to count occupants of room=%d: %v", room.ID, err)
		return fmt.Errorf("%w: count occupants: %v", ErrInternal, err)
	}

	if !domain.ShouldReleaseRoom(room, others) {
		return nil
	}
	if err := uc.roomRepo.UpdateState(ctx, room.ID, domain.RoomAvailable); err != nil {
		uc.logger.Error("CheckOut: failed to release room=%d: %v", room.ID, err)
		return fmt.Errorf("%w: release room: %v", ErrInternal, err)
	}
	return nil
}
