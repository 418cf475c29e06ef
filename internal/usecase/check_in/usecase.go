package check_in

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	reservationRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/reservations/models"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/ptr"
)

// UseCase use case для заселения по брони
type UseCase struct {
	reservationRepo ReservationRepository
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
	roomRepo RoomRepository,
	clock BusinessClock,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		clock:           clock,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute reserved -> occupied, если операционная дата попадает в [start, end)
// Номер переводится в occupied в той же транзакции
func (uc *UseCase) Execute(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	uc.logger.Info("CheckIn: id=%d", id)

	var result *domain.Reservation

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := uc.reservationRepo.LockByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("CheckIn: reservation id=%d not found", id)
				return ErrReservationNotFound
			}
			uc.logger.Error("CheckIn: failed to lock reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: lock reservation: %v", ErrInternal, err)
		}

		businessDate, err := uc.clock.BusinessDate(txCtx)
		if err != nil {
			uc.logger.Error("CheckIn: failed to get business date: %v", err)
			return fmt.Errorf("%w: business date: %v", ErrInternal, err)
		}

		if err := domain.CanCheckIn(reservation, businessDate); err != nil {
			uc.logger.Warn("CheckIn: reservation id=%d status=%s: %v", id, reservation.Status, err)
			return err
		}

		now := uc.timeProvider.Now()
		if err := uc.reservationRepo.UpdateStatus(txCtx, id, domain.StatusOccupied, ptr.Ptr(now), nil); err != nil {
			uc.logger.Error("CheckIn: failed to update status id=%d: %v", id, err)
			return fmt.Errorf("%w: update status: %v", ErrInternal, err)
		}

		room, err := uc.roomRepo.LockByID(txCtx, reservation.RoomID)
		if err != nil {
			uc.logger.Error("CheckIn: failed to lock room=%d: %v", reservation.RoomID, err)
			return fmt.Errorf("%w: lock room: %v", ErrInternal, err)
		}
		if room.State != domain.RoomOccupied {
			if err := uc.roomRepo.UpdateState(txCtx, room.ID, domain.RoomOccupied); err != nil {
				uc.logger.Error("CheckIn: failed to occupy room=%d: %v", room.ID, err)
				return fmt.Errorf("%w: update room state: %v", ErrInternal, err)
			}
		}

		result, err = uc.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			uc.logger.Error("CheckIn: failed to reload reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: reload reservation: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.Transition("check_in")
	uc.logger.Info("CheckIn: reservation id=%d checked in to room=%s", id, result.RoomNumber)

	return models.FromDomainReservation(result), nil
}
