package cancel_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	reservationRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/reservations/models"
)

// UseCase use case для отмены бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute переводит бронирование reserved -> cancelled
// Номер освобождается, если его занимало только это бронирование
// Может вызываться внутри уже открытой транзакции (редактирование со сменой статуса)
func (uc *UseCase) Execute(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	uc.logger.Info("CancelReservation: id=%d", id)

	var result *domain.Reservation

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := uc.reservationRepo.LockByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("CancelReservation: reservation id=%d not found", id)
				return ErrReservationNotFound
			}
			uc.logger.Error("CancelReservation: failed to lock reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: lock reservation: %v", ErrInternal, err)
		}

		if err := domain.CanCancel(reservation); err != nil {
			uc.logger.Warn("CancelReservation: reservation id=%d status=%s: %v", id, reservation.Status, err)
			return err
		}

		if err := uc.reservationRepo.UpdateStatus(txCtx, id, domain.StatusCancelled, nil, nil); err != nil {
			uc.logger.Error("CancelReservation: failed to update status id=%d: %v", id, err)
			return fmt.Errorf("%w: update status: %v", ErrInternal, err)
		}

		if err := uc.releaseRoom(txCtx, reservation); err != nil {
			return err
		}

		result, err = uc.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			uc.logger.Error("CancelReservation: failed to reload reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: reload reservation: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.Transition("cancel")
	uc.logger.Info("CancelReservation: reservation id=%d cancelled", id)

	return models.FromDomainReservation(result), nil
}

func (uc *UseCase) releaseRoom(ctx context.Context, reservation *domain.Reservation) error {
	room, err := uc.roomRepo.LockByID(ctx, reservation.RoomID)
	if err != nil {
		uc.logger.Error("CancelReservation: failed to lock room=%d: %v", reservation.RoomID, err)
		return fmt.Errorf("%w: lock room: %v", ErrInternal, err)
	}

	others, err := uc.reservationRepo.CountOccupiedInRoom(ctx, room.ID, reservation.ID)
	if err != nil {
		uc.logger.Error("CancelReservation: failed to count occupants of room=%d: %v", room.ID, err)
		return fmt.Errorf("%w: count occupants: %v", ErrInternal, err)
	}

	if !domain.ShouldReleaseRoom(room, others) {
		return nil
	}

	if err := uc.roomRepo.UpdateState(ctx, room.ID, domain.RoomAvailable); err != nil {
		uc.logger.Error("CancelReservation: failed to release room=%d: %v", room.ID, err)
		return fmt.Errorf("%w: release room: %v", ErrInternal, err)
	}
	uc.logger.Info("CancelReservation: room=%d released", room.ID)
	return nil
}
