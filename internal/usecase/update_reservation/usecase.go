package update_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	reservationRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/availability"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/reservations/models"
)

// UseCase use case для редактирования бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	checker         AvailabilityChecker
	canceller       Canceller
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	checker AvailabilityChecker,
	canceller Canceller,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		checker:         checker,
		canceller:       canceller,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute меняет даты, номер, заметки или отменяет бронирование
// Смена дат или номера повторно проверяет доступность, исключая само бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.ReservationResponse, error) {
	uc.logger.Info("UpdateReservation: id=%d", req.ID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := uc.reservationRepo.LockByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ID)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to lock reservation id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: lock reservation: %v", ErrInternal, err)
		}

		cancelling, err := uc.statusChange(req, reservation)
		if err != nil {
			return err
		}

		if req.changesStay() {
			if err := uc.applyStay(txCtx, req, reservation); err != nil {
				return err
			}
		} else if err := domain.CanEditNotes(reservation); err != nil {
			uc.logger.Warn("UpdateReservation: reservation id=%d status=%s: %v", req.ID, reservation.Status, err)
			return err
		}

		if req.Notes != nil {
			notes := strings.TrimSpace(*req.Notes)
			reservation.Notes = &notes
			if notes == "" {
				reservation.Notes = nil
			}
		}

		if req.changesStay() || req.Notes != nil {
			if err := uc.reservationRepo.UpdateStay(txCtx, reservation); err != nil {
				if errors.Is(err, reservationRepo.ErrOverlap) {
					uc.metrics.AvailabilityConflict("update")
					return ErrRoomNotAvailable
				}
				uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", req.ID, err)
				return fmt.Errorf("%w: update reservation: %v", ErrInternal, err)
			}
		}

		if cancelling {
			if _, err := uc.canceller.Execute(txCtx, req.ID); err != nil {
				return err
			}
		}

		result, err = uc.reservationRepo.GetByID(txCtx, req.ID)
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to reload reservation id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: reload reservation: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateReservation: reservation id=%d updated, room=%s, range=%s, status=%s",
		result.ID, result.RoomNumber, result.Range(), result.Status)

	return models.FromDomainReservation(result), nil
}

// statusChange true, если запрошена отмена; любые другие смены статуса отклоняются
func (uc *UseCase) statusChange(req *Request, reservation *domain.Reservation) (bool, error) {
	if req.Status == nil {
		return false, nil
	}

	target := domain.ReservationStatus(*req.Status)
	if target == reservation.Status {
		return false, nil
	}
	if target != domain.StatusCancelled {
		uc.logger.Warn("UpdateReservation: status change %s -> %s rejected for id=%d", reservation.Status, target, req.ID)
		return false, ErrStatusChangeNotAllowed
	}
	if req.changesStay() {
		return false, fmt.Errorf("%w: dates or room cannot change together with cancellation", domain.ErrInvalidInput)
	}
	return true, nil
}

// applyStay проверяет и переносит новые даты и номер в reservation
func (uc *UseCase) applyStay(ctx context.Context, req *Request, reservation *domain.Reservation) error {
	if err := domain.CanEditStay(reservation); err != nil {
		uc.logger.Warn("UpdateReservation: reservation id=%d status=%s: %v", req.ID, reservation.Status, err)
		return err
	}

	start, end := reservation.StartDate, reservation.EndDate
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}
	rng, err := domain.NewStayRange(start, end)
	if err != nil {
		return err
	}

	room, err := uc.targetRoom(ctx, req, reservation)
	if err != nil {
		return err
	}
	if room.ID != reservation.RoomID && !room.IsBookable() {
		uc.logger.Warn("UpdateReservation: room number=%s is %s", room.Number, room.State)
		return domain.ErrRoomNotBookable
	}

	err = uc.checker.EnsureRangeFree(ctx, room.ID, rng, &reservation.ID)
	switch {
	case err == nil:
	case errors.Is(err, availability.ErrRangeTaken):
		uc.metrics.AvailabilityConflict("update")
		return fmt.Errorf("%w: %v", ErrRoomNotAvailable, err)
	case errors.Is(err, availability.ErrRoomNotFound):
		return ErrRoomNotFound
	default:
		return fmt.Errorf("%w: availability: %v", ErrInternal, err)
	}

	reservation.RoomID = room.ID
	reservation.StartDate = rng.Start
	reservation.EndDate = rng.End
	return nil
}

func (uc *UseCase) targetRoom(ctx context.Context, req *Request, reservation *domain.Reservation) (*domain.Room, error) {
	var (
		room *domain.Room
		err  error
	)
	if req.RoomNumber != nil {
		room, err = uc.roomRepo.GetByNumber(ctx, *req.RoomNumber)
	} else {
		room, err = uc.roomRepo.GetByID(ctx, reservation.RoomID)
	}
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("UpdateReservation: target room not found for id=%d", req.ID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("UpdateReservation: failed to get room: %v", err)
		return nil, fmt.Errorf("%w: get room: %v", ErrInternal, err)
	}
	return room, nil
}
