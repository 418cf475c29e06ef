package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	reservationRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/availability"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/reservations/models"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/ptr"
)

// UseCase use case для создания бронирования или заселения без брони
type UseCase struct {
	roomRepo        RoomRepository
	guestRepo       GuestRepository
	reservationRepo ReservationRepository
	checker         AvailabilityChecker
	clock           BusinessClock
	txManager       TransactionManager
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	guestRepo GuestRepository,
	reservationRepo ReservationRepository,
	checker AvailabilityChecker,
	clock BusinessClock,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:        roomRepo,
		guestRepo:       guestRepo,
		reservationRepo: reservationRepo,
		checker:         checker,
		clock:           clock,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute создает бронирование
// Проверка доступности и вставка выполняются в одной транзакции под блокировкой строки номера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.ReservationResponse, error) {
	uc.logger.Info("CreateReservation: kind=%s, room=%s, start=%s, end=%s",
		req.Kind, req.RoomNumber, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	rng, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	var result *domain.Reservation

	// 2. Номер, проверка доступности, гость и бронирование в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// Заселение без брони возможно только с текущей операционной даты, независимо от занятости номера
		if req.Kind == domain.KindWalkIn {
			businessDate, err := uc.clock.BusinessDate(txCtx)
			if err != nil {
				uc.logger.Error("CreateReservation: failed to get business date: %v", err)
				return fmt.Errorf("%w: business date: %v", ErrInternal, err)
			}
			if err := domain.CanWalkIn(rng, businessDate); err != nil {
				uc.logger.Warn("CreateReservation: walk-in rejected: %v", err)
				return err
			}
		}

		room, err := uc.roomRepo.GetByNumber(txCtx, req.RoomNumber)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateReservation: room number=%s not found", req.RoomNumber)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateReservation: failed to get room number=%s: %v", req.RoomNumber, err)
			return fmt.Errorf("%w: get room: %v", ErrInternal, err)
		}

		if !room.IsBookable() {
			uc.logger.Warn("CreateReservation: room number=%s is %s", room.Number, room.State)
			return domain.ErrRoomNotBookable
		}

		if err := uc.ensureRangeFree(txCtx, room.ID, rng); err != nil {
			return err
		}

		guest, err := uc.resolveGuest(txCtx, req.Guest)
		if err != nil {
			return err
		}

		reservation := &domain.Reservation{
			RoomID:    room.ID,
			GuestID:   guest.ID,
			StartDate: rng.Start,
			EndDate:   rng.End,
			Status:    domain.InitialStatus(req.Kind),
			Notes:     req.Notes,
		}
		if req.Kind == domain.KindWalkIn {
			reservation.CheckinAt = ptr.Ptr(now)
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrOverlap) {
				uc.metrics.AvailabilityConflict("create")
				uc.logger.Warn("CreateReservation: overlap rejected by storage for room=%d range=%s", room.ID, rng)
				return ErrRoomNotAvailable
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: create reservation: %v", ErrInternal, err)
		}

		// Заселение без брони сразу занимает номер
		if req.Kind == domain.KindWalkIn && room.State != domain.RoomOccupied {
			if err := uc.roomRepo.UpdateState(txCtx, room.ID, domain.RoomOccupied); err != nil {
				uc.logger.Error("CreateReservation: failed to occupy room=%d: %v", room.ID, err)
				return fmt.Errorf("%w: update room state: %v", ErrInternal, err)
			}
		}

		result, err = uc.reservationRepo.GetByID(txCtx, created.ID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to reload reservation id=%d: %v", created.ID, err)
			return fmt.Errorf("%w: reload reservation: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.ReservationCreated(string(req.Kind))
	uc.logger.Info("CreateReservation: created reservation id=%d, room=%s, status=%s, range=%s",
		result.ID, result.RoomNumber, result.Status, result.Range())

	return models.FromDomainReservation(result), nil
}

func (uc *UseCase) ensureRangeFree(ctx context.Context, roomID int64, rng domain.StayRange) error {
	err := uc.checker.EnsureRangeFree(ctx, roomID, rng, nil)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, availability.ErrRangeTaken):
		uc.metrics.AvailabilityConflict("create")
		return fmt.Errorf("%w: %v", ErrRoomNotAvailable, err)
	case errors.Is(err, availability.ErrRoomNotFound):
		return ErrRoomNotFound
	default:
		return fmt.Errorf("%w: availability: %v", ErrInternal, err)
	}
}

// resolveGuest находит гостя по номеру документа или создает нового
// Гость с документом разрешается одной командой, без гонки между поиском и вставкой
func (uc *UseCase) resolveGuest(ctx context.Context, input domain.GuestInput) (*domain.Guest, error) {
	if input.DocumentNumber != nil {
		guest, err := uc.guestRepo.FindOrCreateByDocument(ctx, input.ToGuest())
		if err != nil {
			uc.logger.Error("CreateReservation: failed to resolve guest by document: %v", err)
			return nil, fmt.Errorf("%w: resolve guest: %v", ErrInternal, err)
		}
		uc.logger.Info("CreateReservation: resolved guest id=%d by document", guest.ID)
		return guest, nil
	}

	guest, err := uc.guestRepo.Create(ctx, input.ToGuest())
	if err != nil {
		uc.logger.Error("CreateReservation: failed to create guest: %v", err)
		return nil, fmt.Errorf("%w: create guest: %v", ErrInternal, err)
	}
	uc.logger.Info("CreateReservation: created guest id=%d", guest.ID)
	return guest, nil
}
