package rooms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/rooms/models"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/ptr"
)

// Service сервис номеров
type Service struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	clock           BusinessClock
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	clock BusinessClock,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		clock:           clock,
		txManager:       txManager,
		logger:          logger,
	}
}

// List возвращает номера по числовому порядку, опционально по типу
func (s *Service) List(ctx context.Context, roomType *string) (*models.RoomListResponse, error) {
	rooms, err := s.roomRepo.List(ctx, domain.RoomFilter{Type: roomType})
	if err != nil {
		s.logger.Error("ListRooms: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRoomList(rooms), nil
}

// Status физическое состояние номера и занятость на дату (по умолчанию - операционная дата)
// Занятость каждый раз вычисляется из бронирований
func (s *Service) Status(ctx context.Context, number string, date *time.Time) (*models.RoomStatusResponse, error) {
	room, err := s.roomRepo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("RoomStatus: room number=%s not found", number)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("RoomStatus: repository error for room number=%s: %v", number, err)
		return nil, fmt.Errorf("%w: Status - get room: %v", ErrInternal, err)
	}

	var day time.Time
	if date != nil {
		day = domain.Date(*date)
	} else {
		day, err = s.clock.BusinessDate(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: Status - business date: %v", ErrInternal, err)
		}
	}

	reservations, err := s.reservationRepo.ListOverlapping(ctx, domain.OverlapQuery{
		RoomID: ptr.Ptr(room.ID),
		Range:  domain.StayRange{Start: day, End: day.AddDate(0, 0, 1)},
	})
	if err != nil {
		s.logger.Error("RoomStatus: failed to list reservations for room=%d: %v", room.ID, err)
		return nil, fmt.Errorf("%w: Status - list reservations: %v", ErrInternal, err)
	}

	return &models.RoomStatusResponse{
		Room:      models.FromDomainRoom(room),
		Date:      day.Format(domain.DateFormat),
		Occupancy: string(domain.DeriveOccupancy(reservations, day)),
	}, nil
}

// SetState меняет физическое состояние номера
// Номер с заселенным гостем нельзя перевести в другое состояние, кроме occupied
func (s *Service) SetState(ctx context.Context, id int64, state string) (*models.RoomResponse, error) {
	newState := domain.RoomState(state)
	if !newState.Valid() {
		return nil, ErrInvalidState
	}

	var result *domain.Room
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		room, err := s.roomRepo.LockByID(txCtx, id)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("%w: SetState - lock room: %v", ErrInternal, err)
		}

		if newState != domain.RoomOccupied {
			occupied, err := s.reservationRepo.CountOccupiedInRoom(txCtx, id, 0)
			if err != nil {
				return fmt.Errorf("%w: SetState - count occupied: %v", ErrInternal, err)
			}
			if occupied > 0 {
				return ErrRoomInUse
			}
		}

		if err := s.roomRepo.UpdateState(txCtx, id, newState); err != nil {
			return fmt.Errorf("%w: SetState - update: %v", ErrInternal, err)
		}

		room.State = newState
		result = room
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("SetState: room id=%d: %v", id, err)
		} else {
			s.logger.Warn("SetState: room id=%d rejected: %v", id, err)
		}
		return nil, err
	}

	s.logger.Info("SetState: room id=%d number=%s state=%s", result.ID, result.Number, result.State)
	return models.FromDomainRoom(result), nil
}
