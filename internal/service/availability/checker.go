// Package availability - единственная реализация правила пересечения дат проживания.
// Все пути, назначающие номер на даты (создание, редактирование, поиск свободных), идут через Checker.
package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/ptr"
)

// Checker проверка доступности номеров
type Checker struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	logger          Logger
}

// NewChecker создает проверку доступности
func NewChecker(reservationRepo ReservationRepository, roomRepo RoomRepository, logger Logger) *Checker {
	return &Checker{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		logger:          logger,
	}
}

// IsRangeFree true, если у номера нет неотмененных бронирований, пересекающихся с rng
// excludeID - бронирование, которое сейчас редактируется
//
// Вызывать внутри транзакции: сначала блокируется строка номера (FOR UPDATE),
// поэтому проверка и последующая вставка конкурирующих запросов не перемешиваются
func (c *Checker) IsRangeFree(ctx context.Context, roomID int64, rng domain.StayRange, excludeID *int64) (bool, error) {
	conflict, err := c.findConflict(ctx, roomID, rng, excludeID)
	if err != nil {
		return false, err
	}
	return conflict == nil, nil
}

// EnsureRangeFree то же, что IsRangeFree, но занятый диапазон возвращает как ErrRangeTaken
func (c *Checker) EnsureRangeFree(ctx context.Context, roomID int64, rng domain.StayRange, excludeID *int64) error {
	conflict, err := c.findConflict(ctx, roomID, rng, excludeID)
	if err != nil {
		return err
	}
	if conflict != nil {
		c.logger.Warn("Availability: room=%d range=%s conflicts with reservation=%d %s",
			roomID, rng, conflict.ID, conflict.Range())
		return fmt.Errorf("%w: reservation %d holds %s", ErrRangeTaken, conflict.ID, conflict.Range())
	}
	return nil
}

func (c *Checker) findConflict(ctx context.Context, roomID int64, rng domain.StayRange, excludeID *int64) (*domain.Reservation, error) {
	if _, err := c.roomRepo.LockByID(ctx, roomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		c.logger.Error("Availability: failed to lock room=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: lock room: %v", ErrInternal, err)
	}

	existing, err := c.reservationRepo.ListOverlapping(ctx, domain.OverlapQuery{
		RoomID:    ptr.Ptr(roomID),
		Range:     rng,
		ExcludeID: excludeID,
	})
	if err != nil {
		c.logger.Error("Availability: failed to list reservations for room=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: list overlapping: %v", ErrInternal, err)
	}

	// Повторно проверяем в Go: результат не зависит от того, как хранилище отфильтровало строки
	return domain.FirstConflict(existing, rng, excludeID), nil
}

// FreeRooms оставляет из rooms только свободные на весь диапазон rng
// Чистый запрос: номера не блокируются
func (c *Checker) FreeRooms(ctx context.Context, rooms []*domain.Room, rng domain.StayRange) ([]*domain.Room, error) {
	existing, err := c.reservationRepo.ListOverlapping(ctx, domain.OverlapQuery{Range: rng})
	if err != nil {
		c.logger.Error("Availability: failed to list reservations for range=%s: %v", rng, err)
		return nil, fmt.Errorf("%w: list overlapping: %v", ErrInternal, err)
	}

	byRoom := make(map[int64][]*domain.Reservation, len(existing))
	for _, r := range existing {
		byRoom[r.RoomID] = append(byRoom[r.RoomID], r)
	}

	free := make([]*domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if domain.FirstConflict(byRoom[room.ID], rng, nil) == nil {
			free = append(free, room)
		}
	}
	return free, nil
}
