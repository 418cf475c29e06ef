package get_available_rooms

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

// UseCase use case для поиска свободных номеров
type UseCase struct {
	roomRepo RoomRepository
	checker  AvailabilityChecker
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, checker AvailabilityChecker, logger Logger) *UseCase {
	return &UseCase{
		roomRepo: roomRepo,
		checker:  checker,
		logger:   logger,
	}
}

// Execute номера, свободные на весь диапазон [start, end)
// Номера на обслуживании и выведенные из эксплуатации не предлагаются. Ничего не изменяет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableRooms: start=%s, end=%s",
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	rng, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	rooms, err := uc.roomRepo.List(ctx, domain.RoomFilter{Type: req.Type, BookableOnly: true})
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: list rooms: %v", ErrInternal, err)
	}

	free, err := uc.checker.FreeRooms(ctx, rooms, rng)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to filter rooms: %v", err)
		return nil, fmt.Errorf("%w: free rooms: %v", ErrInternal, err)
	}

	resp := &Response{Range: rng, Nights: rng.Nights(), Rooms: make([]AvailableRoom, 0, len(free))}
	for _, room := range free {
		resp.Rooms = append(resp.Rooms, AvailableRoom{Room: room, Lodging: domain.LodgingCharge(rng, room.BaseRate)})
	}

	uc.logger.Info("GetAvailableRooms: %d of %d rooms free for %s", len(free), len(rooms), rng)
	return resp, nil
}
