package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	reservationRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/reservations/models"
)

// maxCalendarDays ограничение окна шахматки
const maxCalendarDays = 93

// Service сервис чтения бронирований
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование с номером комнаты и именем гостя
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// List возвращает бронирования, новые первыми, с фильтром по статусу и номеру
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	filter := domain.ReservationFilter{
		RoomID: req.RoomID,
		Limit:  req.Limit,
		Offset: req.Offset,
	}
	if req.Status != nil {
		status := domain.ReservationStatus(*req.Status)
		if !status.Valid() {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}

	list, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(list))
	return models.FromDomainReservationList(list), nil
}

// Calendar бронирования всех номеров, пересекающиеся с [From, To), по дате заезда и номеру
func (s *Service) Calendar(ctx context.Context, req *models.CalendarRequest) (*models.ReservationListResponse, error) {
	rng, err := domain.NewStayRange(req.From, req.To)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if rng.Days() > maxCalendarDays {
		return nil, fmt.Errorf("%w: calendar window exceeds %d days", ErrInvalidInput, maxCalendarDays)
	}

	list, err := s.reservationRepo.ListOverlapping(ctx, domain.OverlapQuery{Range: rng})
	if err != nil {
		s.logger.Error("Calendar: repository error for range=%s: %v", rng, err)
		return nil, fmt.Errorf("%w: Calendar - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Calendar: fetched %d reservations for range=%s", len(list), rng)
	return models.FromDomainReservationList(list), nil
}
