package guests

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	guestRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/guest"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/guests/models"
)

// Service сервис гостей
// Удаление гостей не поддерживается: на них ссылаются бронирования
type Service struct {
	guestRepo GuestRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса гостей
func NewService(guestRepo GuestRepository, logger Logger) *Service {
	return &Service{
		guestRepo: guestRepo,
		logger:    logger,
	}
}

// List ищет гостей по имени или номеру документа
func (s *Service) List(ctx context.Context, query *string, limit, offset uint64) (*models.GuestListResponse, error) {
	guests, err := s.guestRepo.List(ctx, domain.GuestFilter{Query: query, Limit: limit, Offset: offset})
	if err != nil {
		s.logger.Error("ListGuests: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainGuestList(guests), nil
}

// GetByID получает гостя
func (s *Service) GetByID(ctx context.Context, id int64) (*models.GuestResponse, error) {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("GetGuest", id, err)
	}
	return models.FromDomainGuest(guest), nil
}

// Create регистрирует гостя
func (s *Service) Create(ctx context.Context, req *models.GuestRequest) (*models.GuestResponse, error) {
	input := req.ToDomainInput().Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	guest, err := s.guestRepo.Create(ctx, input.ToGuest())
	if err != nil {
		return nil, s.mapRepoError("CreateGuest", 0, err)
	}

	s.logger.Info("CreateGuest: guest id=%d created", guest.ID)
	return models.FromDomainGuest(guest), nil
}

// Update обновляет профиль гостя
func (s *Service) Update(ctx context.Context, id int64, req *models.GuestRequest) (*models.GuestResponse, error) {
	input := req.ToDomainInput().Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	guest := input.ToGuest()
	guest.ID = id

	updated, err := s.guestRepo.Update(ctx, guest)
	if err != nil {
		return nil, s.mapRepoError("UpdateGuest", id, err)
	}

	s.logger.Info("UpdateGuest: guest id=%d updated", id)
	return models.FromDomainGuest(updated), nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, guestRepo.ErrGuestNotFound):
		s.logger.Warn("%s: guest id=%d not found", op, id)
		return ErrGuestNotFound
	case errors.Is(err, guestRepo.ErrDocumentTaken):
		s.logger.Warn("%s: document number already registered", op)
		return ErrDocumentTaken
	default:
		s.logger.Error("%s: repository error for guest id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
