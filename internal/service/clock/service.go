// Package clock - операционная дата гостиницы ("сегодня" для стойки регистрации).
// Guards машины состояний получают дату параметром; читает её только этот сервис.
package clock

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

// Service сервис операционной даты
type Service struct {
	repo      ClockRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает сервис операционной даты
func NewService(repo ClockRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// BusinessDate текущая операционная дата
// Внутри транзакции читается тем же соединением, что и остальные данные операции
func (s *Service) BusinessDate(ctx context.Context) (time.Time, error) {
	date, err := s.repo.Get(ctx)
	if err != nil {
		s.logger.Error("BusinessDate: failed to read operational clock: %v", err)
		return time.Time{}, fmt.Errorf("%w: BusinessDate - repository error: %v", ErrInternal, err)
	}
	return date, nil
}

// SetBusinessDate административная установка операционной даты
func (s *Service) SetBusinessDate(ctx context.Context, date time.Time) (time.Time, error) {
	if date.IsZero() {
		return time.Time{}, ErrInvalidDate
	}

	var result time.Time
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		previous, err := s.repo.Get(txCtx)
		if err != nil {
			return fmt.Errorf("%w: SetBusinessDate - read: %v", ErrInternal, err)
		}
		result, err = s.repo.Set(txCtx, date)
		if err != nil {
			return fmt.Errorf("%w: SetBusinessDate - write: %v", ErrInternal, err)
		}
		s.logger.Warn("SetBusinessDate: business date changed manually from=%s to=%s",
			previous.Format(domain.DateFormat), result.Format(domain.DateFormat))
		return nil
	})
	if err != nil {
		s.logger.Error("SetBusinessDate: %v", err)
		return time.Time{}, err
	}
	return result, nil
}

// CloseDay закрытие дня: операционная дата сдвигается ровно на один день
func (s *Service) CloseDay(ctx context.Context) (time.Time, error) {
	var result time.Time
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		result, err = s.repo.Advance(txCtx)
		if err != nil {
			return fmt.Errorf("%w: CloseDay - advance: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("CloseDay: %v", err)
		return time.Time{}, err
	}

	s.logger.Info("CloseDay: business date advanced to %s", result.Format(domain.DateFormat))
	return result, nil
}
