package record_movement

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	reservationRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/billing/models"
)

// UseCase use case для регистрации депозита или платежа
type UseCase struct {
	reservationRepo ReservationRepository
	movementRepo    MovementRepository
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	movementRepo MovementRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		movementRepo:    movementRepo,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute добавляет движение под блокировкой бронирования
// Депозит допустим только для reserved, платеж - только для occupied
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.MovementResponse, error) {
	uc.logger.Info("RecordMovement: reservation=%d, kind=%s, method=%s, amount=%s",
		req.ReservationID, req.Kind, req.Method, req.Amount.String())

	movement := &domain.Movement{
		ReservationID: req.ReservationID,
		Kind:          req.Kind,
		Method:        req.Method,
		Amount:        req.Amount,
		Reference:     req.Reference,
	}
	if err := movement.Validate(); err != nil {
		uc.logger.Warn("RecordMovement: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Movement

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := uc.reservationRepo.LockByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("RecordMovement: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("RecordMovement: failed to lock reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: lock reservation: %v", ErrInternal, err)
		}

		if err := domain.CanRecordMovement(reservation, req.Kind); err != nil {
			uc.logger.Warn("RecordMovement: %s rejected for reservation id=%d status=%s: %v",
				req.Kind, req.ReservationID, reservation.Status, err)
			return err
		}

		result, err = uc.movementRepo.Create(txCtx, movement)
		if err != nil {
			uc.logger.Error("RecordMovement: failed to create movement: %v", err)
			return fmt.Errorf("%w: create movement: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.PaymentRecorded(string(result.Kind))
	uc.logger.Info("RecordMovement: movement id=%d recorded for reservation=%d", result.ID, req.ReservationID)

	return models.FromDomainMovement(result), nil
}
