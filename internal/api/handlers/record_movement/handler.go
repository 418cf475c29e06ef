package record_movement

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	recordMovement "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/record_movement"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/validate"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequest       = "некорректный формат запроса"
	msgNotFound             = "бронирование не найдено"
)

type Handler struct {
	useCase RecordMovementUseCase
	logger  Logger
}

func NewHandler(useCase RecordMovementUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{id}/movements
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/movements - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req RecordMovementRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/movements - Invalid request body: reservation_id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		h.logger.Warn("POST /reservations/{id}/movements - Validation failed: reservation_id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(id)
	if err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, recordMovement.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/movements - Reservation not found: reservation_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrPolicyViolation):
			h.logger.Warn("POST /reservations/{id}/movements - Rejected: reservation_id=%d, kind=%s: %v", id, req.Kind, err)
			handlers.RespondDomainError(w, err)

		default:
			h.logger.Error("POST /reservations/{id}/movements - Failed to record movement: reservation_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/movements - Movement recorded: reservation_id=%d, movement_id=%d, kind=%s, amount=%s",
		id, result.ID, result.Kind, result.Amount)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
