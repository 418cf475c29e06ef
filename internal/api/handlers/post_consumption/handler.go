package post_consumption

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/billing/models"
	postConsumption "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/post_consumption"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/validate"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequest       = "некорректный формат запроса"
	msgNotFound             = "бронирование не найдено"
	msgAlreadyInvoiced      = "счет уже выставлен, используйте дополнительные начисления к счету"
)

type Handler struct {
	useCase PostConsumptionUseCase
	logger  Logger
}

func NewHandler(useCase PostConsumptionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{id}/consumptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/consumptions - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req PostConsumptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/consumptions - Invalid request body: reservation_id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		h.logger.Warn("POST /reservations/{id}/consumptions - Validation failed: reservation_id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(id)
	if err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	line, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, postConsumption.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/consumptions - Reservation not found: reservation_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrAlreadyInvoiced):
			h.logger.Warn("POST /reservations/{id}/consumptions - Already invoiced: reservation_id=%d", id)
			handlers.RespondUnprocessable(w, msgAlreadyInvoiced)

		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrPolicyViolation):
			h.logger.Warn("POST /reservations/{id}/consumptions - Rejected: reservation_id=%d: %v", id, err)
			handlers.RespondDomainError(w, err)

		default:
			h.logger.Error("POST /reservations/{id}/consumptions - Failed to post consumption: reservation_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/consumptions - Consumption posted: reservation_id=%d, line_id=%d, line_total=%s",
		id, line.ID, line.LineTotal.StringFixed(2))
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainLine(line))
}
