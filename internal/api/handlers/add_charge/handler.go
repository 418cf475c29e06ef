package add_charge

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	addCharge "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/add_charge"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/validate"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequest       = "некорректный формат запроса"
	msgNotFound             = "бронирование не найдено"
)

type Handler struct {
	useCase AddChargeUseCase
	logger  Logger
}

func NewHandler(useCase AddChargeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{id}/invoice/charges
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/invoice/charges - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req AddChargeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/invoice/charges - Invalid request body: reservation_id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		h.logger.Warn("POST /reservations/{id}/invoice/charges - Validation failed: reservation_id=%d, error=%v", id, err)
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
		case errors.Is(err, addCharge.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/invoice/charges - Reservation not found: reservation_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrPolicyViolation):
			h.logger.Warn("POST /reservations/{id}/invoice/charges - Rejected: reservation_id=%d: %v", id, err)
			handlers.RespondDomainError(w, err)

		default:
			h.logger.Error("POST /reservations/{id}/invoice/charges - Failed to add charge: reservation_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/invoice/charges - Charge added: reservation_id=%d, line_id=%d, total=%s",
		id, result.Line.ID, result.InvoiceTotal.StringFixed(2))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
