package issue_invoice

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	issueInvoice "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/issue_invoice"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgNotFound             = "бронирование не найдено"
)

type Handler struct {
	useCase IssueInvoiceUseCase
	logger  Logger
}

func NewHandler(useCase IssueInvoiceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{id}/invoice
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/invoice - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, issueInvoice.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/invoice - Reservation not found: reservation_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrPolicyViolation), errors.Is(err, domain.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/invoice - Rejected: reservation_id=%d: %v", id, err)
			handlers.RespondDomainError(w, err)

		default:
			h.logger.Error("POST /reservations/{id}/invoice - Failed to issue invoice: reservation_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/invoice - Invoice issued successfully: reservation_id=%d", id)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
