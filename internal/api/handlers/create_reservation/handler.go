package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	createReservation "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/validate"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRoomNotFound       = "номер не найден"
	msgRoomNotAvailable   = "номер уже забронирован на эти даты"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := validate.Struct(req); err != nil {
		h.logger.Warn("POST /reservations - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrRoomNotAvailable):
			h.logger.Warn("POST /reservations - Room not available: room=%s, start=%s, end=%s",
				req.RoomNumber, req.StartDate, req.EndDate)
			handlers.RespondConflict(w, msgRoomNotAvailable)

		case errors.Is(err, createReservation.ErrRoomNotFound):
			h.logger.Warn("POST /reservations - Room not found: room=%s", req.RoomNumber)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrPolicyViolation):
			h.logger.Warn("POST /reservations - Rejected: kind=%s, room=%s: %v", req.Kind, req.RoomNumber, err)
			handlers.RespondDomainError(w, err)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: room=%s, error=%v", req.RoomNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, status=%s",
		result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
