package get_available_rooms

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	getAvailableRooms "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/get_available_rooms"
)

const (
	msgMissingDates = "параметры start и end обязательны"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/available
// Query params: start (required), end (required), type (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	start, err := handlers.QueryDate(r, "start")
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	end, err := handlers.QueryDate(r, "end")
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if start == nil || end == nil {
		h.logger.Warn("GET /rooms/available - Missing dates")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	req := &getAvailableRooms.Request{StartDate: *start, EndDate: *end}
	if t := strings.TrimSpace(r.URL.Query().Get("type")); t != "" {
		req.Type = &t
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.logger.Warn("GET /rooms/available - Invalid range: %v", err)
			handlers.RespondDomainError(w, err)
			return
		}
		h.logger.Error("GET /rooms/available - Failed to get available rooms: start=%s, end=%s, error=%v",
			start.Format(domain.DateFormat), end.Format(domain.DateFormat), err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms/available - Rooms retrieved successfully: start=%s, end=%s, rooms_count=%d",
		start.Format(domain.DateFormat), end.Format(domain.DateFormat), len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
