package reservation_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/reservations/models"
)

const (
	msgMissingDates = "параметры from и to обязательны"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/calendar
// Query params: from (required), to (required, не включается)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		h.logger.Warn("GET /reservations/calendar - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := handlers.QueryDate(r, "to")
	if err != nil {
		h.logger.Warn("GET /reservations/calendar - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if from == nil || to == nil {
		h.logger.Warn("GET /reservations/calendar - Missing dates")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	result, err := h.service.Calendar(r.Context(), &models.CalendarRequest{From: *from, To: *to})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.logger.Warn("GET /reservations/calendar - Invalid window: %v", err)
			handlers.RespondDomainError(w, err)
			return
		}
		h.logger.Error("GET /reservations/calendar - Failed to build calendar: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations/calendar - Calendar retrieved successfully: from=%s, to=%s, count=%d",
		from.Format(domain.DateFormat), to.Format(domain.DateFormat), result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
