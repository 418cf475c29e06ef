// Package business_date - операционная дата отеля и закрытие дня.
package business_date

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/validate"
)

const msgInvalidRequest = "некорректный формат запроса"

type Handler struct {
	service ClockService
	logger  Logger
}

func NewHandler(service ClockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Get GET /api/v1/business-date
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	date, err := h.service.BusinessDate(r.Context())
	if err != nil {
		h.logger.Error("GET /business-date - Failed to read business date: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toResponse(date))
}

// Set PUT /api/v1/business-date
func (h *Handler) Set(w http.ResponseWriter, r *http.Request) {
	var req SetBusinessDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /business-date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		h.logger.Warn("PUT /business-date - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		handlers.RespondDomainError(w, err)
		return
	}

	result, err := h.service.SetBusinessDate(r.Context(), date)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			handlers.RespondDomainError(w, err)
			return
		}
		h.logger.Error("PUT /business-date - Failed to set business date: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /business-date - Business date set: date=%s", result.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, toResponse(result))
}

// Close POST /api/v1/business-date/close
func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.CloseDay(r.Context())
	if err != nil {
		h.logger.Error("POST /business-date/close - Failed to close day: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /business-date/close - Day closed: new_date=%s", result.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, toResponse(result))
}

func toResponse(date time.Time) *BusinessDateResponse {
	return &BusinessDateResponse{Date: date.Format(domain.DateFormat)}
}
