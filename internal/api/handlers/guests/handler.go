// Package guests - профили гостей: поиск, регистрация, редактирование.
package guests

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	guestService "github.com/m04kA/SMC-HotelFrontDesk/internal/service/guests"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/guests/models"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/validate"
)

const (
	msgInvalidGuestID = "некорректный ID гостя"
	msgInvalidRequest = "некорректный формат запроса"
	msgInvalidParams  = "некорректные параметры запроса"
	msgNotFound       = "гость не найден"
	msgDocumentTaken  = "гость с таким документом уже зарегистрирован"

	defaultLimit = 50
)

type Handler struct {
	service GuestService
	logger  Logger
}

func NewHandler(service GuestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/guests
// Query params: q (имя или документ), limit, offset
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var query *string
	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		query = &q
	}
	limit, err := handlers.QueryUint(r, "limit")
	if err != nil {
		h.logger.Warn("GET /guests - Invalid limit: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	if limit == 0 {
		limit = defaultLimit
	}
	offset, err := handlers.QueryUint(r, "offset")
	if err != nil {
		h.logger.Warn("GET /guests - Invalid offset: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), query, limit, offset)
	if err != nil {
		h.logger.Error("GET /guests - Failed to list guests: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /guests - Guests retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/guests/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /guests/{id} - Invalid guest ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuestID)
		return
	}

	guest, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /guests/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, guest)
}

// Create POST /api/v1/guests
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r, "POST /guests")
	if !ok {
		return
	}

	guest, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.respondError(w, "POST /guests", err)
		return
	}

	h.logger.Info("POST /guests - Guest created: guest_id=%d", guest.ID)
	handlers.RespondJSON(w, http.StatusCreated, guest)
}

// Update PUT /api/v1/guests/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /guests/{id} - Invalid guest ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuestID)
		return
	}

	req, ok := h.decode(w, r, "PUT /guests/{id}")
	if !ok {
		return
	}

	guest, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.respondError(w, "PUT /guests/{id}", err)
		return
	}

	h.logger.Info("PUT /guests/{id} - Guest updated: guest_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, guest)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, route string) (*models.GuestRequest, bool) {
	var payload GuestPayload
	if err := handlers.DecodeJSON(r, &payload); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return nil, false
	}
	if err := validate.Struct(payload); err != nil {
		h.logger.Warn("%s - Validation failed: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())
		return nil, false
	}
	req, err := payload.ToServiceRequest()
	if err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return nil, false
	}
	return req, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, guestService.ErrGuestNotFound):
		h.logger.Warn("%s - Guest not found", route)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, guestService.ErrDocumentTaken):
		h.logger.Warn("%s - Document already registered", route)
		handlers.RespondConflict(w, msgDocumentTaken)

	case errors.Is(err, domain.ErrInvalidInput):
		h.logger.Warn("%s - Invalid guest data: %v", route, err)
		handlers.RespondDomainError(w, err)

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
