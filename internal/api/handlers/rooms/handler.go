// Package rooms - справочник номеров и их физическое состояние.
package rooms

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	roomService "github.com/m04kA/SMC-HotelFrontDesk/internal/service/rooms"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/validate"
)

const (
	msgInvalidRoomID  = "некорректный ID номера"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequest = "некорректный формат запроса"
	msgNotFound       = "номер не найден"
	msgRoomInUse      = "в номере проживает гость"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/rooms
// Query params: type (опционально)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var roomType *string
	if t := strings.TrimSpace(r.URL.Query().Get("type")); t != "" {
		roomType = &t
	}

	result, err := h.service.List(r.Context(), roomType)
	if err != nil {
		h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms - Rooms retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Status GET /api/v1/rooms/{number}/status
// Query params: date (опционально, по умолчанию операционная дата)
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /rooms/{number}/status - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Status(r.Context(), number, date)
	if err != nil {
		if errors.Is(err, roomService.ErrRoomNotFound) {
			h.logger.Warn("GET /rooms/{number}/status - Room not found: number=%s", number)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /rooms/{number}/status - Failed to get status: number=%s, error=%v", number, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms/{number}/status - Status retrieved: number=%s, date=%s, occupancy=%s",
		number, result.Date, result.Occupancy)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// SetState PUT /api/v1/rooms/{id}/state
func (h *Handler) SetState(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /rooms/{id}/state - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req SetStateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rooms/{id}/state - Invalid request body: room_id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		h.logger.Warn("PUT /rooms/{id}/state - Validation failed: room_id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	room, err := h.service.SetState(r.Context(), id, req.State)
	if err != nil {
		switch {
		case errors.Is(err, roomService.ErrRoomNotFound):
			h.logger.Warn("PUT /rooms/{id}/state - Room not found: room_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, roomService.ErrRoomInUse):
			h.logger.Warn("PUT /rooms/{id}/state - Room in use: room_id=%d, state=%s", id, req.State)
			handlers.RespondUnprocessable(w, msgRoomInUse)

		case errors.Is(err, domain.ErrInvalidInput):
			handlers.RespondDomainError(w, err)

		default:
			h.logger.Error("PUT /rooms/{id}/state - Failed to set state: room_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /rooms/{id}/state - State changed: room_id=%d, state=%s", id, room.State)
	handlers.RespondJSON(w, http.StatusOK, room)
}
