package models

import (
	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID       int64  `json:"id"`
	Number   string `json:"number"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
	BaseRate string `json:"baseRate"` // "100.00"
	State    string `json:"state"`
}

// RoomListResponse список номеров
type RoomListResponse struct {
	Rooms []*RoomResponse `json:"rooms"`
	Total int             `json:"total"`
}

// RoomStatusResponse физическое состояние номера и вычисленная занятость на дату
type RoomStatusResponse struct {
	Room      *RoomResponse `json:"room"`
	Date      string        `json:"date"`
	Occupancy string        `json:"occupancy"` // free | reserved | occupied
}

// FromDomainRoom конвертирует domain модель в response
func FromDomainRoom(r *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:       r.ID,
		Number:   r.Number,
		Type:     r.Type,
		Capacity: r.Capacity,
		BaseRate: r.BaseRate.StringFixed(2),
		State:    string(r.State),
	}
}

// FromDomainRoomList конвертирует список
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	result := make([]*RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, FromDomainRoom(r))
	}
	return &RoomListResponse{Rooms: result, Total: len(result)}
}
