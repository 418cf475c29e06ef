package get_available_rooms

import (
	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	roomModels "github.com/m04kA/SMC-HotelFrontDesk/internal/service/rooms/models"
	getAvailableRooms "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/get_available_rooms"
)

// AvailableRoomsResponse HTTP response model
type AvailableRoomsResponse struct {
	StartDate string                   `json:"startDate"`
	EndDate   string                   `json:"endDate"`
	Nights    int                      `json:"nights"`
	Rooms     []*AvailableRoomResponse `json:"rooms"`
	Total     int                      `json:"total"`
}

// AvailableRoomResponse свободный номер со стоимостью проживания за весь период
type AvailableRoomResponse struct {
	*roomModels.RoomResponse
	Lodging string `json:"lodging"`
}

func FromUseCaseResponse(resp *getAvailableRooms.Response) *AvailableRoomsResponse {
	rooms := make([]*AvailableRoomResponse, 0, len(resp.Rooms))
	for _, r := range resp.Rooms {
		rooms = append(rooms, &AvailableRoomResponse{
			RoomResponse: roomModels.FromDomainRoom(r.Room),
			Lodging:      r.Lodging.StringFixed(2),
		})
	}
	return &AvailableRoomsResponse{
		StartDate: resp.Range.Start.Format(domain.DateFormat),
		EndDate:   resp.Range.End.Format(domain.DateFormat),
		Nights:    resp.Nights,
		Rooms:     rooms,
		Total:     len(rooms),
	}
}
