package get_available_rooms

import (
	"time"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

// Request модель запроса свободных номеров
type Request struct {
	StartDate time.Time // дата заезда
	EndDate   time.Time // дата выезда
	Type      *string   // тип номера (опционально)
}

// Response свободные номера и стоимость проживания в каждом
type Response struct {
	Range  domain.StayRange
	Nights int
	Rooms  []AvailableRoom
}

// AvailableRoom свободный номер
type AvailableRoom struct {
	Room    *domain.Room
	Lodging domain.Money // ночи * тариф
}
