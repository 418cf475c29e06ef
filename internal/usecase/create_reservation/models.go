package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	Kind       domain.ReservationKind // reservation | walkin
	RoomNumber string                 // номер комнаты, например "101"
	StartDate  time.Time              // дата заезда
	EndDate    time.Time              // дата выезда (не входит в проживание)
	Guest      domain.GuestInput      // данные гостя, поиск по документу
	Notes      *string                // заметки (опционально)
}
