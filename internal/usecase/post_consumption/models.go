package post_consumption

import "github.com/m04kA/SMC-HotelFrontDesk/internal/domain"

// Request потребленная гостем услуга (минибар, прачечная, ресторан)
type Request struct {
	ReservationID int64
	Description   string
	Quantity      int
	UnitPrice     domain.Money
}
