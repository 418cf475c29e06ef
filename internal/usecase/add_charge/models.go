package add_charge

import "github.com/m04kA/SMC-HotelFrontDesk/internal/domain"

// Request модель запроса на дополнительное начисление
type Request struct {
	ReservationID int64
	Description   string
	Quantity      int
	UnitPrice     domain.Money
}

// Response добавленная строка и новый итог счета
type Response struct {
	Line         *domain.InvoiceLine
	InvoiceTotal domain.Money
}
