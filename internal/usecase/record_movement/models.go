package record_movement

import "github.com/m04kA/SMC-HotelFrontDesk/internal/domain"

// Request модель запроса на депозит или платеж
type Request struct {
	ReservationID int64
	Kind          domain.MovementKind  // deposit | payment
	Method        domain.PaymentMethod // cash | card | transfer | other
	Amount        domain.Money         // > 0
	Reference     *string              // номер чека, транзакции и т.п.
}
