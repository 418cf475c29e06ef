package record_movement

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	recordMovement "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/record_movement"
)

// RecordMovementRequest HTTP request model
type RecordMovementRequest struct {
	Kind      string  `json:"kind" validate:"required,oneof=deposit payment"`
	Method    string  `json:"method" validate:"required,oneof=cash card transfer other"`
	Amount    string  `json:"amount" validate:"required,decimal"` // "50.00"
	Reference *string `json:"reference,omitempty" validate:"omitempty,max=120"`
}

func (r *RecordMovementRequest) ToUseCaseRequest(reservationID int64) (*recordMovement.Request, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return nil, err
	}
	return &recordMovement.Request{
		ReservationID: reservationID,
		Kind:          domain.MovementKind(r.Kind),
		Method:        domain.PaymentMethod(r.Method),
		Amount:        amount,
		Reference:     r.Reference,
	}, nil
}
