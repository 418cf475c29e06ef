package post_consumption

import (
	"github.com/shopspring/decimal"

	postConsumption "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/post_consumption"
)

// PostConsumptionRequest HTTP request model
type PostConsumptionRequest struct {
	Description string `json:"description" validate:"required,max=255"`
	Quantity    int    `json:"quantity" validate:"gte=1"`
	UnitPrice   string `json:"unitPrice" validate:"required,decimal"` // "12.50"
}

func (r *PostConsumptionRequest) ToUseCaseRequest(reservationID int64) (*postConsumption.Request, error) {
	price, err := decimal.NewFromString(r.UnitPrice)
	if err != nil {
		return nil, err
	}
	return &postConsumption.Request{
		ReservationID: reservationID,
		Description:   r.Description,
		Quantity:      r.Quantity,
		UnitPrice:     price,
	}, nil
}
