package add_charge

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/billing/models"
	addCharge "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/add_charge"
)

// AddChargeRequest HTTP request model
type AddChargeRequest struct {
	Description string `json:"description" validate:"required,max=255"`
	Quantity    int    `json:"quantity" validate:"gte=1"`
	UnitPrice   string `json:"unitPrice" validate:"required,decimal"` // "15.00"
}

// AddChargeResponse добавленная строка и новый итог счета
type AddChargeResponse struct {
	Line         *models.LineResponse `json:"line"`
	InvoiceTotal string               `json:"invoiceTotal"`
}

func (r *AddChargeRequest) ToUseCaseRequest(reservationID int64) (*addCharge.Request, error) {
	price, err := decimal.NewFromString(r.UnitPrice)
	if err != nil {
		return nil, err
	}
	return &addCharge.Request{
		ReservationID: reservationID,
		Description:   r.Description,
		Quantity:      r.Quantity,
		UnitPrice:     price,
	}, nil
}

func FromUseCaseResponse(resp *addCharge.Response) *AddChargeResponse {
	return &AddChargeResponse{
		Line:         models.FromDomainLine(resp.Line),
		InvoiceTotal: resp.InvoiceTotal.StringFixed(2),
	}
}
