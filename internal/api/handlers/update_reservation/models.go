package update_reservation

import (
	"github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers"
	updateReservation "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/update_reservation"
)

// UpdateReservationRequest HTTP request model, все поля необязательные
type UpdateReservationRequest struct {
	StartDate  *string `json:"startDate,omitempty" validate:"omitempty,date"`
	EndDate    *string `json:"endDate,omitempty" validate:"omitempty,date"`
	RoomNumber *string `json:"roomNumber,omitempty"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=reserved occupied finalized cancelled"`
	Notes      *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest(id int64) (*updateReservation.Request, error) {
	start, err := handlers.ParseOptionalDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := handlers.ParseOptionalDate(r.EndDate)
	if err != nil {
		return nil, err
	}
	return &updateReservation.Request{
		ID:         id,
		StartDate:  start,
		EndDate:    end,
		RoomNumber: r.RoomNumber,
		Status:     r.Status,
		Notes:      r.Notes,
	}, nil
}
