package create_reservation

import (
	"github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	createReservation "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Kind       string       `json:"kind" validate:"required,oneof=reservation walkin"`
	RoomNumber string       `json:"roomNumber" validate:"required"`
	StartDate  string       `json:"startDate" validate:"required,date"` // "2025-01-10"
	EndDate    string       `json:"endDate" validate:"required,date"`   // "2025-01-12", день выезда
	Guest      GuestPayload `json:"guest" validate:"required"`
	Notes      *string      `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// GuestPayload данные гостя; по documentNumber находится уже известный гость
type GuestPayload struct {
	Name           string  `json:"name" validate:"required,max=150"`
	DocumentNumber *string `json:"documentNumber,omitempty" validate:"omitempty,max=50"`
	Phone          *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Email          *string `json:"email,omitempty" validate:"omitempty,max=150,email"`
	BirthDate      *string `json:"birthDate,omitempty" validate:"omitempty,date"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	start, err := domain.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseDate(r.EndDate)
	if err != nil {
		return nil, err
	}
	birthDate, err := handlers.ParseOptionalDate(r.Guest.BirthDate)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Kind:       domain.ReservationKind(r.Kind),
		RoomNumber: r.RoomNumber,
		StartDate:  start,
		EndDate:    end,
		Guest: domain.GuestInput{
			Name:           r.Guest.Name,
			DocumentNumber: r.Guest.DocumentNumber,
			Phone:          r.Guest.Phone,
			Email:          r.Guest.Email,
			BirthDate:      birthDate,
		},
		Notes: r.Notes,
	}, nil
}
