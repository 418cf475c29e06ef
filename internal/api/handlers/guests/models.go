package guests

import (
	"github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/guests/models"
)

// GuestPayload HTTP request model
type GuestPayload struct {
	Name           string  `json:"name" validate:"required,max=150"`
	DocumentNumber *string `json:"documentNumber,omitempty" validate:"omitempty,max=50"`
	Phone          *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Email          *string `json:"email,omitempty" validate:"omitempty,max=150,email"`
	BirthDate      *string `json:"birthDate,omitempty" validate:"omitempty,date"`
}

func (p *GuestPayload) ToServiceRequest() (*models.GuestRequest, error) {
	birthDate, err := handlers.ParseOptionalDate(p.BirthDate)
	if err != nil {
		return nil, err
	}
	return &models.GuestRequest{
		Name:           p.Name,
		DocumentNumber: p.DocumentNumber,
		Phone:          p.Phone,
		Email:          p.Email,
		BirthDate:      birthDate,
	}, nil
}
