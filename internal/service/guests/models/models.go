package models

import (
	"time"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

// GuestRequest создание или редактирование профиля гостя
type GuestRequest struct {
	Name           string     `json:"name"`
	DocumentNumber *string    `json:"documentNumber,omitempty"`
	Phone          *string    `json:"phone,omitempty"`
	Email          *string    `json:"email,omitempty"`
	BirthDate      *time.Time `json:"-"`
}

// ToDomainInput конвертирует запрос в domain модель
func (r *GuestRequest) ToDomainInput() domain.GuestInput {
	return domain.GuestInput{
		Name:           r.Name,
		DocumentNumber: r.DocumentNumber,
		Phone:          r.Phone,
		Email:          r.Email,
		BirthDate:      r.BirthDate,
	}
}

// GuestResponse ответ с данными гостя
type GuestResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	DocumentNumber *string `json:"documentNumber,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Email          *string `json:"email,omitempty"`
	BirthDate      *string `json:"birthDate,omitempty"` // "1990-05-01"
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// GuestListResponse список гостей
type GuestListResponse struct {
	Guests []*GuestResponse `json:"guests"`
	Total  int              `json:"total"`
}

// FromDomainGuest конвертирует domain модель в response
func FromDomainGuest(g *domain.Guest) *GuestResponse {
	resp := &GuestResponse{
		ID:             g.ID,
		Name:           g.Name,
		DocumentNumber: g.DocumentNumber,
		Phone:          g.Phone,
		Email:          g.Email,
		CreatedAt:      g.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      g.UpdatedAt.Format(time.RFC3339),
	}
	if g.BirthDate != nil {
		s := g.BirthDate.Format(domain.DateFormat)
		resp.BirthDate = &s
	}
	return resp
}

// FromDomainGuestList конвертирует список
func FromDomainGuestList(guests []*domain.Guest) *GuestListResponse {
	result := make([]*GuestResponse, 0, len(guests))
	for _, g := range guests {
		result = append(result, FromDomainGuest(g))
	}
	return &GuestListResponse{Guests: result, Total: len(result)}
}
