package models

import (
	"time"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

// Request модели

// ListReservationsRequest запрос списка бронирований
type ListReservationsRequest struct {
	Status *string `json:"status,omitempty"`
	RoomID *int64  `json:"roomId,omitempty"`
	Limit  uint64  `json:"limit,omitempty"`
	Offset uint64  `json:"offset,omitempty"`
}

// CalendarRequest запрос шахматки: бронирования, пересекающиеся с [From, To)
type CalendarRequest struct {
	From time.Time
	To   time.Time
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID         int64   `json:"id"`
	RoomID     int64   `json:"roomId"`
	RoomNumber string  `json:"roomNumber,omitempty"`
	RoomType   string  `json:"roomType,omitempty"`
	GuestID    int64   `json:"guestId"`
	GuestName  string  `json:"guestName,omitempty"`
	StartDate  string  `json:"startDate"` // "2025-01-10"
	EndDate    string  `json:"endDate"`   // "2025-01-12", день выезда
	Nights     int     `json:"nights"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes,omitempty"`
	CheckinAt  *string `json:"checkinAt,omitempty"`
	CheckoutAt *string `json:"checkoutAt,omitempty"`
	Invoiced   bool    `json:"invoiced"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// FromDomainReservation конвертирует domain модель в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:         r.ID,
		RoomID:     r.RoomID,
		RoomNumber: r.RoomNumber,
		RoomType:   r.RoomType,
		GuestID:    r.GuestID,
		GuestName:  r.GuestName,
		StartDate:  r.StartDate.Format(domain.DateFormat),
		EndDate:    r.EndDate.Format(domain.DateFormat),
		Nights:     r.Range().Nights(),
		Status:     string(r.Status),
		Notes:      r.Notes,
		CheckinAt:  formatTime(r.CheckinAt),
		CheckoutAt: formatTime(r.CheckoutAt),
		Invoiced:   r.Invoiced,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  r.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	result := make([]*ReservationResponse, 0, len(list))
	for _, r := range list {
		result = append(result, FromDomainReservation(r))
	}
	return &ReservationListResponse{Reservations: result, Total: len(result)}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
