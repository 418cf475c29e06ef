package domain

import (
	"time"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusReserved  ReservationStatus = "reserved"
	StatusOccupied  ReservationStatus = "occupied"
	StatusFinalized ReservationStatus = "finalized"
	StatusCancelled ReservationStatus = "cancelled"
)

// Valid returns true for a known status
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusReserved, StatusOccupied, StatusFinalized, StatusCancelled:
		return true
	}
	return false
}

// ReservationKind способ создания бронирования
type ReservationKind string

const (
	KindReservation ReservationKind = "reservation" // предварительное бронирование
	KindWalkIn      ReservationKind = "walkin"      // заселение без брони в текущий операционный день
)

// Valid returns true for a known kind
func (k ReservationKind) Valid() bool {
	return k == KindReservation || k == KindWalkIn
}

// Reservation represents a stay of a guest in a room
type Reservation struct {
	ID        int64
	RoomID    int64
	GuestID   int64
	StartDate time.Time
	EndDate   time.Time
	Status    ReservationStatus
	Notes     *string

	CheckinAt  *time.Time
	CheckoutAt *time.Time
	Invoiced   bool

	// Denormalized data for listings
	RoomNumber string
	RoomType   string
	GuestName  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range returns the half-open stay range [StartDate, EndDate)
func (r *Reservation) Range() StayRange {
	return StayRange{Start: Date(r.StartDate), End: Date(r.EndDate)}
}

// IsTerminal returns true for finalized and cancelled reservations
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusFinalized || r.Status == StatusCancelled
}

// ReservationFilter фильтр списка бронирований
type ReservationFilter struct {
	Status *ReservationStatus
	RoomID *int64
	Limit  uint64
	Offset uint64
}

// OverlapQuery запрос бронирований, пересекающихся с диапазоном
// RoomID == nil - по всем номерам
type OverlapQuery struct {
	RoomID    *int64
	Range     StayRange
	ExcludeID *int64
}
