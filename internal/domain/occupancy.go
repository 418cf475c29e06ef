package domain

import "time"

// OccupancyState производное состояние номера на дату
// Вычисляется из бронирований и нигде не хранится
type OccupancyState string

const (
	OccupancyFree     OccupancyState = "free"
	OccupancyReserved OccupancyState = "reserved"
	OccupancyOccupied OccupancyState = "occupied"
)

// DeriveOccupancy определяет занятость номера на дату по его бронированиям
// Завершенные и отмененные бронирования номер не занимают
func DeriveOccupancy(reservations []*Reservation, day time.Time) OccupancyState {
	state := OccupancyFree
	for _, r := range reservations {
		if !r.Range().Contains(day) {
			continue
		}
		switch r.Status {
		case StatusOccupied:
			return OccupancyOccupied
		case StatusReserved:
			state = OccupancyReserved
		}
	}
	return state
}
