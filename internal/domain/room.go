package domain

import (
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// RoomState физическое состояние номера, хранится в БД
type RoomState string

const (
	RoomAvailable    RoomState = "available"
	RoomOccupied     RoomState = "occupied"
	RoomMaintenance  RoomState = "maintenance"
	RoomOutOfService RoomState = "out_of_service"
)

// Valid returns true for a known physical state
func (s RoomState) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance, RoomOutOfService:
		return true
	}
	return false
}

// Room represents a hotel room
type Room struct {
	ID       int64
	Number   string
	Type     string
	Capacity int
	BaseRate decimal.Decimal
	State    RoomState

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns false for rooms taken out of inventory
func (r *Room) IsBookable() bool {
	return r.State != RoomMaintenance && r.State != RoomOutOfService
}

// RoomFilter фильтр списка номеров
type RoomFilter struct {
	Type         *string
	State        *RoomState
	BookableOnly bool
}

// SortRoomsByNumber сортирует номера по числовому значению номера (101 < 1001),
// нечисловые номера идут после числовых в лексикографическом порядке
func SortRoomsByNumber(rooms []*Room) {
	sort.SliceStable(rooms, func(i, j int) bool {
		return lessRoomNumber(rooms[i].Number, rooms[j].Number)
	})
}

func lessRoomNumber(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
