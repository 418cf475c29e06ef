package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNotesLength       = 500
	MaxDescriptionLength = 255
	MaxReferenceLength   = 120
	MaxGuestNameLength   = 150
	MaxDocumentLength    = 50
	MaxPhoneLength       = 30
	MaxEmailLength       = 150
	MinNights            = 1
)

// ClockID идентификатор единственной строки operational_clock
const ClockID = 1

// BlockingStatuses статусы бронирований, которые занимают номер на свои даты
// Отмененные бронирования никогда не конфликтуют
var BlockingStatuses = []ReservationStatus{
	StatusReserved,
	StatusOccupied,
	StatusFinalized,
}
