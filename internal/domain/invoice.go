package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Money денежная сумма
type Money = decimal.Decimal

// InvoiceStatus represents the status of an invoice
type InvoiceStatus string

const (
	InvoiceIssued InvoiceStatus = "issued"
)

// Invoice счет по бронированию, не больше одного на бронирование
// Total - проекция суммы строк, обновляется в той же транзакции, что и вставка строки
type Invoice struct {
	ID            int64
	ReservationID int64
	IssueDate     time.Time
	Total         Money
	Status        InvoiceStatus
	Lines         []*InvoiceLine

	CreatedAt time.Time
}

// LineKind вид строки счета
type LineKind string

const (
	LineLodging    LineKind = "lodging"
	LineIncidental LineKind = "incidental"
)

// InvoiceLine строка счета
// InvoiceID == nil - начисление, сделанное до выставления счета; привязывается при выставлении
type InvoiceLine struct {
	ID            int64
	InvoiceID     *int64
	ReservationID int64
	Kind          LineKind
	Description   string
	Quantity      int
	UnitPrice     Money
	LineTotal     Money

	CreatedAt time.Time
}

// NewLine создает строку, LineTotal = Quantity * UnitPrice
func NewLine(reservationID int64, kind LineKind, description string, quantity int, unitPrice Money) (*InvoiceLine, error) {
	if description == "" {
		return nil, fmt.Errorf("%w: line description is required", ErrInvalidInput)
	}
	if tooLong(description, MaxDescriptionLength) {
		return nil, fmt.Errorf("%w: line description exceeds %d characters", ErrInvalidInput, MaxDescriptionLength)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	if unitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unit price must not be negative", ErrInvalidInput)
	}
	if err := ValidateMoney("unit price", unitPrice); err != nil {
		return nil, err
	}
	lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	if err := ValidateMoney("line total", lineTotal); err != nil {
		return nil, err
	}
	return &InvoiceLine{
		ReservationID: reservationID,
		Kind:          kind,
		Description:   description,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		LineTotal:     lineTotal,
	}, nil
}

// LodgingCharge стоимость проживания: ночи * базовый тариф
func LodgingCharge(rng StayRange, baseRate Money) Money {
	return baseRate.Mul(decimal.NewFromInt(int64(rng.Nights())))
}

// NewLodgingLine строка проживания для счета
func NewLodgingLine(reservationID int64, room *Room, rng StayRange) *InvoiceLine {
	nights := rng.Nights()
	return &InvoiceLine{
		ReservationID: reservationID,
		Kind:          LineLodging,
		Description:   fmt.Sprintf("Lodging room %s, %d night(s) %s", room.Number, nights, rng),
		Quantity:      nights,
		UnitPrice:     room.BaseRate,
		LineTotal:     LodgingCharge(rng, room.BaseRate),
	}
}

// SumLines сумма строк счета
func SumLines(lines []*InvoiceLine) Money {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.LineTotal)
	}
	return total
}

// InvoiceFilter выборка счетов по дате выставления [From, To]
type InvoiceFilter struct {
	From *time.Time
	To   *time.Time
}
