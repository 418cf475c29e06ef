package domain

import (
	"fmt"
	"time"
)

// MovementKind вид денежного движения
type MovementKind string

const (
	MovementDeposit MovementKind = "deposit" // предоплата по брони
	MovementPayment MovementKind = "payment" // оплата во время проживания
)

// Valid returns true for a known kind
func (k MovementKind) Valid() bool {
	return k == MovementDeposit || k == MovementPayment
}

// PaymentMethod способ оплаты
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodCard     PaymentMethod = "card"
	MethodTransfer PaymentMethod = "transfer"
	MethodOther    PaymentMethod = "other"
)

// Valid returns true for a known method
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodCard, MethodTransfer, MethodOther:
		return true
	}
	return false
}

// Movement депозит или платеж по бронированию
type Movement struct {
	ID            int64
	ReservationID int64
	Kind          MovementKind
	Method        PaymentMethod
	Amount        Money
	Reference     *string

	CreatedAt time.Time
}

// Validate проверяет поля движения, не зависящие от статуса бронирования
func (m *Movement) Validate() error {
	if !m.Kind.Valid() {
		return fmt.Errorf("%w: kind must be deposit or payment, got %q", ErrInvalidInput, m.Kind)
	}
	if !m.Method.Valid() {
		return fmt.Errorf("%w: method must be cash, card, transfer or other, got %q", ErrInvalidInput, m.Method)
	}
	if !m.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if err := ValidateMoney("amount", m.Amount); err != nil {
		return err
	}
	if TooLong(m.Reference, MaxReferenceLength) {
		return fmt.Errorf("%w: reference exceeds %d characters", ErrInvalidInput, MaxReferenceLength)
	}
	return nil
}
