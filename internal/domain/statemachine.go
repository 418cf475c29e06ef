package domain

import (
	"fmt"
	"time"
)

// Guards машины состояний бронирования
// Все функции чистые: операционная дата передается параметром, системное время не читается

// InitialStatus начальный статус нового бронирования
func InitialStatus(kind ReservationKind) ReservationStatus {
	if kind == KindWalkIn {
		return StatusOccupied
	}
	return StatusReserved
}

// CanWalkIn заселение без брони возможно только с текущей операционной даты
func CanWalkIn(rng StayRange, businessDate time.Time) error {
	if !Date(businessDate).Equal(rng.Start) {
		return fmt.Errorf("%w: start=%s business_date=%s",
			ErrWalkInDateMismatch, rng.Start.Format(DateFormat), Date(businessDate).Format(DateFormat))
	}
	return nil
}

// CanCheckIn reserved -> occupied, операционная дата в [start, end)
func CanCheckIn(r *Reservation, businessDate time.Time) error {
	if r.IsTerminal() {
		return ErrTerminalState
	}
	if r.Status != StatusReserved {
		return ErrNotReserved
	}
	if !r.Range().Contains(businessDate) {
		return fmt.Errorf("%w: business_date=%s stay=%s",
			ErrOutsideCheckInWindow, Date(businessDate).Format(DateFormat), r.Range())
	}
	return nil
}

// CanCancel reserved -> cancelled
func CanCancel(r *Reservation) error {
	if r.IsTerminal() {
		return ErrTerminalState
	}
	if r.Status != StatusReserved {
		return ErrNotReserved
	}
	return nil
}

// CanCheckOut occupied -> finalized
// Нужен выставленный счет, выезд не раньше следующего дня после заезда
func CanCheckOut(r *Reservation, invoice *Invoice, businessDate time.Time) error {
	if r.IsTerminal() {
		return ErrTerminalState
	}
	if r.Status != StatusOccupied {
		return ErrNotOccupied
	}
	if invoice == nil {
		return ErrInvoiceMissing
	}
	if invoice.Status != InvoiceIssued {
		return ErrInvoiceNotIssued
	}
	earliest := Date(r.StartDate).AddDate(0, 0, 1)
	if Date(businessDate).Before(earliest) {
		return fmt.Errorf("%w: business_date=%s earliest=%s",
			ErrCheckOutTooEarly, Date(businessDate).Format(DateFormat), earliest.Format(DateFormat))
	}
	return nil
}

// CanIssueInvoice счет выставляется один раз, пока гость проживает, и только после оплаты
func CanIssueInvoice(r *Reservation, hasInvoice bool, totalPaid Money) error {
	if r.IsTerminal() {
		return ErrTerminalState
	}
	if r.Status != StatusOccupied {
		return ErrNotOccupied
	}
	if hasInvoice || r.Invoiced {
		return ErrAlreadyInvoiced
	}
	if !totalPaid.IsPositive() {
		return ErrNothingPaid
	}
	return nil
}

// CanAddCharge дополнительные начисления только к выставленному счету проживающего гостя
func CanAddCharge(r *Reservation, hasInvoice bool) error {
	if r.IsTerminal() {
		return ErrTerminalState
	}
	if r.Status != StatusOccupied {
		return ErrNotOccupied
	}
	if !hasInvoice {
		return ErrInvoiceMissing
	}
	return nil
}

// CanPostConsumption услуги, потребленные до выставления счета, копятся как начисления без счета
// После выставления счета начисления идут через CanAddCharge
func CanPostConsumption(r *Reservation, hasInvoice bool) error {
	if r.IsTerminal() {
		return ErrTerminalState
	}
	if r.Status != StatusOccupied {
		return ErrNotOccupied
	}
	if hasInvoice || r.Invoiced {
		return ErrAlreadyInvoiced
	}
	return nil
}

// CanRecordMovement депозит только для reserved, оплата только для occupied
func CanRecordMovement(r *Reservation, kind MovementKind) error {
	if r.IsTerminal() {
		return ErrTerminalState
	}
	switch kind {
	case MovementDeposit:
		if r.Status != StatusReserved {
			return ErrDepositNotAllowed
		}
	case MovementPayment:
		if r.Status != StatusOccupied {
			return ErrPaymentNotAllowed
		}
	default:
		return fmt.Errorf("%w: unknown movement kind %q", ErrInvalidInput, kind)
	}
	return nil
}

// CanEditStay даты и номер меняются только у reserved бронирований
func CanEditStay(r *Reservation) error {
	if r.IsTerminal() {
		return ErrTerminalState
	}
	if r.Status != StatusReserved {
		return ErrStayNotEditable
	}
	return nil
}

// CanEditNotes заметки нельзя менять у завершенных и отмененных бронирований
func CanEditNotes(r *Reservation) error {
	if r.IsTerminal() {
		return ErrTerminalState
	}
	return nil
}

// ShouldReleaseRoom номер освобождается, если он занят и других проживающих в нем нет
func ShouldReleaseRoom(room *Room, otherOccupied int) bool {
	return room.State == RoomOccupied && otherOccupied == 0
}
