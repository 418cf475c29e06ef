package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func reservation(status ReservationStatus) *Reservation {
	return &Reservation{
		ID:        1,
		RoomID:    1,
		StartDate: day("2025-01-10"),
		EndDate:   day("2025-01-12"),
		Status:    status,
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusReserved, InitialStatus(KindReservation))
	assert.Equal(t, StatusOccupied, InitialStatus(KindWalkIn))
}

func TestCanWalkIn(t *testing.T) {
	rng := stay("2025-01-10", "2025-01-12")

	assert.NoError(t, CanWalkIn(rng, day("2025-01-10")))
	assert.ErrorIs(t, CanWalkIn(rng, day("2025-01-09")), ErrWalkInDateMismatch)
	assert.ErrorIs(t, CanWalkIn(rng, day("2025-01-11")), ErrPolicyViolation)
}

func TestCanCheckIn(t *testing.T) {
	tests := []struct {
		name    string
		status  ReservationStatus
		date    string
		wantErr error
	}{
		{"first day", StatusReserved, "2025-01-10", nil},
		{"last night", StatusReserved, "2025-01-11", nil},
		{"before start", StatusReserved, "2025-01-09", ErrOutsideCheckInWindow},
		{"on departure day", StatusReserved, "2025-01-12", ErrOutsideCheckInWindow},
		{"already occupied", StatusOccupied, "2025-01-10", ErrNotReserved},
		{"finalized", StatusFinalized, "2025-01-10", ErrTerminalState},
		{"cancelled", StatusCancelled, "2025-01-10", ErrTerminalState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanCheckIn(reservation(tt.status), day(tt.date))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrPolicyViolation)
		})
	}
}

func TestCanCancel(t *testing.T) {
	assert.NoError(t, CanCancel(reservation(StatusReserved)))
	assert.ErrorIs(t, CanCancel(reservation(StatusOccupied)), ErrNotReserved)
	assert.ErrorIs(t, CanCancel(reservation(StatusCancelled)), ErrTerminalState)
	assert.ErrorIs(t, CanCancel(reservation(StatusFinalized)), ErrTerminalState)
}

func TestCanCheckOut(t *testing.T) {
	issued := &Invoice{ID: 1, Status: InvoiceIssued}

	t.Run("ok on departure day", func(t *testing.T) {
		assert.NoError(t, CanCheckOut(reservation(StatusOccupied), issued, day("2025-01-12")))
	})

	t.Run("ok the day after arrival", func(t *testing.T) {
		assert.NoError(t, CanCheckOut(reservation(StatusOccupied), issued, day("2025-01-11")))
	})

	t.Run("no invoice even if other guards pass", func(t *testing.T) {
		assert.ErrorIs(t, CanCheckOut(reservation(StatusOccupied), nil, day("2025-01-12")), ErrInvoiceMissing)
	})

	t.Run("invoice not issued", func(t *testing.T) {
		draft := &Invoice{ID: 1, Status: InvoiceStatus("draft")}
		assert.ErrorIs(t, CanCheckOut(reservation(StatusOccupied), draft, day("2025-01-12")), ErrInvoiceNotIssued)
	})

	t.Run("same day as arrival", func(t *testing.T) {
		assert.ErrorIs(t, CanCheckOut(reservation(StatusOccupied), issued, day("2025-01-10")), ErrCheckOutTooEarly)
	})

	t.Run("not occupied", func(t *testing.T) {
		assert.ErrorIs(t, CanCheckOut(reservation(StatusReserved), issued, day("2025-01-12")), ErrNotOccupied)
	})

	t.Run("terminal", func(t *testing.T) {
		assert.ErrorIs(t, CanCheckOut(reservation(StatusFinalized), issued, day("2025-01-12")), ErrTerminalState)
	})
}

func TestCanIssueInvoice(t *testing.T) {
	paid := decimal.NewFromInt(50)

	assert.NoError(t, CanIssueInvoice(reservation(StatusOccupied), false, paid))
	assert.ErrorIs(t, CanIssueInvoice(reservation(StatusOccupied), true, paid), ErrAlreadyInvoiced)
	assert.ErrorIs(t, CanIssueInvoice(reservation(StatusOccupied), false, decimal.Zero), ErrNothingPaid)
	assert.ErrorIs(t, CanIssueInvoice(reservation(StatusReserved), false, paid), ErrNotOccupied)
	assert.ErrorIs(t, CanIssueInvoice(reservation(StatusCancelled), false, paid), ErrTerminalState)

	flagged := reservation(StatusOccupied)
	flagged.Invoiced = true
	assert.ErrorIs(t, CanIssueInvoice(flagged, false, paid), ErrAlreadyInvoiced)
}

func TestCanAddCharge(t *testing.T) {
	assert.NoError(t, CanAddCharge(reservation(StatusOccupied), true))
	assert.ErrorIs(t, CanAddCharge(reservation(StatusOccupied), false), ErrInvoiceMissing)
	assert.ErrorIs(t, CanAddCharge(reservation(StatusReserved), true), ErrNotOccupied)
	assert.ErrorIs(t, CanAddCharge(reservation(StatusFinalized), true), ErrTerminalState)
}

func TestCanPostConsumption(t *testing.T) {
	assert.NoError(t, CanPostConsumption(reservation(StatusOccupied), false))
	assert.ErrorIs(t, CanPostConsumption(reservation(StatusOccupied), true), ErrAlreadyInvoiced)
	assert.ErrorIs(t, CanPostConsumption(reservation(StatusReserved), false), ErrNotOccupied)
	assert.ErrorIs(t, CanPostConsumption(reservation(StatusCancelled), false), ErrTerminalState)

	flagged := reservation(StatusOccupied)
	flagged.Invoiced = true
	assert.ErrorIs(t, CanPostConsumption(flagged, false), ErrAlreadyInvoiced)
}

func TestCanRecordMovement(t *testing.T) {
	tests := []struct {
		status  ReservationStatus
		kind    MovementKind
		wantErr error
	}{
		{StatusReserved, MovementDeposit, nil},
		{StatusOccupied, MovementDeposit, ErrDepositNotAllowed},
		{StatusOccupied, MovementPayment, nil},
		{StatusReserved, MovementPayment, ErrPaymentNotAllowed},
		{StatusFinalized, MovementPayment, ErrTerminalState},
		{StatusCancelled, MovementDeposit, ErrTerminalState},
		{StatusReserved, MovementKind("refund"), ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(string(tt.status)+"/"+string(tt.kind), func(t *testing.T) {
			err := CanRecordMovement(reservation(tt.status), tt.kind)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCanEditStay(t *testing.T) {
	assert.NoError(t, CanEditStay(reservation(StatusReserved)))
	assert.ErrorIs(t, CanEditStay(reservation(StatusOccupied)), ErrStayNotEditable)
	assert.ErrorIs(t, CanEditStay(reservation(StatusCancelled)), ErrTerminalState)

	assert.NoError(t, CanEditNotes(reservation(StatusOccupied)))
	assert.ErrorIs(t, CanEditNotes(reservation(StatusFinalized)), ErrTerminalState)
}

// Статус occupied достижим только из reserved или при создании walk-in
func TestOccupiedReachability(t *testing.T) {
	for _, s := range []ReservationStatus{StatusFinalized, StatusCancelled, StatusOccupied} {
		assert.Error(t, CanCheckIn(reservation(s), day("2025-01-10")), "check-in from %s", s)
	}
	assert.NoError(t, CanCheckIn(reservation(StatusReserved), day("2025-01-10")))
}

func TestShouldReleaseRoom(t *testing.T) {
	occupied := &Room{State: RoomOccupied}

	assert.True(t, ShouldReleaseRoom(occupied, 0))
	assert.False(t, ShouldReleaseRoom(occupied, 1))
	assert.False(t, ShouldReleaseRoom(&Room{State: RoomMaintenance}, 0))
}
