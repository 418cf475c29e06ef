package issue_invoice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/testutil/fakestore"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/logger"
)

type transitions map[string]int

func (t transitions) Transition(event string) { t[event]++ }

func day(s string) time.Time {
	t, _ := time.Parse(domain.DateFormat, s)
	return t
}

type fixture struct {
	uc    *UseCase
	store *fakestore.Store
	rec   transitions
	id    int64
}

// Номер 101, тариф 100, проживание 2025-01-10 -> 2025-01-12
func setup(status domain.ReservationStatus, paid int64) *fixture {
	store := fakestore.New(day("2025-01-11"))
	rec := transitions{}
	roomID := store.AddRoom("101", "double", 100, domain.RoomOccupied)
	id := store.AddReservation(domain.Reservation{
		RoomID: roomID, GuestID: store.AddGuest("Guest", nil),
		StartDate: day("2025-01-10"), EndDate: day("2025-01-12"), Status: status,
	})
	if paid > 0 {
		store.AddMovement(domain.Movement{
			ReservationID: id, Kind: domain.MovementPayment, Method: domain.MethodCash, Amount: decimal.NewFromInt(paid),
		})
	}
	uc := NewUseCase(store.Reservations, store.Rooms, store.Invoices, store.Movements, store.Clock, store.Tx, rec, logger.Discard())
	return &fixture{uc: uc, store: store, rec: rec, id: id}
}

func TestExecute_LodgingLine(t *testing.T) {
	f := setup(domain.StatusOccupied, 50)

	resp, err := f.uc.Execute(context.Background(), f.id)
	require.NoError(t, err)
	assert.Equal(t, "200.00", resp.Total)
	assert.Equal(t, "2025-01-11", resp.IssueDate, "issued on the business date")
	assert.Equal(t, "issued", resp.Status)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "lodging", resp.Lines[0].Kind)
	assert.Equal(t, 2, resp.Lines[0].Quantity)
	assert.Equal(t, "100.00", resp.Lines[0].UnitPrice)

	assert.True(t, f.store.Reservation(f.id).Invoiced)
	assert.Equal(t, domain.StatusOccupied, f.store.Reservation(f.id).Status)
	assert.Equal(t, 1, f.rec["invoice"])
}

func TestExecute_IncludesPendingCharges(t *testing.T) {
	f := setup(domain.StatusOccupied, 50)
	f.store.AddPendingLine(domain.InvoiceLine{
		ReservationID: f.id, Kind: domain.LineIncidental, Description: "Minibar",
		Quantity: 2, UnitPrice: decimal.NewFromInt(15), LineTotal: decimal.NewFromInt(30),
	})

	resp, err := f.uc.Execute(context.Background(), f.id)
	require.NoError(t, err)
	assert.Equal(t, "230.00", resp.Total)

	inv, lines, ok := f.store.InvoiceOf(f.id)
	require.True(t, ok)
	assert.Len(t, lines, 2, "pending charge is attached to the invoice")
	assert.True(t, inv.Total.Equal(domain.SumLines(toPtrs(lines))))
}

func TestExecute_SecondCallFails(t *testing.T) {
	f := setup(domain.StatusOccupied, 50)

	_, err := f.uc.Execute(context.Background(), f.id)
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), f.id)
	assert.ErrorIs(t, err, domain.ErrAlreadyInvoiced)
	assert.ErrorIs(t, err, domain.ErrPolicyViolation)
}

func TestExecute_NothingPaid(t *testing.T) {
	f := setup(domain.StatusOccupied, 0)

	_, err := f.uc.Execute(context.Background(), f.id)
	assert.ErrorIs(t, err, domain.ErrNothingPaid)
	_, _, ok := f.store.InvoiceOf(f.id)
	assert.False(t, ok)
}

func TestExecute_WrongState(t *testing.T) {
	tests := []struct {
		status domain.ReservationStatus
		want   error
	}{
		{domain.StatusReserved, domain.ErrNotOccupied},
		{domain.StatusFinalized, domain.ErrTerminalState},
		{domain.StatusCancelled, domain.ErrTerminalState},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			f := setup(tt.status, 50)
			_, err := f.uc.Execute(context.Background(), f.id)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExecute_RollbackLeavesNoInvoice(t *testing.T) {
	f := setup(domain.StatusOccupied, 50)
	f.store.FailOn("invoices.AddLine", errors.New("disk full"))

	_, err := f.uc.Execute(context.Background(), f.id)
	assert.ErrorIs(t, err, ErrInternal)

	_, _, ok := f.store.InvoiceOf(f.id)
	assert.False(t, ok, "invoice insert is rolled back")
	assert.False(t, f.store.Reservation(f.id).Invoiced)
}

func TestExecute_NotFound(t *testing.T) {
	f := setup(domain.StatusOccupied, 50)
	_, err := f.uc.Execute(context.Background(), 999)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func toPtrs(lines []domain.InvoiceLine) []*domain.InvoiceLine {
	out := make([]*domain.InvoiceLine, len(lines))
	for i := range lines {
		out[i] = &lines[i]
	}
	return out
}
