package check_out

import (
	"context"
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

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func day(s string) time.Time {
	t, _ := time.Parse(domain.DateFormat, s)
	return t
}

type fixture struct {
	uc     *UseCase
	store  *fakestore.Store
	rec    transitions
	roomID int64
	id     int64
}

func setup(businessDate string, status domain.ReservationStatus) *fixture {
	store := fakestore.New(day(businessDate))
	rec := transitions{}
	roomID := store.AddRoom("101", "double", 100, domain.RoomOccupied)
	id := store.AddReservation(domain.Reservation{
		RoomID: roomID, GuestID: store.AddGuest("Guest", nil),
		StartDate: day("2025-01-10"), EndDate: day("2025-01-12"), Status: status,
	})
	uc := NewUseCase(store.Reservations, store.Invoices, store.Rooms, store.Clock, store.Tx, rec, logger.Discard())
	uc.timeProvider = fixedTime{t: time.Date(2025, 1, 12, 11, 0, 0, 0, time.UTC)}
	return &fixture{uc: uc, store: store, rec: rec, roomID: roomID, id: id}
}

func (f *fixture) issueInvoice(t *testing.T) {
	t.Helper()
	_, err := f.store.Invoices.Create(context.Background(), &domain.Invoice{
		ReservationID: f.id, IssueDate: day("2025-01-11"), Total: decimal.NewFromInt(200), Status: domain.InvoiceIssued,
	})
	require.NoError(t, err)
}

func TestExecute_RequiresInvoice(t *testing.T) {
	f := setup("2025-01-12", domain.StatusOccupied)

	_, err := f.uc.Execute(context.Background(), f.id)
	assert.ErrorIs(t, err, domain.ErrInvoiceMissing)
	assert.ErrorIs(t, err, domain.ErrPolicyViolation)
	assert.Equal(t, domain.StatusOccupied, f.store.Reservation(f.id).Status)
}

func TestExecute_TooEarly(t *testing.T) {
	f := setup("2025-01-10", domain.StatusOccupied)
	f.issueInvoice(t)

	_, err := f.uc.Execute(context.Background(), f.id)
	assert.ErrorIs(t, err, domain.ErrCheckOutTooEarly)
}

func TestExecute_Finalizes(t *testing.T) {
	f := setup("2025-01-11", domain.StatusOccupied)
	f.issueInvoice(t)

	resp, err := f.uc.Execute(context.Background(), f.id)
	require.NoError(t, err)
	assert.Equal(t, "finalized", resp.Status)
	require.NotNil(t, resp.CheckoutAt)
	assert.Equal(t, "2025-01-12T11:00:00Z", *resp.CheckoutAt)
	assert.Equal(t, domain.RoomAvailable, f.store.Room(f.roomID).State)
	assert.Equal(t, 1, f.rec["check_out"])
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
			f := setup("2025-01-12", tt.status)
			f.issueInvoice(t)

			_, err := f.uc.Execute(context.Background(), f.id)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExecute_NotFound(t *testing.T) {
	f := setup("2025-01-12", domain.StatusOccupied)

	_, err := f.uc.Execute(context.Background(), 999)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
