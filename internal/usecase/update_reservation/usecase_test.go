package update_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/availability"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/testutil/fakestore"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/cancel_reservation"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/logger"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/ptr"
)

type recorder struct{ conflicts, transitions int }

func (r *recorder) AvailabilityConflict(string) { r.conflicts++ }
func (r *recorder) Transition(string)           { r.transitions++ }

func day(s string) time.Time {
	t, _ := time.Parse(domain.DateFormat, s)
	return t
}

type fixture struct {
	uc    *UseCase
	store *fakestore.Store
	rec   *recorder
	room5 int64
	room6 int64
}

func setup() *fixture {
	store := fakestore.New(day("2025-02-20"))
	log := logger.Discard()
	rec := &recorder{}
	checker := availability.NewChecker(store.Reservations, store.Rooms, log)
	canceller := cancel_reservation.NewUseCase(store.Reservations, store.Rooms, store.Tx, rec, log)
	return &fixture{
		uc:    NewUseCase(store.Reservations, store.Rooms, checker, canceller, store.Tx, rec, log),
		store: store,
		rec:   rec,
		room5: store.AddRoom("5", "double", 80, domain.RoomAvailable),
		room6: store.AddRoom("6", "double", 80, domain.RoomAvailable),
	}
}

func (f *fixture) add(roomID int64, start, end string, status domain.ReservationStatus) int64 {
	return f.store.AddReservation(domain.Reservation{
		RoomID: roomID, GuestID: 1, StartDate: day(start), EndDate: day(end), Status: status,
	})
}

func TestExecute_MoveDatesExcludesItself(t *testing.T) {
	f := setup()
	id := f.add(f.room5, "2025-03-01", "2025-03-05", domain.StatusReserved)

	resp, err := f.uc.Execute(context.Background(), &Request{ID: id, EndDate: ptr.Ptr(day("2025-03-06"))})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", resp.StartDate)
	assert.Equal(t, "2025-03-06", resp.EndDate)
	assert.Equal(t, 5, resp.Nights)
}

func TestExecute_OverlapConflict(t *testing.T) {
	f := setup()
	f.add(f.room5, "2025-03-01", "2025-03-05", domain.StatusReserved)
	id := f.add(f.room5, "2025-03-05", "2025-03-07", domain.StatusReserved)

	_, err := f.uc.Execute(context.Background(), &Request{ID: id, StartDate: ptr.Ptr(day("2025-03-04"))})
	assert.ErrorIs(t, err, ErrRoomNotAvailable)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, day("2025-03-05"), f.store.Reservation(id).StartDate)
	assert.Equal(t, 1, f.rec.conflicts)
}

func TestExecute_ChangeRoom(t *testing.T) {
	f := setup()
	id := f.add(f.room5, "2025-03-01", "2025-03-03", domain.StatusReserved)
	f.add(f.room6, "2025-03-02", "2025-03-04", domain.StatusReserved)

	_, err := f.uc.Execute(context.Background(), &Request{ID: id, RoomNumber: ptr.Ptr("6")})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.uc.Execute(context.Background(), &Request{ID: id, RoomNumber: ptr.Ptr("77")})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	resp, err := f.uc.Execute(context.Background(), &Request{
		ID: id, RoomNumber: ptr.Ptr("6"), StartDate: ptr.Ptr(day("2025-03-04")), EndDate: ptr.Ptr(day("2025-03-06")),
	})
	require.NoError(t, err)
	assert.Equal(t, "6", resp.RoomNumber)
	assert.Equal(t, f.room6, f.store.Reservation(id).RoomID)
}

func TestExecute_InvertedRange(t *testing.T) {
	f := setup()
	id := f.add(f.room5, "2025-03-01", "2025-03-03", domain.StatusReserved)

	_, err := f.uc.Execute(context.Background(), &Request{ID: id, EndDate: ptr.Ptr(day("2025-03-01"))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExecute_StayNotEditableOnceOccupied(t *testing.T) {
	f := setup()
	id := f.add(f.room5, "2025-03-01", "2025-03-03", domain.StatusOccupied)

	_, err := f.uc.Execute(context.Background(), &Request{ID: id, EndDate: ptr.Ptr(day("2025-03-04"))})
	assert.ErrorIs(t, err, domain.ErrStayNotEditable)

	resp, err := f.uc.Execute(context.Background(), &Request{ID: id, Notes: ptr.Ptr("late breakfast")})
	require.NoError(t, err)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "late breakfast", *resp.Notes)
}

func TestExecute_TerminalReservation(t *testing.T) {
	f := setup()
	id := f.add(f.room5, "2025-03-01", "2025-03-03", domain.StatusFinalized)

	_, err := f.uc.Execute(context.Background(), &Request{ID: id, Notes: ptr.Ptr("x")})
	assert.ErrorIs(t, err, domain.ErrTerminalState)
}

func TestExecute_StatusChanges(t *testing.T) {
	f := setup()
	id := f.add(f.room5, "2025-03-01", "2025-03-03", domain.StatusReserved)

	_, err := f.uc.Execute(context.Background(), &Request{ID: id, Status: ptr.Ptr("occupied")})
	assert.ErrorIs(t, err, ErrStatusChangeNotAllowed)

	_, err = f.uc.Execute(context.Background(), &Request{ID: id, Status: ptr.Ptr("gone")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{ID: id, Status: ptr.Ptr("cancelled"), EndDate: ptr.Ptr(day("2025-03-04"))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	resp, err := f.uc.Execute(context.Background(), &Request{ID: id, Status: ptr.Ptr("cancelled"), Notes: ptr.Ptr("guest called")})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "guest called", *resp.Notes)
	assert.Equal(t, 1, f.rec.transitions)
}

func TestExecute_NothingToUpdate(t *testing.T) {
	f := setup()
	_, err := f.uc.Execute(context.Background(), &Request{ID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExecute_NotFound(t *testing.T) {
	f := setup()
	_, err := f.uc.Execute(context.Background(), &Request{ID: 999, Notes: ptr.Ptr("x")})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
