package check_in

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/testutil/fakestore"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/logger"
)

type recorder struct {
	mu     sync.Mutex
	events map[string]int
}

func (r *recorder) Transition(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[event]++
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func day(s string) time.Time {
	t, _ := time.Parse(domain.DateFormat, s)
	return t
}

func setup(businessDate string, status domain.ReservationStatus) (*UseCase, *fakestore.Store, *recorder, int64, int64) {
	store := fakestore.New(day(businessDate))
	rec := &recorder{events: map[string]int{}}
	roomID := store.AddRoom("101", "double", 100, domain.RoomAvailable)
	guestID := store.AddGuest("Guest", nil)
	id := store.AddReservation(domain.Reservation{
		RoomID: roomID, GuestID: guestID, StartDate: day("2025-01-10"), EndDate: day("2025-01-12"), Status: status,
	})
	uc := NewUseCase(store.Reservations, store.Rooms, store.Clock, store.Tx, rec, logger.Discard())
	uc.timeProvider = fixedTime{t: time.Date(2025, 1, 10, 15, 0, 0, 0, time.UTC)}
	return uc, store, rec, roomID, id
}

func TestExecute_Window(t *testing.T) {
	tests := []struct {
		businessDate string
		wantErr      error
	}{
		{"2025-01-09", domain.ErrOutsideCheckInWindow},
		{"2025-01-10", nil},
		{"2025-01-11", nil},
		{"2025-01-12", domain.ErrOutsideCheckInWindow},
	}
	for _, tt := range tests {
		t.Run(tt.businessDate, func(t *testing.T) {
			uc, store, _, roomID, id := setup(tt.businessDate, domain.StatusReserved)

			resp, err := uc.Execute(context.Background(), id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrPolicyViolation)
				assert.Equal(t, domain.StatusReserved, store.Reservation(id).Status)
				assert.Equal(t, domain.RoomAvailable, store.Room(roomID).State)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "occupied", resp.Status)
			require.NotNil(t, resp.CheckinAt)
			assert.Equal(t, domain.RoomOccupied, store.Room(roomID).State)
		})
	}
}

func TestExecute_NeverFromTerminalStates(t *testing.T) {
	for _, status := range []domain.ReservationStatus{domain.StatusFinalized, domain.StatusCancelled} {
		uc, store, _, _, id := setup("2025-01-10", status)

		_, err := uc.Execute(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrTerminalState, string(status))
		assert.Equal(t, status, store.Reservation(id).Status)
	}
}

func TestExecute_AlreadyOccupied(t *testing.T) {
	uc, _, _, _, id := setup("2025-01-10", domain.StatusOccupied)

	_, err := uc.Execute(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotReserved)
}

func TestExecute_ConcurrentCheckInsPassGuardOnce(t *testing.T) {
	uc, _, rec, _, id := setup("2025-01-10", domain.StatusReserved)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), id)
		}(i)
	}
	wg.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, domain.ErrNotReserved)
			failed++
		}
	}
	assert.Equal(t, 1, failed)
	assert.Equal(t, 1, rec.events["check_in"])
}

func TestExecute_RollbackWhenRoomUpdateFails(t *testing.T) {
	uc, store, _, _, id := setup("2025-01-10", domain.StatusReserved)
	store.FailOn("rooms.UpdateState", errors.New("deadlock detected"))

	_, err := uc.Execute(context.Background(), id)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, domain.StatusReserved, store.Reservation(id).Status)
	assert.Nil(t, store.Reservation(id).CheckinAt)
}

func TestExecute_NotFound(t *testing.T) {
	uc, _, _, _, _ := setup("2025-01-10", domain.StatusReserved)

	_, err := uc.Execute(context.Background(), 999)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
