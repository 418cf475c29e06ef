package get_available_rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/availability"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/testutil/fakestore"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/logger"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/ptr"
)

func day(s string) time.Time {
	t, _ := time.Parse(domain.DateFormat, s)
	return t
}

func setup() (*UseCase, *fakestore.Store) {
	store := fakestore.New(day("2025-03-01"))
	log := logger.Discard()
	room5 := store.AddRoom("5", "double", 80, domain.RoomAvailable)
	store.AddRoom("101", "double", 100, domain.RoomAvailable)
	store.AddRoom("12", "single", 60, domain.RoomOccupied)
	store.AddRoom("7", "double", 80, domain.RoomMaintenance)
	store.AddRoom("8", "double", 80, domain.RoomOutOfService)
	store.AddReservation(domain.Reservation{
		RoomID: room5, GuestID: 1, StartDate: day("2025-03-01"), EndDate: day("2025-03-05"), Status: domain.StatusReserved,
	})
	checker := availability.NewChecker(store.Reservations, store.Rooms, log)
	return NewUseCase(store.Rooms, checker, log), store
}

func numbers(resp *Response) []string {
	out := make([]string, 0, len(resp.Rooms))
	for _, r := range resp.Rooms {
		out = append(out, r.Room.Number)
	}
	return out
}

func TestExecute_FiltersBookedAndOutOfInventory(t *testing.T) {
	uc, _ := setup()

	resp, err := uc.Execute(context.Background(), &Request{StartDate: day("2025-03-04"), EndDate: day("2025-03-06")})
	require.NoError(t, err)
	assert.Equal(t, []string{"12", "101"}, numbers(resp), "numeric order, room 5 overlaps on 03-04")
	assert.Equal(t, 2, resp.Nights)
	assert.Equal(t, "200.00", resp.Rooms[1].Lodging.StringFixed(2))
}

func TestExecute_BackToBackIsFree(t *testing.T) {
	uc, _ := setup()

	resp, err := uc.Execute(context.Background(), &Request{StartDate: day("2025-03-05"), EndDate: day("2025-03-07")})
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "12", "101"}, numbers(resp))
}

func TestExecute_ByType(t *testing.T) {
	uc, _ := setup()

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: day("2025-03-10"), EndDate: day("2025-03-11"), Type: ptr.Ptr("single"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"12"}, numbers(resp))
}

func TestExecute_InvalidRange(t *testing.T) {
	uc, _ := setup()

	_, err := uc.Execute(context.Background(), &Request{StartDate: day("2025-03-10"), EndDate: day("2025-03-10")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{StartDate: day("2025-03-10")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExecute_DoesNotMutate(t *testing.T) {
	uc, store := setup()
	before := len(store.AllReservations())

	_, err := uc.Execute(context.Background(), &Request{StartDate: day("2025-03-01"), EndDate: day("2025-03-02")})
	require.NoError(t, err)
	assert.Len(t, store.AllReservations(), before)
}
