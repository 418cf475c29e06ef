package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/logger"
)

type fakeReservations struct {
	items []*domain.Reservation
	err   error
}

// ListOverlapping повторяет SQL фильтр репозитория
func (f *fakeReservations) ListOverlapping(_ context.Context, q domain.OverlapQuery) ([]*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Reservation
	for _, r := range f.items {
		if q.RoomID != nil && r.RoomID != *q.RoomID {
			continue
		}
		if q.ExcludeID != nil && r.ID == *q.ExcludeID {
			continue
		}
		if r.Status != domain.StatusCancelled && r.Range().Overlaps(q.Range) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeRooms struct {
	rooms  map[int64]*domain.Room
	locked []int64
}

func (f *fakeRooms) LockByID(_ context.Context, id int64) (*domain.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	f.locked = append(f.locked, id)
	return room, nil
}

func d(s string) time.Time {
	t, _ := time.Parse(domain.DateFormat, s)
	return t
}

func rng(start, end string) domain.StayRange {
	return domain.StayRange{Start: d(start), End: d(end)}
}

func newChecker() (*Checker, *fakeReservations, *fakeRooms) {
	reservations := &fakeReservations{items: []*domain.Reservation{
		{ID: 1, RoomID: 5, StartDate: d("2025-03-01"), EndDate: d("2025-03-05"), Status: domain.StatusReserved},
		{ID: 2, RoomID: 6, StartDate: d("2025-03-01"), EndDate: d("2025-03-10"), Status: domain.StatusCancelled},
	}}
	rooms := &fakeRooms{rooms: map[int64]*domain.Room{
		5: {ID: 5, Number: "5"},
		6: {ID: 6, Number: "6"},
	}}
	return NewChecker(reservations, rooms, logger.Discard()), reservations, rooms
}

func TestChecker_IsRangeFree(t *testing.T) {
	c, _, rooms := newChecker()
	ctx := context.Background()

	free, err := c.IsRangeFree(ctx, 5, rng("2025-03-04", "2025-03-06"), nil)
	require.NoError(t, err)
	assert.False(t, free, "overlap on 03-04")

	free, err = c.IsRangeFree(ctx, 5, rng("2025-03-05", "2025-03-07"), nil)
	require.NoError(t, err)
	assert.True(t, free, "back-to-back is free")

	free, err = c.IsRangeFree(ctx, 6, rng("2025-03-02", "2025-03-03"), nil)
	require.NoError(t, err)
	assert.True(t, free, "cancelled reservation never blocks")

	self := int64(1)
	free, err = c.IsRangeFree(ctx, 5, rng("2025-03-02", "2025-03-06"), &self)
	require.NoError(t, err)
	assert.True(t, free, "edited reservation is excluded")

	assert.Equal(t, []int64{5, 5, 6, 5}, rooms.locked, "room row is locked before every check")
}

func TestChecker_EnsureRangeFree(t *testing.T) {
	c, reservations, _ := newChecker()
	ctx := context.Background()

	err := c.EnsureRangeFree(ctx, 5, rng("2025-03-01", "2025-03-05"), nil)
	assert.ErrorIs(t, err, ErrRangeTaken)
	assert.ErrorIs(t, err, domain.ErrConflict)

	err = c.EnsureRangeFree(ctx, 99, rng("2025-03-01", "2025-03-05"), nil)
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	reservations.err = errors.New("connection reset")
	err = c.EnsureRangeFree(ctx, 5, rng("2025-04-01", "2025-04-02"), nil)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestChecker_FreeRooms(t *testing.T) {
	c, _, _ := newChecker()
	rooms := []*domain.Room{{ID: 5, Number: "5"}, {ID: 6, Number: "6"}, {ID: 7, Number: "7"}}

	free, err := c.FreeRooms(context.Background(), rooms, rng("2025-03-03", "2025-03-04"))
	require.NoError(t, err)

	var numbers []string
	for _, r := range free {
		numbers = append(numbers, r.Number)
	}
	assert.Equal(t, []string{"6", "7"}, numbers)
}
