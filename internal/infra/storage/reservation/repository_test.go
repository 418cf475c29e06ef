package reservation

import (
	"context"
	"database/sql"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/ptr"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func date(s string) time.Time {
	t, _ := time.Parse(domain.DateFormat, s)
	return t
}

func joinedRows() *sqlmock.Rows {
	names := make([]string, 0, len(joinedColumns))
	for _, c := range joinedColumns {
		names = append(names, c[strings.Index(c, ".")+1:])
	}
	return sqlmock.NewRows(names)
}

func TestRepository_ListOverlapping(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()
	rng := domain.StayRange{Start: date("2025-03-04"), End: date("2025-03-06")}

	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE r.start_date < $1 AND r.end_date > $2 AND r.status <> $3 AND r.room_id = $4 AND r.id <> $5 ORDER BY r.start_date ASC, rm.number ASC")).
		WithArgs(rng.End, rng.Start, domain.StatusCancelled, int64(5), int64(9)).
		WillReturnRows(joinedRows().AddRow(
			1, 5, 3, date("2025-03-01"), date("2025-03-05"), "reserved", nil, nil, nil, false, now, now,
			"5", "double", "Ana Ruiz",
		))

	list, err := repo.ListOverlapping(context.Background(), domain.OverlapQuery{
		RoomID:    ptr.Ptr(int64(5)),
		Range:     rng,
		ExcludeID: ptr.Ptr(int64(9)),
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.StatusReserved, list[0].Status)
	assert.Equal(t, "Ana Ruiz", list[0].GuestName)
	assert.Nil(t, list[0].CheckinAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExclusionViolation(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations")).
		WillReturnError(&pq.Error{Code: "23P01"})

	_, err := repo.Create(context.Background(), &domain.Reservation{
		RoomID: 5, GuestID: 3, StartDate: date("2025-03-04"), EndDate: date("2025-03-06"), Status: domain.StatusReserved,
	})
	assert.ErrorIs(t, err, ErrOverlap)
}

func TestRepository_LockByID(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations r WHERE r.id = $1 FOR UPDATE")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(make([]string, len(baseColumns))).AddRow(
			1, 5, 3, date("2025-01-10"), date("2025-01-12"), "occupied", "late arrival", now, nil, true, now, now,
		))
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(int64(2)).
		WillReturnError(sql.ErrNoRows)

	res, err := repo.LockByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOccupied, res.Status)
	require.NotNil(t, res.CheckinAt)
	require.NotNil(t, res.Notes)
	assert.True(t, res.Invoiced)

	_, err = repo.LockByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := newRepo(t)
	at := time.Date(2025, 1, 12, 11, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET status = $1, updated_at = NOW(), checkout_at = $2 WHERE id = $3")).
		WithArgs(domain.StatusFinalized, at, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), 1, domain.StatusFinalized, nil, &at))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStay_Overlap(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET room_id = $1")).
		WillReturnError(&pq.Error{Code: "23P01"})

	err := repo.UpdateStay(context.Background(), &domain.Reservation{ID: 1, RoomID: 5})
	assert.ErrorIs(t, err, ErrOverlap)
}

func TestRepository_CountOccupiedInRoom(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM reservations WHERE room_id = $1 AND status = $2 AND id <> $3")).
		WithArgs(int64(5), domain.StatusOccupied, int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	n, err := repo.CountOccupiedInRoom(context.Background(), 5, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
