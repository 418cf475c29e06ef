package clock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/logger"
)

type fakeRepo struct {
	date time.Time
	err  error
}

func (f *fakeRepo) Get(context.Context) (time.Time, error) { return f.date, f.err }

func (f *fakeRepo) Set(_ context.Context, d time.Time) (time.Time, error) {
	if f.err != nil {
		return time.Time{}, f.err
	}
	f.date = domain.Date(d)
	return f.date, nil
}

func (f *fakeRepo) Advance(context.Context) (time.Time, error) {
	if f.err != nil {
		return time.Time{}, f.err
	}
	f.date = f.date.AddDate(0, 0, 1)
	return f.date, nil
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

func TestService(t *testing.T) {
	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{date: start}
	svc := NewService(repo, inlineTx{}, logger.Discard())
	ctx := context.Background()

	got, err := svc.BusinessDate(ctx)
	require.NoError(t, err)
	assert.Equal(t, start, got)

	got, err = svc.CloseDay(ctx)
	require.NoError(t, err)
	assert.Equal(t, start.AddDate(0, 0, 1), got)

	got, err = svc.SetBusinessDate(ctx, time.Date(2025, 2, 1, 18, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = svc.SetBusinessDate(ctx, time.Time{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	repo.err = errors.New("db down")
	_, err = svc.BusinessDate(ctx)
	assert.ErrorIs(t, err, ErrInternal)
}
