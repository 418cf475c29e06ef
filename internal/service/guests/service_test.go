package guests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/guests/models"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/testutil/fakestore"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/logger"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/ptr"
)

func newService() (*Service, *fakestore.Store) {
	store := fakestore.New(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	return NewService(store.Guests, logger.Discard()), store
}

func TestCreate(t *testing.T) {
	svc, store := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.GuestRequest{Name: "  Ana Perez ", DocumentNumber: ptr.Ptr("X123")})
	require.NoError(t, err)
	assert.Equal(t, "Ana Perez", created.Name)

	_, err = svc.Create(ctx, &models.GuestRequest{Name: "Someone Else", DocumentNumber: ptr.Ptr("X123")})
	assert.ErrorIs(t, err, ErrDocumentTaken)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 1, store.GuestCount())

	_, err = svc.Create(ctx, &models.GuestRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate(t *testing.T) {
	svc, store := newService()
	ctx := context.Background()
	id := store.AddGuest("Ana", ptr.Ptr("X123"))
	store.AddGuest("Luis", ptr.Ptr("Y456"))

	updated, err := svc.Update(ctx, id, &models.GuestRequest{Name: "Ana Maria", DocumentNumber: ptr.Ptr("X123"), Phone: ptr.Ptr("+34 600")})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Name)
	assert.Equal(t, "+34 600", *updated.Phone)

	_, err = svc.Update(ctx, id, &models.GuestRequest{Name: "Ana", DocumentNumber: ptr.Ptr("Y456")})
	assert.ErrorIs(t, err, ErrDocumentTaken)

	_, err = svc.Update(ctx, 999, &models.GuestRequest{Name: "Ghost"})
	assert.ErrorIs(t, err, ErrGuestNotFound)
}

func TestList_Search(t *testing.T) {
	svc, store := newService()
	store.AddGuest("Ana Perez", ptr.Ptr("X123"))
	store.AddGuest("Luis Gomez", ptr.Ptr("Y456"))

	resp, err := svc.List(context.Background(), ptr.Ptr("perez"), 50, 0)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Ana Perez", resp.Guests[0].Name)

	resp, err = svc.List(context.Background(), ptr.Ptr("Y456"), 50, 0)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Luis Gomez", resp.Guests[0].Name)
}
