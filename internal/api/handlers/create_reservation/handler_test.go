package create_reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/reservations/models"
	createReservation "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/logger"
)

type useCaseStub struct {
	got  *createReservation.Request
	resp *models.ReservationResponse
	err  error
}

func (s *useCaseStub) Execute(_ context.Context, req *createReservation.Request) (*models.ReservationResponse, error) {
	s.got = req
	return s.resp, s.err
}

const validBody = `{
	"kind": "reservation",
	"roomNumber": "5",
	"startDate": "2025-01-10",
	"endDate": "2025-01-12",
	"guest": {"name": "Ana Perez", "documentNumber": "X123"}
}`

func serve(t *testing.T, uc CreateReservationUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, logger.Discard())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &useCaseStub{resp: &models.ReservationResponse{ID: 7, Status: "reserved", RoomNumber: "5"}}

	rec := serve(t, uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, domain.KindReservation, uc.got.Kind)
	assert.Equal(t, "2025-01-10", uc.got.StartDate.Format(domain.DateFormat))
	assert.Equal(t, "2025-01-12", uc.got.EndDate.Format(domain.DateFormat))
	assert.Equal(t, "X123", *uc.got.Guest.DocumentNumber)

	var resp models.ReservationResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(7), resp.ID)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"malformed json", `{"kind":`, nil, http.StatusBadRequest},
		{"unknown field", `{"kind":"reservation","room":"5"}`, nil, http.StatusBadRequest},
		{"bad kind", strings.Replace(validBody, `"reservation"`, `"booking"`, 1), nil, http.StatusBadRequest},
		{"bad date", strings.Replace(validBody, "2025-01-10", "10.01.2025", 1), nil, http.StatusBadRequest},
		{"room taken", validBody, createReservation.ErrRoomNotAvailable, http.StatusConflict},
		{"room not found", validBody, createReservation.ErrRoomNotFound, http.StatusNotFound},
		{"invalid range", validBody, domain.ErrInvalidRange, http.StatusBadRequest},
		{"walk-in mismatch", validBody, domain.ErrWalkInDateMismatch, http.StatusUnprocessableEntity},
		{"internal", validBody, fmt.Errorf("%w: db down", createReservation.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &useCaseStub{err: tt.err}

			rec := serve(t, uc, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.wantStatus, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}
