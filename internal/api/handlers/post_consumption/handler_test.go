package post_consumption

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	postConsumption "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/post_consumption"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/logger"
)

type useCaseStub struct {
	got  *postConsumption.Request
	line *domain.InvoiceLine
	err  error
}

func (s *useCaseStub) Execute(_ context.Context, req *postConsumption.Request) (*domain.InvoiceLine, error) {
	s.got = req
	return s.line, s.err
}

func serve(uc PostConsumptionUseCase, id, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.Discard())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/"+id+"/consumptions", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &useCaseStub{line: &domain.InvoiceLine{
		ID:          4,
		Kind:        domain.LineIncidental,
		Description: "Laundry",
		Quantity:    2,
		UnitPrice:   decimal.RequireFromString("12.50"),
		LineTotal:   decimal.NewFromInt(25),
	}}

	rec := serve(uc, "7", `{"description":"Laundry","quantity":2,"unitPrice":"12.50"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(7), uc.got.ReservationID)
	assert.Equal(t, "12.5", uc.got.UnitPrice.String())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "25.00", body["lineTotal"])
	assert.NotContains(t, body, "invoiceId")
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		body   string
		err    error
		status int
	}{
		{"bad id", "x", `{}`, nil, http.StatusBadRequest},
		{"bad json", "7", `{`, nil, http.StatusBadRequest},
		{"missing price", "7", `{"description":"Laundry","quantity":1}`, nil, http.StatusBadRequest},
		{"not found", "7", `{"description":"Laundry","quantity":1,"unitPrice":"1"}`, postConsumption.ErrReservationNotFound, http.StatusNotFound},
		{"already invoiced", "7", `{"description":"Laundry","quantity":1,"unitPrice":"1"}`, domain.ErrAlreadyInvoiced, http.StatusUnprocessableEntity},
		{"not occupied", "7", `{"description":"Laundry","quantity":1,"unitPrice":"1"}`, domain.ErrNotOccupied, http.StatusUnprocessableEntity},
		{"sub-cent", "7", `{"description":"Laundry","quantity":1,"unitPrice":"0.001"}`, domain.ErrInvalidInput, http.StatusBadRequest},
		{"storage", "7", `{"description":"Laundry","quantity":1,"unitPrice":"1"}`, errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&useCaseStub{err: tt.err}, tt.id, tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
