package add_charge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	addCharge "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/add_charge"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/logger"
)

type useCaseStub struct {
	got  *addCharge.Request
	resp *addCharge.Response
	err  error
}

func (s *useCaseStub) Execute(_ context.Context, req *addCharge.Request) (*addCharge.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(uc AddChargeUseCase, id, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.Discard())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/"+id+"/invoice/charges", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	invoiceID := int64(3)
	uc := &useCaseStub{resp: &addCharge.Response{
		Line: &domain.InvoiceLine{
			ID:          11,
			InvoiceID:   &invoiceID,
			Kind:        domain.LineIncidental,
			Description: "Minibar",
			Quantity:    2,
			UnitPrice:   decimal.NewFromInt(15),
			LineTotal:   decimal.NewFromInt(30),
		},
		InvoiceTotal: decimal.NewFromInt(230),
	}}

	rec := serve(uc, "9", `{"description":"Minibar","quantity":2,"unitPrice":"15.00"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(9), uc.got.ReservationID)
	assert.True(t, uc.got.UnitPrice.Equal(decimal.NewFromInt(15)))

	var resp AddChargeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "230.00", resp.InvoiceTotal)
	assert.Equal(t, "30.00", resp.Line.LineTotal)
}

func TestHandle_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       string
		err        error
		wantStatus int
	}{
		{"bad id", "x", `{}`, nil, http.StatusBadRequest},
		{"price not decimal", "9", `{"description":"Minibar","quantity":1,"unitPrice":"abc"}`, nil, http.StatusBadRequest},
		{"zero quantity", "9", `{"description":"Minibar","quantity":0,"unitPrice":"1"}`, nil, http.StatusBadRequest},
		{"not found", "9", `{"description":"Minibar","quantity":1,"unitPrice":"1"}`, addCharge.ErrReservationNotFound, http.StatusNotFound},
		{"no invoice", "9", `{"description":"Minibar","quantity":1,"unitPrice":"1"}`, domain.ErrInvoiceMissing, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&useCaseStub{err: tt.err}, tt.id, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
