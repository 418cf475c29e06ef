package billing

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/testutil/fakestore"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/logger"
)

func day(s string) time.Time {
	t, _ := time.Parse(domain.DateFormat, s)
	return t
}

func setup() (*Service, *fakestore.Store, int64) {
	store := fakestore.New(day("2025-01-11"))
	roomID := store.AddRoom("5", "double", 100, domain.RoomOccupied)
	id := store.AddReservation(domain.Reservation{
		RoomID: roomID, GuestID: store.AddGuest("Ana", nil),
		StartDate: day("2025-01-10"), EndDate: day("2025-01-12"), Status: domain.StatusOccupied,
	})
	svc := NewService(store.Reservations, store.Invoices, store.Movements, store.Tx, logger.Discard())
	return svc, store, id
}

func addInvoice(t *testing.T, store *fakestore.Store, reservationID int64, total int64, lineTotals ...int64) int64 {
	t.Helper()
	ctx := context.Background()
	inv, err := store.Invoices.Create(ctx, &domain.Invoice{
		ReservationID: reservationID, IssueDate: day("2025-01-11"),
		Total: decimal.NewFromInt(total), Status: domain.InvoiceIssued,
	})
	require.NoError(t, err)
	for _, lt := range lineTotals {
		_, err := store.Invoices.AddLine(ctx, &domain.InvoiceLine{
			InvoiceID: &inv.ID, ReservationID: reservationID, Kind: domain.LineIncidental,
			Description: "line", Quantity: 1, UnitPrice: decimal.NewFromInt(lt), LineTotal: decimal.NewFromInt(lt),
		})
		require.NoError(t, err)
	}
	return inv.ID
}

func TestFinancialSummary_BeforeInvoice(t *testing.T) {
	svc, store, id := setup()
	store.AddMovement(domain.Movement{ReservationID: id, Kind: domain.MovementDeposit, Method: domain.MethodCash, Amount: decimal.NewFromInt(50)})
	store.AddMovement(domain.Movement{ReservationID: id, Kind: domain.MovementPayment, Method: domain.MethodCard, Amount: decimal.NewFromInt(150)})
	store.AddPendingLine(domain.InvoiceLine{
		ReservationID: id, Kind: domain.LineIncidental, Description: "Minibar",
		Quantity: 2, UnitPrice: decimal.NewFromInt(15), LineTotal: decimal.NewFromInt(30),
	})

	resp, err := svc.FinancialSummary(context.Background(), id)
	require.NoError(t, err)

	assert.Nil(t, resp.Invoice)
	assert.Len(t, resp.Payments, 2)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "30.00", resp.Lines[0].LineTotal)
	assert.Equal(t, "50.00", resp.Summary.TotalDeposits)
	assert.Equal(t, "150.00", resp.Summary.TotalPayments)
	assert.Equal(t, "200.00", resp.Summary.TotalPaid)
	assert.Equal(t, "0.00", resp.Summary.TotalInvoiced)
	assert.Equal(t, "-200.00", resp.Summary.Balance)
}

func TestFinancialSummary_WithInvoice(t *testing.T) {
	svc, store, id := setup()
	store.AddMovement(domain.Movement{ReservationID: id, Kind: domain.MovementPayment, Method: domain.MethodCard, Amount: decimal.NewFromInt(200)})
	addInvoice(t, store, id, 230, 200, 30)

	resp, err := svc.FinancialSummary(context.Background(), id)
	require.NoError(t, err)

	require.NotNil(t, resp.Invoice)
	assert.Equal(t, "230.00", resp.Invoice.Total)
	assert.Len(t, resp.Lines, 2)
	assert.Equal(t, "30.00", resp.Summary.Balance)
	assert.Equal(t, "5", resp.Reservation.RoomNumber)
}

func TestFinancialSummary_NotFound(t *testing.T) {
	svc, _, _ := setup()

	_, err := svc.FinancialSummary(context.Background(), 999)
	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReconcileInvoice(t *testing.T) {
	t.Run("report only", func(t *testing.T) {
		svc, store, id := setup()
		invID := addInvoice(t, store, id, 250, 200, 30)

		resp, err := svc.ReconcileInvoice(context.Background(), invID, false)
		require.NoError(t, err)

		assert.Equal(t, "250.00", resp.StoredTotal)
		assert.Equal(t, "230.00", resp.ComputedTotal)
		assert.Equal(t, "20.00", resp.Drift)
		assert.False(t, resp.Repaired)

		inv, _, _ := store.InvoiceOf(id)
		assert.True(t, inv.Total.Equal(decimal.NewFromInt(250)))
	})

	t.Run("repair", func(t *testing.T) {
		svc, store, id := setup()
		invID := addInvoice(t, store, id, 250, 200, 30)

		resp, err := svc.ReconcileInvoice(context.Background(), invID, true)
		require.NoError(t, err)
		assert.True(t, resp.Repaired)

		inv, _, _ := store.InvoiceOf(id)
		assert.True(t, inv.Total.Equal(decimal.NewFromInt(230)))
	})

	t.Run("consistent invoice is untouched", func(t *testing.T) {
		svc, store, id := setup()
		invID := addInvoice(t, store, id, 230, 200, 30)

		resp, err := svc.ReconcileInvoice(context.Background(), invID, true)
		require.NoError(t, err)
		assert.Equal(t, "0.00", resp.Drift)
		assert.False(t, resp.Repaired)
	})

	t.Run("unknown invoice", func(t *testing.T) {
		svc, _, _ := setup()
		_, err := svc.ReconcileInvoice(context.Background(), 999, true)
		assert.ErrorIs(t, err, ErrInvoiceNotFound)
	})
}

func TestListInvoices_InvalidPeriod(t *testing.T) {
	svc, _, _ := setup()
	from, to := day("2025-02-01"), day("2025-01-01")

	_, err := svc.ListInvoices(context.Background(), &from, &to)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
