// Package invoices - журнал счетов и сверка итогов со строками.
package invoices

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/billing"
)

const (
	msgInvalidInvoiceID = "некорректный ID счета"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRepair    = "параметр repair должен быть true или false"
	msgNotFound         = "счет не найден"
)

type Handler struct {
	service BillingService
	logger  Logger
}

func NewHandler(service BillingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/invoices
// Query params: from, to (опционально, включительно)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		h.logger.Warn("GET /invoices - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := handlers.QueryDate(r, "to")
	if err != nil {
		h.logger.Warn("GET /invoices - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListInvoices(r.Context(), from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			handlers.RespondDomainError(w, err)
			return
		}
		h.logger.Error("GET /invoices - Failed to list invoices: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /invoices - Invoices retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/invoices/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /invoices/{id} - Invalid invoice ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInvoiceID)
		return
	}

	invoice, err := h.service.GetInvoice(r.Context(), id)
	if err != nil {
		if errors.Is(err, billing.ErrInvoiceNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /invoices/{id} - Failed to get invoice: invoice_id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, invoice)
}

// Reconcile POST /api/v1/invoices/{id}/reconcile
// Query params: repair (опционально, по умолчанию false - только отчет)
func (h *Handler) Reconcile(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("POST /invoices/{id}/reconcile - Invalid invoice ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInvoiceID)
		return
	}

	repair := false
	if raw := r.URL.Query().Get("repair"); raw != "" {
		repair, err = strconv.ParseBool(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidRepair)
			return
		}
	}

	result, err := h.service.ReconcileInvoice(r.Context(), id, repair)
	if err != nil {
		if errors.Is(err, billing.ErrInvoiceNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("POST /invoices/{id}/reconcile - Failed to reconcile: invoice_id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /invoices/{id}/reconcile - Reconciled: invoice_id=%d, drift=%s, repaired=%t",
		id, result.Drift, result.Repaired)
	handlers.RespondJSON(w, http.StatusOK, result)
}
