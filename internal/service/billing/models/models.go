package models

import (
	"time"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	reservationModels "github.com/m04kA/SMC-HotelFrontDesk/internal/service/reservations/models"
)

// Суммы отдаются строками с двумя знаками после запятой: "230.00"

// MovementResponse депозит или платеж
type MovementResponse struct {
	ID            int64   `json:"id"`
	ReservationID int64   `json:"reservationId"`
	Kind          string  `json:"kind"`
	Method        string  `json:"method"`
	Amount        string  `json:"amount"`
	Reference     *string `json:"reference,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

// LineResponse строка счета
type LineResponse struct {
	ID          int64  `json:"id"`
	InvoiceID   *int64 `json:"invoiceId,omitempty"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	LineTotal   string `json:"lineTotal"`
}

// InvoiceResponse счет со строками
type InvoiceResponse struct {
	ID            int64           `json:"id"`
	ReservationID int64           `json:"reservationId"`
	IssueDate     string          `json:"issueDate"`
	Total         string          `json:"total"`
	Status        string          `json:"status"`
	Lines         []*LineResponse `json:"lines,omitempty"`
	CreatedAt     string          `json:"createdAt"`
}

// InvoiceListResponse список счетов
type InvoiceListResponse struct {
	Invoices []*InvoiceResponse `json:"invoices"`
	Total    int                `json:"total"`
}

// SummaryResponse итоги по бронированию
type SummaryResponse struct {
	TotalDeposits string `json:"totalDeposits"`
	TotalPayments string `json:"totalPayments"`
	TotalPaid     string `json:"totalPaid"`
	TotalInvoiced string `json:"totalInvoiced"`
	Balance       string `json:"balance"`
}

// FinancialSummaryResponse финансовая карточка бронирования
type FinancialSummaryResponse struct {
	Reservation *reservationModels.ReservationResponse `json:"reservation"`
	Payments    []*MovementResponse                    `json:"payments"`
	Invoice     *InvoiceResponse                       `json:"invoice,omitempty"`
	Lines       []*LineResponse                        `json:"lines"`
	Summary     *SummaryResponse                       `json:"summary"`
}

// MovementListResponse движения бронирования
type MovementListResponse struct {
	Payments []*MovementResponse `json:"payments"`
	Total    int                 `json:"total"`
}

// ReconcileResponse результат сверки total счета с суммой строк
type ReconcileResponse struct {
	InvoiceID     int64  `json:"invoiceId"`
	StoredTotal   string `json:"storedTotal"`
	ComputedTotal string `json:"computedTotal"`
	Drift         string `json:"drift"`
	Repaired      bool   `json:"repaired"`
}

// FromDomainMovement конвертирует domain модель в response
func FromDomainMovement(m *domain.Movement) *MovementResponse {
	return &MovementResponse{
		ID:            m.ID,
		ReservationID: m.ReservationID,
		Kind:          string(m.Kind),
		Method:        string(m.Method),
		Amount:        m.Amount.StringFixed(2),
		Reference:     m.Reference,
		CreatedAt:     m.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainMovementList конвертирует список
func FromDomainMovementList(list []*domain.Movement) []*MovementResponse {
	result := make([]*MovementResponse, 0, len(list))
	for _, m := range list {
		result = append(result, FromDomainMovement(m))
	}
	return result
}

// FromDomainLine конвертирует domain модель в response
func FromDomainLine(l *domain.InvoiceLine) *LineResponse {
	return &LineResponse{
		ID:          l.ID,
		InvoiceID:   l.InvoiceID,
		Kind:        string(l.Kind),
		Description: l.Description,
		Quantity:    l.Quantity,
		UnitPrice:   l.UnitPrice.StringFixed(2),
		LineTotal:   l.LineTotal.StringFixed(2),
	}
}

// FromDomainLineList конвертирует список
func FromDomainLineList(lines []*domain.InvoiceLine) []*LineResponse {
	result := make([]*LineResponse, 0, len(lines))
	for _, l := range lines {
		result = append(result, FromDomainLine(l))
	}
	return result
}

// FromDomainInvoice конвертирует domain модель в response (строки берутся из inv.Lines)
func FromDomainInvoice(inv *domain.Invoice) *InvoiceResponse {
	resp := &InvoiceResponse{
		ID:            inv.ID,
		ReservationID: inv.ReservationID,
		IssueDate:     inv.IssueDate.Format(domain.DateFormat),
		Total:         inv.Total.StringFixed(2),
		Status:        string(inv.Status),
		CreatedAt:     inv.CreatedAt.Format(time.RFC3339),
	}
	if len(inv.Lines) > 0 {
		resp.Lines = FromDomainLineList(inv.Lines)
	}
	return resp
}

// FromDomainSummary конвертирует итоги
func FromDomainSummary(s domain.FinancialSummary) *SummaryResponse {
	return &SummaryResponse{
		TotalDeposits: s.TotalDeposits.StringFixed(2),
		TotalPayments: s.TotalPayments.StringFixed(2),
		TotalPaid:     s.TotalPaid.StringFixed(2),
		TotalInvoiced: s.TotalInvoiced.StringFixed(2),
		Balance:       s.Balance.StringFixed(2),
	}
}
