package domain

import "github.com/shopspring/decimal"

// FinancialSummary сводка по бронированию
// Balance = TotalInvoiced - TotalPaid; отрицательный баланс - переплата
type FinancialSummary struct {
	TotalDeposits Money
	TotalPayments Money
	TotalPaid     Money
	TotalInvoiced Money
	Balance       Money
}

// ComputeSummary считает сводку по движениям и счету (invoice может быть nil)
func ComputeSummary(movements []*Movement, invoice *Invoice) FinancialSummary {
	s := FinancialSummary{
		TotalDeposits: decimal.Zero,
		TotalPayments: decimal.Zero,
		TotalInvoiced: decimal.Zero,
	}

	for _, m := range movements {
		switch m.Kind {
		case MovementDeposit:
			s.TotalDeposits = s.TotalDeposits.Add(m.Amount)
		case MovementPayment:
			s.TotalPayments = s.TotalPayments.Add(m.Amount)
		}
	}

	if invoice != nil {
		s.TotalInvoiced = invoice.Total
	}

	s.TotalPaid = s.TotalDeposits.Add(s.TotalPayments)
	s.Balance = s.TotalInvoiced.Sub(s.TotalPaid)
	return s
}

// TotalPaid сумма всех депозитов и платежей
func TotalPaid(movements []*Movement) Money {
	return ComputeSummary(movements, nil).TotalPaid
}
