package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Денежные суммы хранятся как NUMERIC(12,2)
const (
	MoneyScale         = 2
	MoneyIntegerDigits = 10
)

var moneyLimit = decimal.New(1, MoneyIntegerDigits)

// ValidateMoney сумма должна помещаться в колонку без округления
func ValidateMoney(field string, v Money) error {
	if !v.Equal(v.Truncate(MoneyScale)) {
		return fmt.Errorf("%w: %s must have at most %d decimal places", ErrInvalidInput, field, MoneyScale)
	}
	if v.Abs().GreaterThanOrEqual(moneyLimit) {
		return fmt.Errorf("%w: %s must have at most %d integer digits", ErrInvalidInput, field, MoneyIntegerDigits)
	}
	return nil
}
