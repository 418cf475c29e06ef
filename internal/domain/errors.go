package domain

import "errors"

// Категории ошибок. Ошибки пакетов оборачивают одну из них,
// обработчики HTTP выбирают код ответа по категории
var (
	// ErrInvalidInput некорректные или отсутствующие поля, неположительные суммы, перевернутые даты
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound номер, бронирование, гость или счет не найдены
	ErrNotFound = errors.New("not found")

	// ErrConflict пересечение дат проживания в одном номере
	ErrConflict = errors.New("conflict")

	// ErrPolicyViolation нарушено правило машины состояний (статус, окно дат, отсутствие счета)
	ErrPolicyViolation = errors.New("policy violation")

	// ErrInternal ошибка хранилища или транзакции
	ErrInternal = errors.New("internal error")
)

var (
	ErrInvalidRange = wrap("stay end date must be after start date", ErrInvalidInput)
	ErrInvalidDate  = wrap("date must be in format YYYY-MM-DD", ErrInvalidInput)

	ErrTerminalState        = wrap("reservation is finalized or cancelled", ErrPolicyViolation)
	ErrNotReserved          = wrap("reservation is not in reserved status", ErrPolicyViolation)
	ErrNotOccupied          = wrap("reservation is not in occupied status", ErrPolicyViolation)
	ErrOutsideCheckInWindow = wrap("business date is outside the stay range", ErrPolicyViolation)
	ErrCheckOutTooEarly     = wrap("check-out is allowed from the day after arrival", ErrPolicyViolation)
	ErrInvoiceMissing       = wrap("reservation has no invoice", ErrPolicyViolation)
	ErrInvoiceNotIssued     = wrap("invoice is not issued", ErrPolicyViolation)
	ErrAlreadyInvoiced      = wrap("reservation already has an invoice", ErrPolicyViolation)
	ErrNothingPaid          = wrap("nothing has been paid for the reservation", ErrPolicyViolation)
	ErrWalkInDateMismatch   = wrap("walk-in must start on the business date", ErrPolicyViolation)
	ErrDepositNotAllowed    = wrap("deposit is allowed only for reserved reservations", ErrPolicyViolation)
	ErrPaymentNotAllowed    = wrap("payment is allowed only for occupied reservations", ErrPolicyViolation)
	ErrStayNotEditable      = wrap("dates and room can be changed only while reserved", ErrPolicyViolation)
	ErrRoomNotBookable      = wrap("room is under maintenance or out of service", ErrPolicyViolation)
)

// policyError конкретная ошибка, принадлежащая категории
type policyError struct {
	msg      string
	category error
}

func wrap(msg string, category error) error {
	return &policyError{msg: msg, category: category}
}

func (e *policyError) Error() string { return e.msg }

func (e *policyError) Unwrap() error { return e.category }
