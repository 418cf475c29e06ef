package billing

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = fmt.Errorf("billing: reservation not found: %w", domain.ErrNotFound)

	// ErrInvoiceNotFound возвращается, когда счет не найден
	ErrInvoiceNotFound = fmt.Errorf("billing: invoice not found: %w", domain.ErrNotFound)

	// ErrInvalidPeriod возвращается, когда начало периода позже конца
	ErrInvalidPeriod = fmt.Errorf("billing: period start is after period end: %w", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("billing: internal error")
)
