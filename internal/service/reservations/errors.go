package reservations

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = fmt.Errorf("reservations: reservation not found: %w", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных параметрах запроса
	ErrInvalidInput = fmt.Errorf("reservations: %w", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations: internal error")
)
