package update_reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = fmt.Errorf("update_reservation: reservation not found: %w", domain.ErrNotFound)

	// ErrRoomNotFound возвращается, когда новый номер не существует
	ErrRoomNotFound = fmt.Errorf("update_reservation: room not found: %w", domain.ErrNotFound)

	// ErrRoomNotAvailable возвращается, когда новые даты пересекаются с другим бронированием номера
	ErrRoomNotAvailable = fmt.Errorf("update_reservation: room is already booked for these dates: %w", domain.ErrConflict)

	// ErrStatusChangeNotAllowed возвращается при попытке сменить статус иначе чем на cancelled
	ErrStatusChangeNotAllowed = fmt.Errorf("update_reservation: only cancellation is allowed through update, use the dedicated operation: %w", domain.ErrPolicyViolation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
