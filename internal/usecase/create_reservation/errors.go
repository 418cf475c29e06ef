package create_reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

var (
	// ErrRoomNotFound возвращается, когда номер с указанным номером не существует
	ErrRoomNotFound = fmt.Errorf("create_reservation: room not found: %w", domain.ErrNotFound)

	// ErrRoomNotAvailable возвращается, когда даты пересекаются с другим бронированием номера
	ErrRoomNotAvailable = fmt.Errorf("create_reservation: room is already booked for these dates: %w", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
