package availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

var (
	// ErrRangeTaken возвращается, когда номер уже занят на часть запрошенных дат
	ErrRangeTaken = fmt.Errorf("availability: room is already booked for these dates: %w", domain.ErrConflict)

	// ErrRoomNotFound возвращается, когда проверяемый номер не существует
	ErrRoomNotFound = fmt.Errorf("availability: room not found: %w", domain.ErrNotFound)

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("availability: internal error")
)
