package rooms

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = fmt.Errorf("rooms: room not found: %w", domain.ErrNotFound)

	// ErrInvalidState возвращается при неизвестном физическом состоянии
	ErrInvalidState = fmt.Errorf("rooms: state must be available, occupied, maintenance or out_of_service: %w", domain.ErrInvalidInput)

	// ErrRoomInUse возвращается при попытке вывести из оборота номер, в котором проживает гость
	ErrRoomInUse = fmt.Errorf("rooms: room has a checked-in guest: %w", domain.ErrPolicyViolation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rooms: internal error")
)
