package guests

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

var (
	// ErrGuestNotFound возвращается, когда гость не найден
	ErrGuestNotFound = fmt.Errorf("guests: guest not found: %w", domain.ErrNotFound)

	// ErrDocumentTaken возвращается, когда документ уже принадлежит другому гостю
	ErrDocumentTaken = fmt.Errorf("guests: document number already registered: %w", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("guests: internal error")
)
