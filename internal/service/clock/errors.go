package clock

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

var (
	// ErrInvalidDate возвращается при пустой дате
	ErrInvalidDate = fmt.Errorf("clock: business date is required: %w", domain.ErrInvalidInput)

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("clock: internal error")
)
