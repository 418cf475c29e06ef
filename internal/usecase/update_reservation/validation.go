package update_reservation

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

// validateRequest проверяет поля, не зависящие от текущего состояния бронирования
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", domain.ErrInvalidInput)
	}

	if !req.changesStay() && req.Status == nil && req.Notes == nil {
		return fmt.Errorf("%w: nothing to update", domain.ErrInvalidInput)
	}

	if req.RoomNumber != nil {
		number := strings.TrimSpace(*req.RoomNumber)
		if number == "" {
			return fmt.Errorf("%w: roomNumber must not be empty", domain.ErrInvalidInput)
		}
		req.RoomNumber = &number
	}

	if req.Status != nil && !domain.ReservationStatus(*req.Status).Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, *req.Status)
	}

	if domain.TooLong(req.Notes, domain.MaxNotesLength) {
		return fmt.Errorf("%w: notes exceed %d characters", domain.ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
