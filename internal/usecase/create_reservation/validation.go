package create_reservation

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

// validateRequest валидирует входные данные и возвращает диапазон проживания
func validateRequest(req *Request) (domain.StayRange, error) {
	if !req.Kind.Valid() {
		return domain.StayRange{}, fmt.Errorf("%w: kind must be reservation or walkin, got %q", domain.ErrInvalidInput, req.Kind)
	}

	req.RoomNumber = strings.TrimSpace(req.RoomNumber)
	if req.RoomNumber == "" {
		return domain.StayRange{}, fmt.Errorf("%w: roomNumber is required", domain.ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return domain.StayRange{}, fmt.Errorf("%w: startDate and endDate are required", domain.ErrInvalidInput)
	}

	rng, err := domain.NewStayRange(req.StartDate, req.EndDate)
	if err != nil {
		return domain.StayRange{}, err
	}

	req.Guest = req.Guest.Normalize()
	if err := req.Guest.Validate(); err != nil {
		return domain.StayRange{}, err
	}

	if domain.TooLong(req.Notes, domain.MaxNotesLength) {
		return domain.StayRange{}, fmt.Errorf("%w: notes exceed %d characters", domain.ErrInvalidInput, domain.MaxNotesLength)
	}

	return rng, nil
}
