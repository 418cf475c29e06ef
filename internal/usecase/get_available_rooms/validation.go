package get_available_rooms

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

// validateRequest валидирует входные данные и возвращает диапазон
func validateRequest(req *Request) (domain.StayRange, error) {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return domain.StayRange{}, fmt.Errorf("%w: start and end are required", domain.ErrInvalidInput)
	}

	if req.Type != nil {
		roomType := strings.TrimSpace(*req.Type)
		if roomType == "" {
			req.Type = nil
		} else {
			req.Type = &roomType
		}
	}

	return domain.NewStayRange(req.StartDate, req.EndDate)
}
