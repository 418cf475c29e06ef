package list_reservations

import (
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/reservations/models"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// ToServiceRequest собирает фильтр из query параметров
// status и roomId опциональны, limit по умолчанию 50
func ToServiceRequest(statusStr, roomIDStr, limitStr, offsetStr string) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{Limit: defaultLimit}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if roomIDStr != "" {
		roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
		if err != nil || roomID <= 0 {
			return nil, fmt.Errorf("invalid roomId %q", roomIDStr)
		}
		req.RoomID = &roomID
	}

	if limitStr != "" {
		limit, err := strconv.ParseUint(limitStr, 10, 64)
		if err != nil || limit == 0 || limit > maxLimit {
			return nil, fmt.Errorf("limit must be between 1 and %d", maxLimit)
		}
		req.Limit = limit
	}

	if offsetStr != "" {
		offset, err := strconv.ParseUint(offsetStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid offset %q", offsetStr)
		}
		req.Offset = offset
	}

	return req, nil
}
