package update_reservation

import "time"

// Request модель запроса на редактирование бронирования
// nil - поле не меняется
type Request struct {
	ID         int64
	StartDate  *time.Time
	EndDate    *time.Time
	RoomNumber *string
	Status     *string
	Notes      *string
}

func (r *Request) changesStay() bool {
	return r.StartDate != nil || r.EndDate != nil || r.RoomNumber != nil
}
