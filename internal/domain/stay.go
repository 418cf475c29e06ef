package domain

import (
	"fmt"
	"time"
)

// Date отбрасывает время и часовой пояс: граница проживания - календарная дата
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate разбирает дату в формате YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// StayRange полуинтервал дат [Start, End): дата выезда не входит в проживание
type StayRange struct {
	Start time.Time
	End   time.Time
}

// NewStayRange создает диапазон, End должен быть строго позже Start
func NewStayRange(start, end time.Time) (StayRange, error) {
	r := StayRange{Start: Date(start), End: Date(end)}
	if !r.End.After(r.Start) {
		return StayRange{}, fmt.Errorf("%w: start=%s end=%s",
			ErrInvalidRange, r.Start.Format(DateFormat), r.End.Format(DateFormat))
	}
	return r, nil
}

// Overlaps [a,b) и [c,d) пересекаются тогда и только тогда, когда a < d и c < b
// Заезд в день выезда предыдущего гостя пересечением не считается
func (r StayRange) Overlaps(other StayRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Contains true, если дата попадает в [Start, End)
func (r StayRange) Contains(day time.Time) bool {
	day = Date(day)
	return !day.Before(r.Start) && day.Before(r.End)
}

// Days количество дней между датами заезда и выезда
func (r StayRange) Days() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// Nights количество оплачиваемых ночей, не меньше одной
func (r StayRange) Nights() int {
	if n := r.Days(); n > MinNights {
		return n
	}
	return MinNights
}

func (r StayRange) String() string {
	return fmt.Sprintf("[%s, %s)", r.Start.Format(DateFormat), r.End.Format(DateFormat))
}

// FirstConflict возвращает первое бронирование, пересекающееся с rng
// Отмененные бронирования и бронирование exclude (редактируемое) пропускаются
func FirstConflict(existing []*Reservation, rng StayRange, exclude *int64) *Reservation {
	for _, r := range existing {
		if r.Status == StatusCancelled {
			continue
		}
		if exclude != nil && r.ID == *exclude {
			continue
		}
		if r.Range().Overlaps(rng) {
			return r
		}
	}
	return nil
}
