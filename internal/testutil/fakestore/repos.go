package fakestore

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/clock"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/guest"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/invoice"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/room"
)

// Rooms реализация репозитория номеров
type Rooms struct{ s *Store }

func (r *Rooms) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	return r.find(ctx, "rooms.GetByID", func(rm domain.Room) bool { return rm.ID == id })
}

func (r *Rooms) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	return r.find(ctx, "rooms.GetByNumber", func(rm domain.Room) bool { return rm.Number == number })
}

func (r *Rooms) LockByID(ctx context.Context, id int64) (*domain.Room, error) {
	return r.find(ctx, "rooms.LockByID", func(rm domain.Room) bool { return rm.ID == id })
}

func (r *Rooms) find(ctx context.Context, op string, match func(domain.Room) bool) (*domain.Room, error) {
	var out *domain.Room
	err := r.s.with(ctx, op, func(st *state) error {
		for _, rm := range st.rooms {
			if match(rm) {
				c := rm
				out = &c
				return nil
			}
		}
		return room.ErrRoomNotFound
	})
	return out, err
}

func (r *Rooms) List(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error) {
	var out []*domain.Room
	err := r.s.with(ctx, "rooms.List", func(st *state) error {
		for _, rm := range st.rooms {
			if filter.Type != nil && rm.Type != *filter.Type {
				continue
			}
			if filter.State != nil && rm.State != *filter.State {
				continue
			}
			if filter.BookableOnly && !rm.IsBookable() {
				continue
			}
			c := rm
			out = append(out, &c)
		}
		return nil
	})
	domain.SortRoomsByNumber(out)
	return out, err
}

func (r *Rooms) UpdateState(ctx context.Context, id int64, rs domain.RoomState) error {
	return r.s.with(ctx, "rooms.UpdateState", func(st *state) error {
		rm, ok := st.rooms[id]
		if !ok {
			return room.ErrRoomNotFound
		}
		rm.State = rs
		st.rooms[id] = rm
		return nil
	})
}

// Guests реализация репозитория гостей
type Guests struct{ s *Store }

func (g *Guests) Create(ctx context.Context, gs *domain.Guest) (*domain.Guest, error) {
	err := g.s.with(ctx, "guests.Create", func(st *state) error {
		if gs.DocumentNumber != nil && documentTaken(st, *gs.DocumentNumber, 0) {
			return guest.ErrDocumentTaken
		}
		gs.ID = st.nextID()
		gs.CreatedAt = g.s.now()
		gs.UpdatedAt = gs.CreatedAt
		st.guests[gs.ID] = *gs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return gs, nil
}

// FindOrCreateByDocument как INSERT ... ON CONFLICT (document_number): существующий гость не меняется
func (g *Guests) FindOrCreateByDocument(ctx context.Context, gs *domain.Guest) (*domain.Guest, error) {
	var out *domain.Guest
	err := g.s.with(ctx, "guests.FindOrCreateByDocument", func(st *state) error {
		for _, existing := range st.guests {
			if existing.DocumentNumber != nil && *existing.DocumentNumber == *gs.DocumentNumber {
				c := existing
				out = &c
				return nil
			}
		}
		gs.ID = st.nextID()
		gs.CreatedAt = g.s.now()
		gs.UpdatedAt = gs.CreatedAt
		st.guests[gs.ID] = *gs
		c := *gs
		out = &c
		return nil
	})
	return out, err
}

func (g *Guests) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	var out *domain.Guest
	err := g.s.with(ctx, "guests.GetByID", func(st *state) error {
		gs, ok := st.guests[id]
		if !ok {
			return guest.ErrGuestNotFound
		}
		out = &gs
		return nil
	})
	return out, err
}

func (g *Guests) GetByDocument(ctx context.Context, documentNumber string) (*domain.Guest, error) {
	var out *domain.Guest
	err := g.s.with(ctx, "guests.GetByDocument", func(st *state) error {
		for _, gs := range st.guests {
			if gs.DocumentNumber != nil && *gs.DocumentNumber == documentNumber {
				c := gs
				out = &c
				return nil
			}
		}
		return guest.ErrGuestNotFound
	})
	return out, err
}

func (g *Guests) List(ctx context.Context, filter domain.GuestFilter) ([]*domain.Guest, error) {
	var out []*domain.Guest
	err := g.s.with(ctx, "guests.List", func(st *state) error {
		for _, gs := range st.guests {
			if filter.Query != nil {
				q := strings.ToLower(*filter.Query)
				doc := ""
				if gs.DocumentNumber != nil {
					doc = strings.ToLower(*gs.DocumentNumber)
				}
				if !strings.Contains(strings.ToLower(gs.Name), q) && !strings.Contains(doc, q) {
					continue
				}
			}
			c := gs
			out = append(out, &c)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, err
}

func (g *Guests) Update(ctx context.Context, gs *domain.Guest) (*domain.Guest, error) {
	err := g.s.with(ctx, "guests.Update", func(st *state) error {
		existing, ok := st.guests[gs.ID]
		if !ok {
			return guest.ErrGuestNotFound
		}
		if gs.DocumentNumber != nil && documentTaken(st, *gs.DocumentNumber, gs.ID) {
			return guest.ErrDocumentTaken
		}
		gs.CreatedAt = existing.CreatedAt
		gs.UpdatedAt = g.s.now()
		st.guests[gs.ID] = *gs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return gs, nil
}

func documentTaken(st *state, doc string, exceptID int64) bool {
	for _, gs := range st.guests {
		if gs.ID != exceptID && gs.DocumentNumber != nil && *gs.DocumentNumber == doc {
			return true
		}
	}
	return false
}

// Reservations реализация репозитория бронирований
// Create и UpdateStay повторяют exclusion constraint схемы
type Reservations struct{ s *Store }

func (r *Reservations) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	err := r.s.with(ctx, "reservations.Create", func(st *state) error {
		if overlapsAny(st, res.RoomID, res.Range(), res.ID) {
			return reservation.ErrOverlap
		}
		res.ID = st.nextID()
		res.CreatedAt = r.s.now()
		res.UpdatedAt = res.CreatedAt
		st.reservations[res.ID] = *res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *Reservations) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return r.get(ctx, "reservations.GetByID", id)
}

func (r *Reservations) LockByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return r.get(ctx, "reservations.LockByID", id)
}

func (r *Reservations) get(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	var out *domain.Reservation
	err := r.s.with(ctx, op, func(st *state) error {
		res, ok := st.reservations[id]
		if !ok {
			return reservation.ErrReservationNotFound
		}
		out = joined(st, res)
		return nil
	})
	return out, err
}

func (r *Reservations) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	err := r.s.with(ctx, "reservations.List", func(st *state) error {
		for _, res := range st.reservations {
			if filter.Status != nil && res.Status != *filter.Status {
				continue
			}
			if filter.RoomID != nil && res.RoomID != *filter.RoomID {
				continue
			}
			out = append(out, joined(st, res))
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, err
}

func (r *Reservations) ListOverlapping(ctx context.Context, q domain.OverlapQuery) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	err := r.s.with(ctx, "reservations.ListOverlapping", func(st *state) error {
		for _, res := range st.reservations {
			if q.RoomID != nil && res.RoomID != *q.RoomID {
				continue
			}
			if q.ExcludeID != nil && res.ID == *q.ExcludeID {
				continue
			}
			if res.Status == domain.StatusCancelled || !res.Range().Overlaps(q.Range) {
				continue
			}
			out = append(out, joined(st, res))
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].StartDate.Before(out[j].StartDate)
		}
		return out[i].RoomNumber < out[j].RoomNumber
	})
	return out, err
}

func (r *Reservations) CountOccupiedInRoom(ctx context.Context, roomID, excludeID int64) (int, error) {
	count := 0
	err := r.s.with(ctx, "reservations.CountOccupiedInRoom", func(st *state) error {
		for _, res := range st.reservations {
			if res.RoomID == roomID && res.ID != excludeID && res.Status == domain.StatusOccupied {
				count++
			}
		}
		return nil
	})
	return count, err
}

func (r *Reservations) UpdateStay(ctx context.Context, res *domain.Reservation) error {
	return r.s.with(ctx, "reservations.UpdateStay", func(st *state) error {
		existing, ok := st.reservations[res.ID]
		if !ok {
			return reservation.ErrReservationNotFound
		}
		if existing.Status != domain.StatusCancelled && overlapsAny(st, res.RoomID, res.Range(), res.ID) {
			return reservation.ErrOverlap
		}
		existing.RoomID = res.RoomID
		existing.StartDate = domain.Date(res.StartDate)
		existing.EndDate = domain.Date(res.EndDate)
		existing.Notes = res.Notes
		existing.UpdatedAt = r.s.now()
		st.reservations[res.ID] = existing
		return nil
	})
}

func (r *Reservations) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus, checkinAt, checkoutAt *time.Time) error {
	return r.s.with(ctx, "reservations.UpdateStatus", func(st *state) error {
		existing, ok := st.reservations[id]
		if !ok {
			return reservation.ErrReservationNotFound
		}
		existing.Status = status
		if checkinAt != nil {
			existing.CheckinAt = checkinAt
		}
		if checkoutAt != nil {
			existing.CheckoutAt = checkoutAt
		}
		existing.UpdatedAt = r.s.now()
		st.reservations[id] = existing
		return nil
	})
}

func (r *Reservations) MarkInvoiced(ctx context.Context, id int64) error {
	return r.s.with(ctx, "reservations.MarkInvoiced", func(st *state) error {
		existing, ok := st.reservations[id]
		if !ok {
			return reservation.ErrReservationNotFound
		}
		existing.Invoiced = true
		st.reservations[id] = existing
		return nil
	})
}

func overlapsAny(st *state, roomID int64, rng domain.StayRange, selfID int64) bool {
	for _, other := range st.reservations {
		if other.ID == selfID || other.RoomID != roomID || other.Status == domain.StatusCancelled {
			continue
		}
		if other.Range().Overlaps(rng) {
			return true
		}
	}
	return false
}

func joined(st *state, res domain.Reservation) *domain.Reservation {
	if rm, ok := st.rooms[res.RoomID]; ok {
		res.RoomNumber = rm.Number
		res.RoomType = rm.Type
	}
	if g, ok := st.guests[res.GuestID]; ok {
		res.GuestName = g.Name
	}
	return &res
}

// Invoices реализация репозитория счетов
type Invoices struct{ s *Store }

func (r *Invoices) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	err := r.s.with(ctx, "invoices.Create", func(st *state) error {
		for _, existing := range st.invoices {
			if existing.ReservationID == inv.ReservationID {
				return invoice.ErrInvoiceExists
			}
		}
		inv.ID = st.nextID()
		inv.CreatedAt = r.s.now()
		stored := *inv
		stored.Lines = nil
		st.invoices[inv.ID] = stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *Invoices) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	return r.find(ctx, "invoices.GetByID", func(inv domain.Invoice) bool { return inv.ID == id })
}

func (r *Invoices) LockByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	return r.find(ctx, "invoices.LockByID", func(inv domain.Invoice) bool { return inv.ID == id })
}

func (r *Invoices) GetByReservationID(ctx context.Context, reservationID int64) (*domain.Invoice, error) {
	return r.find(ctx, "invoices.GetByReservationID", func(inv domain.Invoice) bool { return inv.ReservationID == reservationID })
}

func (r *Invoices) LockByReservationID(ctx context.Context, reservationID int64) (*domain.Invoice, error) {
	return r.find(ctx, "invoices.LockByReservationID", func(inv domain.Invoice) bool { return inv.ReservationID == reservationID })
}

func (r *Invoices) find(ctx context.Context, op string, match func(domain.Invoice) bool) (*domain.Invoice, error) {
	var out *domain.Invoice
	err := r.s.with(ctx, op, func(st *state) error {
		for _, inv := range st.invoices {
			if match(inv) {
				c := inv
				out = &c
				return nil
			}
		}
		return invoice.ErrInvoiceNotFound
	})
	return out, err
}

func (r *Invoices) List(ctx context.Context, filter domain.InvoiceFilter) ([]*domain.Invoice, error) {
	var out []*domain.Invoice
	err := r.s.with(ctx, "invoices.List", func(st *state) error {
		for _, inv := range st.invoices {
			if filter.From != nil && inv.IssueDate.Before(domain.Date(*filter.From)) {
				continue
			}
			if filter.To != nil && inv.IssueDate.After(domain.Date(*filter.To)) {
				continue
			}
			c := inv
			out = append(out, &c)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, err
}

func (r *Invoices) IncrementTotal(ctx context.Context, id int64, delta domain.Money) (domain.Money, error) {
	var total domain.Money
	err := r.s.with(ctx, "invoices.IncrementTotal", func(st *state) error {
		inv, ok := st.invoices[id]
		if !ok {
			return invoice.ErrInvoiceNotFound
		}
		inv.Total = inv.Total.Add(delta)
		st.invoices[id] = inv
		total = inv.Total
		return nil
	})
	return total, err
}

func (r *Invoices) SetTotal(ctx context.Context, id int64, total domain.Money) error {
	return r.s.with(ctx, "invoices.SetTotal", func(st *state) error {
		inv, ok := st.invoices[id]
		if !ok {
			return invoice.ErrInvoiceNotFound
		}
		inv.Total = total
		st.invoices[id] = inv
		return nil
	})
}

func (r *Invoices) AddLine(ctx context.Context, line *domain.InvoiceLine) (*domain.InvoiceLine, error) {
	err := r.s.with(ctx, "invoices.AddLine", func(st *state) error {
		line.ID = st.nextID()
		line.CreatedAt = r.s.now()
		st.lines[line.ID] = *line
		return nil
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

func (r *Invoices) ListLines(ctx context.Context, invoiceID int64) ([]*domain.InvoiceLine, error) {
	return r.lines(ctx, "invoices.ListLines", func(l domain.InvoiceLine) bool {
		return l.InvoiceID != nil && *l.InvoiceID == invoiceID
	})
}

func (r *Invoices) ListPendingLines(ctx context.Context, reservationID int64) ([]*domain.InvoiceLine, error) {
	return r.lines(ctx, "invoices.ListPendingLines", func(l domain.InvoiceLine) bool {
		return l.InvoiceID == nil && l.ReservationID == reservationID
	})
}

func (r *Invoices) AttachPendingLines(ctx context.Context, reservationID, invoiceID int64) (int64, error) {
	var n int64
	err := r.s.with(ctx, "invoices.AttachPendingLines", func(st *state) error {
		for id, l := range st.lines {
			if l.InvoiceID == nil && l.ReservationID == reservationID {
				inv := invoiceID
				l.InvoiceID = &inv
				st.lines[id] = l
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r *Invoices) lines(ctx context.Context, op string, match func(domain.InvoiceLine) bool) ([]*domain.InvoiceLine, error) {
	var out []*domain.InvoiceLine
	err := r.s.with(ctx, op, func(st *state) error {
		for _, l := range st.lines {
			if match(l) {
				c := l
				out = append(out, &c)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, err
}

// Movements реализация репозитория движений
type Movements struct{ s *Store }

func (r *Movements) Create(ctx context.Context, m *domain.Movement) (*domain.Movement, error) {
	err := r.s.with(ctx, "movements.Create", func(st *state) error {
		m.ID = st.nextID()
		m.CreatedAt = r.s.now()
		st.movements[m.ID] = *m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *Movements) ListByReservation(ctx context.Context, reservationID int64) ([]*domain.Movement, error) {
	var out []*domain.Movement
	err := r.s.with(ctx, "movements.ListByReservation", func(st *state) error {
		for _, m := range st.movements {
			if m.ReservationID == reservationID {
				c := m
				out = append(out, &c)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, err
}

// Clock реализация хранилища операционной даты
type Clock struct{ s *Store }

func (c *Clock) Get(ctx context.Context) (time.Time, error) {
	var d time.Time
	err := c.s.with(ctx, "clock.Get", func(st *state) error {
		if st.businessDate.IsZero() {
			return clock.ErrClockNotInitialized
		}
		d = st.businessDate
		return nil
	})
	return d, err
}

func (c *Clock) Set(ctx context.Context, date time.Time) (time.Time, error) {
	err := c.s.with(ctx, "clock.Set", func(st *state) error {
		st.businessDate = domain.Date(date)
		return nil
	})
	return domain.Date(date), err
}

func (c *Clock) Advance(ctx context.Context) (time.Time, error) {
	var d time.Time
	err := c.s.with(ctx, "clock.Advance", func(st *state) error {
		st.businessDate = st.businessDate.AddDate(0, 0, 1)
		d = st.businessDate
		return nil
	})
	return d, err
}

// BusinessDate позволяет использовать хранилище как источник операционной даты
func (c *Clock) BusinessDate(ctx context.Context) (time.Time, error) {
	return c.Get(ctx)
}
