// Package fakestore - хранилище в памяти для тестов use case.
// Реализует репозитории и менеджер транзакций с теми же ошибками, что и PostgreSQL реализация:
// единицы работы выполняются последовательно (как под блокировками строк),
// при ошибке или панике состояние откатывается к снимку.
package fakestore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
)

type txKey struct{}

type state struct {
	rooms        map[int64]domain.Room
	guests       map[int64]domain.Guest
	reservations map[int64]domain.Reservation
	invoices     map[int64]domain.Invoice
	lines        map[int64]domain.InvoiceLine
	movements    map[int64]domain.Movement
	businessDate time.Time
	seq          int64
}

func (s *state) clone() *state {
	c := &state{
		rooms:        make(map[int64]domain.Room, len(s.rooms)),
		guests:       make(map[int64]domain.Guest, len(s.guests)),
		reservations: make(map[int64]domain.Reservation, len(s.reservations)),
		invoices:     make(map[int64]domain.Invoice, len(s.invoices)),
		lines:        make(map[int64]domain.InvoiceLine, len(s.lines)),
		movements:    make(map[int64]domain.Movement, len(s.movements)),
		businessDate: s.businessDate,
		seq:          s.seq,
	}
	for k, v := range s.rooms {
		c.rooms[k] = v
	}
	for k, v := range s.guests {
		c.guests[k] = v
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	for k, v := range s.invoices {
		c.invoices[k] = v
	}
	for k, v := range s.lines {
		c.lines[k] = v
	}
	for k, v := range s.movements {
		c.movements[k] = v
	}
	return c
}

func (s *state) nextID() int64 {
	s.seq++
	return s.seq
}

// Store общее состояние и репозитории поверх него
type Store struct {
	mu    sync.Mutex
	st    *state
	fails map[string]error
	now   func() time.Time

	Rooms        *Rooms
	Guests       *Guests
	Reservations *Reservations
	Invoices     *Invoices
	Movements    *Movements
	Clock        *Clock
	Tx           *TxManager
}

// New создает пустое хранилище с операционной датой businessDate
func New(businessDate time.Time) *Store {
	s := &Store{
		st: &state{
			rooms:        map[int64]domain.Room{},
			guests:       map[int64]domain.Guest{},
			reservations: map[int64]domain.Reservation{},
			invoices:     map[int64]domain.Invoice{},
			lines:        map[int64]domain.InvoiceLine{},
			movements:    map[int64]domain.Movement{},
			businessDate: domain.Date(businessDate),
		},
		fails: map[string]error{},
		now:   time.Now,
	}
	s.Rooms = &Rooms{s: s}
	s.Guests = &Guests{s: s}
	s.Reservations = &Reservations{s: s}
	s.Invoices = &Invoices{s: s}
	s.Movements = &Movements{s: s}
	s.Clock = &Clock{s: s}
	s.Tx = &TxManager{s: s}
	return s
}

// FailOn заставляет метод op ("invoices.AddLine") возвращать err
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fails[op] = err
}

// with выполняет fn над состоянием; внутри транзакции мьютекс уже захвачен
func (s *Store) with(ctx context.Context, op string, fn func(st *state) error) error {
	if ctx.Value(txKey{}) == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	if err, ok := s.fails[op]; ok {
		return fmt.Errorf("fakestore: %s: %w", op, err)
	}
	return fn(s.st)
}

// AddRoom добавляет номер и возвращает его ID
func (s *Store) AddRoom(number, roomType string, baseRate int64, rs domain.RoomState) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.st.nextID()
	s.st.rooms[id] = domain.Room{
		ID:       id,
		Number:   number,
		Type:     roomType,
		Capacity: 2,
		BaseRate: decimal.NewFromInt(baseRate),
		State:    rs,
	}
	return id
}

// AddGuest добавляет гостя и возвращает его ID
func (s *Store) AddGuest(name string, document *string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.st.nextID()
	s.st.guests[id] = domain.Guest{ID: id, Name: name, DocumentNumber: document}
	return id
}

// AddReservation добавляет бронирование в обход проверок и возвращает его ID
func (s *Store) AddReservation(r domain.Reservation) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.st.nextID()
	r.StartDate = domain.Date(r.StartDate)
	r.EndDate = domain.Date(r.EndDate)
	s.st.reservations[r.ID] = r
	return r.ID
}

// AddMovement добавляет движение в обход проверок
func (s *Store) AddMovement(m domain.Movement) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.st.nextID()
	s.st.movements[m.ID] = m
	return m.ID
}

// AddPendingLine добавляет начисление, еще не привязанное к счету
func (s *Store) AddPendingLine(l domain.InvoiceLine) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	l.ID = s.st.nextID()
	l.InvoiceID = nil
	s.st.lines[l.ID] = l
	return l.ID
}

// Room снимок номера
func (s *Store) Room(id int64) domain.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.rooms[id]
}

// Reservation снимок бронирования
func (s *Store) Reservation(id int64) domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.reservations[id]
}

// AllReservations снимок всех бронирований
func (s *Store) AllReservations() []domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Reservation, 0, len(s.st.reservations))
	for _, r := range s.st.reservations {
		out = append(out, r)
	}
	return out
}

// InvoiceOf счет бронирования и его строки; ok == false, если счета нет
func (s *Store) InvoiceOf(reservationID int64) (domain.Invoice, []domain.InvoiceLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inv := range s.st.invoices {
		if inv.ReservationID != reservationID {
			continue
		}
		var lines []domain.InvoiceLine
		for _, l := range s.st.lines {
			if l.InvoiceID != nil && *l.InvoiceID == inv.ID {
				lines = append(lines, l)
			}
		}
		return inv, lines, true
	}
	return domain.Invoice{}, nil, false
}

// MovementCount количество движений
func (s *Store) MovementCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.movements)
}

// GuestCount количество гостей
func (s *Store) GuestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.guests)
}

// TxManager менеджер транзакций: одна единица работы за раз, откат к снимку
type TxManager struct {
	s *Store
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	snapshot := m.s.st.clone()
	defer func() {
		if p := recover(); p != nil {
			m.s.st = snapshot
			panic(p)
		}
		if err != nil {
			m.s.st = snapshot
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, true))
}
