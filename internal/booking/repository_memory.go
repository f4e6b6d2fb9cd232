package booking

import (
	"context"
	"sync"
	"time"
)

type InMemoryRepository struct {
	mu       sync.Mutex
	nextID   int
	tables   map[int]*Table
	bookings map[int]*Booking
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		tables:   make(map[int]*Table),
		bookings: make(map[int]*Booking),
	}
}

func (r *InMemoryRepository) id() int {
	r.nextID++
	return r.nextID
}

func (r *InMemoryRepository) CreateTable(_ context.Context, t *Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = r.id()
	cp := *t
	r.tables[t.ID] = &cp
	return nil
}

func (r *InMemoryRepository) GetTable(_ context.Context, id int) (*Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tables[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *InMemoryRepository) ListTables(_ context.Context) ([]*Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Table
	for i := 1; i <= r.nextID; i++ {
		if t, ok := r.tables[i]; ok {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) UpdateTable(_ context.Context, t *Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tables[t.ID]; !ok {
		return ErrNotFound
	}
	cp := *t
	r.tables[t.ID] = &cp
	return nil
}

func (r *InMemoryRepository) DeleteTable(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tables[id]; !ok {
		return ErrNotFound
	}
	delete(r.tables, id)
	return nil
}

func (r *InMemoryRepository) CreateBooking(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = r.id()
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *InMemoryRepository) GetBooking(_ context.Context, id int) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *InMemoryRepository) ListBookingsForTable(_ context.Context, tableID int, start, end time.Time) ([]*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Booking
	for i := 1; i <= r.nextID; i++ {
		b, ok := r.bookings[i]
		if !ok || b.TableID != tableID || b.Status == BookingCancelled {
			continue
		}
		if b.Overlaps(start, end) {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListBookingsByDay(_ context.Context, day time.Time) ([]*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var out []*Booking
	for i := 1; i <= r.nextID; i++ {
		b, ok := r.bookings[i]
		if !ok {
			continue
		}
		if !b.StartTime.Before(dayStart) && b.StartTime.Before(dayEnd) {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) UpdateBookingStatus(_ context.Context, id int, status BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.Status = status
	return nil
}
