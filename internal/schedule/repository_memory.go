package schedule

import (
	"context"
	"sync"
	"time"
)

type InMemoryRepository struct {
	mu     sync.Mutex
	nextID int
	shifts map[int]*Shift
	leave  map[int]*LeaveRequest
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		shifts: make(map[int]*Shift),
		leave:  make(map[int]*LeaveRequest),
	}
}

func (r *InMemoryRepository) id() int {
	r.nextID++
	return r.nextID
}

func (r *InMemoryRepository) CreateShift(_ context.Context, s *Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = r.id()
	cp := *s
	r.shifts[s.ID] = &cp
	return nil
}

func (r *InMemoryRepository) ListShiftsByDay(_ context.Context, day time.Time) ([]*Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	target := truncateDay(day)
	var out []*Shift
	for i := 1; i <= r.nextID; i++ {
		if s, ok := r.shifts[i]; ok && truncateDay(s.Day).Equal(target) {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListShiftsByStaff(_ context.Context, staffID string) ([]*Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Shift
	for i := 1; i <= r.nextID; i++ {
		if s, ok := r.shifts[i]; ok && s.StaffID == staffID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) DeleteShift(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.shifts[id]; !ok {
		return ErrNotFound
	}
	delete(r.shifts, id)
	return nil
}

func (r *InMemoryRepository) CreateLeave(_ context.Context, l *LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l.ID = r.id()
	cp := *l
	r.leave[l.ID] = &cp
	return nil
}

func (r *InMemoryRepository) GetLeave(_ context.Context, id int) (*LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.leave[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *InMemoryRepository) ListLeave(_ context.Context, status LeaveStatus) ([]*LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*LeaveRequest
	for i := 1; i <= r.nextID; i++ {
		l, ok := r.leave[i]
		if !ok {
			continue
		}
		if status != "" && l.Status != status {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (r *InMemoryRepository) UpdateLeave(_ context.Context, l *LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.leave[l.ID]; !ok {
		return ErrNotFound
	}
	cp := *l
	r.leave[l.ID] = &cp
	return nil
}
