package order

import (
	"context"
	"sync"
	"time"
)

type InMemoryRepository struct {
	mu     sync.Mutex
	nextID int
	orders map[int]*Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{orders: make(map[int]*Order)}
}

func (r *InMemoryRepository) Create(_ context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	o.ID = r.nextID
	o.CreatedAt = time.Now()
	for i := range o.Lines {
		o.Lines[i].OrderID = o.ID
		o.Lines[i].ID = i + 1
	}
	cp := *o
	cp.Lines = append([]OrderLine(nil), o.Lines...)
	r.orders[o.ID] = &cp
	return nil
}

func (r *InMemoryRepository) Get(_ context.Context, id int) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	cp.Lines = append([]OrderLine(nil), o.Lines...)
	return &cp, nil
}

func (r *InMemoryRepository) List(_ context.Context, status Status) ([]*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Order
	for i := 1; i <= r.nextID; i++ {
		o, ok := r.orders[i]
		if !ok {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		cp := *o
		cp.Lines = append([]OrderLine(nil), o.Lines...)
		out = append(out, &cp)
	}
	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(_ context.Context, id int, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return ErrNotFound
	}
	o.Status = status
	return nil
}
