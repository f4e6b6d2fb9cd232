package catalog

import (
	"context"
	"sync"
	"time"
)

// InMemoryRepository backs catalog service tests.
type InMemoryRepository struct {
	mu       sync.Mutex
	nextID   int
	products map[int]*Product
	variants map[int]*Variant
	combos   map[int]*Combo
	tags     map[int]*Tag
	prodTags map[int]map[int]bool
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		products: make(map[int]*Product),
		variants: make(map[int]*Variant),
		combos:   make(map[int]*Combo),
		tags:     make(map[int]*Tag),
		prodTags: make(map[int]map[int]bool),
	}
}

func (r *InMemoryRepository) id() int {
	r.nextID++
	return r.nextID
}

func (r *InMemoryRepository) CreateProduct(_ context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.id()
	p.CreatedAt = time.Now()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *InMemoryRepository) GetProduct(_ context.Context, id int) (*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *InMemoryRepository) ListProducts(_ context.Context) ([]*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Product
	for i := 1; i <= r.nextID; i++ {
		if p, ok := r.products[i]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) UpdateProduct(_ context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return ErrNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *InMemoryRepository) DeleteProduct(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *InMemoryRepository) CreateVariant(_ context.Context, v *Variant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v.ID = r.id()
	cp := *v
	r.variants[v.ID] = &cp
	return nil
}

func (r *InMemoryRepository) GetVariant(_ context.Context, id int) (*Variant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.variants[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *InMemoryRepository) ListVariants(_ context.Context, productID int) ([]*Variant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Variant
	for i := 1; i <= r.nextID; i++ {
		if v, ok := r.variants[i]; ok && v.ProductID == productID {
			cp := *v
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) DeleteVariant(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.variants[id]; !ok {
		return ErrNotFound
	}
	delete(r.variants, id)
	return nil
}

func (r *InMemoryRepository) CreateCombo(_ context.Context, cb *Combo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cb.ID = r.id()
	cp := *cb
	cp.Items = append([]ComboProduct(nil), cb.Items...)
	r.combos[cb.ID] = &cp
	return nil
}

func (r *InMemoryRepository) GetCombo(_ context.Context, id int) (*Combo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cb, ok := r.combos[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *cb
	cp.Items = append([]ComboProduct(nil), cb.Items...)
	return &cp, nil
}

func (r *InMemoryRepository) ListCombos(_ context.Context) ([]*Combo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Combo
	for i := 1; i <= r.nextID; i++ {
		if cb, ok := r.combos[i]; ok {
			cp := *cb
			cp.Items = append([]ComboProduct(nil), cb.Items...)
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) DeleteCombo(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.combos[id]; !ok {
		return ErrNotFound
	}
	delete(r.combos, id)
	return nil
}

func (r *InMemoryRepository) CreateTag(_ context.Context, t *Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = r.id()
	cp := *t
	r.tags[t.ID] = &cp
	return nil
}

func (r *InMemoryRepository) ListTags(_ context.Context) ([]*Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Tag
	for i := 1; i <= r.nextID; i++ {
		if t, ok := r.tags[i]; ok {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) DeleteTag(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tags[id]; !ok {
		return ErrNotFound
	}
	delete(r.tags, id)
	return nil
}

func (r *InMemoryRepository) AssignTag(_ context.Context, productID, tagID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.prodTags[productID] == nil {
		r.prodTags[productID] = make(map[int]bool)
	}
	r.prodTags[productID][tagID] = true
	return nil
}

func (r *InMemoryRepository) UnassignTag(_ context.Context, productID, tagID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.prodTags[productID], tagID)
	return nil
}

func (r *InMemoryRepository) ListProductTags(_ context.Context, productID int) ([]*Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Tag
	for i := 1; i <= r.nextID; i++ {
		if t, ok := r.tags[i]; ok && r.prodTags[productID][t.ID] {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}
