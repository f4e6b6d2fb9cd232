package cart

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidSnapshot = errors.New("snapshot is missing a required id")
)

// Store wraps a cart State behind a mutex so gin handlers can share one cart
// per guest session. Every mutation goes through the pure reducer; the store
// only adds boundary validation and locking.
type Store struct {
	mu    sync.Mutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Lines: []Line{}}}
}

func (s *Store) dispatch(action Action) {
	s.state = Reduce(s.state, action)
}

// AddProduct merges a product into the cart and returns the derived line id.
// Quantity below 1 is treated as the default of 1.
func (s *Store) AddProduct(product ProductSnapshot, quantity int, notes string, customizations []string) (string, error) {
	if product.ID <= 0 {
		return "", ErrInvalidSnapshot
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.dispatch(AddProduct{
		Product:        product,
		Quantity:       quantity,
		Notes:          notes,
		Customizations: customizations,
	})
	return productLineID(product.ID, notes, customizations), nil
}

// AddProductVariant merges a product variant into the cart. An explicit
// quantity below 1 is rejected.
func (s *Store) AddProductVariant(product ProductSnapshot, variant VariantSnapshot, quantity int, notes string, customizations []string) (string, error) {
	if product.ID <= 0 || variant.ID <= 0 {
		return "", ErrInvalidSnapshot
	}
	if quantity < 1 {
		return "", ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.dispatch(AddProductVariant{
		Product:        product,
		Variant:        variant,
		Quantity:       quantity,
		Notes:          notes,
		Customizations: customizations,
	})
	return variantLineID(product.ID, variant.ID, notes, customizations), nil
}

// AddFoodCombo merges a food combo into the cart. An explicit quantity below
// 1 is rejected.
func (s *Store) AddFoodCombo(combo ComboSnapshot, quantity int, notes string, customizations []string) (string, error) {
	if combo.ID <= 0 {
		return "", ErrInvalidSnapshot
	}
	if quantity < 1 {
		return "", ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.dispatch(AddFoodCombo{
		Combo:          combo,
		Quantity:       quantity,
		Notes:          notes,
		Customizations: customizations,
	})
	return comboLineID(combo.ID, notes, customizations), nil
}

// AddLegacyItem adds one unit of a free-form menu item, matching existing
// lines on (name, notes) only. The fallback line id is item id plus the
// current timestamp, which keeps ids unique without the derived scheme.
func (s *Store) AddLegacyItem(item MenuItemSnapshot, notes string, customizations []string) error {
	if item.ID == "" {
		return ErrInvalidSnapshot
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.dispatch(AddLegacyItem{
		Item:           item,
		Notes:          notes,
		Customizations: customizations,
		NewLineID:      fmt.Sprintf("%s-%d", item.ID, time.Now().UnixMilli()),
	})
	return nil
}

func (s *Store) RemoveLine(lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatch(RemoveLine{LineID: lineID})
}

func (s *Store) UpdateQuantity(lineID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatch(UpdateQuantity{LineID: lineID, Quantity: quantity})
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatch(ClearCart{})
}

func (s *Store) ToggleVisibility() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatch(ToggleVisibility{})
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{Lines: copyLines(s.state.Lines), IsOpen: s.state.IsOpen}
}

func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyLines(s.state.Lines)
}

func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsOpen
}

func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.TotalItemCount()
}

func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.TotalPrice()
}
