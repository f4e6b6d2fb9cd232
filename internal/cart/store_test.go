package cart

import (
	"errors"
	"testing"
)

func TestStoreRejectsSnapshotWithoutID(t *testing.T) {
	store := NewStore()

	if _, err := store.AddProduct(ProductSnapshot{Name: "Pho"}, 1, "", nil); !errors.Is(err, ErrInvalidSnapshot) {
		t.Fatalf("expected ErrInvalidSnapshot, got %v", err)
	}
	if _, err := store.AddProductVariant(ProductSnapshot{ID: 2, Name: "Tea"}, VariantSnapshot{Name: "Large"}, 1, "", nil); !errors.Is(err, ErrInvalidSnapshot) {
		t.Fatalf("expected ErrInvalidSnapshot, got %v", err)
	}
	if _, err := store.AddFoodCombo(ComboSnapshot{Name: "Set"}, 1, "", nil); !errors.Is(err, ErrInvalidSnapshot) {
		t.Fatalf("expected ErrInvalidSnapshot, got %v", err)
	}
	if err := store.AddLegacyItem(MenuItemSnapshot{Name: "Pho"}, "", nil); !errors.Is(err, ErrInvalidSnapshot) {
		t.Fatalf("expected ErrInvalidSnapshot, got %v", err)
	}

	if len(store.Lines()) != 0 {
		t.Fatalf("rejected adds must not create lines")
	}
}

func TestStoreRejectsNonPositiveVariantAndComboQuantity(t *testing.T) {
	store := NewStore()

	_, err := store.AddProductVariant(
		ProductSnapshot{ID: 2, Name: "Tea"},
		VariantSnapshot{ID: 9, Name: "Large", EffectivePrice: 20000},
		0, "", nil,
	)
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}

	_, err = store.AddFoodCombo(ComboSnapshot{ID: 4, Name: "Set", EffectivePrice: 200000}, -2, "", nil)
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestStoreAddProductDefaultsQuantityToOne(t *testing.T) {
	store := NewStore()

	if _, err := store.AddProduct(ProductSnapshot{ID: 1, Name: "Pho", Price: 50000}, 0, "", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := store.Lines()
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Fatalf("expected one line of quantity 1, got %+v", lines)
	}
}

func TestStoreReturnsDerivedLineID(t *testing.T) {
	store := NewStore()

	id, err := store.AddProduct(ProductSnapshot{ID: 1, Name: "Pho", Price: 50000}, 2, "No Onion", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != store.Lines()[0].ID {
		t.Fatalf("returned id %q does not match stored line id %q", id, store.Lines()[0].ID)
	}

	// the returned id is usable for follow-up mutations
	store.UpdateQuantity(id, 0)
	if len(store.Lines()) != 0 {
		t.Fatalf("expected empty cart after removal through returned id")
	}
}

func TestStoreLegacyIDsAreUniqueAcrossDistinctLines(t *testing.T) {
	store := NewStore()

	item := MenuItemSnapshot{ID: "pho-special", Name: "Pho Special", Price: 65000}
	if err := store.AddLegacyItem(item, "a", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.AddLegacyItem(item, "b", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := store.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].ID == lines[1].ID {
		t.Fatalf("legacy line ids must stay unique, both %q", lines[0].ID)
	}
}

func TestStoreTotalsTrackState(t *testing.T) {
	store := NewStore()

	_, _ = store.AddProduct(ProductSnapshot{ID: 1, Name: "Pho", Price: 50000}, 2, "", nil)
	_, _ = store.AddProductVariant(
		ProductSnapshot{ID: 2, Name: "Tea"},
		VariantSnapshot{ID: 9, Name: "Large", EffectivePrice: 80000},
		1, "", nil,
	)

	if got := store.TotalItemCount(); got != 3 {
		t.Fatalf("expected item count 3, got %d", got)
	}
	if got := store.TotalPrice(); got != 180000 {
		t.Fatalf("expected total 180000, got %v", got)
	}

	store.Clear()
	if store.TotalItemCount() != 0 || store.TotalPrice() != 0 {
		t.Fatalf("totals must be zero after clear")
	}
}

func TestSessionManagerLifecycle(t *testing.T) {
	m := NewSessionManager()

	id, store := m.Create()
	if store == nil || id == "" {
		t.Fatalf("expected a session id and store")
	}

	got, ok := m.Get(id)
	if !ok || got != store {
		t.Fatalf("expected to get back the same store")
	}

	m.Delete(id)
	if _, ok := m.Get(id); ok {
		t.Fatalf("expected session gone after delete")
	}

	if _, ok := m.Get("nope"); ok {
		t.Fatalf("unknown session id must not resolve")
	}
}
