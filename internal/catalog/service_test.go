package catalog

import (
	"context"
	"errors"
	"testing"
)

func TestCreateProductValidation(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)
	ctx := context.Background()

	if err := service.CreateProduct(ctx, &Product{Price: 50000}); err == nil {
		t.Fatalf("expected error for missing name")
	}
	if err := service.CreateProduct(ctx, &Product{Name: "Pho", Price: -1}); err == nil {
		t.Fatalf("expected error for negative price")
	}
	if err := service.CreateProduct(ctx, &Product{Name: "Pho", Price: 50000, Available: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateComboFreezesProductNames(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil)
	ctx := context.Background()

	pho := &Product{Name: "Pho", Price: 50000, Available: true}
	if err := service.CreateProduct(ctx, pho); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cb := &Combo{
		Name:           "Solo Set",
		EffectivePrice: 45000,
		Items:          []ComboProduct{{ProductID: pho.ID, Quantity: 1}},
	}
	if err := service.CreateCombo(ctx, cb); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cb.Items[0].ProductName != "Pho" {
		t.Fatalf("expected denormalized product name, got %q", cb.Items[0].ProductName)
	}

	// renaming the product afterwards must not change the combo snapshot
	pho.Name = "Pho Bo"
	if err := service.UpdateProduct(ctx, pho); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := service.GetCombo(ctx, cb.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Items[0].ProductName != "Pho" {
		t.Fatalf("combo item name changed retroactively: %q", got.Items[0].ProductName)
	}
}

func TestCreateComboRejectsUnknownProduct(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	cb := &Combo{
		Name:           "Ghost Set",
		EffectivePrice: 45000,
		Items:          []ComboProduct{{ProductID: 42, Quantity: 1}},
	}
	if err := service.CreateCombo(context.Background(), cb); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProductSnapshotRejectsUnavailable(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil)
	ctx := context.Background()

	p := &Product{Name: "Pho", Price: 50000, Available: false}
	if err := service.CreateProduct(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.ProductSnapshot(ctx, p.ID); err == nil {
		t.Fatalf("expected error for unavailable product")
	}
}

func TestVariantSnapshotChecksOwnership(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil)
	ctx := context.Background()

	tea := &Product{Name: "Tea", Price: 15000, Available: true}
	coffee := &Product{Name: "Coffee", Price: 25000, Available: true}
	for _, p := range []*Product{tea, coffee} {
		if err := service.CreateProduct(ctx, p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	large := &Variant{ProductID: tea.ID, Name: "Large", Price: 20000}
	if err := service.CreateVariant(ctx, large); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// variant belongs to tea, not coffee
	if _, _, err := service.VariantSnapshot(ctx, coffee.ID, large.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	product, variant, err := service.VariantSnapshot(ctx, tea.ID, large.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Name != "Tea" || variant.Name != "Large" || variant.Price != 20000 {
		t.Fatalf("unexpected snapshot: %+v %+v", product, variant)
	}
}

func TestComboSnapshotCarriesItemList(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil)
	ctx := context.Background()

	pho := &Product{Name: "Pho", Price: 50000, Available: true}
	tea := &Product{Name: "Tea", Price: 15000, Available: true}
	for _, p := range []*Product{pho, tea} {
		if err := service.CreateProduct(ctx, p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	cb := &Combo{
		Name:           "Family Set",
		EffectivePrice: 200000,
		Items: []ComboProduct{
			{ProductID: pho.ID, Quantity: 2},
			{ProductID: tea.ID, Quantity: 4},
		},
	}
	if err := service.CreateCombo(ctx, cb); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap, err := service.ComboSnapshot(ctx, cb.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.ItemsCount != 2 || len(snap.ComboItems) != 2 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.ComboItems[1].ProductName != "Tea" || snap.ComboItems[1].Quantity != 4 {
		t.Fatalf("unexpected combo items: %+v", snap.ComboItems)
	}
}

func TestTagAssignment(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil)
	ctx := context.Background()

	p := &Product{Name: "Pho", Price: 50000, Available: true}
	if err := service.CreateProduct(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spicy := &Tag{Name: "spicy", Color: "#ff0000"}
	if err := service.CreateTag(ctx, spicy); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.AssignTag(ctx, p.ID, spicy.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tags, err := service.ListProductTags(ctx, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 1 || tags[0].Name != "spicy" {
		t.Fatalf("unexpected tags: %+v", tags)
	}

	if err := service.UnassignTag(ctx, p.ID, spicy.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tags, _ = service.ListProductTags(ctx, p.ID)
	if len(tags) != 0 {
		t.Fatalf("expected no tags after unassign, got %+v", tags)
	}
}
