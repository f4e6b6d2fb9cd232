package catalog

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("catalog item not found")

// Repository defines all database operations for the catalog.
type Repository interface {

	// -------------------------------
	// Products
	// -------------------------------
	CreateProduct(ctx context.Context, p *Product) error
	GetProduct(ctx context.Context, id int) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)
	UpdateProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, id int) error

	// -------------------------------
	// Variants
	// -------------------------------
	CreateVariant(ctx context.Context, v *Variant) error
	GetVariant(ctx context.Context, id int) (*Variant, error)
	ListVariants(ctx context.Context, productID int) ([]*Variant, error)
	DeleteVariant(ctx context.Context, id int) error

	// -------------------------------
	// Combos
	// -------------------------------
	CreateCombo(ctx context.Context, cb *Combo) error
	GetCombo(ctx context.Context, id int) (*Combo, error)
	ListCombos(ctx context.Context) ([]*Combo, error)
	DeleteCombo(ctx context.Context, id int) error

	// -------------------------------
	// Tags
	// -------------------------------
	CreateTag(ctx context.Context, t *Tag) error
	ListTags(ctx context.Context) ([]*Tag, error)
	DeleteTag(ctx context.Context, id int) error
	AssignTag(ctx context.Context, productID, tagID int) error
	UnassignTag(ctx context.Context, productID, tagID int) error
	ListProductTags(ctx context.Context, productID int) ([]*Tag, error)
}
