package catalog

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"dinepos/internal/cart"
)

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File, contentType string) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

// --------------------------------------------------
// Products
// --------------------------------------------------

func (s *Service) CreateProduct(ctx context.Context, p *Product) error {
	if p.Name == "" {
		return errors.New("product name is required")
	}
	if p.Price < 0 {
		return errors.New("product price cannot be negative")
	}
	return s.repo.CreateProduct(ctx, p)
}

func (s *Service) GetProduct(ctx context.Context, id int) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *Service) UpdateProduct(ctx context.Context, p *Product) error {
	if p.Name == "" {
		return errors.New("product name is required")
	}
	if p.Price < 0 {
		return errors.New("product price cannot be negative")
	}
	return s.repo.UpdateProduct(ctx, p)
}

func (s *Service) DeleteProduct(ctx context.Context, id int) error {
	return s.repo.DeleteProduct(ctx, id)
}

// SetProductImage uploads an image and stores its public URL on the product.
func (s *Service) SetProductImage(
	ctx context.Context,
	productID int,
	file multipart.File,
	filename string,
	contentType string,
) (string, error) {

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", errors.New("invalid file")
	}

	p, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("products/%d/%s%s", productID, uuid.New().String(), ext)

	url, err := s.storage.Upload(ctx, key, file, contentType)
	if err != nil {
		return "", err
	}

	p.Image = url
	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return "", err
	}
	return url, nil
}

// --------------------------------------------------
// Variants
// --------------------------------------------------

func (s *Service) CreateVariant(ctx context.Context, v *Variant) error {
	if v.Name == "" {
		return errors.New("variant name is required")
	}
	if v.Price < 0 || v.EffectivePrice < 0 {
		return errors.New("variant price cannot be negative")
	}
	// the product must exist
	if _, err := s.repo.GetProduct(ctx, v.ProductID); err != nil {
		return err
	}
	return s.repo.CreateVariant(ctx, v)
}

func (s *Service) ListVariants(ctx context.Context, productID int) ([]*Variant, error) {
	return s.repo.ListVariants(ctx, productID)
}

func (s *Service) DeleteVariant(ctx context.Context, id int) error {
	return s.repo.DeleteVariant(ctx, id)
}

// --------------------------------------------------
// Combos
// --------------------------------------------------

func (s *Service) CreateCombo(ctx context.Context, cb *Combo) error {
	if cb.Name == "" {
		return errors.New("combo name is required")
	}
	if cb.EffectivePrice <= 0 {
		return errors.New("combo effective price is required")
	}
	if len(cb.Items) == 0 {
		return errors.New("combo needs at least one item")
	}
	for i := range cb.Items {
		item := &cb.Items[i]
		if item.Quantity < 1 {
			return errors.New("combo item quantity must be at least 1")
		}
		p, err := s.repo.GetProduct(ctx, item.ProductID)
		if err != nil {
			return err
		}
		// denormalized name, frozen at combo creation
		item.ProductName = p.Name
	}
	return s.repo.CreateCombo(ctx, cb)
}

func (s *Service) GetCombo(ctx context.Context, id int) (*Combo, error) {
	return s.repo.GetCombo(ctx, id)
}

func (s *Service) ListCombos(ctx context.Context) ([]*Combo, error) {
	return s.repo.ListCombos(ctx)
}

func (s *Service) DeleteCombo(ctx context.Context, id int) error {
	return s.repo.DeleteCombo(ctx, id)
}

// --------------------------------------------------
// Tags
// --------------------------------------------------

func (s *Service) CreateTag(ctx context.Context, t *Tag) error {
	if t.Name == "" {
		return errors.New("tag name is required")
	}
	return s.repo.CreateTag(ctx, t)
}

func (s *Service) ListTags(ctx context.Context) ([]*Tag, error) {
	return s.repo.ListTags(ctx)
}

func (s *Service) DeleteTag(ctx context.Context, id int) error {
	return s.repo.DeleteTag(ctx, id)
}

func (s *Service) AssignTag(ctx context.Context, productID, tagID int) error {
	if _, err := s.repo.GetProduct(ctx, productID); err != nil {
		return err
	}
	return s.repo.AssignTag(ctx, productID, tagID)
}

func (s *Service) UnassignTag(ctx context.Context, productID, tagID int) error {
	return s.repo.UnassignTag(ctx, productID, tagID)
}

func (s *Service) ListProductTags(ctx context.Context, productID int) ([]*Tag, error) {
	return s.repo.ListProductTags(ctx, productID)
}

// --------------------------------------------------
// Cart snapshots
// --------------------------------------------------

// ProductSnapshot builds the immutable snapshot the cart engine prices a
// product line from. Unavailable products cannot be added.
func (s *Service) ProductSnapshot(ctx context.Context, productID int) (cart.ProductSnapshot, error) {
	p, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return cart.ProductSnapshot{}, err
	}
	if !p.Available {
		return cart.ProductSnapshot{}, fmt.Errorf("product %q is not available", p.Name)
	}
	return cart.ProductSnapshot{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		Price:       p.Price,
	}, nil
}

func (s *Service) VariantSnapshot(ctx context.Context, productID, variantID int) (cart.ProductSnapshot, cart.VariantSnapshot, error) {
	product, err := s.ProductSnapshot(ctx, productID)
	if err != nil {
		return cart.ProductSnapshot{}, cart.VariantSnapshot{}, err
	}
	v, err := s.repo.GetVariant(ctx, variantID)
	if err != nil {
		return cart.ProductSnapshot{}, cart.VariantSnapshot{}, err
	}
	if v.ProductID != productID {
		return cart.ProductSnapshot{}, cart.VariantSnapshot{}, ErrNotFound
	}
	return product, cart.VariantSnapshot{
		ID:             v.ID,
		Name:           v.Name,
		Price:          v.Price,
		EffectivePrice: v.EffectivePrice,
	}, nil
}

func (s *Service) ComboSnapshot(ctx context.Context, comboID int) (cart.ComboSnapshot, error) {
	cb, err := s.repo.GetCombo(ctx, comboID)
	if err != nil {
		return cart.ComboSnapshot{}, err
	}
	items := make([]cart.ComboItem, len(cb.Items))
	for i, item := range cb.Items {
		items[i] = cart.ComboItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		}
	}
	return cart.ComboSnapshot{
		ID:             cb.ID,
		Name:           cb.Name,
		Description:    cb.Description,
		Image:          cb.Image,
		EffectivePrice: cb.EffectivePrice,
		ItemsCount:     len(cb.Items),
		ComboItems:     items,
	}, nil
}
