package cart

// Action is the closed set of cart state transitions. The marker method keeps
// the set closed to this package; Reduce switches exhaustively over it.
type Action interface {
	isAction()
}

// AddProduct merges a plain product into the cart. Quantity below 1 means
// "not specified" and defaults to 1.
type AddProduct struct {
	Product        ProductSnapshot
	Quantity       int
	Notes          string
	Customizations []string
}

// AddProductVariant merges a product variant into the cart.
type AddProductVariant struct {
	Product        ProductSnapshot
	Variant        VariantSnapshot
	Quantity       int
	Notes          string
	Customizations []string
}

// AddFoodCombo merges a food combo into the cart.
type AddFoodCombo struct {
	Combo          ComboSnapshot
	Quantity       int
	Notes          string
	Customizations []string
}

// AddLegacyItem is the backward-compatible single-add path. It matches
// existing lines on (display name, notes) equality only, ignoring
// customizations, and always adds quantity 1. NewLineID is the id to use when
// no line matches; the façade synthesizes it so the reducer stays
// deterministic.
type AddLegacyItem struct {
	Item           MenuItemSnapshot
	Notes          string
	Customizations []string
	NewLineID      string
}

// RemoveLine deletes the line with the given id. Absent ids are a no-op.
type RemoveLine struct {
	LineID string
}

// UpdateQuantity sets a line's quantity. A value of 0 or below removes the
// line instead of retaining a zero-quantity entry.
type UpdateQuantity struct {
	LineID   string
	Quantity int
}

// ClearCart empties the line list; the visibility flag is untouched.
type ClearCart struct{}

// ToggleVisibility flips the IsOpen flag.
type ToggleVisibility struct{}

func (AddProduct) isAction()        {}
func (AddProductVariant) isAction() {}
func (AddFoodCombo) isAction()      {}
func (AddLegacyItem) isAction()     {}
func (RemoveLine) isAction()        {}
func (UpdateQuantity) isAction()    {}
func (ClearCart) isAction()         {}
func (ToggleVisibility) isAction()  {}
