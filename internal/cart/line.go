package cart

// LineKind discriminates the four shapes a cart line can take.
type LineKind string

const (
	KindProduct        LineKind = "product"
	KindProductVariant LineKind = "product_variant"
	KindFoodCombo      LineKind = "food_combo"
	KindLegacy         LineKind = "legacy"
)

// ComboItem is one product inside a food combo, snapshotted at add time.
type ComboItem struct {
	ProductID   int    `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// Line is one aggregated cart entry. Identity (ID) is derived from the
// catalog ids plus normalized notes and customizations, so two adds of the
// same configuration merge into a single line. Price and display fields are
// frozen at creation and never updated on merge.
type Line struct {
	ID             string   `json:"id"`
	Kind           LineKind `json:"kind"`
	DisplayName    string   `json:"display_name"`
	Description    string   `json:"description,omitempty"`
	ImageURL       string   `json:"image_url,omitempty"`
	UnitPrice      float64  `json:"unit_price"`
	Quantity       int      `json:"quantity"`
	Notes          string   `json:"notes,omitempty"`
	Customizations []string `json:"customizations,omitempty"`

	// product / product_variant
	ProductID       int    `json:"product_id,omitempty"`
	VariantID       int    `json:"variant_id,omitempty"`
	VariantName     string `json:"variant_name,omitempty"`
	BaseProductName string `json:"base_product_name,omitempty"`

	// food_combo
	ComboID    int         `json:"combo_id,omitempty"`
	ItemCount  int         `json:"item_count,omitempty"`
	ComboItems []ComboItem `json:"combo_items,omitempty"`

	// legacy
	LegacyItemID string `json:"legacy_item_id,omitempty"`
}

// State is the full cart state. Lines keep insertion order; IsOpen is a pure
// UI flag with no effect on totals.
type State struct {
	Lines  []Line `json:"lines"`
	IsOpen bool   `json:"is_open"`
}

// ProductSnapshot is the catalog data an add-operation receives. A zero Price
// means the catalog supplied none; the line then prices at 0.
type ProductSnapshot struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Price       float64 `json:"price,omitempty"`
}

// VariantSnapshot carries the variant's own price and the effective price
// after any override discount. Zero means absent; the fallback chain is
// effective price, then variant price, then product price, then 0.
type VariantSnapshot struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price,omitempty"`
	EffectivePrice float64 `json:"effective_price,omitempty"`
}

// ComboSnapshot is a food combo at add time, including its item list.
type ComboSnapshot struct {
	ID             int         `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description,omitempty"`
	Image          string      `json:"image,omitempty"`
	EffectivePrice float64     `json:"effective_price"`
	ItemsCount     int         `json:"items_count"`
	ComboItems     []ComboItem `json:"combo_items"`
}

// MenuItemSnapshot is the free-form item shape used by the legacy add path.
type MenuItemSnapshot struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Price       float64 `json:"price,omitempty"`
}

// variantUnitPrice resolves the price to charge for a product variant.
// Zero values are treated as absent, matching the catalog's override
// semantics.
func variantUnitPrice(product ProductSnapshot, variant VariantSnapshot) float64 {
	if variant.EffectivePrice > 0 {
		return variant.EffectivePrice
	}
	if variant.Price > 0 {
		return variant.Price
	}
	if product.Price > 0 {
		return product.Price
	}
	return 0
}
