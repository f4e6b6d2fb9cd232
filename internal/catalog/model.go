package catalog

import "time"

// Product is a sellable menu entry.
type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Price       float64   `json:"price"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
}

// Variant is a sized/flavored version of a product. EffectivePrice is the
// price after any override discount; zero means no override.
type Variant struct {
	ID             int     `json:"id"`
	ProductID      int     `json:"product_id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	EffectivePrice float64 `json:"effective_price,omitempty"`
}

// ComboProduct is one product slot inside a combo.
type ComboProduct struct {
	ProductID   int    `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// Combo bundles several products at a combined price.
type Combo struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	Image          string         `json:"image,omitempty"`
	Price          float64        `json:"price"`
	EffectivePrice float64        `json:"effective_price"`
	Items          []ComboProduct `json:"items"`
}

// Tag labels products for menu filtering (e.g. "spicy", "vegetarian").
type Tag struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}
