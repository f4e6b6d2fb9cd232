package order

import "time"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPreparing Status = "PREPARING"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// CanTransition reports whether an order may move from its current status to
// the target. Cancellation is allowed from any non-terminal state.
func CanTransition(from, to Status) bool {
	if from == StatusCompleted || from == StatusCancelled {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	switch from {
	case StatusPending:
		return to == StatusPreparing
	case StatusPreparing:
		return to == StatusCompleted
	}
	return false
}

// OrderLine is a denormalized snapshot of one cart line at checkout. The
// catalog can change afterwards without affecting placed orders.
type OrderLine struct {
	ID             int      `json:"id"`
	OrderID        int      `json:"order_id"`
	Kind           string   `json:"kind"`
	DisplayName    string   `json:"display_name"`
	UnitPrice      float64  `json:"unit_price"`
	Quantity       int      `json:"quantity"`
	Notes          string   `json:"notes,omitempty"`
	Customizations []string `json:"customizations,omitempty"`
	ProductID      int      `json:"product_id,omitempty"`
	VariantID      int      `json:"variant_id,omitempty"`
	ComboID        int      `json:"combo_id,omitempty"`
}

type Order struct {
	ID        int         `json:"id"`
	GuestName string      `json:"guest_name,omitempty"`
	TableID   int         `json:"table_id,omitempty"`
	Status    Status      `json:"status"`
	Total     float64     `json:"total"`
	Lines     []OrderLine `json:"lines"`
	CreatedAt time.Time   `json:"created_at"`
}
