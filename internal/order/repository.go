package order

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("order not found")

// Repository defines all database operations for orders.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	Get(ctx context.Context, id int) (*Order, error)
	List(ctx context.Context, status Status) ([]*Order, error)
	UpdateStatus(ctx context.Context, id int, status Status) error
}
