package order

import (
	"context"
	"errors"
	"fmt"

	"dinepos/internal/cart"
)

var (
	ErrEmptyCart         = errors.New("cannot place an order from an empty cart")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

type Service struct {
	repo     Repository
	sessions *cart.SessionManager
}

func NewService(repo Repository, sessions *cart.SessionManager) *Service {
	return &Service{repo: repo, sessions: sessions}
}

// Checkout converts a cart session into a persisted PENDING order, then
// clears the session. The line snapshots are denormalized so later catalog
// edits never touch placed orders.
func (s *Service) Checkout(ctx context.Context, sessionID, guestName string, tableID int) (*Order, error) {
	store, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, errors.New("cart session not found")
	}

	state := store.Snapshot()
	if len(state.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	o := &Order{
		GuestName: guestName,
		TableID:   tableID,
		Status:    StatusPending,
		Total:     state.TotalPrice(),
	}
	for _, line := range state.Lines {
		o.Lines = append(o.Lines, OrderLine{
			Kind:           string(line.Kind),
			DisplayName:    line.DisplayName,
			UnitPrice:      line.UnitPrice,
			Quantity:       line.Quantity,
			Notes:          line.Notes,
			Customizations: line.Customizations,
			ProductID:      line.ProductID,
			VariantID:      line.VariantID,
			ComboID:        line.ComboID,
		})
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	store.Clear()
	return o, nil
}

func (s *Service) Get(ctx context.Context, id int) (*Order, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, status Status) ([]*Order, error) {
	return s.repo.List(ctx, status)
}

// Transition moves an order along the status workflow, rejecting moves the
// workflow does not allow.
func (s *Service) Transition(ctx context.Context, id int, to Status) (*Order, error) {
	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(o.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, to)
	}

	if err := s.repo.UpdateStatus(ctx, id, to); err != nil {
		return nil, err
	}
	o.Status = to
	return o, nil
}
