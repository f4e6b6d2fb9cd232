package booking

import (
	"context"
	"errors"
	"time"
)

var (
	ErrTableUnavailable = errors.New("table is out of service")
	ErrTimeConflict     = errors.New("table already booked for that time")
	ErrPartyTooLarge    = errors.New("party size exceeds table seats")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Tables
// --------------------------------------------------

func (s *Service) CreateTable(ctx context.Context, t *Table) error {
	if t.Name == "" {
		return errors.New("table name is required")
	}
	if t.Seats < 1 {
		return errors.New("table needs at least one seat")
	}
	if t.Status == "" {
		t.Status = TableActive
	}
	return s.repo.CreateTable(ctx, t)
}

func (s *Service) ListTables(ctx context.Context) ([]*Table, error) {
	return s.repo.ListTables(ctx)
}

func (s *Service) UpdateTable(ctx context.Context, t *Table) error {
	if t.Name == "" {
		return errors.New("table name is required")
	}
	if t.Seats < 1 {
		return errors.New("table needs at least one seat")
	}
	return s.repo.UpdateTable(ctx, t)
}

func (s *Service) DeleteTable(ctx context.Context, id int) error {
	return s.repo.DeleteTable(ctx, id)
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

// Book reserves a table, rejecting out-of-service tables, oversize parties,
// and windows that overlap an existing confirmed booking.
func (s *Service) Book(ctx context.Context, b *Booking) error {
	if b.GuestName == "" {
		return errors.New("guest name is required")
	}
	if b.PartySize < 1 {
		return errors.New("party size must be at least 1")
	}
	if !b.EndTime.After(b.StartTime) {
		return errors.New("end time must be after start time")
	}

	table, err := s.repo.GetTable(ctx, b.TableID)
	if err != nil {
		return err
	}
	if table.Status != TableActive {
		return ErrTableUnavailable
	}
	if b.PartySize > table.Seats {
		return ErrPartyTooLarge
	}

	conflicts, err := s.repo.ListBookingsForTable(ctx, b.TableID, b.StartTime, b.EndTime)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return ErrTimeConflict
	}

	b.Status = BookingConfirmed
	return s.repo.CreateBooking(ctx, b)
}

func (s *Service) ListByDay(ctx context.Context, day time.Time) ([]*Booking, error) {
	return s.repo.ListBookingsByDay(ctx, day)
}

func (s *Service) Cancel(ctx context.Context, id int) error {
	if _, err := s.repo.GetBooking(ctx, id); err != nil {
		return err
	}
	return s.repo.UpdateBookingStatus(ctx, id, BookingCancelled)
}
