package booking

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("booking or table not found")

// Repository defines all database operations for tables and bookings.
type Repository interface {

	// -------------------------------
	// Tables
	// -------------------------------
	CreateTable(ctx context.Context, t *Table) error
	GetTable(ctx context.Context, id int) (*Table, error)
	ListTables(ctx context.Context) ([]*Table, error)
	UpdateTable(ctx context.Context, t *Table) error
	DeleteTable(ctx context.Context, id int) error

	// -------------------------------
	// Bookings
	// -------------------------------
	CreateBooking(ctx context.Context, b *Booking) error
	GetBooking(ctx context.Context, id int) (*Booking, error)

	// ListBookingsForTable returns non-cancelled bookings for a table that
	// intersect [start, end).
	ListBookingsForTable(ctx context.Context, tableID int, start, end time.Time) ([]*Booking, error)

	// ListBookingsByDay returns all bookings starting within the given day.
	ListBookingsByDay(ctx context.Context, day time.Time) ([]*Booking, error)

	UpdateBookingStatus(ctx context.Context, id int, status BookingStatus) error
}
