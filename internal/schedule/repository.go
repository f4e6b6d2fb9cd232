package schedule

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("shift or leave request not found")

// Repository defines all database operations for staff scheduling.
type Repository interface {
	CreateShift(ctx context.Context, s *Shift) error
	ListShiftsByDay(ctx context.Context, day time.Time) ([]*Shift, error)
	ListShiftsByStaff(ctx context.Context, staffID string) ([]*Shift, error)
	DeleteShift(ctx context.Context, id int) error

	CreateLeave(ctx context.Context, l *LeaveRequest) error
	GetLeave(ctx context.Context, id int) (*LeaveRequest, error)
	ListLeave(ctx context.Context, status LeaveStatus) ([]*LeaveRequest, error)
	UpdateLeave(ctx context.Context, l *LeaveRequest) error
}
