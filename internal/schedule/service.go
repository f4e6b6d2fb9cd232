package schedule

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"
)

var (
	ErrAlreadyDecided = errors.New("leave request already decided")
	ErrStaffOnLeave   = errors.New("staff member has approved leave that day")
)

var clockRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Shifts
// --------------------------------------------------

// CreateShift schedules a working block. Scheduling onto a day covered by an
// approved leave is rejected.
func (s *Service) CreateShift(ctx context.Context, shift *Shift) error {
	if shift.StaffID == "" {
		return errors.New("staff id is required")
	}
	if !clockRe.MatchString(shift.StartTime) || !clockRe.MatchString(shift.EndTime) {
		return errors.New("start and end time must be HH:MM")
	}
	if shift.EndTime <= shift.StartTime {
		return errors.New("end time must be after start time")
	}

	approved, err := s.repo.ListLeave(ctx, LeaveApproved)
	if err != nil {
		return err
	}
	for _, l := range approved {
		if l.StaffID == shift.StaffID && l.Covers(shift.Day) {
			return fmt.Errorf("%w: %s", ErrStaffOnLeave, shift.Day.Format("2006-01-02"))
		}
	}

	return s.repo.CreateShift(ctx, shift)
}

func (s *Service) ListShiftsByDay(ctx context.Context, day time.Time) ([]*Shift, error) {
	return s.repo.ListShiftsByDay(ctx, day)
}

func (s *Service) ListShiftsByStaff(ctx context.Context, staffID string) ([]*Shift, error) {
	return s.repo.ListShiftsByStaff(ctx, staffID)
}

func (s *Service) DeleteShift(ctx context.Context, id int) error {
	return s.repo.DeleteShift(ctx, id)
}

// --------------------------------------------------
// Leave
// --------------------------------------------------

func (s *Service) RequestLeave(ctx context.Context, l *LeaveRequest) error {
	if l.StaffID == "" {
		return errors.New("staff id is required")
	}
	if l.EndDate.Before(l.StartDate) {
		return errors.New("end date must not be before start date")
	}
	l.Status = LeavePending
	l.DecidedBy = ""
	return s.repo.CreateLeave(ctx, l)
}

func (s *Service) ListLeave(ctx context.Context, status LeaveStatus) ([]*LeaveRequest, error) {
	return s.repo.ListLeave(ctx, status)
}

// DecideLeave approves or rejects a pending request. Decisions are final.
func (s *Service) DecideLeave(ctx context.Context, id int, approve bool, adminID string) (*LeaveRequest, error) {
	l, err := s.repo.GetLeave(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.Status != LeavePending {
		return nil, ErrAlreadyDecided
	}

	if approve {
		l.Status = LeaveApproved
	} else {
		l.Status = LeaveRejected
	}
	l.DecidedBy = adminID

	if err := s.repo.UpdateLeave(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// DayConflicts lists staff who are both scheduled and on approved leave for
// the given day, for the roster screen.
func (s *Service) DayConflicts(ctx context.Context, day time.Time) ([]string, error) {
	shifts, err := s.repo.ListShiftsByDay(ctx, day)
	if err != nil {
		return nil, err
	}
	approved, err := s.repo.ListLeave(ctx, LeaveApproved)
	if err != nil {
		return nil, err
	}

	onLeave := make(map[string]bool)
	for _, l := range approved {
		if l.Covers(day) {
			onLeave[l.StaffID] = true
		}
	}

	seen := make(map[string]bool)
	var conflicted []string
	for _, shift := range shifts {
		if onLeave[shift.StaffID] && !seen[shift.StaffID] {
			seen[shift.StaffID] = true
			conflicted = append(conflicted, shift.StaffID)
		}
	}
	return conflicted, nil
}
