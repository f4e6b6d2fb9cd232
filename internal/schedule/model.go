package schedule

import "time"

// Shift is one working block for a staff member on a given day.
type Shift struct {
	ID        int       `json:"id"`
	StaffID   string    `json:"staff_id"`
	Day       time.Time `json:"day"`
	StartTime string    `json:"start_time"` // "HH:MM"
	EndTime   string    `json:"end_time"`
	Role      string    `json:"role,omitempty"`
}

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "PENDING"
	LeaveApproved LeaveStatus = "APPROVED"
	LeaveRejected LeaveStatus = "REJECTED"
)

// LeaveRequest covers the days [StartDate, EndDate] inclusive.
type LeaveRequest struct {
	ID        int         `json:"id"`
	StaffID   string      `json:"staff_id"`
	StartDate time.Time   `json:"start_date"`
	EndDate   time.Time   `json:"end_date"`
	Reason    string      `json:"reason,omitempty"`
	Status    LeaveStatus `json:"status"`
	DecidedBy string      `json:"decided_by,omitempty"`
}

// Covers reports whether the leave spans the given day.
func (l *LeaveRequest) Covers(day time.Time) bool {
	d := truncateDay(day)
	return !d.Before(truncateDay(l.StartDate)) && !d.After(truncateDay(l.EndDate))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
