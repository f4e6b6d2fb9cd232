package booking

import "time"

type TableStatus string

const (
	TableActive      TableStatus = "ACTIVE"
	TableOutOfService TableStatus = "OUT_OF_SERVICE"
)

// Table is one physical table on a floor.
type Table struct {
	ID     int         `json:"id"`
	Name   string      `json:"name"`
	Floor  string      `json:"floor"`
	Seats  int         `json:"seats"`
	Status TableStatus `json:"status"`
}

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Booking reserves a table for a guest over a time window.
type Booking struct {
	ID         int           `json:"id"`
	TableID    int           `json:"table_id"`
	GuestName  string        `json:"guest_name"`
	GuestPhone string        `json:"guest_phone"`
	PartySize  int           `json:"party_size"`
	StartTime  time.Time     `json:"start_time"`
	EndTime    time.Time     `json:"end_time"`
	Note       string        `json:"note,omitempty"`
	Status     BookingStatus `json:"status"`
}

// Overlaps reports whether two half-open time windows intersect.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && start.Before(b.EndTime)
}
