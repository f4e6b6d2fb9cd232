package booking

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTable(t *testing.T, service *Service, seats int) *Table {
	t.Helper()
	table := &Table{Name: "T1", Floor: "Ground", Seats: seats}
	if err := service.CreateTable(context.Background(), table); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return table
}

func at(hour int) time.Time {
	return time.Date(2026, 9, 1, hour, 0, 0, 0, time.UTC)
}

func TestBookRejectsOverlap(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	table := newTable(t, service, 4)
	ctx := context.Background()

	first := &Booking{
		TableID: table.ID, GuestName: "Linh", PartySize: 2,
		StartTime: at(18), EndTime: at(20),
	}
	if err := service.Book(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Status != BookingConfirmed {
		t.Fatalf("expected CONFIRMED, got %s", first.Status)
	}

	overlapping := &Booking{
		TableID: table.ID, GuestName: "Minh", PartySize: 2,
		StartTime: at(19), EndTime: at(21),
	}
	if err := service.Book(ctx, overlapping); !errors.Is(err, ErrTimeConflict) {
		t.Fatalf("expected ErrTimeConflict, got %v", err)
	}

	// back-to-back windows do not overlap
	adjacent := &Booking{
		TableID: table.ID, GuestName: "Minh", PartySize: 2,
		StartTime: at(20), EndTime: at(22),
	}
	if err := service.Book(ctx, adjacent); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBookAfterCancelSucceeds(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	table := newTable(t, service, 4)
	ctx := context.Background()

	b := &Booking{
		TableID: table.ID, GuestName: "Linh", PartySize: 2,
		StartTime: at(18), EndTime: at(20),
	}
	if err := service.Book(ctx, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := service.Cancel(ctx, b.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	again := &Booking{
		TableID: table.ID, GuestName: "Minh", PartySize: 2,
		StartTime: at(18), EndTime: at(20),
	}
	if err := service.Book(ctx, again); err != nil {
		t.Fatalf("cancelled booking must not block the slot: %v", err)
	}
}

func TestBookValidations(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	table := newTable(t, service, 2)
	ctx := context.Background()

	cases := []struct {
		name string
		b    *Booking
		want error
	}{
		{
			"party too large",
			&Booking{TableID: table.ID, GuestName: "A", PartySize: 5, StartTime: at(18), EndTime: at(20)},
			ErrPartyTooLarge,
		},
		{
			"unknown table",
			&Booking{TableID: 99, GuestName: "A", PartySize: 2, StartTime: at(18), EndTime: at(20)},
			ErrNotFound,
		},
	}
	for _, tc := range cases {
		if err := service.Book(ctx, tc.b); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	noName := &Booking{TableID: table.ID, PartySize: 2, StartTime: at(18), EndTime: at(20)}
	if err := service.Book(ctx, noName); err == nil {
		t.Fatalf("expected error for missing guest name")
	}

	backwards := &Booking{TableID: table.ID, GuestName: "A", PartySize: 2, StartTime: at(20), EndTime: at(18)}
	if err := service.Book(ctx, backwards); err == nil {
		t.Fatalf("expected error for inverted window")
	}
}

func TestBookRejectsOutOfServiceTable(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	table := newTable(t, service, 4)
	ctx := context.Background()

	table.Status = TableOutOfService
	if err := service.UpdateTable(ctx, table); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b := &Booking{TableID: table.ID, GuestName: "A", PartySize: 2, StartTime: at(18), EndTime: at(20)}
	if err := service.Book(ctx, b); !errors.Is(err, ErrTableUnavailable) {
		t.Fatalf("expected ErrTableUnavailable, got %v", err)
	}
}

func TestListByDay(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	table := newTable(t, service, 4)
	ctx := context.Background()

	today := &Booking{TableID: table.ID, GuestName: "A", PartySize: 2, StartTime: at(18), EndTime: at(20)}
	tomorrow := &Booking{
		TableID: table.ID, GuestName: "B", PartySize: 2,
		StartTime: at(18).Add(24 * time.Hour), EndTime: at(20).Add(24 * time.Hour),
	}
	for _, b := range []*Booking{today, tomorrow} {
		if err := service.Book(ctx, b); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got, err := service.ListByDay(ctx, at(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].GuestName != "A" {
		t.Fatalf("expected only today's booking, got %+v", got)
	}
}
