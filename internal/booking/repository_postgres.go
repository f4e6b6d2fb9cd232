package booking

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Tables
// --------------------------------------------------

func (r *PostgresRepository) CreateTable(ctx context.Context, t *Table) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO dining_tables (name, floor, seats, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, t.Name, t.Floor, t.Seats, t.Status).Scan(&t.ID)
}

func (r *PostgresRepository) GetTable(ctx context.Context, id int) (*Table, error) {
	var t Table
	err := r.db.QueryRow(ctx, `
		SELECT id, name, floor, seats, status
		FROM dining_tables
		WHERE id = $1
	`, id).Scan(&t.ID, &t.Name, &t.Floor, &t.Seats, &t.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PostgresRepository) ListTables(ctx context.Context) ([]*Table, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, floor, seats, status
		FROM dining_tables
		ORDER BY floor, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []*Table
	for rows.Next() {
		var t Table
		if err := rows.Scan(&t.ID, &t.Name, &t.Floor, &t.Seats, &t.Status); err != nil {
			return nil, err
		}
		tables = append(tables, &t)
	}
	return tables, rows.Err()
}

func (r *PostgresRepository) UpdateTable(ctx context.Context, t *Table) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE dining_tables
		SET name = $1, floor = $2, seats = $3, status = $4
		WHERE id = $5
	`, t.Name, t.Floor, t.Seats, t.Status, t.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteTable(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM dining_tables WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *PostgresRepository) CreateBooking(ctx context.Context, b *Booking) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO bookings (
			table_id, guest_name, guest_phone, party_size,
			start_time, end_time, note, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`,
		b.TableID, b.GuestName, b.GuestPhone, b.PartySize,
		b.StartTime, b.EndTime, b.Note, b.Status,
	).Scan(&b.ID)
}

func (r *PostgresRepository) GetBooking(ctx context.Context, id int) (*Booking, error) {
	var b Booking
	err := r.db.QueryRow(ctx, `
		SELECT id, table_id, guest_name, guest_phone, party_size,
		       start_time, end_time, note, status
		FROM bookings
		WHERE id = $1
	`, id).Scan(
		&b.ID, &b.TableID, &b.GuestName, &b.GuestPhone, &b.PartySize,
		&b.StartTime, &b.EndTime, &b.Note, &b.Status,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PostgresRepository) ListBookingsForTable(ctx context.Context, tableID int, start, end time.Time) ([]*Booking, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, table_id, guest_name, guest_phone, party_size,
		       start_time, end_time, note, status
		FROM bookings
		WHERE table_id = $1
		  AND status != 'CANCELLED'
		  AND start_time < $3
		  AND end_time > $2
		ORDER BY start_time
	`, tableID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *PostgresRepository) ListBookingsByDay(ctx context.Context, day time.Time) ([]*Booking, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	rows, err := r.db.Query(ctx, `
		SELECT id, table_id, guest_name, guest_phone, party_size,
		       start_time, end_time, note, status
		FROM bookings
		WHERE start_time >= $1 AND start_time < $2
		ORDER BY start_time
	`, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func scanBookings(rows pgx.Rows) ([]*Booking, error) {
	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.TableID, &b.GuestName, &b.GuestPhone, &b.PartySize,
			&b.StartTime, &b.EndTime, &b.Note, &b.Status,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, &b)
	}
	return bookings, rows.Err()
}

func (r *PostgresRepository) UpdateBookingStatus(ctx context.Context, id int, status BookingStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings SET status = $1 WHERE id = $2
	`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
