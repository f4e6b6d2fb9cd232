package schedule

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
// Shifts
// --------------------------------------------------

func (r *PostgresRepository) CreateShift(ctx context.Context, s *Shift) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO shifts (staff_id, day, start_time, end_time, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, s.StaffID, s.Day, s.StartTime, s.EndTime, s.Role).Scan(&s.ID)
}

func (r *PostgresRepository) ListShiftsByDay(ctx context.Context, day time.Time) ([]*Shift, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, staff_id, day, start_time, end_time, role
		FROM shifts
		WHERE day = $1
		ORDER BY start_time
	`, truncateDay(day))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanShifts(rows)
}

func (r *PostgresRepository) ListShiftsByStaff(ctx context.Context, staffID string) ([]*Shift, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, staff_id, day, start_time, end_time, role
		FROM shifts
		WHERE staff_id = $1
		ORDER BY day, start_time
	`, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanShifts(rows)
}

func scanShifts(rows pgx.Rows) ([]*Shift, error) {
	var shifts []*Shift
	for rows.Next() {
		var s Shift
		if err := rows.Scan(&s.ID, &s.StaffID, &s.Day, &s.StartTime, &s.EndTime, &s.Role); err != nil {
			return nil, err
		}
		shifts = append(shifts, &s)
	}
	return shifts, rows.Err()
}

func (r *PostgresRepository) DeleteShift(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Leave
// --------------------------------------------------

func (r *PostgresRepository) CreateLeave(ctx context.Context, l *LeaveRequest) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO leave_requests (staff_id, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, l.StaffID, l.StartDate, l.EndDate, l.Reason, l.Status).Scan(&l.ID)
}

func (r *PostgresRepository) GetLeave(ctx context.Context, id int) (*LeaveRequest, error) {
	var l LeaveRequest
	var decidedBy *string
	err := r.db.QueryRow(ctx, `
		SELECT id, staff_id, start_date, end_date, reason, status, decided_by
		FROM leave_requests
		WHERE id = $1
	`, id).Scan(&l.ID, &l.StaffID, &l.StartDate, &l.EndDate, &l.Reason, &l.Status, &decidedBy)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if decidedBy != nil {
		l.DecidedBy = *decidedBy
	}
	return &l, nil
}

func (r *PostgresRepository) ListLeave(ctx context.Context, status LeaveStatus) ([]*LeaveRequest, error) {
	query := `
		SELECT id, staff_id, start_date, end_date, reason, status, decided_by
		FROM leave_requests
	`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY start_date`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*LeaveRequest
	for rows.Next() {
		var l LeaveRequest
		var decidedBy *string
		if err := rows.Scan(&l.ID, &l.StaffID, &l.StartDate, &l.EndDate, &l.Reason, &l.Status, &decidedBy); err != nil {
			return nil, err
		}
		if decidedBy != nil {
			l.DecidedBy = *decidedBy
		}
		requests = append(requests, &l)
	}
	return requests, rows.Err()
}

func (r *PostgresRepository) UpdateLeave(ctx context.Context, l *LeaveRequest) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE leave_requests
		SET status = $1, decided_by = NULLIF($2, '')
		WHERE id = $3
	`, l.Status, l.DecidedBy, l.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
