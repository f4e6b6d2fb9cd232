package order

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// customizations are stored as a single text column; '\x1f' cannot appear in
// user input after normalization at the HTTP layer
const customizationsSep = "\x1f"

func (r *PostgresRepository) Create(ctx context.Context, o *Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (guest_name, table_id, status, total)
		VALUES ($1, NULLIF($2, 0), $3, $4)
		RETURNING id, created_at
	`, o.GuestName, o.TableID, o.Status, o.Total).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return err
	}

	for i := range o.Lines {
		line := &o.Lines[i]
		line.OrderID = o.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO order_lines (
				order_id, kind, display_name, unit_price, quantity,
				notes, customizations, product_id, variant_id, combo_id
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, 0), NULLIF($9, 0), NULLIF($10, 0))
			RETURNING id
		`,
			o.ID, line.Kind, line.DisplayName, line.UnitPrice, line.Quantity,
			line.Notes, strings.Join(line.Customizations, customizationsSep),
			line.ProductID, line.VariantID, line.ComboID,
		).Scan(&line.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) Get(ctx context.Context, id int) (*Order, error) {
	var o Order
	var tableID *int
	err := r.db.QueryRow(ctx, `
		SELECT id, guest_name, table_id, status, total, created_at
		FROM orders
		WHERE id = $1
	`, id).Scan(&o.ID, &o.GuestName, &tableID, &o.Status, &o.Total, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if tableID != nil {
		o.TableID = *tableID
	}

	lines, err := r.lines(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return &o, nil
}

func (r *PostgresRepository) lines(ctx context.Context, orderID int) ([]OrderLine, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, kind, display_name, unit_price, quantity,
		       notes, customizations,
		       COALESCE(product_id, 0), COALESCE(variant_id, 0), COALESCE(combo_id, 0)
		FROM order_lines
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []OrderLine
	for rows.Next() {
		var line OrderLine
		var customizations string
		if err := rows.Scan(
			&line.ID, &line.OrderID, &line.Kind, &line.DisplayName,
			&line.UnitPrice, &line.Quantity, &line.Notes, &customizations,
			&line.ProductID, &line.VariantID, &line.ComboID,
		); err != nil {
			return nil, err
		}
		if customizations != "" {
			line.Customizations = strings.Split(customizations, customizationsSep)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *PostgresRepository) List(ctx context.Context, status Status) ([]*Order, error) {
	query := `
		SELECT id, guest_name, table_id, status, total, created_at
		FROM orders
	`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		var o Order
		var tableID *int
		if err := rows.Scan(&o.ID, &o.GuestName, &tableID, &o.Status, &o.Total, &o.CreatedAt); err != nil {
			return nil, err
		}
		if tableID != nil {
			o.TableID = *tableID
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, o := range orders {
		lines, err := r.lines(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		o.Lines = lines
	}
	return orders, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int, status Status) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders SET status = $1 WHERE id = $2
	`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
