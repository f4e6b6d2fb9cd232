package catalog

import (
	"context"
	"errors"

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
// Products
// --------------------------------------------------

func (r *PostgresRepository) CreateProduct(ctx context.Context, p *Product) error {
	query := `
		INSERT INTO products (name, description, image, price, available)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query,
		p.Name, p.Description, p.Image, p.Price, p.Available,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *PostgresRepository) GetProduct(ctx context.Context, id int) (*Product, error) {
	query := `
		SELECT id, name, description, image, price, available, created_at
		FROM products
		WHERE id = $1
	`
	var p Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Image, &p.Price, &p.Available, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) ListProducts(ctx context.Context) ([]*Product, error) {
	query := `
		SELECT id, name, description, image, price, available, created_at
		FROM products
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Image, &p.Price, &p.Available, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}

func (r *PostgresRepository) UpdateProduct(ctx context.Context, p *Product) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, image = $3, price = $4, available = $5
		WHERE id = $6
	`
	tag, err := r.db.Exec(ctx, query,
		p.Name, p.Description, p.Image, p.Price, p.Available, p.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteProduct(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Variants
// --------------------------------------------------

func (r *PostgresRepository) CreateVariant(ctx context.Context, v *Variant) error {
	query := `
		INSERT INTO product_variants (product_id, name, price, effective_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query,
		v.ProductID, v.Name, v.Price, v.EffectivePrice,
	).Scan(&v.ID)
}

func (r *PostgresRepository) GetVariant(ctx context.Context, id int) (*Variant, error) {
	query := `
		SELECT id, product_id, name, price, effective_price
		FROM product_variants
		WHERE id = $1
	`
	var v Variant
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.ProductID, &v.Name, &v.Price, &v.EffectivePrice,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *PostgresRepository) ListVariants(ctx context.Context, productID int) ([]*Variant, error) {
	query := `
		SELECT id, product_id, name, price, effective_price
		FROM product_variants
		WHERE product_id = $1
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var variants []*Variant
	for rows.Next() {
		var v Variant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Name, &v.Price, &v.EffectivePrice); err != nil {
			return nil, err
		}
		variants = append(variants, &v)
	}
	return variants, rows.Err()
}

func (r *PostgresRepository) DeleteVariant(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM product_variants WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Combos
// --------------------------------------------------

func (r *PostgresRepository) CreateCombo(ctx context.Context, cb *Combo) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO food_combos (name, description, image, price, effective_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, cb.Name, cb.Description, cb.Image, cb.Price, cb.EffectivePrice).Scan(&cb.ID)
	if err != nil {
		return err
	}

	for _, item := range cb.Items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO combo_items (combo_id, product_id, product_name, quantity)
			VALUES ($1, $2, $3, $4)
		`, cb.ID, item.ProductID, item.ProductName, item.Quantity); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) GetCombo(ctx context.Context, id int) (*Combo, error) {
	var cb Combo
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, image, price, effective_price
		FROM food_combos
		WHERE id = $1
	`, id).Scan(&cb.ID, &cb.Name, &cb.Description, &cb.Image, &cb.Price, &cb.EffectivePrice)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT product_id, product_name, quantity
		FROM combo_items
		WHERE combo_id = $1
		ORDER BY id
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item ComboProduct
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity); err != nil {
			return nil, err
		}
		cb.Items = append(cb.Items, item)
	}
	return &cb, rows.Err()
}

func (r *PostgresRepository) ListCombos(ctx context.Context) ([]*Combo, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, image, price, effective_price
		FROM food_combos
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var combos []*Combo
	for rows.Next() {
		var cb Combo
		if err := rows.Scan(&cb.ID, &cb.Name, &cb.Description, &cb.Image, &cb.Price, &cb.EffectivePrice); err != nil {
			return nil, err
		}
		combos = append(combos, &cb)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, cb := range combos {
		full, err := r.GetCombo(ctx, cb.ID)
		if err != nil {
			return nil, err
		}
		cb.Items = full.Items
	}
	return combos, nil
}

func (r *PostgresRepository) DeleteCombo(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM food_combos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Tags
// --------------------------------------------------

func (r *PostgresRepository) CreateTag(ctx context.Context, t *Tag) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO menu_tags (name, color)
		VALUES ($1, $2)
		RETURNING id
	`, t.Name, t.Color).Scan(&t.ID)
}

func (r *PostgresRepository) ListTags(ctx context.Context) ([]*Tag, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, color FROM menu_tags ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*Tag
	for rows.Next() {
		var t Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color); err != nil {
			return nil, err
		}
		tags = append(tags, &t)
	}
	return tags, rows.Err()
}

func (r *PostgresRepository) DeleteTag(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM menu_tags WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) AssignTag(ctx context.Context, productID, tagID int) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO product_tags (product_id, tag_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, productID, tagID)
	return err
}

func (r *PostgresRepository) UnassignTag(ctx context.Context, productID, tagID int) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM product_tags WHERE product_id = $1 AND tag_id = $2
	`, productID, tagID)
	return err
}

func (r *PostgresRepository) ListProductTags(ctx context.Context, productID int) ([]*Tag, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.id, t.name, t.color
		FROM menu_tags t
		JOIN product_tags pt ON pt.tag_id = t.id
		WHERE pt.product_id = $1
		ORDER BY t.name
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*Tag
	for rows.Next() {
		var t Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color); err != nil {
			return nil, err
		}
		tags = append(tags, &t)
	}
	return tags, rows.Err()
}
