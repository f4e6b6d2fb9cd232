package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'STAFF',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// CATALOG
	// -------------------------------
	catalogSQL := `
		CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			image VARCHAR(500) NOT NULL DEFAULT '',
			price DOUBLE PRECISION NOT NULL DEFAULT 0,
			available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS product_variants (
			id SERIAL PRIMARY KEY,
			product_id INT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			price DOUBLE PRECISION NOT NULL DEFAULT 0,
			effective_price DOUBLE PRECISION NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS food_combos (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			image VARCHAR(500) NOT NULL DEFAULT '',
			price DOUBLE PRECISION NOT NULL DEFAULT 0,
			effective_price DOUBLE PRECISION NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS combo_items (
			id SERIAL PRIMARY KEY,
			combo_id INT NOT NULL REFERENCES food_combos(id) ON DELETE CASCADE,
			product_id INT NOT NULL,
			product_name VARCHAR(255) NOT NULL,
			quantity INT NOT NULL DEFAULT 1
		);

		CREATE TABLE IF NOT EXISTS menu_tags (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) UNIQUE NOT NULL,
			color VARCHAR(20) NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS product_tags (
			product_id INT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			tag_id INT NOT NULL REFERENCES menu_tags(id) ON DELETE CASCADE,
			PRIMARY KEY (product_id, tag_id)
		);
	`
	if _, err := db.Exec(ctx, catalogSQL); err != nil {
		return err
	}

	// -------------------------------
	// TABLES + BOOKINGS
	// -------------------------------
	bookingSQL := `
		CREATE TABLE IF NOT EXISTS dining_tables (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			floor VARCHAR(100) NOT NULL DEFAULT '',
			seats INT NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'ACTIVE'
		);

		CREATE TABLE IF NOT EXISTS bookings (
			id SERIAL PRIMARY KEY,
			table_id INT NOT NULL REFERENCES dining_tables(id),
			guest_name VARCHAR(255) NOT NULL,
			guest_phone VARCHAR(50) NOT NULL DEFAULT '',
			party_size INT NOT NULL,
			start_time TIMESTAMPTZ NOT NULL,
			end_time TIMESTAMPTZ NOT NULL,
			note TEXT NOT NULL DEFAULT '',
			status VARCHAR(50) NOT NULL DEFAULT 'CONFIRMED',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`
	if _, err := db.Exec(ctx, bookingSQL); err != nil {
		return err
	}

	// -------------------------------
	// ORDERS
	// -------------------------------
	orderSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			guest_name VARCHAR(255) NOT NULL DEFAULT '',
			table_id INT NULL REFERENCES dining_tables(id),
			status VARCHAR(50) NOT NULL DEFAULT 'PENDING',
			total DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS order_lines (
			id SERIAL PRIMARY KEY,
			order_id INT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			kind VARCHAR(50) NOT NULL,
			display_name VARCHAR(255) NOT NULL,
			unit_price DOUBLE PRECISION NOT NULL,
			quantity INT NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			customizations TEXT NOT NULL DEFAULT '',
			product_id INT NULL,
			variant_id INT NULL,
			combo_id INT NULL
		);
	`
	if _, err := db.Exec(ctx, orderSQL); err != nil {
		return err
	}

	// -------------------------------
	// SCHEDULING
	// -------------------------------
	scheduleSQL := `
		CREATE TABLE IF NOT EXISTS shifts (
			id SERIAL PRIMARY KEY,
			staff_id UUID NOT NULL REFERENCES users(id),
			day DATE NOT NULL,
			start_time VARCHAR(5) NOT NULL,
			end_time VARCHAR(5) NOT NULL,
			role VARCHAR(100) NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS leave_requests (
			id SERIAL PRIMARY KEY,
			staff_id UUID NOT NULL REFERENCES users(id),
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			reason TEXT NOT NULL DEFAULT '',
			status VARCHAR(50) NOT NULL DEFAULT 'PENDING',
			decided_by UUID NULL
		);
	`
	if _, err := db.Exec(ctx, scheduleSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
