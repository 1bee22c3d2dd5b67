package sqltool

// #region imports
import (
	"context"
	"database/sql"
	"fmt"
)

// #endregion

// #region seed-schema
const seedSchema = `
DROP TABLE IF EXISTS tickets;
DROP TABLE IF EXISTS orders;
DROP TABLE IF EXISTS customers;

CREATE TABLE customers (
	id       INTEGER PRIMARY KEY,
	name     TEXT NOT NULL,
	email    TEXT NOT NULL UNIQUE,
	country  TEXT NOT NULL
);

CREATE TABLE orders (
	id           INTEGER PRIMARY KEY,
	customer_id  INTEGER NOT NULL,
	amount       REAL NOT NULL,
	status       TEXT NOT NULL,
	created_at   TEXT NOT NULL,
	FOREIGN KEY(customer_id) REFERENCES customers(id)
);

CREATE TABLE tickets (
	id           INTEGER PRIMARY KEY,
	customer_id  INTEGER NOT NULL,
	subject      TEXT NOT NULL,
	priority     TEXT NOT NULL,
	status       TEXT NOT NULL,
	created_at   TEXT NOT NULL,
	FOREIGN KEY(customer_id) REFERENCES customers(id)
);
`

// #endregion

// #region seed

// Seed drops and recreates the sample tables with a small fixed dataset.
// The agent only ever reads from these.
func Seed(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, seedSchema); err != nil {
		return fmt.Errorf("seed schema: %w", err)
	}

	customers := [][]any{
		{1, "Ada Okoye", "ada@example.com", "NG"},
		{2, "John Smith", "john@example.com", "US"},
		{3, "Fatima Bello", "fatima@example.com", "NG"},
		{4, "Marie Dubois", "marie@example.com", "FR"},
		{5, "Ken Tanaka", "ken@example.com", "JP"},
	}
	for _, c := range customers {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO customers (id, name, email, country) VALUES (?, ?, ?, ?)`, c...); err != nil {
			return fmt.Errorf("seed customers: %w", err)
		}
	}

	orders := [][]any{
		{1, 1, 120.50, "paid", "2025-12-01"},
		{2, 1, 80.00, "paid", "2025-12-03"},
		{3, 2, 250.00, "paid", "2025-12-02"},
		{4, 3, 35.00, "refunded", "2025-12-04"},
		{5, 4, 400.00, "paid", "2025-12-05"},
		{6, 5, 15.99, "pending", "2025-12-06"},
		{7, 2, 99.99, "paid", "2025-12-07"},
		{8, 3, 210.00, "paid", "2025-12-08"},
	}
	for _, o := range orders {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO orders (id, customer_id, amount, status, created_at) VALUES (?, ?, ?, ?, ?)`, o...); err != nil {
			return fmt.Errorf("seed orders: %w", err)
		}
	}

	tickets := [][]any{
		{1, 1, "Login issue", "high", "open", "2025-12-02"},
		{2, 2, "Billing question", "medium", "closed", "2025-12-03"},
		{3, 3, "Refund status", "high", "open", "2025-12-05"},
		{4, 4, "Change email", "low", "closed", "2025-12-06"},
		{5, 5, "Order delay", "medium", "open", "2025-12-07"},
	}
	for _, tk := range tickets {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO tickets (id, customer_id, subject, priority, status, created_at) VALUES (?, ?, ?, ?, ?, ?)`, tk...); err != nil {
			return fmt.Errorf("seed tickets: %w", err)
		}
	}

	return nil
}

// #endregion
