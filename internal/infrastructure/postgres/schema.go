package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentencias de esquema. Se ejecutan en cada arranque; CREATE TABLE IF NOT
// EXISTS las hace idempotentes.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		fullname TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		sku TEXT UNIQUE,
		name TEXT NOT NULL,
		sale_price NUMERIC(12,2),
		cost_price NUMERIC(12,2),
		brand TEXT,
		category TEXT,
		presentation TEXT,
		flavor TEXT,
		weight TEXT,
		image_path TEXT,
		expiry_date TEXT,
		lot_number TEXT,
		min_stock BIGINT,
		max_stock BIGINT,
		location TEXT,
		status TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS stock_movements (
		id BIGSERIAL PRIMARY KEY,
		product_id BIGINT NOT NULL,
		type TEXT NOT NULL CHECK (type IN ('ingreso', 'egreso')),
		quantity BIGINT NOT NULL CHECK (quantity > 0),
		note TEXT,
		created_by BIGINT REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_movements_product ON stock_movements (product_id)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id BIGSERIAL PRIMARY KEY,
		product_id BIGINT NOT NULL,
		quantity BIGINT NOT NULL CHECK (quantity > 0),
		sale_price NUMERIC(12,2) NOT NULL,
		discount NUMERIC(12,2),
		channel TEXT,
		sale_date DATE NOT NULL,
		created_by BIGINT REFERENCES users(id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_product ON sales (product_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales (sale_date)`,
	`CREATE TABLE IF NOT EXISTS cash_movements (
		id BIGSERIAL PRIMARY KEY,
		movement_type TEXT NOT NULL CHECK (movement_type IN ('ingreso', 'egreso')),
		amount NUMERIC(12,2) NOT NULL CHECK (amount > 0),
		category TEXT,
		description TEXT,
		movement_date DATE NOT NULL,
		created_by BIGINT REFERENCES users(id)
	)`,
}

// Migrate crea las tablas si no existen. No hay movimientos de esquema
// destructivos: el historial de stock y las ventas nunca se reescriben.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
