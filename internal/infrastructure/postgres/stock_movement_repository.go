package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/vitasport-api/internal/domain/entity"
	"github.com/jhoicas/vitasport-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo historial de stock sobre PostgreSQL (usable con pool o
// tx). La tabla es append-only: este adaptador no emite UPDATE ni DELETE.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Append persiste un movimiento; id y created_at los asigna el store.
func (r *StockMovementRepo) Append(ctx context.Context, m *entity.StockMovement) (int64, error) {
	query := `
		INSERT INTO stock_movements (product_id, type, quantity, note, created_by)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		m.ProductID, string(m.Type), m.Quantity, m.Note, m.CreatedBy,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("append stock movement: %w", err)
	}
	return m.ID, nil
}

// ListByProduct lista los movimientos de un producto, más recientes primero.
// limit <= 0 significa sin límite.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID int64, limit int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, type, quantity, COALESCE(note, ''), created_by, created_at
		FROM stock_movements WHERE product_id = $1
		ORDER BY created_at DESC, id DESC`
	args := []any{productID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}
	return r.scanMovements(ctx, query, args...)
}

// List lista los últimos movimientos de todos los productos. limit <= 0
// significa sin límite.
func (r *StockMovementRepo) List(ctx context.Context, limit int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, type, quantity, COALESCE(note, ''), created_by, created_at
		FROM stock_movements
		ORDER BY created_at DESC, id DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}
	return r.scanMovements(ctx, query, args...)
}

// BalanceOf proyecta el saldo de un producto desde el historial completo:
// suma de ingresos menos suma de egresos. Sin historial devuelve 0.
func (r *StockMovementRepo) BalanceOf(ctx context.Context, productID int64) (int64, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN type = 'ingreso' THEN quantity
		                         WHEN type = 'egreso' THEN -quantity
		                         ELSE 0 END), 0)
		FROM stock_movements WHERE product_id = $1`
	var balance int64
	if err := r.q.QueryRow(ctx, query, productID).Scan(&balance); err != nil {
		return 0, fmt.Errorf("balance of product: %w", err)
	}
	return balance, nil
}

// AllBalances proyecta el saldo de todos los productos con historial.
func (r *StockMovementRepo) AllBalances(ctx context.Context) (map[int64]int64, error) {
	query := `
		SELECT product_id,
		       COALESCE(SUM(CASE WHEN type = 'ingreso' THEN quantity
		                         WHEN type = 'egreso' THEN -quantity
		                         ELSE 0 END), 0)
		FROM stock_movements
		GROUP BY product_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("all balances: %w", err)
	}
	defer rows.Close()
	balances := make(map[int64]int64)
	for rows.Next() {
		var productID, balance int64
		if err := rows.Scan(&productID, &balance); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		balances[productID] = balance
	}
	return balances, rows.Err()
}

// AcquireProductLock toma un advisory lock transaccional por producto
// (pg_advisory_xact_lock). Se libera solo en Commit/Rollback; mientras tanto
// ninguna otra liquidación del mismo producto puede validar saldo.
func (r *StockMovementRepo) AcquireProductLock(ctx context.Context, productID int64) error {
	if _, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, productID); err != nil {
		return fmt.Errorf("acquire product lock: %w", err)
	}
	return nil
}

func (r *StockMovementRepo) scanMovements(ctx context.Context, query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var (
			m        entity.StockMovement
			movType  string
		)
		if err := rows.Scan(&m.ID, &m.ProductID, &movType, &m.Quantity, &m.Note, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		m.Type = entity.MovementType(movType)
		list = append(list, &m)
	}
	return list, rows.Err()
}
