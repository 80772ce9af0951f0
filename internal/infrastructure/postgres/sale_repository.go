package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/vitasport-api/internal/domain/entity"
	"github.com/jhoicas/vitasport-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo ventas sobre PostgreSQL (usable con pool o tx). Las ventas son
// inmutables: solo INSERT y SELECT.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta y devuelve el id asignado por el store.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) (int64, error) {
	query := `
		INSERT INTO sales (product_id, quantity, sale_price, discount, channel, sale_date, created_by)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		s.ProductID, s.Quantity, s.SalePrice, s.Discount, s.Channel, s.SaleDate, s.CreatedBy,
	).Scan(&s.ID)
	if err != nil {
		return 0, fmt.Errorf("insert sale: %w", err)
	}
	return s.ID, nil
}

// List lista las últimas ventas, más recientes primero.
func (r *SaleRepo) List(ctx context.Context, limit int) ([]*entity.Sale, error) {
	query := `
		SELECT id, product_id, quantity, sale_price, discount, COALESCE(channel, ''), sale_date, created_by
		FROM sales
		ORDER BY sale_date DESC, id DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}
	return r.scanSales(ctx, query, args...)
}

// ListByDateRange lista ventas por rango de fechas; from/to nil = sin límite
// por ese extremo.
func (r *SaleRepo) ListByDateRange(ctx context.Context, from, to *time.Time) ([]*entity.Sale, error) {
	query := `
		SELECT id, product_id, quantity, sale_price, discount, COALESCE(channel, ''), sale_date, created_by
		FROM sales
		WHERE ($1::date IS NULL OR sale_date >= $1)
		  AND ($2::date IS NULL OR sale_date <= $2)
		ORDER BY sale_date DESC, id DESC`
	return r.scanSales(ctx, query, from, to)
}

func (r *SaleRepo) scanSales(ctx context.Context, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.SalePrice, &s.Discount, &s.Channel, &s.SaleDate, &s.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
