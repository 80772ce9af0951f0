package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/vitasport-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura sobre PostgreSQL.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// SalesByProduct agrega unidades e ingreso por producto, con filtros opcionales
// de fechas y categoría. El descuento se resta del ingreso bruto.
func (r *AnalyticsRepo) SalesByProduct(ctx context.Context, f repository.SalesFilter) ([]repository.SalesByProductResult, error) {
	order := "total_revenue DESC"
	if f.OrderBy == "qty" {
		order = "total_qty DESC"
	}
	query := fmt.Sprintf(`
		SELECT p.id, p.name,
			COALESCE(SUM(s.quantity), 0) AS total_qty,
			COALESCE(SUM(s.quantity * s.sale_price - COALESCE(s.discount, 0)), 0) AS total_revenue
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE ($1::date IS NULL OR s.sale_date >= $1)
		  AND ($2::date IS NULL OR s.sale_date <= $2)
		  AND ($3 = '' OR p.category = $3)
		GROUP BY p.id, p.name
		ORDER BY %s
		LIMIT $4`, order)
	rows, err := r.pool.Query(ctx, query, f.StartDate, f.EndDate, f.Category, f.Limit)
	if err != nil {
		return nil, fmt.Errorf("sales by product: %w", err)
	}
	defer rows.Close()
	var out []repository.SalesByProductResult
	for rows.Next() {
		var res repository.SalesByProductResult
		if err := rows.Scan(&res.ProductID, &res.Name, &res.TotalQty, &res.TotalRevenue); err != nil {
			return nil, fmt.Errorf("scan sales by product: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// SalesTrend devuelve una serie diaria de los últimos N días. Los días sin
// ventas aparecen con cero gracias a generate_series.
func (r *AnalyticsRepo) SalesTrend(ctx context.Context, days int) ([]repository.SalesTrendPoint, error) {
	query := `
		SELECT to_char(d.day, 'YYYY-MM-DD'),
			COALESCE(COUNT(s.id), 0),
			COALESCE(SUM(s.quantity * s.sale_price - COALESCE(s.discount, 0)), 0)
		FROM generate_series(CURRENT_DATE - ($1::int - 1), CURRENT_DATE, interval '1 day') AS d(day)
		LEFT JOIN sales s ON s.sale_date = d.day::date
		GROUP BY d.day
		ORDER BY d.day`
	rows, err := r.pool.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("sales trend: %w", err)
	}
	defer rows.Close()
	var out []repository.SalesTrendPoint
	for rows.Next() {
		var p repository.SalesTrendPoint
		if err := rows.Scan(&p.Date, &p.SalesCount, &p.TotalRevenue); err != nil {
			return nil, fmt.Errorf("scan sales trend: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// SalesTotals suma unidades e ingreso del período, acotado opcionalmente a una
// categoría de producto.
func (r *AnalyticsRepo) SalesTotals(ctx context.Context, f repository.SalesFilter) (repository.SalesTotalsResult, error) {
	query := `
		SELECT COALESCE(SUM(s.quantity), 0),
			COALESCE(SUM(s.quantity * s.sale_price - COALESCE(s.discount, 0)), 0)
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE ($1::date IS NULL OR s.sale_date >= $1)
		  AND ($2::date IS NULL OR s.sale_date <= $2)
		  AND ($3 = '' OR p.category = $3)`
	var res repository.SalesTotalsResult
	if err := r.pool.QueryRow(ctx, query, f.StartDate, f.EndDate, f.Category).Scan(&res.TotalUnits, &res.TotalRevenue); err != nil {
		return res, fmt.Errorf("sales totals: %w", err)
	}
	return res, nil
}

// TopProducts ranking histórico por ingreso.
func (r *AnalyticsRepo) TopProducts(ctx context.Context, limit int) ([]repository.TopProductResult, error) {
	query := `
		SELECT p.id, COALESCE(p.sku, ''), p.name, COALESCE(p.category, ''),
			SUM(s.quantity) AS total_qty,
			SUM(s.quantity * s.sale_price - COALESCE(s.discount, 0)) AS total_revenue
		FROM sales s
		JOIN products p ON p.id = s.product_id
		GROUP BY p.id, p.sku, p.name, p.category
		ORDER BY total_revenue DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var out []repository.TopProductResult
	for rows.Next() {
		var res repository.TopProductResult
		if err := rows.Scan(&res.ProductID, &res.SKU, &res.Name, &res.Category, &res.TotalQty, &res.TotalRevenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// Profitability ingreso y costo unitario por producto vendido.
func (r *AnalyticsRepo) Profitability(ctx context.Context) ([]repository.ProfitabilityResult, error) {
	query := `
		SELECT p.id, COALESCE(p.sku, ''), p.name, COALESCE(p.cost_price, 0),
			SUM(s.quantity) AS total_qty,
			SUM(s.quantity * s.sale_price - COALESCE(s.discount, 0)) AS total_revenue
		FROM sales s
		JOIN products p ON p.id = s.product_id
		GROUP BY p.id, p.sku, p.name, p.cost_price
		ORDER BY total_revenue DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("profitability: %w", err)
	}
	defer rows.Close()
	var out []repository.ProfitabilityResult
	for rows.Next() {
		var res repository.ProfitabilityResult
		if err := rows.Scan(&res.ProductID, &res.SKU, &res.Name, &res.UnitCost, &res.TotalQty, &res.TotalRevenue); err != nil {
			return nil, fmt.Errorf("scan profitability: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// FinancialSummary ingresos por ventas, otros ingresos de caja y egresos de
// caja en el período.
func (r *AnalyticsRepo) FinancialSummary(ctx context.Context, from, to *time.Time) (repository.FinancialSummaryResult, error) {
	var res repository.FinancialSummaryResult
	salesQuery := `
		SELECT COALESCE(SUM(quantity * sale_price - COALESCE(discount, 0)), 0)
		FROM sales
		WHERE ($1::date IS NULL OR sale_date >= $1)
		  AND ($2::date IS NULL OR sale_date <= $2)`
	if err := r.pool.QueryRow(ctx, salesQuery, from, to).Scan(&res.SalesIncome); err != nil {
		return res, fmt.Errorf("financial summary sales: %w", err)
	}
	cashQuery := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE movement_type = 'ingreso'), 0),
			COALESCE(SUM(amount) FILTER (WHERE movement_type = 'egreso'), 0)
		FROM cash_movements
		WHERE ($1::date IS NULL OR movement_date >= $1)
		  AND ($2::date IS NULL OR movement_date <= $2)`
	if err := r.pool.QueryRow(ctx, cashQuery, from, to).Scan(&res.OtherIncome, &res.Expense); err != nil {
		return res, fmt.Errorf("financial summary cash: %w", err)
	}
	return res, nil
}
