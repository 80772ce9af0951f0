package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesFilter acota una consulta de ventas por fechas y categoría.
// OrderBy admite "qty" o "revenue" (default revenue) en SalesByProduct.
type SalesFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	OrderBy   string
	Limit     int
}

// SalesByProductResult ventas agregadas de un producto.
type SalesByProductResult struct {
	ProductID    int64
	Name         string
	TotalQty     int64
	TotalRevenue decimal.Decimal
}

// SalesTrendPoint ventas agregadas de un día.
type SalesTrendPoint struct {
	Date         string // YYYY-MM-DD
	SalesCount   int64
	TotalRevenue decimal.Decimal
}

// SalesTotalsResult totales globales del período.
type SalesTotalsResult struct {
	TotalUnits   int64
	TotalRevenue decimal.Decimal
}

// TopProductResult producto rankeado por ingreso.
type TopProductResult struct {
	ProductID    int64
	SKU          string
	Name         string
	Category     string
	TotalQty     int64
	TotalRevenue decimal.Decimal
}

// ProfitabilityResult ingreso y costo unitario por producto para el reporte de
// rentabilidad. El margen se deriva en la capa de reportes.
type ProfitabilityResult struct {
	ProductID    int64
	SKU          string
	Name         string
	UnitCost     decimal.Decimal
	TotalQty     int64
	TotalRevenue decimal.Decimal
}

// FinancialSummaryResult ingresos por ventas, otros ingresos y egresos de caja.
type FinancialSummaryResult struct {
	SalesIncome decimal.Decimal
	OtherIncome decimal.Decimal
	Expense     decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura sobre ventas, caja y stock.
// Nunca muta estado: consume la proyección de saldos y los registros de venta.
type AnalyticsRepository interface {
	SalesByProduct(ctx context.Context, f SalesFilter) ([]SalesByProductResult, error)
	SalesTrend(ctx context.Context, days int) ([]SalesTrendPoint, error)
	SalesTotals(ctx context.Context, f SalesFilter) (SalesTotalsResult, error)
	TopProducts(ctx context.Context, limit int) ([]TopProductResult, error)
	Profitability(ctx context.Context) ([]ProfitabilityResult, error)
	FinancialSummary(ctx context.Context, from, to *time.Time) (FinancialSummaryResult, error)
}
