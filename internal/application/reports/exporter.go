package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/vitasport-api/internal/domain/repository"
)

// Exporter genera los reportes CSV. Las consultas son de solo lectura; el
// stock actual de cada producto se deriva siempre del historial, nunca de una
// columna cacheada.
type Exporter struct {
	productRepo   repository.ProductRepository
	movRepo       repository.StockMovementRepository
	saleRepo      repository.SaleRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewExporter construye el exportador de reportes.
func NewExporter(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	saleRepo repository.SaleRepository,
	analyticsRepo repository.AnalyticsRepository,
) *Exporter {
	return &Exporter{
		productRepo:   productRepo,
		movRepo:       movRepo,
		saleRepo:      saleRepo,
		analyticsRepo: analyticsRepo,
	}
}

// SalesCSV reporte de ventas, opcionalmente acotado por fechas.
func (e *Exporter) SalesCSV(ctx context.Context, from, to *time.Time) ([]byte, error) {
	sales, err := e.saleRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return renderCSV(
		[]string{"id", "product_id", "quantity", "sale_price", "discount", "channel", "sale_date", "created_by"},
		len(sales),
		func(i int) []string {
			s := sales[i]
			return []string{
				strconv.FormatInt(s.ID, 10),
				strconv.FormatInt(s.ProductID, 10),
				strconv.FormatInt(s.Quantity, 10),
				s.SalePrice.StringFixed(2),
				optDecimal(s.Discount),
				s.Channel,
				s.SaleDate.Format("2006-01-02"),
				optInt(s.CreatedBy),
			}
		},
	)
}

// InventoryCSV catálogo completo con stock actual derivado y margen estimado.
func (e *Exporter) InventoryCSV(ctx context.Context) ([]byte, error) {
	products, err := e.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	balances, err := e.movRepo.AllBalances(ctx)
	if err != nil {
		return nil, err
	}
	return renderCSV(
		[]string{"id", "sku", "name", "sale_price", "cost_price", "brand", "category", "presentation",
			"flavor", "weight", "expiry_date", "lot_number", "min_stock", "max_stock", "location",
			"status", "current_stock", "margin_percent"},
		len(products),
		func(i int) []string {
			p := products[i]
			return []string{
				strconv.FormatInt(p.ID, 10),
				p.SKU,
				p.Name,
				optDecimal(p.SalePrice),
				optDecimal(p.CostPrice),
				p.Brand,
				p.Category,
				p.Presentation,
				p.Flavor,
				p.Weight,
				p.ExpiryDate,
				p.LotNumber,
				optInt(p.MinStock),
				optInt(p.MaxStock),
				p.Location,
				p.Status,
				strconv.FormatInt(balances[p.ID], 10),
				marginPercent(p.SalePrice, p.CostPrice),
			}
		},
	)
}

// TopProductsCSV los 50 productos con mayor ingreso.
func (e *Exporter) TopProductsCSV(ctx context.Context) ([]byte, error) {
	rows, err := e.analyticsRepo.TopProducts(ctx, 50)
	if err != nil {
		return nil, err
	}
	return renderCSV(
		[]string{"product_id", "sku", "name", "category", "total_qty", "total_revenue"},
		len(rows),
		func(i int) []string {
			r := rows[i]
			return []string{
				strconv.FormatInt(r.ProductID, 10),
				r.SKU,
				r.Name,
				r.Category,
				strconv.FormatInt(r.TotalQty, 10),
				r.TotalRevenue.StringFixed(2),
			}
		},
	)
}

// StockMovementsCSV el historial de stock completo, más reciente primero.
func (e *Exporter) StockMovementsCSV(ctx context.Context) ([]byte, error) {
	movs, err := e.movRepo.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	return renderCSV(
		[]string{"id", "product_id", "type", "quantity", "note", "created_by", "created_at"},
		len(movs),
		func(i int) []string {
			m := movs[i]
			return []string{
				strconv.FormatInt(m.ID, 10),
				strconv.FormatInt(m.ProductID, 10),
				string(m.Type),
				strconv.FormatInt(m.Quantity, 10),
				m.Note,
				optInt(m.CreatedBy),
				m.CreatedAt.Format(time.RFC3339),
			}
		},
	)
}

// ProfitabilityCSV rentabilidad por producto: costo estimado, utilidad bruta y
// margen sobre el ingreso.
func (e *Exporter) ProfitabilityCSV(ctx context.Context) ([]byte, error) {
	rows, err := e.analyticsRepo.Profitability(ctx)
	if err != nil {
		return nil, err
	}
	return renderCSV(
		[]string{"product_id", "sku", "name", "unit_cost", "total_qty_sold", "total_revenue",
			"estimated_total_cost", "gross_profit", "margin_percent"},
		len(rows),
		func(i int) []string {
			r := rows[i]
			estimatedCost := r.UnitCost.Mul(decimal.NewFromInt(r.TotalQty))
			grossProfit := r.TotalRevenue.Sub(estimatedCost)
			margin := ""
			if r.TotalRevenue.IsPositive() {
				margin = grossProfit.Div(r.TotalRevenue).Mul(decimal.NewFromInt(100)).Round(0).String()
			}
			return []string{
				strconv.FormatInt(r.ProductID, 10),
				r.SKU,
				r.Name,
				r.UnitCost.StringFixed(2),
				strconv.FormatInt(r.TotalQty, 10),
				r.TotalRevenue.StringFixed(2),
				estimatedCost.StringFixed(2),
				grossProfit.StringFixed(2),
				margin,
			}
		},
	)
}

// FinancialCSV resumen financiero: ingresos por ventas, otros ingresos,
// egresos y balance, opcionalmente acotado por fechas.
func (e *Exporter) FinancialCSV(ctx context.Context, from, to *time.Time) ([]byte, error) {
	fin, err := e.analyticsRepo.FinancialSummary(ctx, from, to)
	if err != nil {
		return nil, err
	}
	totalIncome := fin.SalesIncome.Add(fin.OtherIncome)
	balance := totalIncome.Sub(fin.Expense)
	records := [][]string{
		{"income", "Ingresos por ventas", fin.SalesIncome.StringFixed(2)},
		{"income", "Otros ingresos", fin.OtherIncome.StringFixed(2)},
		{"expense", "Gastos / Egresos", fin.Expense.StringFixed(2)},
		{"summary", "Total ingresos", totalIncome.StringFixed(2)},
		{"summary", "Balance", balance.StringFixed(2)},
	}
	return renderCSV(
		[]string{"type", "label", "amount"},
		len(records),
		func(i int) []string { return records[i] },
	)
}

// renderCSV serializa encabezado + filas con encoding/csv.
func renderCSV(header []string, n int, row func(i int) []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// marginPercent margen redondeado (venta − costo) / venta × 100, vacío si
// falta alguno de los precios o no son positivos.
func marginPercent(sale, cost *decimal.Decimal) string {
	if sale == nil || cost == nil || !sale.IsPositive() || !cost.IsPositive() {
		return ""
	}
	return sale.Sub(*cost).Div(*sale).Mul(decimal.NewFromInt(100)).Round(0).String()
}

func optDecimal(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}

func optInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}
