package reports_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vitasport-api/internal/application/reports"
	"github.com/jhoicas/vitasport-api/internal/domain/entity"
	"github.com/jhoicas/vitasport-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de solo lectura
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct{ products []*entity.Product }

func (r *stubProductRepo) Create(_ context.Context, _ *entity.Product) (int64, error) { return 0, nil }
func (r *stubProductRepo) GetByID(_ context.Context, _ int64) (*entity.Product, error) {
	return nil, nil
}
func (r *stubProductRepo) GetBySKU(_ context.Context, _ string) (*entity.Product, error) {
	return nil, nil
}
func (r *stubProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	return r.products, nil
}
func (r *stubProductRepo) Update(_ context.Context, _ *entity.Product) error { return nil }
func (r *stubProductRepo) Delete(_ context.Context, _ int64) error { return nil }

type stubMovRepo struct {
	movements []*entity.StockMovement
	balances  map[int64]int64
}

func (r *stubMovRepo) Append(_ context.Context, _ *entity.StockMovement) (int64, error) {
	return 0, nil
}
func (r *stubMovRepo) ListByProduct(_ context.Context, _ int64, _ int) ([]*entity.StockMovement, error) {
	return nil, nil
}
func (r *stubMovRepo) List(_ context.Context, _ int) ([]*entity.StockMovement, error) {
	return r.movements, nil
}
func (r *stubMovRepo) BalanceOf(_ context.Context, id int64) (int64, error) {
	return r.balances[id], nil
}
func (r *stubMovRepo) AllBalances(_ context.Context) (map[int64]int64, error) {
	return r.balances, nil
}
func (r *stubMovRepo) AcquireProductLock(_ context.Context, _ int64) error { return nil }

type stubSaleRepo struct{ sales []*entity.Sale }

func (r *stubSaleRepo) Create(_ context.Context, _ *entity.Sale) (int64, error) { return 0, nil }
func (r *stubSaleRepo) List(_ context.Context, _ int) ([]*entity.Sale, error) { return r.sales, nil }
func (r *stubSaleRepo) ListByDateRange(_ context.Context, _, _ *time.Time) ([]*entity.Sale, error) {
	return r.sales, nil
}

type stubAnalyticsRepo struct {
	top       []repository.TopProductResult
	profit    []repository.ProfitabilityResult
	financial repository.FinancialSummaryResult
}

func (r *stubAnalyticsRepo) SalesByProduct(_ context.Context, _ repository.SalesFilter) ([]repository.SalesByProductResult, error) {
	return nil, nil
}
func (r *stubAnalyticsRepo) SalesTrend(_ context.Context, _ int) ([]repository.SalesTrendPoint, error) {
	return nil, nil
}
func (r *stubAnalyticsRepo) SalesTotals(_ context.Context, _ repository.SalesFilter) (repository.SalesTotalsResult, error) {
	return repository.SalesTotalsResult{}, nil
}
func (r *stubAnalyticsRepo) TopProducts(_ context.Context, _ int) ([]repository.TopProductResult, error) {
	return r.top, nil
}
func (r *stubAnalyticsRepo) Profitability(_ context.Context) ([]repository.ProfitabilityResult, error) {
	return r.profit, nil
}
func (r *stubAnalyticsRepo) FinancialSummary(_ context.Context, _, _ *time.Time) (repository.FinancialSummaryResult, error) {
	return r.financial, nil
}

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return records
}

func newExporter(products *stubProductRepo, movs *stubMovRepo, sales *stubSaleRepo, analytics *stubAnalyticsRepo) *reports.Exporter {
	if products == nil {
		products = &stubProductRepo{}
	}
	if movs == nil {
		movs = &stubMovRepo{}
	}
	if sales == nil {
		sales = &stubSaleRepo{}
	}
	if analytics == nil {
		analytics = &stubAnalyticsRepo{}
	}
	return reports.NewExporter(products, movs, sales, analytics)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesCSV(t *testing.T) {
	userID := int64(2)
	discount := decimal.NewFromFloat(0.50)
	e := newExporter(nil, nil, &stubSaleRepo{sales: []*entity.Sale{{
		ID:        1,
		ProductID: 3,
		Quantity:  2,
		SalePrice: decimal.NewFromFloat(19.90),
		Discount:  &discount,
		Channel:   "tienda",
		SaleDate:  time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		CreatedBy: &userID,
	}}}, nil)

	data, err := e.SalesCSV(context.Background(), nil, nil)
	require.NoError(t, err)

	records := parseCSV(t, data)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"id", "product_id", "quantity", "sale_price", "discount", "channel", "sale_date", "created_by"}, records[0])
	assert.Equal(t, []string{"1", "3", "2", "19.90", "0.50", "tienda", "2026-08-10", "2"}, records[1])
}

// El stock del reporte de inventario sale de la proyección del historial y el
// margen se calcula desde los precios.
func TestInventoryCSV_StockDerivadoYMargen(t *testing.T) {
	sale := decimal.NewFromInt(100)
	cost := decimal.NewFromInt(60)
	products := &stubProductRepo{products: []*entity.Product{{
		ID: 1, SKU: "PROT-001", Name: "Proteína", SalePrice: &sale, CostPrice: &cost, Status: "activo",
	}}}
	movs := &stubMovRepo{balances: map[int64]int64{1: 17}}

	data, err := newExporter(products, movs, nil, nil).InventoryCSV(context.Background())
	require.NoError(t, err)

	records := parseCSV(t, data)
	require.Len(t, records, 2)
	row := records[1]
	assert.Equal(t, "17", row[16], "current_stock derivado del historial")
	assert.Equal(t, "40", row[17], "margen (100-60)/100 = 40%")
}

// Sin precios el margen queda vacío, no cero.
func TestInventoryCSV_SinPreciosMargenVacio(t *testing.T) {
	products := &stubProductRepo{products: []*entity.Product{{ID: 1, Name: "Shaker"}}}

	data, err := newExporter(products, &stubMovRepo{}, nil, nil).InventoryCSV(context.Background())
	require.NoError(t, err)

	records := parseCSV(t, data)
	require.Len(t, records, 2)
	assert.Equal(t, "", records[1][17])
	assert.Equal(t, "0", records[1][16], "producto sin movimientos tiene stock cero")
}

func TestProfitabilityCSV_CalculaUtilidad(t *testing.T) {
	analytics := &stubAnalyticsRepo{profit: []repository.ProfitabilityResult{{
		ProductID:    1,
		SKU:          "CREA-01",
		Name:         "Creatina",
		UnitCost:     decimal.NewFromInt(40),
		TotalQty:     5,
		TotalRevenue: decimal.NewFromInt(500),
	}}}

	data, err := newExporter(nil, nil, nil, analytics).ProfitabilityCSV(context.Background())
	require.NoError(t, err)

	records := parseCSV(t, data)
	require.Len(t, records, 2)
	row := records[1]
	assert.Equal(t, "200.00", row[6], "costo estimado = 40 × 5")
	assert.Equal(t, "300.00", row[7], "utilidad bruta = 500 − 200")
	assert.Equal(t, "60", row[8], "margen = 300/500 = 60%")
}

func TestFinancialCSV_EtiquetasYTotales(t *testing.T) {
	analytics := &stubAnalyticsRepo{financial: repository.FinancialSummaryResult{
		SalesIncome: decimal.NewFromInt(1000),
		OtherIncome: decimal.NewFromInt(200),
		Expense:     decimal.NewFromInt(350),
	}}

	data, err := newExporter(nil, nil, nil, analytics).FinancialCSV(context.Background(), nil, nil)
	require.NoError(t, err)

	records := parseCSV(t, data)
	require.Len(t, records, 6)
	assert.Equal(t, []string{"income", "Ingresos por ventas", "1000.00"}, records[1])
	assert.Equal(t, []string{"income", "Otros ingresos", "200.00"}, records[2])
	assert.Equal(t, []string{"expense", "Gastos / Egresos", "350.00"}, records[3])
	assert.Equal(t, []string{"summary", "Total ingresos", "1200.00"}, records[4])
	assert.Equal(t, []string{"summary", "Balance", "850.00"}, records[5])
}

func TestStockMovementsCSV(t *testing.T) {
	when := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
	movs := &stubMovRepo{movements: []*entity.StockMovement{{
		ID: 5, ProductID: 1, Type: entity.MovementEgreso, Quantity: 2, Note: "venta", CreatedAt: when,
	}}}

	data, err := newExporter(nil, movs, nil, nil).StockMovementsCSV(context.Background())
	require.NoError(t, err)

	records := parseCSV(t, data)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"5", "1", "egreso", "2", "venta", "", when.Format(time.RFC3339)}, records[1])
}
