package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vitasport-api/internal/application/dto"
	"github.com/jhoicas/vitasport-api/internal/application/sales"
	"github.com/jhoicas/vitasport-api/internal/domain/entity"
	"github.com/jhoicas/vitasport-api/internal/domain/repository"
	apphttp "github.com/jhoicas/vitasport-api/internal/interfaces/http"
)

// fixedStockTx emula el motor transaccional con un saldo fijo por producto.
type fixedStockTx struct {
	balance int64
	sales   []entity.Sale
}

func (f *fixedStockTx) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(&fixedMovRepo{balance: &f.balance}, &captureSaleRepo{sales: &f.sales}, nil)
}

type fixedMovRepo struct{ balance *int64 }

func (r *fixedMovRepo) Append(_ context.Context, m *entity.StockMovement) (int64, error) {
	*r.balance += m.Signed()
	return 1, nil
}
func (r *fixedMovRepo) ListByProduct(_ context.Context, _ int64, _ int) ([]*entity.StockMovement, error) {
	return nil, nil
}
func (r *fixedMovRepo) List(_ context.Context, _ int) ([]*entity.StockMovement, error) {
	return nil, nil
}
func (r *fixedMovRepo) BalanceOf(_ context.Context, _ int64) (int64, error) { return *r.balance, nil }
func (r *fixedMovRepo) AllBalances(_ context.Context) (map[int64]int64, error) {
	return nil, nil
}
func (r *fixedMovRepo) AcquireProductLock(_ context.Context, _ int64) error { return nil }

type captureSaleRepo struct{ sales *[]entity.Sale }

func (r *captureSaleRepo) Create(_ context.Context, s *entity.Sale) (int64, error) {
	s.ID = int64(len(*r.sales) + 1)
	*r.sales = append(*r.sales, *s)
	return s.ID, nil
}
func (r *captureSaleRepo) List(_ context.Context, _ int) ([]*entity.Sale, error) { return nil, nil }
func (r *captureSaleRepo) ListByDateRange(_ context.Context, _, _ *time.Time) ([]*entity.Sale, error) {
	return nil, nil
}

func salesApp(tx *fixedStockTx) *fiber.App {
	app := fiber.New()
	handler := apphttp.NewSalesHandler(sales.NewSettleUseCase(tx, &captureSaleRepo{sales: &tx.sales}))
	app.Post("/api/sales", handler.Settle)
	return app
}

func postSale(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/sales", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Venta con stock suficiente responde 201 con el id.
func TestSalesHandler_Liquida201(t *testing.T) {
	tx := &fixedStockTx{balance: 10}
	resp := postSale(t, salesApp(tx), `{"product_id":1,"quantity":4,"sale_price":"25.00","sale_date":"2026-08-15"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, int64(6), tx.balance, "la liquidación descuenta el stock")
	require.Len(t, tx.sales, 1)
}

// Sobreventa responde 409 con available y requested en el cuerpo.
func TestSalesHandler_Sobreventa409ConDetalle(t *testing.T) {
	tx := &fixedStockTx{balance: 3}
	resp := postSale(t, salesApp(tx), `{"product_id":1,"quantity":5,"sale_price":"25.00","sale_date":"2026-08-15"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body dto.InsufficientStockResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	assert.Equal(t, int64(3), body.Available)
	assert.Equal(t, int64(5), body.Requested)
	assert.Contains(t, body.Message, "stock insuficiente")

	assert.Empty(t, tx.sales, "la sobreventa no deja registros")
	assert.Equal(t, int64(3), tx.balance)
}

// Cuerpo malformado o datos inválidos responden 400.
func TestSalesHandler_EntradaInvalida400(t *testing.T) {
	for name, body := range map[string]string{
		"cantidad cero":   `{"product_id":1,"quantity":0,"sale_price":"10.00","sale_date":"2026-08-15"}`,
		"fecha inválida":  `{"product_id":1,"quantity":1,"sale_price":"10.00","sale_date":"ayer"}`,
		"json malformado": `{`,
	} {
		t.Run(name, func(t *testing.T) {
			tx := &fixedStockTx{balance: 10}
			resp := postSale(t, salesApp(tx), body)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}
