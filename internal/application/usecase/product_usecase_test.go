package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vitasport-api/internal/application/dto"
	"github.com/jhoicas/vitasport-api/internal/application/usecase"
	"github.com/jhoicas/vitasport-api/internal/domain"
	"github.com/jhoicas/vitasport-api/internal/domain/entity"
	"github.com/jhoicas/vitasport-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. txFake emula el límite transaccional: escribe sobre copias
// y solo publica en commit.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products []entity.Product
	nextID   int64
}

func (r *fakeProductRepo) clone() *fakeProductRepo {
	cp := &fakeProductRepo{nextID: r.nextID}
	cp.products = append(cp.products, r.products...)
	return cp
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) (int64, error) {
	for i := range r.products {
		if p.SKU != "" && r.products[i].SKU == p.SKU {
			return 0, domain.ErrDuplicate
		}
	}
	r.nextID++
	p.ID = r.nextID
	r.products = append(r.products, *p)
	return p.ID, nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for i := range r.products {
		if r.products[i].SKU == sku {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for i := range r.products {
		out = append(out, &r.products[i])
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	for i := range r.products {
		if r.products[i].ID == p.ID {
			r.products[i] = *p
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeMovRepo struct {
	movements  []entity.StockMovement
	nextID     int64
	failAppend bool
}

var errAppendStore = errors.New("fallo simulado al insertar el movimiento")

func (r *fakeMovRepo) clone() *fakeMovRepo {
	cp := &fakeMovRepo{nextID: r.nextID, failAppend: r.failAppend}
	cp.movements = append(cp.movements, r.movements...)
	return cp
}

func (r *fakeMovRepo) Append(_ context.Context, m *entity.StockMovement) (int64, error) {
	if r.failAppend {
		return 0, errAppendStore
	}
	r.nextID++
	m.ID = r.nextID
	m.CreatedAt = time.Now()
	r.movements = append(r.movements, *m)
	return m.ID, nil
}

func (r *fakeMovRepo) ListByProduct(_ context.Context, _ int64, _ int) ([]*entity.StockMovement, error) {
	return nil, nil
}
func (r *fakeMovRepo) List(_ context.Context, _ int) ([]*entity.StockMovement, error) {
	return nil, nil
}
func (r *fakeMovRepo) BalanceOf(_ context.Context, _ int64) (int64, error) { return 0, nil }
func (r *fakeMovRepo) AllBalances(_ context.Context) (map[int64]int64, error) { return nil, nil }
func (r *fakeMovRepo) AcquireProductLock(_ context.Context, _ int64) error { return nil }

type txFake struct {
	products  *fakeProductRepo
	movements *fakeMovRepo
}

func (f *txFake) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) error) error {
	stagedP := f.products.clone()
	stagedM := f.movements.clone()
	if err := fn(stagedM, nil, stagedP); err != nil {
		return err
	}
	*f.products = *stagedP
	*f.movements = *stagedM
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta de producto
// ──────────────────────────────────────────────────────────────────────────────

// El alta con stock inicial escribe producto e ingreso en la misma transacción.
func TestProductCreate_StockInicialGeneraIngreso(t *testing.T) {
	products := &fakeProductRepo{}
	movements := &fakeMovRepo{}
	uc := usecase.NewProductUseCase(products, &txFake{products: products, movements: movements})

	userID := int64(1)
	resp, err := uc.Create(context.Background(), &userID, dto.CreateProductRequest{
		SKU: "PROT-001", Name: "Proteína Whey 2lb", InitialStock: 24,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Positive(t, resp.ID)

	require.Len(t, movements.movements, 1)
	m := movements.movements[0]
	assert.Equal(t, resp.ID, m.ProductID)
	assert.Equal(t, entity.MovementIngreso, m.Type)
	assert.Equal(t, int64(24), m.Quantity)
	assert.Equal(t, "stock inicial", m.Note)
	require.NotNil(t, m.CreatedBy)
	assert.Equal(t, userID, *m.CreatedBy)
}

// Sin stock inicial no se escribe movimiento alguno.
func TestProductCreate_SinStockInicialNoGeneraMovimiento(t *testing.T) {
	products := &fakeProductRepo{}
	movements := &fakeMovRepo{}
	uc := usecase.NewProductUseCase(products, &txFake{products: products, movements: movements})

	_, err := uc.Create(context.Background(), nil, dto.CreateProductRequest{Name: "Creatina 300g"})
	require.NoError(t, err)
	assert.Empty(t, movements.movements)
	assert.Len(t, products.products, 1)
}

// Si falla el ingreso inicial, el producto tampoco queda: rollback completo.
func TestProductCreate_FalloEnIngreso_RollbackDelProducto(t *testing.T) {
	products := &fakeProductRepo{}
	movements := &fakeMovRepo{failAppend: true}
	uc := usecase.NewProductUseCase(products, &txFake{products: products, movements: movements})

	_, err := uc.Create(context.Background(), nil, dto.CreateProductRequest{
		Name: "Pre-entreno 400g", InitialStock: 10,
	})
	require.ErrorIs(t, err, errAppendStore)
	assert.Empty(t, products.products, "rollback: el producto no debe persistir")
	assert.Empty(t, movements.movements)
}

// SKU repetido rechaza con ErrDuplicate antes de abrir transacción.
func TestProductCreate_SKUDuplicado(t *testing.T) {
	products := &fakeProductRepo{}
	movements := &fakeMovRepo{}
	uc := usecase.NewProductUseCase(products, &txFake{products: products, movements: movements})

	_, err := uc.Create(context.Background(), nil, dto.CreateProductRequest{SKU: "BCAA-01", Name: "BCAA"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), nil, dto.CreateProductRequest{SKU: "BCAA-01", Name: "BCAA copia"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Nombre vacío y stock inicial negativo se rechazan.
func TestProductCreate_EntradaInvalida(t *testing.T) {
	products := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(products, &txFake{products: products, movements: &fakeMovRepo{}})

	_, err := uc.Create(context.Background(), nil, dto.CreateProductRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), nil, dto.CreateProductRequest{Name: "Shaker", InitialStock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, products.products)
}

// Update no permite vaciar el nombre.
func TestProductUpdate_NombreVacio(t *testing.T) {
	products := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(products, &txFake{products: products, movements: &fakeMovRepo{}})

	err := uc.Update(context.Background(), 1, dto.UpdateProductRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
