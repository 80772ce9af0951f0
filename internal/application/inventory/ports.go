package inventory

import (
	"context"

	"github.com/jhoicas/vitasport-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es el límite transaccional del motor de
// liquidación y del alta de producto con stock inicial: o se confirman todas
// las escrituras del callback, o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}
