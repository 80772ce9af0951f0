package repository

import (
	"context"

	"github.com/jhoicas/vitasport-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia del historial de
// stock (DIP). El historial es append-only: el puerto no expone Update ni
// Delete; las correcciones se registran como movimientos compensatorios.
//
// BalanceOf y AllBalances son la proyección de saldo: una función pura del
// contenido del log (suma de ingresos menos egresos), sin columna cacheada.
type StockMovementRepository interface {
	// Append persiste un movimiento y devuelve el ID asignado por el store.
	Append(ctx context.Context, movement *entity.StockMovement) (int64, error)
	// ListByProduct lista los movimientos de un producto, más recientes primero.
	ListByProduct(ctx context.Context, productID int64, limit int) ([]*entity.StockMovement, error)
	// List lista los últimos movimientos de todos los productos.
	List(ctx context.Context, limit int) ([]*entity.StockMovement, error)
	// BalanceOf calcula el stock actual de un producto desde el historial.
	// Devuelve 0 si el producto no tiene movimientos (nunca es error).
	BalanceOf(ctx context.Context, productID int64) (int64, error)
	// AllBalances calcula el stock actual de todos los productos con historial.
	AllBalances(ctx context.Context) (map[int64]int64, error)
	// AcquireProductLock serializa las escrituras sobre un producto dentro de
	// la transacción actual. Dos liquidaciones concurrentes del mismo producto
	// nunca validan contra el mismo saldo.
	AcquireProductLock(ctx context.Context, productID int64) error
}
