package repository

import (
	"context"
	"time"

	"github.com/jhoicas/vitasport-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas. Las ventas son
// registros financieros inmutables: solo Create y lecturas.
type SaleRepository interface {
	// Create persiste la venta y devuelve el ID asignado por el store.
	Create(ctx context.Context, sale *entity.Sale) (int64, error)
	// List lista las últimas ventas, más recientes primero.
	List(ctx context.Context, limit int) ([]*entity.Sale, error)
	// ListByDateRange lista ventas en un rango de fechas (nil = sin límite).
	ListByDateRange(ctx context.Context, from, to *time.Time) ([]*entity.Sale, error)
}
