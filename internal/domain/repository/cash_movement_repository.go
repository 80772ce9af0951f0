package repository

import (
	"context"

	"github.com/jhoicas/vitasport-api/internal/domain/entity"
)

// CashMovementRepository define el puerto de persistencia para movimientos de
// caja. Al igual que el historial de stock, es append-only.
type CashMovementRepository interface {
	Create(ctx context.Context, movement *entity.CashMovement) (int64, error)
	List(ctx context.Context, limit int) ([]*entity.CashMovement, error)
}
