package inventory

import (
	"context"

	"github.com/jhoicas/vitasport-api/internal/application/dto"
	"github.com/jhoicas/vitasport-api/internal/domain"
	"github.com/jhoicas/vitasport-api/internal/domain/entity"
	"github.com/jhoicas/vitasport-api/internal/domain/repository"
)

// MovementUseCase expone el historial de stock (append-only) y la proyección
// de saldos. No valida saldo: un egreso manual puede dejar el stock en
// negativo (se representa, no se recorta). La única operación que valida
// contra el saldo es la liquidación de ventas.
type MovementUseCase struct {
	movRepo repository.StockMovementRepository
}

// NewMovementUseCase construye el caso de uso del historial de stock.
func NewMovementUseCase(movRepo repository.StockMovementRepository) *MovementUseCase {
	return &MovementUseCase{movRepo: movRepo}
}

// Append registra un movimiento manual (stock inicial, ajuste, merma).
// Rechaza con ErrInvalidInput antes de tocar el store si la cantidad no es
// positiva o el tipo no es ingreso/egreso.
func (uc *MovementUseCase) Append(ctx context.Context, userID *int64, in dto.AppendMovementRequest) (int64, error) {
	movType, err := entity.ParseMovementType(in.Type)
	if err != nil {
		return 0, domain.ErrInvalidInput
	}
	if in.ProductID <= 0 || in.Quantity <= 0 {
		return 0, domain.ErrInvalidInput
	}
	mov := &entity.StockMovement{
		ProductID: in.ProductID,
		Type:      movType,
		Quantity:  in.Quantity,
		Note:      in.Note,
		CreatedBy: userID,
	}
	return uc.movRepo.Append(ctx, mov)
}

// List devuelve los últimos movimientos; con productID > 0 filtra por producto.
func (uc *MovementUseCase) List(ctx context.Context, productID int64, limit int) ([]dto.MovementResponse, error) {
	var (
		movs []*entity.StockMovement
		err  error
	)
	if productID > 0 {
		movs, err = uc.movRepo.ListByProduct(ctx, productID, limit)
	} else {
		movs, err = uc.movRepo.List(ctx, limit)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

// BalanceOf devuelve el stock actual de un producto. Producto sin historial
// significa saldo cero, nunca error.
func (uc *MovementUseCase) BalanceOf(ctx context.Context, productID int64) (dto.BalanceResponse, error) {
	balance, err := uc.movRepo.BalanceOf(ctx, productID)
	if err != nil {
		return dto.BalanceResponse{}, err
	}
	return dto.BalanceResponse{ProductID: productID, CurrentStock: balance}, nil
}

// AllBalances devuelve el stock actual de todos los productos con historial.
func (uc *MovementUseCase) AllBalances(ctx context.Context) ([]dto.BalanceResponse, error) {
	balances, err := uc.movRepo.AllBalances(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BalanceResponse, 0, len(balances))
	for productID, stock := range balances {
		out = append(out, dto.BalanceResponse{ProductID: productID, CurrentStock: stock})
	}
	return out, nil
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      string(m.Type),
		Quantity:  m.Quantity,
		Note:      m.Note,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
}
