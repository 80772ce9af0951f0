package sales

import (
	"context"
	"time"

	"github.com/jhoicas/vitasport-api/internal/application/dto"
	"github.com/jhoicas/vitasport-api/internal/application/inventory"
	"github.com/jhoicas/vitasport-api/internal/domain"
	"github.com/jhoicas/vitasport-api/internal/domain/entity"
	"github.com/jhoicas/vitasport-api/internal/domain/repository"
)

// SettleUseCase es el único componente que convierte una intención de venta en
// estado durable. Dentro de una transacción serializa las escrituras del
// producto, recalcula el saldo desde el historial y, si alcanza, inserta la
// venta junto con su egreso emparejado. Commit o rollback completo: ningún
// estado intermedio es visible para otros lectores.
type SettleUseCase struct {
	txRunner inventory.TxRunner
	saleRepo repository.SaleRepository
}

// NewSettleUseCase construye el motor de liquidación.
func NewSettleUseCase(txRunner inventory.TxRunner, saleRepo repository.SaleRepository) *SettleUseCase {
	return &SettleUseCase{txRunner: txRunner, saleRepo: saleRepo}
}

// SettleSale valida la intención, abre la transacción y liquida la venta.
// Devuelve el ID de la venta confirmada. No reintenta: un rechazo por stock
// insuficiente es un resultado terminal que el caller decide si reintenta.
func (uc *SettleUseCase) SettleSale(ctx context.Context, userID *int64, in dto.SettleSaleRequest) (int64, error) {
	// Validación previa al store: nunca se abre transacción con una intención malformada.
	if in.ProductID <= 0 || in.Quantity <= 0 {
		return 0, domain.ErrInvalidInput
	}
	if in.SalePrice.IsNegative() {
		return 0, domain.ErrInvalidInput
	}
	saleDate, err := time.Parse("2006-01-02", in.SaleDate)
	if err != nil {
		return 0, domain.ErrInvalidInput
	}

	var saleID int64
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
		_ repository.ProductRepository,
	) error {
		// Serializa liquidaciones y ajustes del mismo producto: dos ventas
		// concurrentes nunca validan contra el mismo saldo.
		if err := movRepo.AcquireProductLock(ctx, in.ProductID); err != nil {
			return err
		}
		// El saldo se recalcula dentro de la transacción, contra la vista
		// que esta tx tiene del historial.
		available, err := movRepo.BalanceOf(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if in.Quantity > available {
			return &domain.InsufficientStockError{
				ProductID: in.ProductID,
				Available: available,
				Requested: in.Quantity,
			}
		}
		sale := &entity.Sale{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			SalePrice: in.SalePrice,
			Discount:  in.Discount,
			Channel:   in.Channel,
			SaleDate:  saleDate,
			CreatedBy: userID,
		}
		saleID, err = saleRepo.Create(ctx, sale)
		if err != nil {
			return err
		}
		// Egreso emparejado: mismo producto, misma cantidad, mismo autor.
		_, err = movRepo.Append(ctx, &entity.StockMovement{
			ProductID: in.ProductID,
			Type:      entity.MovementEgreso,
			Quantity:  in.Quantity,
			CreatedBy: userID,
		})
		return err
	})
	if err != nil {
		return 0, err
	}
	return saleID, nil
}

// List devuelve las últimas ventas, más recientes primero.
func (uc *SettleUseCase) List(ctx context.Context, limit int) ([]dto.SaleResponse, error) {
	sales, err := uc.saleRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, ToSaleResponse(s))
	}
	return out, nil
}

// ToSaleResponse convierte la entidad al DTO de respuesta.
func ToSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		Quantity:  s.Quantity,
		SalePrice: s.SalePrice,
		Discount:  s.Discount,
		Channel:   s.Channel,
		SaleDate:  s.SaleDate.Format("2006-01-02"),
		CreatedBy: s.CreatedBy,
	}
}
