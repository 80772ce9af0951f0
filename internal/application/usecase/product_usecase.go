package usecase

import (
	"context"

	"github.com/jhoicas/vitasport-api/internal/application/dto"
	"github.com/jhoicas/vitasport-api/internal/application/inventory"
	"github.com/jhoicas/vitasport-api/internal/domain"
	"github.com/jhoicas/vitasport-api/internal/domain/entity"
	"github.com/jhoicas/vitasport-api/internal/domain/repository"
)

// ProductUseCase CRUD de catálogo. El alta con stock inicial escribe el
// producto y su movimiento de ingreso en una sola transacción.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner inventory.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner inventory.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create registra un producto. Con InitialStock > 0 agrega el ingreso inicial
// al historial dentro de la misma transacción: nunca queda producto con stock
// inicial prometido sin su movimiento.
func (uc *ProductUseCase) Create(ctx context.Context, userID *int64, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.SKU != "" {
		existing, err := uc.repo.GetBySKU(ctx, in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	product := productFromCreate(in)
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		_ repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		id, err := productRepo.Create(ctx, product)
		if err != nil {
			return err
		}
		product.ID = id
		if in.InitialStock > 0 {
			_, err = movRepo.Append(ctx, &entity.StockMovement{
				ProductID: id,
				Type:      entity.MovementIngreso,
				Quantity:  in.InitialStock,
				Note:      "stock inicial",
				CreatedBy: userID,
			})
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// GetByID obtiene un producto; nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil || product == nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// List devuelve el catálogo completo.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update modifica los datos del catálogo. El stock no se toca por acá.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) error {
	if in.Name == "" {
		return domain.ErrInvalidInput
	}
	product := productFromCreate(dto.CreateProductRequest{
		SKU: in.SKU, Name: in.Name, SalePrice: in.SalePrice, CostPrice: in.CostPrice,
		Brand: in.Brand, Category: in.Category, Presentation: in.Presentation,
		Flavor: in.Flavor, Weight: in.Weight, ImagePath: in.ImagePath,
		ExpiryDate: in.ExpiryDate, LotNumber: in.LotNumber,
		MinStock: in.MinStock, MaxStock: in.MaxStock, Location: in.Location, Status: in.Status,
	})
	product.ID = id
	return uc.repo.Update(ctx, product)
}

// Delete elimina un producto del catálogo. Su historial de movimientos se
// conserva: el log es la fuente de verdad y no se reescribe.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func productFromCreate(in dto.CreateProductRequest) *entity.Product {
	return &entity.Product{
		SKU:          in.SKU,
		Name:         in.Name,
		SalePrice:    in.SalePrice,
		CostPrice:    in.CostPrice,
		Brand:        in.Brand,
		Category:     in.Category,
		Presentation: in.Presentation,
		Flavor:       in.Flavor,
		Weight:       in.Weight,
		ImagePath:    in.ImagePath,
		ExpiryDate:   in.ExpiryDate,
		LotNumber:    in.LotNumber,
		MinStock:     in.MinStock,
		MaxStock:     in.MaxStock,
		Location:     in.Location,
		Status:       in.Status,
	}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		SalePrice:    p.SalePrice,
		CostPrice:    p.CostPrice,
		Brand:        p.Brand,
		Category:     p.Category,
		Presentation: p.Presentation,
		Flavor:       p.Flavor,
		Weight:       p.Weight,
		ImagePath:    p.ImagePath,
		ExpiryDate:   p.ExpiryDate,
		LotNumber:    p.LotNumber,
		MinStock:     p.MinStock,
		MaxStock:     p.MaxStock,
		Location:     p.Location,
		Status:       p.Status,
	}
}
