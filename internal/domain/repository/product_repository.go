package repository

import (
	"context"

	"github.com/jhoicas/vitasport-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para productos.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
}
