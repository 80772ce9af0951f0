package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/vitasport-api/internal/domain"
	"github.com/jhoicas/vitasport-api/internal/domain/entity"
	"github.com/jhoicas/vitasport-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, COALESCE(sku, ''), name, sale_price, cost_price, COALESCE(brand, ''),
	COALESCE(category, ''), COALESCE(presentation, ''), COALESCE(flavor, ''), COALESCE(weight, ''),
	COALESCE(image_path, ''), COALESCE(expiry_date, ''), COALESCE(lot_number, ''),
	min_stock, max_stock, COALESCE(location, ''), COALESCE(status, '')`

// ProductRepo catálogo de productos sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo y devuelve su id.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) (int64, error) {
	query := `
		INSERT INTO products (sku, name, sale_price, cost_price, brand, category, presentation,
			flavor, weight, image_path, expiry_date, lot_number, min_stock, max_stock, location, status)
		VALUES (NULLIF($1, ''), $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''),
			NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''), NULLIF($11, ''), NULLIF($12, ''),
			$13, $14, NULLIF($15, ''), NULLIF($16, ''))
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.SKU, p.Name, p.SalePrice, p.CostPrice, p.Brand, p.Category, p.Presentation,
		p.Flavor, p.Weight, p.ImagePath, p.ExpiryDate, p.LotNumber,
		p.MinStock, p.MaxStock, p.Location, p.Status,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return p.ID, nil
}

// GetByID obtiene un producto por id; nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := "SELECT " + productColumns + " FROM products WHERE id = $1"
	return r.scanOne(ctx, query, id)
}

// GetBySKU obtiene un producto por SKU; nil si no existe.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := "SELECT " + productColumns + " FROM products WHERE sku = $1"
	return r.scanOne(ctx, query, sku)
}

// List devuelve el catálogo completo ordenado por id.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := "SELECT " + productColumns + " FROM products ORDER BY id"
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza todos los campos del catálogo de un producto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET sku = NULLIF($2, ''), name = $3, sale_price = $4, cost_price = $5,
			brand = NULLIF($6, ''), category = NULLIF($7, ''), presentation = NULLIF($8, ''),
			flavor = NULLIF($9, ''), weight = NULLIF($10, ''), image_path = NULLIF($11, ''),
			expiry_date = NULLIF($12, ''), lot_number = NULLIF($13, ''),
			min_stock = $14, max_stock = $15, location = NULLIF($16, ''), status = NULLIF($17, '')
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.SKU, p.Name, p.SalePrice, p.CostPrice, p.Brand, p.Category, p.Presentation,
		p.Flavor, p.Weight, p.ImagePath, p.ExpiryDate, p.LotNumber,
		p.MinStock, p.MaxStock, p.Location, p.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto del catálogo.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Product, error) {
	row := r.q.QueryRow(ctx, query, arg)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.SalePrice, &p.CostPrice, &p.Brand,
		&p.Category, &p.Presentation, &p.Flavor, &p.Weight,
		&p.ImagePath, &p.ExpiryDate, &p.LotNumber,
		&p.MinStock, &p.MaxStock, &p.Location, &p.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return &p, nil
}
