package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products. InitialStock > 0 genera
// el movimiento de ingreso inicial en la misma transacción del alta.
type CreateProductRequest struct {
	SKU          string           `json:"sku,omitempty"`
	Name         string           `json:"name"`
	SalePrice    *decimal.Decimal `json:"sale_price,omitempty"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty"`
	Brand        string           `json:"brand,omitempty"`
	Category     string           `json:"category,omitempty"`
	Presentation string           `json:"presentation,omitempty"`
	Flavor       string           `json:"flavor,omitempty"`
	Weight       string           `json:"weight,omitempty"`
	ImagePath    string           `json:"image_path,omitempty"`
	ExpiryDate   string           `json:"expiry_date,omitempty"`
	LotNumber    string           `json:"lot_number,omitempty"`
	MinStock     *int64           `json:"min_stock,omitempty"`
	MaxStock     *int64           `json:"max_stock,omitempty"`
	Location     string           `json:"location,omitempty"`
	Status       string           `json:"status,omitempty"`
	InitialStock int64            `json:"initial_stock,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. No toca el stock:
// los ajustes van por movimientos.
type UpdateProductRequest struct {
	SKU          string           `json:"sku,omitempty"`
	Name         string           `json:"name"`
	SalePrice    *decimal.Decimal `json:"sale_price,omitempty"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty"`
	Brand        string           `json:"brand,omitempty"`
	Category     string           `json:"category,omitempty"`
	Presentation string           `json:"presentation,omitempty"`
	Flavor       string           `json:"flavor,omitempty"`
	Weight       string           `json:"weight,omitempty"`
	ImagePath    string           `json:"image_path,omitempty"`
	ExpiryDate   string           `json:"expiry_date,omitempty"`
	LotNumber    string           `json:"lot_number,omitempty"`
	MinStock     *int64           `json:"min_stock,omitempty"`
	MaxStock     *int64           `json:"max_stock,omitempty"`
	Location     string           `json:"location,omitempty"`
	Status       string           `json:"status,omitempty"`
}

// ProductResponse producto del catálogo.
type ProductResponse struct {
	ID           int64            `json:"id"`
	SKU          string           `json:"sku,omitempty"`
	Name         string           `json:"name"`
	SalePrice    *decimal.Decimal `json:"sale_price,omitempty"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty"`
	Brand        string           `json:"brand,omitempty"`
	Category     string           `json:"category,omitempty"`
	Presentation string           `json:"presentation,omitempty"`
	Flavor       string           `json:"flavor,omitempty"`
	Weight       string           `json:"weight,omitempty"`
	ImagePath    string           `json:"image_path,omitempty"`
	ExpiryDate   string           `json:"expiry_date,omitempty"`
	LotNumber    string           `json:"lot_number,omitempty"`
	MinStock     *int64           `json:"min_stock,omitempty"`
	MaxStock     *int64           `json:"max_stock,omitempty"`
	Location     string           `json:"location,omitempty"`
	Status       string           `json:"status,omitempty"`
}
