package entity

import "github.com/shopspring/decimal"

// Estados de producto.
const (
	ProductActive   = "activo"
	ProductInactive = "inactivo"
)

// Product representa un producto del catálogo. El stock actual no vive aquí:
// se deriva siempre del historial de movimientos.
type Product struct {
	ID           int64
	SKU          string
	Name         string
	SalePrice    *decimal.Decimal
	CostPrice    *decimal.Decimal
	Brand        string
	Category     string
	Presentation string
	Flavor       string
	Weight       string
	ImagePath    string
	ExpiryDate   string
	LotNumber    string
	MinStock     *int64
	MaxStock     *int64
	Location     string
	Status       string
}
