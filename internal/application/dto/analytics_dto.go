package dto

import "github.com/shopspring/decimal"

// SalesByProductResponse ventas agregadas por producto.
type SalesByProductResponse struct {
	ProductID    int64           `json:"product_id"`
	Name         string          `json:"name"`
	TotalQty     int64           `json:"total_qty"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// SalesTrendPointResponse ventas agregadas de un día.
type SalesTrendPointResponse struct {
	Date         string          `json:"date"`
	SalesCount   int64           `json:"sales_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// SalesTotalsResponse totales del período filtrado.
type SalesTotalsResponse struct {
	TotalUnits   int64           `json:"total_units"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}
