package dto

import "github.com/shopspring/decimal"

// SettleSaleRequest body para POST /api/sales. SaleDate con formato YYYY-MM-DD.
type SettleSaleRequest struct {
	ProductID int64            `json:"product_id"`
	Quantity  int64            `json:"quantity"`
	SalePrice decimal.Decimal  `json:"sale_price"`
	Discount  *decimal.Decimal `json:"discount,omitempty"`
	Channel   string           `json:"channel,omitempty"`
	SaleDate  string           `json:"sale_date"`
}

// SaleResponse venta liquidada.
type SaleResponse struct {
	ID        int64            `json:"id"`
	ProductID int64            `json:"product_id"`
	Quantity  int64            `json:"quantity"`
	SalePrice decimal.Decimal  `json:"sale_price"`
	Discount  *decimal.Decimal `json:"discount,omitempty"`
	Channel   string           `json:"channel,omitempty"`
	SaleDate  string           `json:"sale_date"`
	CreatedBy *int64           `json:"created_by,omitempty"`
}

// InsufficientStockResponse detalle del rechazo por stock insuficiente.
type InsufficientStockResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Available int64  `json:"available"`
	Requested int64  `json:"requested"`
}
