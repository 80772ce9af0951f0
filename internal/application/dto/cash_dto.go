package dto

import "github.com/shopspring/decimal"

// CreateCashMovementRequest body para POST /api/cash/movements.
// MovementDate con formato YYYY-MM-DD.
type CreateCashMovementRequest struct {
	Type         string          `json:"type"` // "ingreso" | "egreso"
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category,omitempty"`
	Description  string          `json:"description,omitempty"`
	MovementDate string          `json:"movement_date"`
}

// CashMovementResponse movimiento de caja.
type CashMovementResponse struct {
	ID           int64           `json:"id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category,omitempty"`
	Description  string          `json:"description,omitempty"`
	MovementDate string          `json:"movement_date"`
	CreatedBy    *int64          `json:"created_by,omitempty"`
}

// CashSummaryResponse resumen de caja: ventas + otros ingresos − egresos.
type CashSummaryResponse struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
}
