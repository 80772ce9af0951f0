package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashMovement registra un ingreso o egreso de caja no ligado a ventas
// (gastos, aportes, retiros). Reusa MovementType para el sentido del monto.
type CashMovement struct {
	ID           int64
	Type         MovementType
	Amount       decimal.Decimal
	Category     string
	Description  string
	MovementDate time.Time
	CreatedBy    *int64
}
