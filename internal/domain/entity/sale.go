package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta liquidada. Es un registro financiero inmutable:
// se crea una sola vez por el motor de liquidación y nunca se actualiza ni se
// borra. Toda venta confirmada tiene exactamente un movimiento de egreso
// creado en la misma transacción.
type Sale struct {
	ID        int64
	ProductID int64
	Quantity  int64
	SalePrice decimal.Decimal
	Discount  *decimal.Decimal
	Channel   string
	SaleDate  time.Time
	CreatedBy *int64
}
