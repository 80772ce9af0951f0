package entity

import (
	"fmt"
	"time"
)

// MovementType es el tipo cerrado de movimiento de stock. Solo existen dos
// variantes; cualquier otro valor se rechaza en el borde con ParseMovementType.
type MovementType string

// Tipos de movimiento de stock. Se conservan los valores históricos en español
// porque así viven en la base de datos y en los reportes.
const (
	MovementIngreso MovementType = "ingreso" // entrada: aumenta el stock
	MovementEgreso  MovementType = "egreso"  // salida: disminuye el stock
)

// ParseMovementType valida un tipo recibido como texto libre (API, CSV).
func ParseMovementType(s string) (MovementType, error) {
	switch MovementType(s) {
	case MovementIngreso, MovementEgreso:
		return MovementType(s), nil
	default:
		return "", fmt.Errorf("tipo de movimiento desconocido: %q", s)
	}
}

// StockMovement representa un evento inmutable del historial de stock de un
// producto. El historial es append-only: nunca se actualiza ni se borra; una
// corrección se registra como un nuevo movimiento compensatorio.
type StockMovement struct {
	ID        int64
	ProductID int64
	Type      MovementType
	Quantity  int64 // siempre positivo; el signo lo da Type
	Note      string
	CreatedBy *int64 // UserID; nil para movimientos del sistema
	CreatedAt time.Time
}

// Signed devuelve la cantidad con signo según el tipo (ingreso +, egreso -).
func (m *StockMovement) Signed() int64 {
	if m.Type == MovementEgreso {
		return -m.Quantity
	}
	return m.Quantity
}
