package dto

import "time"

// AppendMovementRequest body para POST /api/inventory/movements (ajustes
// manuales y stock inicial; las salidas por venta las genera el motor de
// liquidación, nunca este endpoint).
type AppendMovementRequest struct {
	ProductID int64  `json:"product_id"`
	Type      string `json:"type"` // "ingreso" | "egreso"
	Quantity  int64  `json:"quantity"`
	Note      string `json:"note,omitempty"`
}

// MovementResponse movimiento del historial de stock.
type MovementResponse struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Type      string    `json:"type"`
	Quantity  int64     `json:"quantity"`
	Note      string    `json:"note,omitempty"`
	CreatedBy *int64    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// BalanceResponse stock actual derivado del historial de un producto.
type BalanceResponse struct {
	ProductID    int64 `json:"product_id"`
	CurrentStock int64 `json:"current_stock"`
}
