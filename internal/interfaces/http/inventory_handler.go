package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vitasport-api/internal/application/dto"
	"github.com/jhoicas/vitasport-api/internal/application/inventory"
	"github.com/jhoicas/vitasport-api/internal/domain"
)

// InventoryHandler maneja el historial de stock y sus saldos derivados.
type InventoryHandler struct {
	uc *inventory.MovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.MovementUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Append registra un ingreso o egreso manual. Las salidas por venta no pasan
// por aquí: las genera el motor de liquidación. POST /api/inventory/movements
func (h *InventoryHandler) Append(c *fiber.Ctx) error {
	var in dto.AppendMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.Append(c.Context(), actorID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id, type (ingreso|egreso) y quantity > 0 son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// List devuelve el historial, del más reciente al más antiguo. Acepta
// product_id y limit. GET /api/inventory/movements
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	productID := int64(c.QueryInt("product_id"))
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	q.DefaultLimit()
	movements, err := h.uc.List(c.Context(), productID, q.Limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(movements)
}

// Balance devuelve el stock actual de un producto, siempre recalculado desde
// el historial. GET /api/inventory/balances/:product_id
func (h *InventoryHandler) Balance(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("product_id")
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id inválido"})
	}
	balance, err := h.uc.BalanceOf(c.Context(), int64(productID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(balance)
}

// Balances devuelve el stock actual de todos los productos con movimientos.
// GET /api/inventory/balances
func (h *InventoryHandler) Balances(c *fiber.Ctx) error {
	balances, err := h.uc.AllBalances(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(balances)
}
