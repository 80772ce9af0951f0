package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vitasport-api/internal/application/dto"
	"github.com/jhoicas/vitasport-api/internal/application/sales"
	"github.com/jhoicas/vitasport-api/internal/domain"
)

// SalesHandler maneja la liquidación y consulta de ventas.
type SalesHandler struct {
	uc *sales.SettleUseCase
}

// NewSalesHandler construye el handler de ventas.
func NewSalesHandler(uc *sales.SettleUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// Settle liquida una venta: valida stock dentro de la transacción y registra
// la venta junto con su egreso de stock, o rechaza con 409 sin efectos.
// POST /api/sales
func (h *SalesHandler) Settle(c *fiber.Ctx) error {
	var in dto.SettleSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.SettleSale(c.Context(), actorID(c), in)
	if err != nil {
		var insufficient *domain.InsufficientStockError
		if errors.As(err, &insufficient) {
			return c.Status(fiber.StatusConflict).JSON(dto.InsufficientStockResponse{
				Code:      "INSUFFICIENT_STOCK",
				Message:   insufficient.Error(),
				Available: insufficient.Available,
				Requested: insufficient.Requested,
			})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id, quantity > 0, sale_price >= 0 y sale_date (YYYY-MM-DD) son requeridos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// List devuelve las ventas más recientes. GET /api/sales
func (h *SalesHandler) List(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	q.DefaultLimit()
	list, err := h.uc.List(c.Context(), q.Limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
