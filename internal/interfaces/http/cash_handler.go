package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vitasport-api/internal/application/dto"
	"github.com/jhoicas/vitasport-api/internal/application/usecase"
	"github.com/jhoicas/vitasport-api/internal/domain"
)

// CashHandler maneja los movimientos de caja y su resumen financiero.
type CashHandler struct {
	uc *usecase.CashUseCase
}

func NewCashHandler(uc *usecase.CashUseCase) *CashHandler {
	return &CashHandler{uc: uc}
}

// Create registra un ingreso o egreso de caja. POST /api/cash/movements
func (h *CashHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCashMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.Create(c.Context(), actorID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type (ingreso|egreso), amount > 0 y movement_date (YYYY-MM-DD) son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// List devuelve los movimientos de caja más recientes. GET /api/cash/movements
func (h *CashHandler) List(c *fiber.Ctx) error {
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

// Summary devuelve ingresos (ventas + caja), egresos y balance.
// GET /api/cash/summary
func (h *CashHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}
