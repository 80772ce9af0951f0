package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vitasport-api/internal/application/dto"
	"github.com/jhoicas/vitasport-api/internal/application/usecase"
	"github.com/jhoicas/vitasport-api/internal/domain/repository"
)

// AnalyticsHandler consultas agregadas de ventas para el dashboard.
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// SalesByProduct ventas agregadas por producto, con filtros opcionales de
// fechas, categoría y orden (qty|revenue). GET /api/analytics/sales-by-product
func (h *AnalyticsHandler) SalesByProduct(c *fiber.Ctx) error {
	f, err := salesFilterFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas inválidas, formato YYYY-MM-DD"})
	}
	out, err := h.uc.SalesByProduct(c.Context(), f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SalesTrend serie diaria de los últimos N días (default 7).
// GET /api/analytics/sales-trend
func (h *AnalyticsHandler) SalesTrend(c *fiber.Ctx) error {
	days := c.QueryInt("days")
	out, err := h.uc.SalesTrend(c.Context(), days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SalesTotals totales del período. GET /api/analytics/sales-totals
func (h *AnalyticsHandler) SalesTotals(c *fiber.Ctx) error {
	f, err := salesFilterFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas inválidas, formato YYYY-MM-DD"})
	}
	out, err := h.uc.SalesTotals(c.Context(), f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// salesFilterFromQuery arma el filtro desde start_date, end_date, category,
// order_by y limit.
func salesFilterFromQuery(c *fiber.Ctx) (repository.SalesFilter, error) {
	f := repository.SalesFilter{
		Category: c.Query("category"),
		OrderBy:  c.Query("order_by"),
		Limit:    c.QueryInt("limit"),
	}
	var err error
	if f.StartDate, err = parseOptionalDate(c.Query("start_date")); err != nil {
		return f, err
	}
	if f.EndDate, err = parseOptionalDate(c.Query("end_date")); err != nil {
		return f, err
	}
	return f, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
