package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vitasport-api/internal/application/dto"
	"github.com/jhoicas/vitasport-api/internal/application/reports"
)

// ReportHandler exporta reportes CSV descargables.
type ReportHandler struct {
	exporter *reports.Exporter
}

func NewReportHandler(exporter *reports.Exporter) *ReportHandler {
	return &ReportHandler{exporter: exporter}
}

// Sales reporte de ventas, filtrable por fechas. GET /api/reports/sales
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	from, err := parseOptionalDate(c.Query("start_date"))
	if err != nil {
		return badDates(c)
	}
	to, err := parseOptionalDate(c.Query("end_date"))
	if err != nil {
		return badDates(c)
	}
	data, err := h.exporter.SalesCSV(c.Context(), from, to)
	if err != nil {
		return internal(c, err)
	}
	return sendCSV(c, "sales_report", data)
}

// Inventory reporte del catálogo con stock actual. GET /api/reports/inventory
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	data, err := h.exporter.InventoryCSV(c.Context())
	if err != nil {
		return internal(c, err)
	}
	return sendCSV(c, "inventory_report", data)
}

// TopProducts ranking de productos por ingreso. GET /api/reports/top-products
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	data, err := h.exporter.TopProductsCSV(c.Context())
	if err != nil {
		return internal(c, err)
	}
	return sendCSV(c, "top_products_report", data)
}

// StockMovements historial completo de movimientos.
// GET /api/reports/stock-movements
func (h *ReportHandler) StockMovements(c *fiber.Ctx) error {
	data, err := h.exporter.StockMovementsCSV(c.Context())
	if err != nil {
		return internal(c, err)
	}
	return sendCSV(c, "stock_movements_report", data)
}

// Profitability margen por producto vendido. GET /api/reports/profitability
func (h *ReportHandler) Profitability(c *fiber.Ctx) error {
	data, err := h.exporter.ProfitabilityCSV(c.Context())
	if err != nil {
		return internal(c, err)
	}
	return sendCSV(c, "profitability_report", data)
}

// Financial resumen financiero del período. GET /api/reports/financial
func (h *ReportHandler) Financial(c *fiber.Ctx) error {
	from, err := parseOptionalDate(c.Query("start_date"))
	if err != nil {
		return badDates(c)
	}
	to, err := parseOptionalDate(c.Query("end_date"))
	if err != nil {
		return badDates(c)
	}
	data, err := h.exporter.FinancialCSV(c.Context(), from, to)
	if err != nil {
		return internal(c, err)
	}
	return sendCSV(c, "financial_report", data)
}

func sendCSV(c *fiber.Ctx, prefix string, data []byte) error {
	filename := fmt.Sprintf("%s_%d.csv", prefix, time.Now().Unix())
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}

func badDates(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas inválidas, formato YYYY-MM-DD"})
}

func internal(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
