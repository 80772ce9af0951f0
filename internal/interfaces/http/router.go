package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vitasport-api/internal/application/auth"
	"github.com/jhoicas/vitasport-api/internal/application/inventory"
	"github.com/jhoicas/vitasport-api/internal/application/reports"
	"github.com/jhoicas/vitasport-api/internal/application/sales"
	"github.com/jhoicas/vitasport-api/internal/application/usecase"
	"github.com/jhoicas/vitasport-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	ProductUC   *usecase.ProductUseCase
	MovementUC  *inventory.MovementUseCase
	SettleUC    *sales.SettleUseCase
	CashUC      *usecase.CashUseCase
	AnalyticsUC *usecase.AnalyticsUseCase
	Exporter    *reports.Exporter
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (solo Administrador)
	users := protected.Group("/users", RequireRole(entity.RoleAdministrador))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Inventory: historial de stock y saldos (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.MovementUC)
	invGroup.Post("/movements", inventoryHandler.Append)
	invGroup.Get("/movements", inventoryHandler.List)
	invGroup.Get("/balances", inventoryHandler.Balances)
	invGroup.Get("/balances/:product_id", inventoryHandler.Balance)

	// Sales: liquidación atómica (protegido)
	salesGroup := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.SettleUC)
	salesGroup.Post("/", salesHandler.Settle)
	salesGroup.Get("/", salesHandler.List)

	// Cash movements (protegido)
	cash := protected.Group("/cash")
	cashHandler := NewCashHandler(deps.CashUC)
	cash.Post("/movements", cashHandler.Create)
	cash.Get("/movements", cashHandler.List)
	cash.Get("/summary", cashHandler.Summary)

	// Analytics (protegido)
	analytics := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	analytics.Get("/sales-by-product", analyticsHandler.SalesByProduct)
	analytics.Get("/sales-trend", analyticsHandler.SalesTrend)
	analytics.Get("/sales-totals", analyticsHandler.SalesTotals)

	// Reports CSV (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.Exporter)
	reportsGroup.Get("/sales", reportHandler.Sales)
	reportsGroup.Get("/inventory", reportHandler.Inventory)
	reportsGroup.Get("/top-products", reportHandler.TopProducts)
	reportsGroup.Get("/stock-movements", reportHandler.StockMovements)
	reportsGroup.Get("/profitability", reportHandler.Profitability)
	reportsGroup.Get("/financial", reportHandler.Financial)
}
