package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/vitasport-api/internal/application/auth"
	"github.com/jhoicas/vitasport-api/internal/application/inventory"
	"github.com/jhoicas/vitasport-api/internal/application/reports"
	"github.com/jhoicas/vitasport-api/internal/application/sales"
	"github.com/jhoicas/vitasport-api/internal/application/usecase"
	"github.com/jhoicas/vitasport-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/vitasport-api/internal/interfaces/http"
	"github.com/jhoicas/vitasport-api/pkg/config"
	"github.com/jhoicas/vitasport-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración de esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	cashRepo := postgres.NewCashMovementRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Primer arranque: si no hay usuarios, se siembra el administrador.
	created, err := authUC.EnsureDefaultAdmin(ctx, cfg.App.AdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("siembra del usuario administrador")
	}
	if created {
		log.Info().Str("username", "admin").Msg("usuario administrador creado")
	}

	userUC := usecase.NewUserUseCase(userRepo)
	productUC := usecase.NewProductUseCase(productRepo, txRunner)
	movementUC := inventory.NewMovementUseCase(movementRepo)
	settleUC := sales.NewSettleUseCase(txRunner, saleRepo)
	cashUC := usecase.NewCashUseCase(cashRepo, analyticsRepo)
	analyticsUC := usecase.NewAnalyticsUseCase(analyticsRepo)
	exporter := reports.NewExporter(productRepo, movementRepo, saleRepo, analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		ProductUC:   productUC,
		MovementUC:  movementUC,
		SettleUC:    settleUC,
		CashUC:      cashUC,
		AnalyticsUC: analyticsUC,
		Exporter:    exporter,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
