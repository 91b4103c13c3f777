package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/punto-venta/internal/application/analytics"
	"github.com/jhoicas/punto-venta/internal/application/auth"
	"github.com/jhoicas/punto-venta/internal/application/product"
	"github.com/jhoicas/punto-venta/internal/application/purchase"
	"github.com/jhoicas/punto-venta/internal/application/sale"
	"github.com/jhoicas/punto-venta/internal/application/stock"
	"github.com/jhoicas/punto-venta/internal/application/usecase"
	infrapdf "github.com/jhoicas/punto-venta/internal/infrastructure/pdf"
	"github.com/jhoicas/punto-venta/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/punto-venta/internal/interfaces/http"
	"github.com/jhoicas/punto-venta/pkg/config"
	"github.com/jhoicas/punto-venta/pkg/logger"
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

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	invLogRepo := postgres.NewInventoryLogRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	materialRepo := postgres.NewProductMaterialRepository(pool)
	prodLogRepo := postgres.NewProductLogRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockEngine := stock.NewEngine(txRunner)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, invLogRepo, txRunner)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	productUC := product.NewUseCase(txRunner, productRepo, materialRepo, categoryRepo, prodLogRepo)
	purchaseUC := purchase.NewUseCase(txRunner, purchaseRepo)
	receiptGen := infrapdf.NewReceiptGenerator(cfg.App.BusinessName)
	saleUC := sale.NewUseCase(txRunner, saleRepo, receiptGen)
	analyticsUC := analytics.NewUseCase(analyticsRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Punto de Venta API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		InventoryUC: inventoryUC,
		CategoryUC:  categoryUC,
		ProductUC:   productUC,
		PurchaseUC:  purchaseUC,
		SaleUC:      saleUC,
		AnalyticsUC: analyticsUC,
		StockEngine: stockEngine,
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
