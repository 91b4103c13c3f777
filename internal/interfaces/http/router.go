package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/punto-venta/internal/application/analytics"
	"github.com/jhoicas/punto-venta/internal/application/auth"
	"github.com/jhoicas/punto-venta/internal/application/product"
	"github.com/jhoicas/punto-venta/internal/application/purchase"
	"github.com/jhoicas/punto-venta/internal/application/sale"
	"github.com/jhoicas/punto-venta/internal/application/stock"
	"github.com/jhoicas/punto-venta/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	UserUC      *usecase.UserUseCase
	InventoryUC *usecase.InventoryUseCase
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *product.UseCase
	PurchaseUC  *purchase.UseCase
	SaleUC      *sale.UseCase
	AnalyticsUC *analytics.UseCase
	StockEngine *stock.Engine
	JWTSecret   string
}

// Router registra las rutas de la API. Las rutas fijas van antes que /:id
// dentro de cada grupo.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil del usuario autenticado
	protected.Get("/profile", authHandler.GetProfile)
	protected.Put("/profile", authHandler.UpdateProfile)

	// Usuarios
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Delete("/:id", userHandler.Delete)

	// Inventarios
	inventories := protected.Group("/inventories")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.StockEngine)
	inventories.Get("/", inventoryHandler.List)
	inventories.Get("/all", inventoryHandler.ListAll)
	inventories.Get("/logs", inventoryHandler.Logs)
	inventories.Post("/manage", inventoryHandler.ManageStock)
	inventories.Post("/", inventoryHandler.Create)
	inventories.Get("/:id", inventoryHandler.GetByID)
	inventories.Put("/:id", inventoryHandler.Update)
	inventories.Delete("/:id", inventoryHandler.Delete)

	// Productos
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.StockEngine, deps.AnalyticsUC)
	products.Get("/", productHandler.List)
	products.Get("/best-selling", productHandler.BestSelling)
	products.Get("/logs", productHandler.Logs)
	products.Post("/manage", productHandler.ManageStock)
	products.Post("/reset", productHandler.ResetStock)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categorías
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Compras
	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)

	// Ventas
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.AnalyticsUC)
	sales.Get("/", saleHandler.List)
	sales.Get("/total", saleHandler.Total)
	sales.Get("/profit", saleHandler.Profit)
	sales.Post("/", saleHandler.Create)
	sales.Get("/:id/receipt", saleHandler.Receipt)
}
