package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sistock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          AuthService
	UserUC          UserService
	ProductUC       ProductService
	CategoryUC      CategoryService
	MovementUC      MovementService
	AlertUC         AlertService
	JWTSecret       string
	DefaultPageSize int
	MaxPageSize     int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token y cuenta activa)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireActiveAccount(deps.UserUC))
	adminOnly := RequireRole(entity.RoleAdmin)
	catalogEditors := RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Usuarios
	protected.Post("/auth/users", adminOnly, authHandler.ProvisionUser)
	protected.Get("/users/me", authHandler.Me)
	protected.Delete("/users/:id", adminOnly, authHandler.DeleteUser)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.DefaultPageSize, deps.MaxPageSize)
	inventoryHandler := NewInventoryHandler(deps.MovementUC, deps.AlertUC)
	products.Get("/", productHandler.List)
	products.Post("/", catalogEditors, productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/balance", inventoryHandler.Balance)
	products.Patch("/:id", catalogEditors, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Categorías
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.DefaultPageSize, deps.MaxPageSize)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", catalogEditors, categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Inventario: cualquier rol puede proponer; el gate decide qué tipos admite cada uno.
	invGroup := protected.Group("/inventory")
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/movements/:id", inventoryHandler.GetMovement)
	invGroup.Get("/alerts", inventoryHandler.ListAlerts)
	invGroup.Get("/summary", inventoryHandler.Summary)
}
