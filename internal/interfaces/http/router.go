package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/costcenter"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/transfer"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	WarehouseUC  *usecase.WarehouseUseCase
	UserUC       *usecase.UserUseCase
	CostCenterUC *costcenter.UseCase
	InventoryUC  *inventory.UseCase
	TransferUC   *transfer.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login es público; logout y me requieren sesión.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (Bearer Token o cookie de sesión)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Put("/:id/barcode", productHandler.AssignBarcode)
	products.Get("/:id/price", productHandler.CurrentPrice)
	products.Put("/:id/price", productHandler.SetPrice)

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", RequireRole(entity.RoleAdmin), warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", RequireRole(entity.RoleAdmin), warehouseHandler.Update)
	warehouses.Delete("/:id", RequireRole(entity.RoleAdmin), warehouseHandler.Delete)

	// Cost centers (solo admin): bootstrap de bodegas por centro de costo
	costCenters := protected.Group("/cost-centers", RequireRole(entity.RoleAdmin))
	costCenterHandler := NewCostCenterHandler(deps.CostCenterUC)
	costCenters.Post("/", costCenterHandler.Create)

	// Inventory: saldos, stock bajo y export (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Get("/low-stock", inventoryHandler.LowStock)
	invGroup.Get("/export", inventoryHandler.Export)
	invGroup.Get("/warehouse/:id", inventoryHandler.ByWarehouse)
	invGroup.Get("/product/:id", inventoryHandler.ByProduct)

	// Movements: libro mayor (protegido)
	movementHandler := NewMovementHandler(deps.InventoryUC)
	movements := protected.Group("/inventory-movements")
	movements.Post("/", movementHandler.Register)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	protected.Post("/stock-entry", movementHandler.StockEntry)
	protected.Post("/product-entry", movementHandler.ProductEntry)

	// Transfer orders: la decisión es de project manager o admin
	transfers := protected.Group("/transfer-orders")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Post("/", transferHandler.Create)
	transfers.Get("/", transferHandler.List)
	transfers.Get("/:id", transferHandler.GetByID)
	transfers.Patch("/:id/status", RequireRole(entity.RoleProjectManager, entity.RoleAdmin), transferHandler.SetStatus)

	// Users (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Put("/:id/permissions", userHandler.SetPermissions)
	users.Delete("/:id", userHandler.Delete)
}
