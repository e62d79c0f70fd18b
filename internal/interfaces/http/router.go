package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercio-api/internal/application/alerts"
	"github.com/jhoicas/Comercio-api/internal/application/auth"
	"github.com/jhoicas/Comercio-api/internal/application/inventory"
	"github.com/jhoicas/Comercio-api/internal/application/usecase"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC        *usecase.CompanyUseCase
	WarehouseUC      *usecase.WarehouseUseCase
	ProductUC        *usecase.ProductUseCase
	SupplierUC       *usecase.SupplierUseCase
	BundleUC         *usecase.BundleUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	InventoryQuery   *inventory.QueryUseCase
	LowStockUC       *alerts.LowStockUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
	Log              *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Variante del reporte con empresa explícita en la ruta
	alertHandler := NewAlertHandler(deps.LowStockUC, deps.Log)
	companies.Get("/:id/alerts/low-stock", alertHandler.GetLowStockByCompany)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", RequireRole(entity.RoleAdmin), warehouseHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Bundles (protegido): componentes de un producto tipo bundle
	bundleHandler := NewBundleHandler(deps.BundleUC)
	products.Put("/:id/bundle", bundleHandler.SetComponents)
	products.Get("/:id/bundle", bundleHandler.GetComponents)

	// Inventory (protegido): movimientos, stock e historial
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.InventoryQuery)
	invGroup.Post("/movements", RequireRole(entity.RoleAdmin, entity.RoleBodeguero, entity.RoleVendedor), inventoryHandler.RegisterMovement)
	invGroup.Get("/:product_id/stock", inventoryHandler.GetStock)
	invGroup.Get("/:product_id/history", inventoryHandler.GetHistory)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)
	suppliers.Put("/:id/products/:product_id", supplierHandler.LinkProduct)
	suppliers.Delete("/:id/products/:product_id", supplierHandler.UnlinkProduct)

	// Alerts (protegido): reporte de bajo stock de la empresa del token
	alertsGroup := protected.Group("/alerts")
	alertsGroup.Get("/low-stock", alertHandler.GetLowStock)
	alertsGroup.Get("/low-stock/pdf", alertHandler.GetLowStockPDF)
}
