package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmrios/agropos-api/internal/application/auth"
	"github.com/jmrios/agropos-api/internal/application/inventory"
	"github.com/jmrios/agropos-api/internal/application/sales"
	"github.com/jmrios/agropos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	ProductUC  *usecase.ProductUseCase
	CustomerUC *usecase.CustomerUseCase
	LedgerUC   *inventory.LedgerUseCase
	SaleUC     *sales.SaleUseCase
	PDFUC      *sales.PDFUseCase
	ReportUC   *usecase.ReportUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Todas las lecturas quedan abiertas a
// cualquier usuario autenticado; las escrituras requieren rol ADMIN.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	admin := RequireAdmin()

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Auditoría de logins (solo ADMIN)
	protected.Get("/audits", admin, authHandler.ListAudits)

	// Users (solo ADMIN)
	users := protected.Group("/users", admin)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Patch("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.LedgerUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/movements", productHandler.ListMovements)
	products.Post("/", admin, productHandler.Create)
	products.Put("/:id", admin, productHandler.Update)
	products.Delete("/:id", admin, productHandler.Delete)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Post("/", admin, customerHandler.Create)
	customers.Put("/:id", admin, customerHandler.Update)
	customers.Delete("/:id", admin, customerHandler.Delete)

	// Inventory (entradas de mercancía)
	inventoryHandler := NewInventoryHandler(deps.LedgerUC)
	protected.Post("/stock-in", admin, inventoryHandler.StockIn)

	// Sales
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.PDFUC)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/pdf", saleHandler.DownloadPDF)
	salesGroup.Post("/", admin, saleHandler.Create)

	// Payments (abonos sobre ventas)
	paymentHandler := NewPaymentHandler(deps.SaleUC)
	salesGroup.Get("/:id/payments", paymentHandler.List)
	salesGroup.Post("/:id/payments", admin, paymentHandler.Create)

	// Reports
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/sales", reportHandler.Sales)
	reports.Get("/stock-in", reportHandler.StockIn)
	reports.Get("/total-sales", reportHandler.TotalSales)
	reports.Get("/profit", reportHandler.Profit)
}
