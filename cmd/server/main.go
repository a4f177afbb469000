package main

import (
	"log"
	"strings"

	"honeyworks-backend/internal/admin"
	"honeyworks-backend/internal/alerts"
	"honeyworks-backend/internal/analytics"
	"honeyworks-backend/internal/apperr"
	"honeyworks-backend/internal/auth"
	"honeyworks-backend/internal/catalog"
	"honeyworks-backend/internal/config"
	"honeyworks-backend/internal/database"
	"honeyworks-backend/internal/i18n"
	"honeyworks-backend/internal/logger"
	"honeyworks-backend/internal/materials"
	"honeyworks-backend/internal/models"
	"honeyworks-backend/internal/production"
	"honeyworks-backend/internal/reports"
	"honeyworks-backend/internal/sales"
	"honeyworks-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			// Domain errors carry their own status and message key; the raw
			// store error never reaches the client.
			status := apperr.HTTPStatus(err)
			if status == fiber.StatusInternalServerError {
				logger.LogError("server", "ErrorHandler", nil, err)
			}
			return c.Status(status).JSON(fiber.Map{
				"error": i18n.M(c, apperr.MessageKey(err)),
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Language",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Raw materials
	protected.Get("/materials", materials.ListMaterialsHandler())
	protected.Put("/materials/:id", materials.UpdateMaterialHandler())
	protected.Post("/materials/:id/receive", materials.ReceiveMaterialHandler())

	// Product catalog & recipes
	protected.Get("/products", catalog.ListProductsHandler())
	protected.Get("/products/:id/bom", catalog.GetBOMHandler())

	// Production
	protected.Post("/production", production.RecordProductionHandler())
	protected.Get("/production", production.ListProductionHandler())
	protected.Get("/production/requirements", production.ResolveRequirementsHandler())

	// Sales
	protected.Post("/sales", sales.RecordSaleHandler())
	protected.Get("/sales", sales.ListSalesHandler())

	// Customers & suppliers
	protected.Get("/customers", admin.ListCustomersHandler())
	protected.Post("/customers", admin.CreateCustomerHandler())
	protected.Put("/customers/:id", admin.UpdateCustomerHandler())
	protected.Get("/customers/:id/transactions", admin.ListCustomerTransactionsHandler())
	protected.Post("/customers/:id/payments", admin.CreateCustomerPaymentHandler())
	protected.Get("/customers/:id/analytics", analytics.CustomerAnalyticsHandler())

	protected.Get("/suppliers", admin.ListSuppliersHandler())
	protected.Post("/suppliers", admin.CreateSupplierHandler())
	protected.Put("/suppliers/:id", admin.UpdateSupplierHandler())
	protected.Get("/suppliers/:id/transactions", admin.ListSupplierTransactionsHandler())
	protected.Post("/suppliers/:id/payments", admin.CreateSupplierPaymentHandler())

	// Alerts & audit trail
	protected.Get("/alerts/low-stock", alerts.LowStockHandler())
	protected.Get("/stock-movements", stock.ListMovementsHandler())

	// Reports
	protected.Get("/reports/sales/export", reports.ExportSalesHandler())

	// Admin-only routes
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	adminRoutes.Post("/materials", materials.CreateMaterialHandler())
	adminRoutes.Delete("/materials/:id", materials.DeleteMaterialHandler())
	adminRoutes.Post("/products", catalog.CreateProductHandler())
	adminRoutes.Put("/products/:id", catalog.UpdateProductHandler())
	adminRoutes.Delete("/products/:id", catalog.DeleteProductHandler())
	adminRoutes.Put("/products/:id/bom", catalog.SetBOMHandler())
	adminRoutes.Delete("/customers/:id", admin.DeleteCustomerHandler())
	adminRoutes.Delete("/suppliers/:id", admin.DeleteSupplierHandler())
	adminRoutes.Post("/reset-data", admin.ResetDataHandler())

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
