// Package routes defines the API routing configuration.
// It wires repositories, services and handlers and groups routes behind
// the auth middleware.
package routes

import (
	"lexofis/internal/config"
	"lexofis/internal/handlers"
	"lexofis/internal/middleware"
	"lexofis/internal/models"
	"lexofis/internal/repositories"
	"lexofis/internal/services/calculation"
	"lexofis/internal/services/feecalc"
	"lexofis/internal/services/tariff"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	table := tariff.NewTable()
	calculator := feecalc.NewCalculator(table, config.GetDecimalEnv("VAT_RATE", "18"))

	calcRepo := repositories.NewCalculationRepository(db)
	var calcCache calculation.Cache
	if repositories.CacheService != nil {
		calcCache = repositories.CacheService
	}
	recordService := calculation.NewService(calcRepo, calcCache, calculator)

	calcHandler := handlers.NewCalculationHandler(recordService)
	tariffHandler := handlers.NewTariffHandler(table)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api", middleware.Protected())

	api.Get("/tariffs", tariffHandler.ListTariffs)

	api.Post("/calculations/preview", calcHandler.Preview)
	api.Post("/calculations",
		middleware.RequirePermission(models.PermissionCalculationWrite),
		calcHandler.Create)
	api.Get("/calculations", calcHandler.List)
	api.Get("/calculations/:id", calcHandler.Get)
	api.Get("/calculations/:id/invoice-items", calcHandler.InvoiceItems)
	api.Delete("/calculations/:id",
		middleware.RequirePermission(models.PermissionCalculationWrite),
		calcHandler.Delete)
}
