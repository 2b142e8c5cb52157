package routes

import (
	"repairdesk/internal/adapters/http/handlers"
	"repairdesk/internal/adapters/http/middleware"
	"repairdesk/internal/adapters/persistence/repositories"
	"repairdesk/internal/config"
	"repairdesk/internal/core/services"
	"repairdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup wires repositories, services and handlers and registers all routes.
// publisher may be nil when no broker is configured.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, publisher services.ReportEventPublisher) {
	// Repositories
	adminRepo := repositories.NewAdminRepository(db)
	reportRepo := repositories.NewReportRepository(db)

	// Services
	authService := services.NewAuthService(adminRepo, cfg)
	reportService := services.NewReportService(reportRepo, publisher)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	reportHandler := handlers.NewReportHandler(reportService)

	app.Get("/health", healthHandler.HealthCheck)

	api := app.Group("/api")

	// Admin registration and login
	admin := api.Group("/admin", middleware.AuthRateLimiter())
	admin.Post("/register", authHandler.Register)
	admin.Post("/login", authHandler.Login)

	// Public report submission
	devices := api.Group("/devices")
	devices.Post("/report", reportHandler.Create)

	// Report management, gated behind the auth middleware
	reports := devices.Group("/reports", middleware.AuthRequired(cfg, adminRepo))
	reports.Get("/", reportHandler.List)
	reports.Get("/:id", reportHandler.GetByID)
	reports.Put("/:id", reportHandler.Update)
	reports.Delete("/:id", reportHandler.Delete)

	// Catch-all, must be registered last
	app.Use(func(c *fiber.Ctx) error {
		return response.NotFound(c, "Route not found")
	})
}
