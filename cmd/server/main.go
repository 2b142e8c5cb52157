package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"repairdesk/internal/adapters/http/middleware"
	"repairdesk/internal/adapters/http/routes"
	"repairdesk/internal/adapters/persistence/models"
	"repairdesk/internal/adapters/persistence/repositories"
	"repairdesk/internal/config"
	"repairdesk/internal/core/services"
	"repairdesk/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}
	log.Println("Database migration completed")

	// Optional report event broker
	var publisher services.ReportEventPublisher
	if cfg.Events.RabbitMQURL != "" {
		mq, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.Events.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer mq.Close()
		publisher = mq
	}

	// Optional retention sweep
	retention := services.NewRetentionService(repositories.NewReportRepository(db), cfg)
	if err := retention.Start(); err != nil {
		log.Fatalf("Failed to start retention sweep: %v", err)
	}
	defer retention.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "repairdesk",
		ErrorHandler: middleware.ErrorHandler,
	})

	middleware.Setup(app, cfg)
	routes.Setup(app, db, cfg, publisher)

	go gracefulShutdown(app)

	log.Printf("Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// gracefulShutdown stops the server on SIGINT/SIGTERM
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}
