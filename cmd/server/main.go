package main

import (
	"log"

	"github.com/anvers19/devfolio/backend/internal/router"
	"github.com/anvers19/devfolio/backend/pkg/config"
	"github.com/anvers19/devfolio/backend/pkg/events"
	"github.com/anvers19/devfolio/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Event bus: one instance shared by publishers and listeners
	bus := events.NewBus()
	// Let in-flight notification work settle before the process exits
	defer bus.Wait()

	// Create Echo instance
	e := echo.New()
	e.Debug = cfg.Env == "development"

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, db.Mongo, bus, cfg.UploadDir, cfg.JWTSecret)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
