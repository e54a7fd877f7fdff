package main

import (
	"log"

	"agroskills/backend/catalog"
	"agroskills/backend/config"
	"agroskills/backend/middleware"
	"agroskills/backend/routes"
	"agroskills/backend/state"
	"agroskills/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Build the catalog and the session state on top of it
	store := catalog.NewStore()
	st := state.NewManager(store, catalog.SeedProgress())

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, st, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
