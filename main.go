// File: /main.go
package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"sailshare-api/config"
	"sailshare-api/database"
	"sailshare-api/jobs"
	"sailshare-api/middleware"
	"sailshare-api/routes"
	"sailshare-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Services
	emailService := services.NewEmailService(cfg)
	uploadService := services.NewUploadService(cfg)
	geocodeService := services.NewGeocodeService(cfg.GeoapifyKey)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := uploadService.EnsureBucket(ctx); err != nil {
		log.Printf("Warning: object storage unavailable: %v", err)
	}
	cancel()

	// Background jobs
	tokenCleanup := jobs.NewTokenCleanupJob(db, time.Hour)
	tokenCleanup.Start()
	defer tokenCleanup.Stop()

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.ClientURL))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit(120, 30))

	// Setup routes
	routes.SetupRoutes(router, db, cfg, emailService, uploadService, geocodeService)

	log.Printf("Starting SailShare API server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
