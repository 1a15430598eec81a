package main

import (
	"log"

	"foundation-registry/internal/api/routes"
	"foundation-registry/internal/config"
	"foundation-registry/internal/database"
	"foundation-registry/internal/logger"
	"foundation-registry/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

//	@title			Foundation Registry API
//	@version		1.0
//	@description	Registry of support foundations identified by CNPJ.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel, nil)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseDriver, cfg.DSN(), &database.Options{SkipMigrate: true})
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}
	defer database.Close(db)

	// The schema must exist before the first request
	if err := repository.NewFoundationRepository(db, cfg.FieldPolicy()).EnsureSchema(); err != nil {
		logrus.Fatal("Failed to create schema:", err)
	}

	logrus.WithFields(logrus.Fields{
		"driver":       cfg.DatabaseDriver,
		"field_policy": cfg.FieldPolicy(),
	}).Info("Foundation store ready")

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
