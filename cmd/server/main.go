package main

import (
	"log"

	"hackmonitor-backend/internal/api/routes"
	"hackmonitor-backend/internal/config"
	"hackmonitor-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

//	@title			Hackathon Monitor Backend API
//	@version		1.0
//	@description	Tracks hackathon teams' GitHub repositories: onboarding, live refresh, filtering and export.

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
	logger.Setup(cfg.LogLevel)

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize routes:", err)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	logrus.WithFields(logrus.Fields{
		"port":        port,
		"concurrency": cfg.RefreshConcurrency,
		"teams_api":   cfg.TeamsAPIURL != "",
	}).Info("Starting server")
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
