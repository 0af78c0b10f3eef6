package routes

import (
	"fmt"
	"net/http"

	"hackmonitor-backend/internal/api/handlers"
	"hackmonitor-backend/internal/api/middleware"
	"hackmonitor-backend/internal/config"
	"hackmonitor-backend/internal/logger"
	"hackmonitor-backend/internal/repository"
	"hackmonitor-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Version is reported by the health endpoint
var Version = "dev"

// SetupRoutes wires the services and configures all the routes for the
// application
func SetupRoutes(cfg *config.Config) (*gin.Engine, error) {
	hackathonStart, err := cfg.HackathonStartTime()
	if err != nil {
		return nil, err
	}

	// Initialize validator
	validator := validator.New()

	// Bundled dataset, read once. Without it reload falls back to an empty list.
	bundled, err := service.LoadBundledTeams(cfg.BundledDataPath)
	if err != nil {
		logger.New().WithError(err).WithField("path", cfg.BundledDataPath).Warn("Bundled team dataset not loaded")
		bundled = nil
	}

	// Initialize services
	githubService, err := service.NewGitHubService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}
	if cfg.GitHubToken == "" {
		logger.New().Warn("GITHUB_TOKEN not set, hosting API requests are anonymous and rate limited")
	}

	var teamsSource service.TeamsSource
	if cfg.TeamsAPIURL != "" {
		teamsSource = service.NewTeamsAPIClient(cfg.TeamsAPIURL, cfg.HTTPTimeout())
	}

	teamRepo := repository.NewTeamRepository()
	refresher := service.NewRefresher(githubService, cfg.RefreshConcurrency)
	reconciler := service.NewReconciler(teamRepo, refresher)
	teamService := service.NewTeamService(teamRepo, reconciler, teamsSource, bundled, hackathonStart, validator)
	onboardingService := service.NewOnboardingService(service.NewImportService(validator), teamService)

	return NewRouter(cfg, teamService, onboardingService), nil
}

// NewRouter builds the router around already wired services
func NewRouter(cfg *config.Config, teamService service.TeamServiceInterface, onboardingService service.OnboardingServiceInterface) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(teamService, Version)
	teamHandler := handlers.NewTeamHandler(teamService)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		// Onboarding routes
		onboarding := v1.Group("/onboarding")
		{
			onboarding.GET("", onboardingHandler.GetState)
			onboarding.POST("/csv", onboardingHandler.ImportCSV)
			onboarding.POST("/teams", onboardingHandler.AddTeam)
			onboarding.PUT("/teams/:index/class", onboardingHandler.AssignClass)
			onboarding.PUT("/hackathon-start", onboardingHandler.SetHackathonStart)
			onboarding.POST("/next", onboardingHandler.Next)
			onboarding.POST("/back", onboardingHandler.Back)
			onboarding.POST("/commit", onboardingHandler.Commit)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.AddTeam)
			teams.GET("/export", teamHandler.Export)
			teams.GET("/stats", teamHandler.Stats)
			teams.POST("/reload", teamHandler.Reload)
			teams.POST("/refresh", teamHandler.RefreshAll)
			teams.POST("/refresh/filtered", teamHandler.RefreshFiltered)
			teams.GET("/:name", teamHandler.GetTeam)
			teams.PUT("/:name/class", teamHandler.UpdateClass)
		}

		v1.PUT("/selection", teamHandler.Select)
		v1.GET("/refresh/status", teamHandler.RefreshStatus)
		v1.GET("/hackathon-start", teamHandler.GetHackathonStart)
		v1.PUT("/hackathon-start", teamHandler.SetHackathonStart)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(string(logger.RequestIDKey)),
		})
	})

	return router
}
