package handlers

import (
	"net/http"
	"time"

	"hackmonitor-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	teamService service.TeamServiceInterface
	version     string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(teamService service.TeamServiceInterface, version string) *HealthHandler {
	return &HealthHandler{
		teamService: teamService,
		version:     version,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	status := h.teamService.RefreshStatus()
	refresh := "idle"
	if status.InFlight {
		refresh = "refreshing"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   h.version,
		Services: map[string]string{
			"team_store": "healthy",
			"refresh":    refresh,
		},
	})
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the application is ready to serve requests
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	// The store is in memory; serving requests only needs the process
	c.JSON(http.StatusOK, map[string]interface{}{
		"ready":     true,
		"timestamp": time.Now(),
		"services":  map[string]string{"team_store": "ready"},
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
