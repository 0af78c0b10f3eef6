package handlers

import (
	"bytes"
	"net/http"
	"time"

	"hackmonitor-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for the team dashboard
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// SelectionRequest selects a team in the dashboard
type SelectionRequest struct {
	Name string `json:"name" binding:"required"`
}

// HackathonStartRequest sets the hackathon start time
type HackathonStartRequest struct {
	HackathonStart string `json:"hackathon_start" binding:"required"`
}

// HackathonStartResponse reports the hackathon start time
type HackathonStartResponse struct {
	HackathonStart time.Time `json:"hackathon_start"`
}

// ListTeams handles GET /teams
// @Summary List teams
// @Description Get the filtered and sorted team list
// @Tags teams
// @Produce json
// @Param search query string false "Case-insensitive name substring"
// @Param status query string false "Status label or all"
// @Param fork query string false "all, fork or original"
// @Param class query string false "Class label, Unassigned or all"
// @Param preexisting query string false "all, pre or fresh"
// @Param pace query string false "all, onpace, late or none"
// @Param sort query string false "name or recent"
// @Success 200 {object} service.TeamListResponse "Successfully retrieved teams"
// @Failure 400 {object} map[string]interface{} "Invalid filter criteria"
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	var criteria service.FilterCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.teamService.ListTeams(criteria)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// AddTeam handles POST /teams
// @Summary Add a team
// @Description Add a team to the dashboard and select it
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.AddTeamRequest true "Team data"
// @Success 201 {object} models.TeamRecord "Successfully added team"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Team already exists"
// @Router /teams [post]
func (h *TeamHandler) AddTeam(c *gin.Context) {
	var req service.AddTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.AddTeam(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /teams/:name
// @Summary Get team by name
// @Tags teams
// @Produce json
// @Param name path string true "Team name"
// @Success 200 {object} models.TeamRecord "Successfully retrieved team"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Router /teams/{name} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	team, err := h.teamService.GetTeam(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// UpdateClass handles PUT /teams/:name/class
// @Summary Reassign a team's class
// @Tags teams
// @Accept json
// @Produce json
// @Param name path string true "Team name"
// @Param class body service.UpdateClassRequest true "Class label"
// @Success 200 {object} models.TeamRecord "Successfully updated class"
// @Failure 400 {object} map[string]interface{} "Unknown class"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Router /teams/{name}/class [put]
func (h *TeamHandler) UpdateClass(c *gin.Context) {
	var req service.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.UpdateClass(c.Param("name"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// Reload handles POST /teams/reload
// @Summary Reload the team list
// @Description Reload teams from the teams API, falling back to the current or bundled list, and schedule a full refresh
// @Tags teams
// @Produce json
// @Success 202 {object} service.ReloadResponse "Reload scheduled"
// @Router /teams/reload [post]
func (h *TeamHandler) Reload(c *gin.Context) {
	response, err := h.teamService.Reload(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, response)
}

// RefreshAll handles POST /teams/refresh
// @Summary Refresh every team
// @Tags teams
// @Produce json
// @Success 202 {object} service.RefreshResponse "Refresh scheduled"
// @Router /teams/refresh [post]
func (h *TeamHandler) RefreshAll(c *gin.Context) {
	response, err := h.teamService.RefreshAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, response)
}

// RefreshFiltered handles POST /teams/refresh/filtered
// @Summary Refresh the filtered teams
// @Description Refresh the teams matching the filter criteria given as query parameters
// @Tags teams
// @Produce json
// @Success 202 {object} service.RefreshResponse "Refresh scheduled"
// @Failure 400 {object} map[string]interface{} "Invalid filter criteria"
// @Router /teams/refresh/filtered [post]
func (h *TeamHandler) RefreshFiltered(c *gin.Context) {
	var criteria service.FilterCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.teamService.RefreshFiltered(c.Request.Context(), criteria)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, response)
}

// Export handles GET /teams/export
// @Summary Export class assignments
// @Tags teams
// @Produce text/csv
// @Success 200 {string} string "CSV export"
// @Router /teams/export [get]
func (h *TeamHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.teamService.ExportCSV(&buf); err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+service.ExportFileName+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Stats handles GET /teams/stats
// @Summary Dashboard statistics
// @Tags teams
// @Produce json
// @Success 200 {object} service.DashboardStats "Statistics over every team"
// @Router /teams/stats [get]
func (h *TeamHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.teamService.Stats())
}

// Select handles PUT /selection
// @Summary Select a team
// @Tags teams
// @Accept json
// @Produce json
// @Param selection body SelectionRequest true "Team name"
// @Success 200 {object} map[string]interface{} "Team selected"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Router /selection [put]
func (h *TeamHandler) Select(c *gin.Context) {
	var req SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.teamService.Select(req.Name); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"selected": req.Name})
}

// RefreshStatus handles GET /refresh/status
// @Summary Refresh status
// @Description Report whether a refresh is in flight and the outcome of the last merge
// @Tags refresh
// @Produce json
// @Success 200 {object} service.RefreshStatus "Refresh status"
// @Router /refresh/status [get]
func (h *TeamHandler) RefreshStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.teamService.RefreshStatus())
}

// GetHackathonStart handles GET /hackathon-start
// @Summary Get the hackathon start time
// @Tags teams
// @Produce json
// @Success 200 {object} HackathonStartResponse
// @Router /hackathon-start [get]
func (h *TeamHandler) GetHackathonStart(c *gin.Context) {
	c.JSON(http.StatusOK, HackathonStartResponse{HackathonStart: h.teamService.HackathonStart()})
}

// SetHackathonStart handles PUT /hackathon-start
// @Summary Set the hackathon start time
// @Tags teams
// @Accept json
// @Produce json
// @Param start body HackathonStartRequest true "Start time"
// @Success 200 {object} HackathonStartResponse
// @Failure 400 {object} map[string]interface{} "Invalid hackathon start date"
// @Router /hackathon-start [put]
func (h *TeamHandler) SetHackathonStart(c *gin.Context) {
	var req HackathonStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := service.ParseHackathonStart(req.HackathonStart)
	if err != nil {
		respondError(c, err)
		return
	}

	h.teamService.SetHackathonStart(start)
	c.JSON(http.StatusOK, HackathonStartResponse{HackathonStart: start})
}
