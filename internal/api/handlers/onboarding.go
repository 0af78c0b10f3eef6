package handlers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"hackmonitor-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MaxCSVUploadBytes bounds an uploaded team CSV
const MaxCSVUploadBytes = 5 << 20

// OnboardingHandler handles HTTP requests for the onboarding flow
type OnboardingHandler struct {
	onboardingService service.OnboardingServiceInterface
}

// NewOnboardingHandler creates a new onboarding handler
func NewOnboardingHandler(onboardingService service.OnboardingServiceInterface) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingService: onboardingService,
	}
}

// ClassAssignmentRequest assigns a class to a staged team
type ClassAssignmentRequest struct {
	Class string `json:"class" binding:"required"`
}

// GetState handles GET /onboarding
// @Summary Onboarding state
// @Tags onboarding
// @Produce json
// @Success 200 {object} service.OnboardingState
// @Router /onboarding [get]
func (h *OnboardingHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.onboardingService.State())
}

// ImportCSV handles POST /onboarding/csv
// @Summary Import teams from CSV
// @Description Accepts a multipart "file" field or the CSV text as the request body
// @Tags onboarding
// @Accept multipart/form-data
// @Accept text/csv
// @Produce json
// @Param file formData file false "CSV file"
// @Success 200 {object} service.OnboardingState "Teams staged or committed"
// @Failure 400 {object} map[string]interface{} "CSV could not be parsed"
// @Failure 409 {object} map[string]interface{} "Not in the upload step"
// @Router /onboarding/csv [post]
func (h *OnboardingHandler) ImportCSV(c *gin.Context) {
	text, err := readCSVUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.onboardingService.ImportCSV(c.Request.Context(), text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

func readCSVUpload(c *gin.Context) (string, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxCSVUploadBytes)

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		header, err := c.FormFile("file")
		if err != nil {
			return "", err
		}
		file, err := header.Open()
		if err != nil {
			return "", err
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// AddTeam handles POST /onboarding/teams
// @Summary Stage a team by hand
// @Tags onboarding
// @Accept json
// @Produce json
// @Param team body service.ManualTeamRequest true "Team name and repository URL"
// @Success 200 {object} service.OnboardingState
// @Failure 400 {object} map[string]interface{} "Invalid team"
// @Router /onboarding/teams [post]
func (h *OnboardingHandler) AddTeam(c *gin.Context) {
	var req service.ManualTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.onboardingService.AddManualTeam(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// SetHackathonStart handles PUT /onboarding/hackathon-start
// @Summary Set the hackathon start during onboarding
// @Tags onboarding
// @Accept json
// @Produce json
// @Param start body HackathonStartRequest true "Start time"
// @Success 200 {object} service.OnboardingState
// @Failure 400 {object} map[string]interface{} "Invalid hackathon start date"
// @Router /onboarding/hackathon-start [put]
func (h *OnboardingHandler) SetHackathonStart(c *gin.Context) {
	var req HackathonStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.onboardingService.SetHackathonStart(req.HackathonStart)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// Next handles POST /onboarding/next
// @Summary Continue to class assignment
// @Tags onboarding
// @Produce json
// @Success 200 {object} service.OnboardingState
// @Failure 400 {object} map[string]interface{} "No staged teams"
// @Router /onboarding/next [post]
func (h *OnboardingHandler) Next(c *gin.Context) {
	state, err := h.onboardingService.Next()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// Back handles POST /onboarding/back
// @Summary Return to the upload step
// @Tags onboarding
// @Produce json
// @Success 200 {object} service.OnboardingState
// @Router /onboarding/back [post]
func (h *OnboardingHandler) Back(c *gin.Context) {
	state, err := h.onboardingService.Back()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// AssignClass handles PUT /onboarding/teams/:index/class
// @Summary Assign a class to a staged team
// @Tags onboarding
// @Accept json
// @Produce json
// @Param index path int true "Staged team index"
// @Param class body ClassAssignmentRequest true "Class label"
// @Success 200 {object} service.OnboardingState
// @Failure 400 {object} map[string]interface{} "Invalid index or class"
// @Failure 404 {object} map[string]interface{} "Staged team not found"
// @Router /onboarding/teams/{index}/class [put]
func (h *OnboardingHandler) AssignClass(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team index"})
		return
	}

	var req ClassAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.onboardingService.AssignClass(index, req.Class)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// Commit handles POST /onboarding/commit
// @Summary Finish onboarding
// @Description Make the staged teams the dashboard's team list and start a full refresh
// @Tags onboarding
// @Produce json
// @Success 202 {object} service.OnboardingState "Committed; refresh scheduled"
// @Failure 409 {object} map[string]interface{} "Not in the class assignment step"
// @Router /onboarding/commit [post]
func (h *OnboardingHandler) Commit(c *gin.Context) {
	state, err := h.onboardingService.Commit(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, state)
}
