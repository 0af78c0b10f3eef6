package handlers

import (
	"net/http"
	"testing"

	"hackmonitor-backend/internal/mocks"
	"hackmonitor-backend/internal/service"
	"hackmonitor-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHealth_ReportsRefreshState(t *testing.T) {
	ctrl := gomock.NewController(t)
	teamService := mocks.NewMockTeamServiceInterface(ctrl)
	teamService.EXPECT().RefreshStatus().Return(service.RefreshStatus{InFlight: true})

	handler := NewHealthHandler(teamService, "1.2.3")
	suite := testutils.SetupHTTPTest()
	suite.Router.GET("/health", handler.Health)

	recorder := suite.MakeRequest(http.MethodGet, "/health", nil)

	var response HealthResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "1.2.3", response.Version)
	assert.Equal(t, "refreshing", response.Services["refresh"])
}

func TestReadyAndLive(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := NewHealthHandler(mocks.NewMockTeamServiceInterface(ctrl), "dev")
	suite := testutils.SetupHTTPTest()
	suite.Router.GET("/health/ready", handler.Ready)
	suite.Router.GET("/health/live", handler.Live)

	var ready map[string]interface{}
	testutils.AssertJSONResponse(t, suite.MakeRequest(http.MethodGet, "/health/ready", nil), http.StatusOK, &ready)
	assert.Equal(t, true, ready["ready"])

	var live map[string]interface{}
	testutils.AssertJSONResponse(t, suite.MakeRequest(http.MethodGet, "/health/live", nil), http.StatusOK, &live)
	assert.Equal(t, true, live["alive"])
}
