package service

import (
	"context"
	"io"
	"time"

	"hackmonitor-backend/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// RepositoryStatusClient defines the hosting API calls made per team
type RepositoryStatusClient interface {
	GetRepository(ctx context.Context, owner, name string) (*RepositoryInfo, error)
	GetLatestCommitDate(ctx context.Context, owner, name string) (*time.Time, error)
}

// RefreshRunner defines the worker pool used by the reconciler
type RefreshRunner interface {
	Refresh(ctx context.Context, subset []models.TeamRecord) *RefreshResult
}

// TeamsSource defines a remote team list
type TeamsSource interface {
	FetchTeams(ctx context.Context) ([]models.TeamRecord, error)
}

// TeamStarter defines what onboarding needs from the dashboard
type TeamStarter interface {
	Start(ctx context.Context, teams []models.TeamRecord) (uint64, error)
	HackathonStart() time.Time
	SetHackathonStart(start time.Time)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	TeamStarter
	Reload(ctx context.Context) (*ReloadResponse, error)
	RefreshAll(ctx context.Context) (*RefreshResponse, error)
	RefreshFiltered(ctx context.Context, criteria FilterCriteria) (*RefreshResponse, error)
	ListTeams(criteria FilterCriteria) (*TeamListResponse, error)
	GetTeam(name string) (*models.TeamRecord, error)
	AddTeam(ctx context.Context, req *AddTeamRequest) (*models.TeamRecord, error)
	UpdateClass(name string, req *UpdateClassRequest) (*models.TeamRecord, error)
	Select(name string) error
	ExportCSV(w io.Writer) error
	Stats() *DashboardStats
	RefreshStatus() RefreshStatus
}

// OnboardingServiceInterface defines the interface for the onboarding flow
type OnboardingServiceInterface interface {
	State() *OnboardingState
	ImportCSV(ctx context.Context, text string) (*OnboardingState, error)
	AddManualTeam(req *ManualTeamRequest) (*OnboardingState, error)
	SetHackathonStart(raw string) (*OnboardingState, error)
	Next() (*OnboardingState, error)
	Back() (*OnboardingState, error)
	AssignClass(index int, class string) (*OnboardingState, error)
	Commit(ctx context.Context) (*OnboardingState, error)
}

var (
	_ RepositoryStatusClient     = (*GitHubService)(nil)
	_ RefreshRunner              = (*Refresher)(nil)
	_ TeamsSource                = (*TeamsAPIClient)(nil)
	_ TeamServiceInterface       = (*TeamService)(nil)
	_ OnboardingServiceInterface = (*OnboardingService)(nil)
)
