package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	apperrors "hackmonitor-backend/internal/errors"
	"hackmonitor-backend/internal/logger"
	"hackmonitor-backend/internal/metrics"
	"hackmonitor-backend/internal/models"
	"hackmonitor-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// Team list sources reported by Reload
const (
	SourceTeamsAPI = "teams_api"
	SourceStore    = "store"
	SourceBundled  = "bundled"
)

// AddTeamRequest is a team added from the dashboard after onboarding
type AddTeamRequest struct {
	Name          string `json:"name" validate:"required"`
	RepositoryURL string `json:"repo" validate:"required"`
	Status        string `json:"status"`
	IsFork        bool   `json:"is_fork"`
	LatestCommit  string `json:"latest_commit"`
}

// UpdateClassRequest reassigns the class of a team
type UpdateClassRequest struct {
	Class string `json:"class" validate:"required"`
}

// TeamListResponse is the filtered dashboard view
type TeamListResponse struct {
	Teams          []models.TeamRecord `json:"teams"`
	Total          int                 `json:"total"`
	Filtered       int                 `json:"filtered"`
	Selected       string              `json:"selected,omitempty"`
	HackathonStart time.Time           `json:"hackathon_start"`
}

// ReloadResponse describes a reload of the team list
type ReloadResponse struct {
	Generation uint64 `json:"generation"`
	Teams      int    `json:"teams"`
	Source     string `json:"source"`
	Error      string `json:"error,omitempty"`
}

// RefreshResponse acknowledges a scheduled refresh
type RefreshResponse struct {
	Generation uint64 `json:"generation"`
	Teams      int    `json:"teams"`
}

// TeamService handles business logic for the tracked teams
type TeamService struct {
	repo       repository.TeamRepositoryInterface
	reconciler *Reconciler
	source     TeamsSource
	bundled    []models.TeamRecord
	validator  *validator.Validate
	selection  *Selection
	now        func() time.Time

	mu             sync.RWMutex
	hackathonStart time.Time
}

// NewTeamService creates a new team service. source may be nil when no
// remote teams API is configured; bundled is the dataset read at startup.
func NewTeamService(repo repository.TeamRepositoryInterface, reconciler *Reconciler, source TeamsSource, bundled []models.TeamRecord, hackathonStart time.Time, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:           repo,
		reconciler:     reconciler,
		source:         source,
		bundled:        models.CloneTeams(bundled),
		validator:      validator,
		selection:      &Selection{},
		now:            time.Now,
		hackathonStart: hackathonStart,
	}
}

// HackathonStart returns the global hackathon start
func (s *TeamService) HackathonStart() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hackathonStart
}

// SetHackathonStart changes the global hackathon start
func (s *TeamService) SetHackathonStart(start time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hackathonStart = start
}

// Start makes teams the authoritative list and schedules a full refresh
func (s *TeamService) Start(ctx context.Context, teams []models.TeamRecord) (uint64, error) {
	gen, _, err := s.reconciler.Replace(ctx, teams)
	if err != nil {
		return 0, err
	}
	if len(teams) > 0 {
		s.selection.Set(teams[0].Name)
	}
	return gen, nil
}

// Reload re-reads the team list and refreshes all of it. The teams API is
// used when configured; when it fails, or is not configured, the current
// list is reused, or the bundled dataset when the list is empty. A teams API
// failure is reported in the response, not returned.
func (s *TeamService) Reload(ctx context.Context) (*ReloadResponse, error) {
	response := &ReloadResponse{}
	var teams []models.TeamRecord

	if s.source != nil {
		remote, err := s.source.FetchTeams(ctx)
		if err != nil {
			logger.WithContext(ctx).WithError(err).Warn("Teams API unavailable, falling back")
			response.Error = err.Error()
		} else {
			teams = remote
			response.Source = SourceTeamsAPI
		}
	}

	if response.Source == "" {
		teams = s.repo.GetAll()
		response.Source = SourceStore
		if len(teams) == 0 {
			teams = s.bundled
			response.Source = SourceBundled
		}
		teams = asLoading(teams)
	}

	gen, err := s.Start(ctx, teams)
	if err != nil {
		return nil, err
	}
	response.Generation = gen
	response.Teams = len(teams)
	return response, nil
}

// RefreshAll schedules a refresh of every team
func (s *TeamService) RefreshAll(ctx context.Context) (*RefreshResponse, error) {
	teams := s.repo.GetAll()
	gen, _ := s.reconciler.Schedule(ctx, teams)
	return &RefreshResponse{Generation: gen, Teams: len(teams)}, nil
}

// RefreshFiltered schedules a refresh of the teams matching criteria. The
// subset is sent in store order. Nothing is scheduled for an empty view.
func (s *TeamService) RefreshFiltered(ctx context.Context, criteria FilterCriteria) (*RefreshResponse, error) {
	if err := criteria.Validate(s.validator); err != nil {
		return nil, err
	}
	all := s.repo.GetAll()
	view := ApplyFilters(all, criteria, s.HackathonStart(), s.now())
	if len(view) == 0 {
		return &RefreshResponse{}, nil
	}

	inView := make(map[string]bool, len(view))
	for _, team := range view {
		inView[models.NameKey(team.Name)] = true
	}
	subset := make([]models.TeamRecord, 0, len(view))
	for _, team := range all {
		if inView[models.NameKey(team.Name)] {
			subset = append(subset, team)
		}
	}

	gen, _ := s.reconciler.Schedule(ctx, subset)
	return &RefreshResponse{Generation: gen, Teams: len(subset)}, nil
}

// ListTeams returns the filtered, sorted view and reconciles the selection
// against it
func (s *TeamService) ListTeams(criteria FilterCriteria) (*TeamListResponse, error) {
	if err := criteria.Validate(s.validator); err != nil {
		return nil, err
	}
	all := s.repo.GetAll()
	start := s.HackathonStart()
	view := ApplyFilters(all, criteria, start, s.now())
	return &TeamListResponse{
		Teams:          view,
		Total:          len(all),
		Filtered:       len(view),
		Selected:       s.selection.Reconcile(view),
		HackathonStart: start,
	}, nil
}

// GetTeam retrieves a team by name
func (s *TeamService) GetTeam(name string) (*models.TeamRecord, error) {
	return s.repo.GetByName(name)
}

// AddTeam adds a team to the dashboard and selects it
func (s *TeamService) AddTeam(ctx context.Context, req *AddTeamRequest) (*models.TeamRecord, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.RepositoryURL = strings.TrimSpace(req.RepositoryURL)
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", "Team name and repository URL are required.")
	}
	if err := models.ValidateRepositoryURL(req.RepositoryURL); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidRepositoryURL, req.RepositoryURL)
	}

	status := models.TeamStatus(strings.TrimSpace(req.Status))
	if status == "" {
		status = models.TeamStatusSuccess
	}
	now := s.now().UTC()
	team := models.TeamRecord{
		Name:          req.Name,
		RepositoryURL: req.RepositoryURL,
		Status:        status,
		CreatedAt:     models.TimePtr(now),
		IsFork:        models.BoolPtr(req.IsFork),
		Class:         models.StringPtr(models.RoundRobinClass(s.repo.Count())),
	}
	// An unparseable commit time is dropped
	if req.LatestCommit != "" {
		if latest, ok := parseTimestamp(req.LatestCommit); ok {
			team.LatestCommitDate = models.TimePtr(latest.UTC())
		}
	}

	if err := s.repo.Create(team); err != nil {
		return nil, err
	}
	s.selection.Set(team.Name)
	metrics.SetTeamStatusCounts(countStatuses(s.repo.GetAll()))
	logger.WithContext(ctx).WithField("team", team.Name).Info("Team added")
	return &team, nil
}

// UpdateClass reassigns the class of the named team
func (s *TeamService) UpdateClass(name string, req *UpdateClassRequest) (*models.TeamRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("class", "class is required")
	}
	if !models.IsValidClass(req.Class) {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownClass, req.Class)
	}
	return s.repo.UpdateClass(name, req.Class)
}

// Select marks the named team as selected
func (s *TeamService) Select(name string) error {
	team, err := s.repo.GetByName(name)
	if err != nil {
		return err
	}
	s.selection.Set(team.Name)
	return nil
}

// ExportCSV writes the class assignment export of every team
func (s *TeamService) ExportCSV(w io.Writer) error {
	return WriteTeamsCSV(w, s.repo.GetAll())
}

// Stats summarizes the whole team list
func (s *TeamService) Stats() *DashboardStats {
	return ComputeStats(s.repo.GetAll(), s.now())
}

// RefreshStatus reports the refresh in flight and the last merged result
func (s *TeamService) RefreshStatus() RefreshStatus {
	return s.reconciler.Status()
}
