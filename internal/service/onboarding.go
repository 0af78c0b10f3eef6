package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	apperrors "hackmonitor-backend/internal/errors"
	"hackmonitor-backend/internal/logger"
	"hackmonitor-backend/internal/models"
)

// OnboardingStep is a state of the onboarding flow
type OnboardingStep string

const (
	StepUpload      OnboardingStep = "upload"
	StepClassAssign OnboardingStep = "class_assign"
	StepCommitted   OnboardingStep = "committed"
)

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseHackathonStart accepts RFC 3339 timestamps and the date-time input
// formats browsers send. Values without a zone are read as UTC.
func ParseHackathonStart(raw string) (time.Time, error) {
	if t, ok := parseTimestamp(raw); ok {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidHackathonStart, raw)
}

func parseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// OnboardingState is a snapshot of the onboarding flow
type OnboardingState struct {
	Step           OnboardingStep      `json:"step"`
	HackathonStart time.Time           `json:"hackathon_start"`
	Staged         []models.TeamRecord `json:"staged"`
	RowErrors      []string            `json:"row_errors"`
	Error          string              `json:"error,omitempty"`
	Generation     uint64              `json:"generation,omitempty"`
}

// OnboardingService stages the initial team list and hands it over to the
// dashboard once committed. Upload -> ClassAssign -> Committed; a CSV that
// carries every class skips ClassAssign.
type OnboardingService struct {
	importer *ImportService
	starter  TeamStarter

	mu         sync.Mutex
	step       OnboardingStep
	staged     []models.TeamRecord
	rowErrors  []string
	message    string
	generation uint64
}

// NewOnboardingService creates a new onboarding flow in the Upload step
func NewOnboardingService(importer *ImportService, starter TeamStarter) *OnboardingService {
	return &OnboardingService{
		importer:  importer,
		starter:   starter,
		step:      StepUpload,
		staged:    []models.TeamRecord{},
		rowErrors: []string{},
	}
}

// State returns the current onboarding snapshot
func (s *OnboardingService) State() *OnboardingState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// ImportCSV replaces the staged list with the parsed CSV. Skipped rows are
// reported in the state; only a CSV with no usable row fails.
func (s *OnboardingService) ImportCSV(ctx context.Context, text string) (*OnboardingState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(StepUpload); err != nil {
		return nil, err
	}

	s.message = ""
	result, err := s.importer.ParseCSV(text)
	if err != nil {
		s.message = err.Error()
		return nil, err
	}

	s.staged = result.Teams
	s.rowErrors = result.RowErrors
	s.message = result.Summary()
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"teams":        len(result.Teams),
		"skipped_rows": len(result.RowErrors),
		"class_column": result.ClassColumn,
	}).Info("CSV imported")

	if result.AllClassesProvided {
		if err := s.commitLocked(ctx); err != nil {
			return nil, err
		}
		return s.snapshot(), nil
	}
	s.step = StepClassAssign
	return s.snapshot(), nil
}

// AddManualTeam appends a hand-entered team to the staged list
func (s *OnboardingService) AddManualTeam(req *ManualTeamRequest) (*OnboardingState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(StepUpload); err != nil {
		return nil, err
	}

	team, err := s.importer.NewManualTeam(req, len(s.staged))
	if err != nil {
		s.message = err.Error()
		return nil, err
	}
	s.staged = append(s.staged, team)
	s.message = ""
	return s.snapshot(), nil
}

// SetHackathonStart parses and applies the global hackathon start
func (s *OnboardingService) SetHackathonStart(raw string) (*OnboardingState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(StepUpload); err != nil {
		return nil, err
	}

	start, err := ParseHackathonStart(raw)
	if err != nil {
		s.message = "Invalid hackathon start date"
		return nil, err
	}
	s.starter.SetHackathonStart(start)
	s.message = ""
	return s.snapshot(), nil
}

// Next moves from Upload to ClassAssign
func (s *OnboardingService) Next() (*OnboardingState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(StepUpload); err != nil {
		return nil, err
	}
	if len(s.staged) == 0 {
		s.message = apperrors.ErrNoStagedTeams.Error()
		return nil, apperrors.ErrNoStagedTeams
	}
	s.step = StepClassAssign
	return s.snapshot(), nil
}

// Back returns from ClassAssign to Upload and clears the reported errors.
// The staged list is kept.
func (s *OnboardingService) Back() (*OnboardingState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(StepClassAssign); err != nil {
		return nil, err
	}
	s.step = StepUpload
	s.message = ""
	s.rowErrors = []string{}
	return s.snapshot(), nil
}

// AssignClass sets the class of the staged team at index
func (s *OnboardingService) AssignClass(index int, class string) (*OnboardingState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(StepClassAssign); err != nil {
		return nil, err
	}
	if index < 0 || index >= len(s.staged) {
		return nil, apperrors.ErrStagedTeamNotFound
	}
	if !models.IsValidClass(class) {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownClass, class)
	}
	s.staged[index].Class = models.StringPtr(class)
	return s.snapshot(), nil
}

// Commit makes the staged list the authoritative team list and starts a full
// refresh
func (s *OnboardingService) Commit(ctx context.Context) (*OnboardingState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(StepClassAssign); err != nil {
		return nil, err
	}
	if err := s.commitLocked(ctx); err != nil {
		return nil, err
	}
	return s.snapshot(), nil
}

func (s *OnboardingService) commitLocked(ctx context.Context) error {
	if len(s.staged) == 0 {
		s.message = apperrors.ErrNoStagedTeams.Error()
		return apperrors.ErrNoStagedTeams
	}
	gen, err := s.starter.Start(ctx, s.staged)
	if err != nil {
		s.message = err.Error()
		return err
	}
	s.step = StepCommitted
	s.generation = gen
	s.message = ""
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"teams":      len(s.staged),
		"generation": gen,
	}).Info("Onboarding committed")
	return nil
}

func (s *OnboardingService) requireStep(step OnboardingStep) error {
	if s.step == step {
		return nil
	}
	if s.step == StepCommitted {
		return apperrors.ErrOnboardingCommitted
	}
	return fmt.Errorf("%w: in %s, want %s", apperrors.ErrInvalidOnboardingStep, s.step, step)
}

func (s *OnboardingService) snapshot() *OnboardingState {
	return &OnboardingState{
		Step:           s.step,
		HackathonStart: s.starter.HackathonStart(),
		Staged:         models.CloneTeams(s.staged),
		RowErrors:      append([]string{}, s.rowErrors...),
		Error:          s.message,
		Generation:     s.generation,
	}
}
