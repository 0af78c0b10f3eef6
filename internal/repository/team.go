package repository

import (
	"sync"

	apperrors "hackmonitor-backend/internal/errors"
	"hackmonitor-backend/internal/models"
)

// TeamRepository is the authoritative, insertion-ordered team list. It lives
// in process memory only. All reads return deep copies; writes are serialized
// by the mutex and never reorder existing entries.
type TeamRepository struct {
	mu    sync.RWMutex
	teams []models.TeamRecord
	index map[string]int // name key -> position
}

// NewTeamRepository creates an empty team repository
func NewTeamRepository() *TeamRepository {
	return &TeamRepository{index: make(map[string]int)}
}

// GetAll returns a copy of every team in insertion order
func (r *TeamRepository) GetAll() []models.TeamRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := models.CloneTeams(r.teams)
	if out == nil {
		out = []models.TeamRecord{}
	}
	return out
}

// Count returns the number of teams
func (r *TeamRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.teams)
}

// GetByName retrieves a team by case-insensitive name
func (r *TeamRepository) GetByName(name string) (*models.TeamRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[models.NameKey(name)]
	if !ok {
		return nil, apperrors.ErrTeamNotFound
	}
	team := r.teams[i].Clone()
	return &team, nil
}

// Create appends a team, rejecting empty and duplicate names
func (r *TeamRepository) Create(team models.TeamRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := models.NameKey(team.Name)
	if key == "" {
		return apperrors.NewValidationError("name", "team name is required")
	}
	if _, exists := r.index[key]; exists {
		return apperrors.NewDuplicateTeamError(team.Name)
	}
	r.index[key] = len(r.teams)
	r.teams = append(r.teams, team.Clone())
	return nil
}

// ReplaceAll swaps the whole list for teams, preserving their order.
// Nothing changes if teams contains an empty or duplicate name.
func (r *TeamRepository) ReplaceAll(teams []models.TeamRecord) error {
	index, err := buildIndex(teams)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams = models.CloneTeams(teams)
	r.index = index
	return nil
}

// ReplaceRefreshed swaps the whole list for refreshed teams like ReplaceAll,
// but a team already stored keeps its current class. Class edits made while
// the refresh was running survive the swap.
func (r *TeamRepository) ReplaceRefreshed(teams []models.TeamRecord) error {
	index, err := buildIndex(teams)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	next := models.CloneTeams(teams)
	for i := range next {
		if j, ok := r.index[models.NameKey(next[i].Name)]; ok {
			next[i].Class = cloneClass(r.teams[j].Class)
		}
	}
	r.teams = next
	r.index = index
	return nil
}

// MergeByName copies the refreshed remote fields (status, createdAt, isFork,
// latestCommitDate) onto every stored team whose name matches one in teams.
// Name, URL and class of stored teams are kept. Stored teams with no match
// are left untouched and unmatched input is ignored. Returns the number of
// updated entries.
func (r *TeamRepository) MergeByName(teams []models.TeamRecord) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	replaced := 0
	for _, team := range teams {
		i, ok := r.index[models.NameKey(team.Name)]
		if !ok {
			continue
		}
		fresh := team.Clone()
		stored := &r.teams[i]
		stored.Status = fresh.Status
		stored.CreatedAt = fresh.CreatedAt
		stored.IsFork = fresh.IsFork
		stored.LatestCommitDate = fresh.LatestCommitDate
		replaced++
	}
	return replaced
}

func cloneClass(class *string) *string {
	if class == nil {
		return nil
	}
	return models.StringPtr(*class)
}

// UpdateClass sets the class label of the named team
func (r *TeamRepository) UpdateClass(name, class string) (*models.TeamRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[models.NameKey(name)]
	if !ok {
		return nil, apperrors.ErrTeamNotFound
	}
	r.teams[i].Class = models.StringPtr(class)
	team := r.teams[i].Clone()
	return &team, nil
}

// SetStatuses sets status on the named teams and returns their previous
// statuses keyed by name key. Unknown names are skipped.
func (r *TeamRepository) SetStatuses(names []string, status models.TeamStatus) map[string]models.TeamStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	previous := make(map[string]models.TeamStatus, len(names))
	for _, name := range names {
		key := models.NameKey(name)
		i, ok := r.index[key]
		if !ok {
			continue
		}
		if _, seen := previous[key]; !seen {
			previous[key] = r.teams[i].Status
		}
		r.teams[i].Status = status
	}
	return previous
}

// RevertStatuses restores previous statuses, but only on teams whose current
// status is still expect.
func (r *TeamRepository) RevertStatuses(previous map[string]models.TeamStatus, expect models.TeamStatus) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	reverted := 0
	for key, status := range previous {
		i, ok := r.index[key]
		if !ok || r.teams[i].Status != expect {
			continue
		}
		r.teams[i].Status = status
		reverted++
	}
	return reverted
}

func buildIndex(teams []models.TeamRecord) (map[string]int, error) {
	index := make(map[string]int, len(teams))
	for i, team := range teams {
		key := models.NameKey(team.Name)
		if key == "" {
			return nil, apperrors.NewValidationError("name", "team name is required")
		}
		if _, exists := index[key]; exists {
			return nil, apperrors.NewDuplicateTeamError(team.Name)
		}
		index[key] = i
	}
	return index, nil
}
