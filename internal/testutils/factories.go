package testutils

import (
	"fmt"
	"time"

	"hackmonitor-backend/internal/models"
)

// TeamFactory provides methods to create test TeamRecord data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a staged-looking team with default values
func (f *TeamFactory) Create() models.TeamRecord {
	return models.TeamRecord{
		Name:          "Test Team",
		RepositoryURL: "https://github.com/test-org/test-repo",
		Status:        models.TeamStatusLoading,
		Class:         models.StringPtr(models.ClassOptions[0]),
	}
}

// WithName creates a team with a custom name and a matching repository
func (f *TeamFactory) WithName(name string) models.TeamRecord {
	team := f.Create()
	team.Name = name
	team.RepositoryURL = fmt.Sprintf("https://github.com/%s/%s-repo", "test-org", slug(name))
	return team
}

// Refreshed creates a team that looks like a successful refresh result
func (f *TeamFactory) Refreshed(name string, createdAt, latestCommit time.Time, fork bool) models.TeamRecord {
	team := f.WithName(name)
	team.Status = models.TeamStatusSuccess
	team.CreatedAt = models.TimePtr(createdAt)
	team.LatestCommitDate = models.TimePtr(latestCommit)
	team.IsFork = models.BoolPtr(fork)
	return team
}

// List creates n uniquely named teams ("Team 1" .. "Team n") with round-robin classes
func (f *TeamFactory) List(n int) []models.TeamRecord {
	teams := make([]models.TeamRecord, n)
	for i := 0; i < n; i++ {
		team := f.WithName(fmt.Sprintf("Team %d", i+1))
		team.Class = models.StringPtr(models.RoundRobinClass(i))
		teams[i] = team
	}
	return teams
}

// FactorySet provides all factories in one place
type FactorySet struct {
	Team *TeamFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team: NewTeamFactory(),
	}
}

func slug(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		default:
			out = append(out, '-')
		}
	}
	return string(out)
}
