package service

import (
	"sort"
	"strings"
	"time"

	apperrors "hackmonitor-backend/internal/errors"
	"hackmonitor-backend/internal/models"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Filter values
const (
	FilterAll = "all"

	ForkOnly     = "fork"
	OriginalOnly = "original"

	PreexistingOnly = "pre"
	FreshOnly       = "fresh"

	PaceOnPace    = "onpace"
	PaceLate      = "late"
	PaceNoCommits = "none"

	SortByName   = "name"
	SortByRecent = "recent"
)

// PaceWindow separates teams that committed recently from late ones
const PaceWindow = 4 * time.Hour

// FilterCriteria are the independent predicates of the team list view.
// Empty fields behave as "all"; an empty sort behaves as "name".
type FilterCriteria struct {
	Search      string `form:"search" json:"search"`
	Status      string `form:"status" json:"status"`
	Fork        string `form:"fork" json:"fork" validate:"omitempty,oneof=all fork original"`
	Class       string `form:"class" json:"class"`
	Preexisting string `form:"preexisting" json:"preexisting" validate:"omitempty,oneof=all pre fresh"`
	Pace        string `form:"pace" json:"pace" validate:"omitempty,oneof=all onpace late none"`
	Sort        string `form:"sort" json:"sort" validate:"omitempty,oneof=name recent"`
}

// Validate checks the enumerated criteria. Class is free text: imported
// teams keep whatever class label their source provided.
func (c FilterCriteria) Validate(v *validator.Validate) error {
	if err := v.Struct(c); err != nil {
		return apperrors.NewValidationError("criteria", apperrors.ErrInvalidFilterCriteria.Error()+": "+err.Error())
	}
	return nil
}

// ApplyFilters derives the displayed, ordered subset of teams. It never
// modifies its input.
func ApplyFilters(teams []models.TeamRecord, criteria FilterCriteria, hackathonStart, now time.Time) []models.TeamRecord {
	search := strings.ToLower(criteria.Search)
	out := make([]models.TeamRecord, 0, len(teams))
	for _, team := range teams {
		if search != "" && !strings.Contains(strings.ToLower(team.Name), search) {
			continue
		}
		if !isWildcard(criteria.Status) && team.StatusLabel() != criteria.Status {
			continue
		}
		if !matchesFork(team, criteria.Fork) {
			continue
		}
		if !isWildcard(criteria.Class) && team.ClassLabel() != criteria.Class {
			continue
		}
		if !matchesPreexisting(team, criteria.Preexisting, hackathonStart) {
			continue
		}
		if !matchesPace(team, criteria.Pace, now) {
			continue
		}
		out = append(out, team.Clone())
	}

	if criteria.Sort == SortByRecent {
		sort.SliceStable(out, func(i, j int) bool {
			return commitUnix(out[i]) > commitUnix(out[j])
		})
		return out
	}

	col := collate.New(language.English)
	sort.SliceStable(out, func(i, j int) bool {
		return col.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

// PaceBucket classifies a team by the time since its latest commit
func PaceBucket(team models.TeamRecord, now time.Time) string {
	if team.LatestCommitDate == nil {
		return BucketNoCommits
	}
	if now.Sub(*team.LatestCommitDate) <= PaceWindow {
		return BucketOnPace
	}
	return BucketLate
}

// RecencyBucket classifies a team by days since its latest commit
func RecencyBucket(team models.TeamRecord, now time.Time) string {
	if team.LatestCommitDate == nil {
		return BucketNoCommits
	}
	days := now.Sub(*team.LatestCommitDate).Hours() / 24
	switch {
	case days <= 1:
		return BucketLast24h
	case days <= 3:
		return BucketOneToThreeDays
	case days <= 7:
		return BucketFourToSevenDays
	default:
		return BucketStale
	}
}

// IsPreexisting reports whether the repository predates the hackathon start.
// The second result is false when the creation time is unknown.
func IsPreexisting(team models.TeamRecord, hackathonStart time.Time) (bool, bool) {
	if team.CreatedAt == nil {
		return false, false
	}
	return team.CreatedAt.Before(hackathonStart), true
}

func isWildcard(value string) bool {
	return value == "" || value == FilterAll
}

func matchesFork(team models.TeamRecord, fork string) bool {
	switch fork {
	case ForkOnly:
		return team.Fork()
	case OriginalOnly:
		return !team.Fork()
	default:
		return true
	}
}

func matchesPreexisting(team models.TeamRecord, choice string, hackathonStart time.Time) bool {
	if isWildcard(choice) {
		return true
	}
	pre, known := IsPreexisting(team, hackathonStart)
	if !known {
		return false
	}
	if choice == PreexistingOnly {
		return pre
	}
	return !pre
}

func matchesPace(team models.TeamRecord, pace string, now time.Time) bool {
	switch pace {
	case PaceOnPace:
		return PaceBucket(team, now) == BucketOnPace
	case PaceLate:
		return PaceBucket(team, now) == BucketLate
	case PaceNoCommits:
		return team.LatestCommitDate == nil
	default:
		return true
	}
}

func commitUnix(team models.TeamRecord) int64 {
	if team.LatestCommitDate == nil {
		return 0
	}
	return team.LatestCommitDate.UnixMilli()
}
