package service

import (
	"fmt"
	"regexp"
	"strings"

	apperrors "hackmonitor-backend/internal/errors"
	"hackmonitor-backend/internal/models"

	"github.com/go-playground/validator/v10"
)

var lineSplitter = regexp.MustCompile(`\r?\n`)

// ImportResult is the outcome of parsing an uploaded team list
type ImportResult struct {
	Teams     []models.TeamRecord `json:"teams"`
	RowErrors []string            `json:"row_errors"`
	// ClassColumn is true when the header had a class column
	ClassColumn bool `json:"class_column"`
	// AllClassesProvided is true when every accepted row carried its own class
	AllClassesProvided bool `json:"all_classes_provided"`
}

// Summary returns the user-facing note about skipped rows, or "" when none were skipped
func (r *ImportResult) Summary() string {
	if len(r.RowErrors) == 0 {
		return ""
	}
	shown := r.RowErrors
	if len(shown) > 3 {
		shown = shown[:3]
	}
	return "Some rows skipped: " + strings.Join(shown, " | ")
}

// ManualTeamRequest is a single team entered by hand during onboarding
type ManualTeamRequest struct {
	Name          string `json:"name" validate:"required"`
	RepositoryURL string `json:"repo" validate:"required"`
}

// ImportService turns uploaded CSV text and manual entries into staged teams
type ImportService struct {
	validator *validator.Validate
}

// NewImportService creates a new import service
func NewImportService(validator *validator.Validate) *ImportService {
	return &ImportService{validator: validator}
}

// ParseCSV parses a comma-delimited team list. The header row must contain a
// "team name" column and a "repo" column; a "class" column is optional.
// Cells are split on every comma: one layer of surrounding double quotes is
// removed, but quoted cells cannot contain the delimiter.
// Bad rows are collected in RowErrors; the import fails only when no row
// survives.
func (s *ImportService) ParseCSV(text string) (*ImportResult, error) {
	lines := make([]string, 0)
	for _, l := range lineSplitter.Split(text, -1) {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return nil, apperrors.ErrEmptyCSV
	}

	header, rows := lines[0], lines[1:]
	cols := strings.Split(header, ",")
	for i := range cols {
		cols[i] = strings.ToLower(strings.TrimSpace(cols[i]))
	}
	nameIdx := findColumn(cols, "team name")
	repoIdx := findColumn(cols, "repo")
	classIdx := findColumn(cols, "class")
	if nameIdx == -1 || repoIdx == -1 {
		return nil, apperrors.ErrMissingRequiredColumns
	}

	result := &ImportResult{
		Teams:              make([]models.TeamRecord, 0, len(rows)),
		RowErrors:          make([]string, 0),
		ClassColumn:        classIdx != -1,
		AllClassesProvided: classIdx != -1,
	}
	seen := make(map[string]bool, len(rows))

	for idx, line := range rows {
		rowNum := idx + 2
		cells := strings.Split(line, ",")
		name := cleanCell(cellAt(cells, nameIdx))
		repo := cleanCell(cellAt(cells, repoIdx))

		if repo == "" {
			result.RowErrors = append(result.RowErrors, fmt.Sprintf("Row %d: missing repo URL", rowNum))
			continue
		}
		if err := models.ValidateRepositoryURL(repo); err != nil {
			result.RowErrors = append(result.RowErrors, fmt.Sprintf("Row %d: invalid repo URL", rowNum))
			continue
		}
		if name == "" {
			name = fmt.Sprintf("Team %d", idx+1)
		}
		if seen[models.NameKey(name)] {
			result.RowErrors = append(result.RowErrors, fmt.Sprintf("Row %d: duplicate team name %q", rowNum, name))
			continue
		}
		seen[models.NameKey(name)] = true

		class := ""
		if classIdx != -1 {
			class = cleanCell(cellAt(cells, classIdx))
		}
		if class == "" {
			result.AllClassesProvided = false
			class = models.RoundRobinClass(idx)
		}

		result.Teams = append(result.Teams, models.TeamRecord{
			Name:          name,
			RepositoryURL: repo,
			Status:        models.TeamStatusLoading,
			Class:         models.StringPtr(class),
		})
	}

	if len(result.Teams) == 0 {
		if len(result.RowErrors) > 0 {
			return result, fmt.Errorf("%w: %s", apperrors.ErrNoRowsParsed, result.RowErrors[0])
		}
		return result, apperrors.ErrNoRowsParsed
	}

	return result, nil
}

// NewManualTeam validates a hand-entered team and builds its staged record.
// The class defaults round-robin on stagedCount. Name uniqueness is checked
// later, when the staged list is committed.
func (s *ImportService) NewManualTeam(req *ManualTeamRequest, stagedCount int) (models.TeamRecord, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.RepositoryURL = strings.TrimSpace(req.RepositoryURL)
	if err := s.validator.Struct(req); err != nil {
		return models.TeamRecord{}, apperrors.NewValidationError("", "Name and repo are required")
	}
	if err := models.ValidateRepositoryURL(req.RepositoryURL); err != nil {
		return models.TeamRecord{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidRepositoryURL, req.RepositoryURL)
	}

	return models.TeamRecord{
		Name:          req.Name,
		RepositoryURL: req.RepositoryURL,
		Status:        models.TeamStatusLoading,
		Class:         models.StringPtr(models.RoundRobinClass(stagedCount)),
	}, nil
}

func findColumn(cols []string, needle string) int {
	for i, c := range cols {
		if strings.Contains(c, needle) {
			return i
		}
	}
	return -1
}

func cellAt(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}

func cleanCell(val string) string {
	trimmed := strings.TrimSpace(val)
	if len(trimmed) >= 2 && strings.HasPrefix(trimmed, `"`) && strings.HasSuffix(trimmed, `"`) {
		return trimmed[1 : len(trimmed)-1]
	}
	return trimmed
}
