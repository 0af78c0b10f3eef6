package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperrors "hackmonitor-backend/internal/errors"
	"hackmonitor-backend/internal/logger"
	"hackmonitor-backend/internal/models"

	"gopkg.in/yaml.v3"
)

const unknownTeamName = "Unknown Team"

// TeamsAPIClient reads the team list from a remote teams API
type TeamsAPIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewTeamsAPIClient creates a client for {baseURL}/teams
func NewTeamsAPIClient(baseURL string, timeout time.Duration) *TeamsAPIClient {
	return &TeamsAPIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchTeams returns the remote team list with every team in Loading state.
// A non-2xx status or a body that is not a JSON array fails the whole call.
func (c *TeamsAPIClient) FetchTeams(ctx context.Context) ([]models.TeamRecord, error) {
	fullURL := c.baseURL + "/teams"
	logger.WithContext(ctx).Infof("Invoking teams API GET %s", fullURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTeamsAPIRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: API error %d: %s", apperrors.ErrTeamsAPIRequestFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var body interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode teams response: %w", err)
	}
	items, ok := body.([]interface{})
	if !ok {
		return nil, apperrors.ErrUnexpectedTeamsResponse
	}

	return mapRemoteTeams(ctx, items), nil
}

// mapRemoteTeams accepts both the report keys and the short API keys.
// Items without a valid repository URL or with a repeated name are skipped.
func mapRemoteTeams(ctx context.Context, items []interface{}) []models.TeamRecord {
	teams := make([]models.TeamRecord, 0, len(items))
	seen := make(map[string]bool, len(items))
	for idx, raw := range items {
		item, _ := raw.(map[string]interface{})
		name := firstString(item, "Team Name", "name")
		if name == "" {
			name = unknownTeamName
		}
		repo := firstString(item, "Repository URL", "repo", "repo_url")
		class := firstString(item, "Class", "class")
		if class == "" {
			class = models.RoundRobinClass(idx)
		}

		log := logger.WithContext(ctx).WithFields(map[string]interface{}{"index": idx, "team": name})
		if err := models.ValidateRepositoryURL(repo); err != nil {
			log.WithError(err).Warn("Skipping remote team with invalid repository URL")
			continue
		}
		key := models.NameKey(name)
		if seen[key] {
			log.Warn("Skipping remote team with duplicate name")
			continue
		}
		seen[key] = true

		teams = append(teams, models.TeamRecord{
			Name:          name,
			RepositoryURL: repo,
			Status:        models.TeamStatusLoading,
			Class:         models.StringPtr(class),
		})
	}
	return teams
}

func firstString(item map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s, ok := item[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// LoadBundledTeams reads the static team report shipped with the server.
// JSON and YAML (.yaml, .yml) files are supported.
func LoadBundledTeams(path string) ([]models.TeamRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bundled dataset: %w", err)
	}

	var teams []models.TeamRecord
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &teams)
	default:
		err = json.Unmarshal(data, &teams)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse bundled dataset %s: %w", path, err)
	}
	if teams == nil {
		teams = []models.TeamRecord{}
	}
	return teams, nil
}

// asLoading resets every team to Loading for a fresh refresh, keeping the
// last known remote fields
func asLoading(teams []models.TeamRecord) []models.TeamRecord {
	out := models.CloneTeams(teams)
	for i := range out {
		out[i].Status = models.TeamStatusLoading
	}
	return out
}
