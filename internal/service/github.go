package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hackmonitor-backend/internal/config"
	apperrors "hackmonitor-backend/internal/errors"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// RepositoryInfo is the subset of repository metadata the dashboard tracks
type RepositoryInfo struct {
	FullName  string     `json:"full_name"`
	CreatedAt *time.Time `json:"created_at"`
	Fork      bool       `json:"fork"`
}

// GitHubService reads repository status from the GitHub REST API
type GitHubService struct {
	client *github.Client
}

// NewGitHubService creates a GitHub service from application config
func NewGitHubService(cfg *config.Config) (*GitHubService, error) {
	return NewGitHubServiceWithOptions(cfg.GitHubToken, cfg.GitHubAPIURL, cfg.HTTPTimeout())
}

// NewGitHubServiceWithOptions creates a GitHub service. An empty token sends
// anonymous requests; an empty baseURL targets api.github.com. A custom
// baseURL is used as-is (GitHub Enterprise installs pass their /api/v3/ root).
func NewGitHubServiceWithOptions(token, baseURL string, timeout time.Duration) (*GitHubService, error) {
	var httpClient *http.Client
	if token != "" {
		// Create OAuth2 client with the bearer credential
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	} else {
		httpClient = &http.Client{}
	}
	httpClient.Timeout = timeout

	client := github.NewClient(httpClient)
	if baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL: %w", err)
		}
		client.BaseURL = u
	}

	return &GitHubService{client: client}, nil
}

// GetRepository fetches repository metadata (GET /repos/{owner}/{name})
func (s *GitHubService) GetRepository(ctx context.Context, owner, name string) (*RepositoryInfo, error) {
	repo, resp, err := s.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, classifyGitHubError(resp, err)
	}

	info := &RepositoryInfo{
		FullName: repo.GetFullName(),
		Fork:     repo.GetFork(),
	}
	if ts := repo.GetCreatedAt(); !ts.IsZero() {
		created := ts.Time
		info.CreatedAt = &created
	}
	return info, nil
}

// GetLatestCommitDate returns the author date of the newest commit
// (GET /repos/{owner}/{name}/commits?per_page=1), or nil when the
// repository has no commits.
func (s *GitHubService) GetLatestCommitDate(ctx context.Context, owner, name string) (*time.Time, error) {
	opts := &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: 1},
	}
	commits, resp, err := s.client.Repositories.ListCommits(ctx, owner, name, opts)
	if err != nil {
		return nil, classifyGitHubError(resp, err)
	}
	if len(commits) == 0 {
		return nil, nil
	}

	date := commits[0].GetCommit().GetAuthor().GetDate()
	if date.IsZero() {
		return nil, nil
	}
	latest := date.Time
	return &latest, nil
}

func classifyGitHubError(resp *github.Response, err error) error {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return fmt.Errorf("%w: %v", apperrors.ErrGitHubAPIRateLimitExceeded, err)
	}
	// A plain 403 is a private or blocked repository, not a rate limit
	if resp != nil && resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %d", apperrors.ErrRepositoryFetchFailed, resp.StatusCode)
	}
	return fmt.Errorf("%w: %v", apperrors.ErrRepositoryFetchFailed, err)
}
