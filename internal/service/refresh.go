package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	apperrors "hackmonitor-backend/internal/errors"
	"hackmonitor-backend/internal/logger"
	"hackmonitor-backend/internal/metrics"
	"hackmonitor-backend/internal/models"

	"golang.org/x/sync/errgroup"
)

// DefaultRefreshConcurrency is the number of fetches allowed in flight at once
const DefaultRefreshConcurrency = 5

// ItemError is the failure of one team within a refresh
type ItemError struct {
	Index   int    `json:"index"`
	Team    string `json:"team"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("%s: %s", e.Team, e.Message)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// RefreshResult holds one output record per input record, at the same
// position, plus the failures in the order they completed
type RefreshResult struct {
	Teams    []models.TeamRecord `json:"teams"`
	Errors   []*ItemError        `json:"errors"`
	Duration time.Duration       `json:"duration"`
}

// Message returns the single user-facing failure message: the last failure
// to complete wins. Empty when every item succeeded.
func (r *RefreshResult) Message() string {
	if r == nil || len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[len(r.Errors)-1].Message
}

// Err joins every item failure, or nil when none failed
func (r *RefreshResult) Err() error {
	if r == nil || len(r.Errors) == 0 {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// Refresher fetches live repository status for a list of teams with a fixed
// number of worker slots
type Refresher struct {
	client      RepositoryStatusClient
	concurrency int
}

// NewRefresher creates a refresher. Non-positive concurrency falls back to
// DefaultRefreshConcurrency.
func NewRefresher(client RepositoryStatusClient, concurrency int) *Refresher {
	if concurrency <= 0 {
		concurrency = DefaultRefreshConcurrency
	}
	return &Refresher{client: client, concurrency: concurrency}
}

// Refresh fetches every team in subset. Workers claim indices from a shared
// cursor, so completion order is arbitrary, but the record for subset[i] is
// always written to Teams[i]. A failing team never stops the others.
func (r *Refresher) Refresh(ctx context.Context, subset []models.TeamRecord) *RefreshResult {
	start := time.Now()
	result := &RefreshResult{
		Teams:  make([]models.TeamRecord, len(subset)),
		Errors: make([]*ItemError, 0),
	}
	if len(subset) == 0 {
		return result
	}

	workers := r.concurrency
	if workers > len(subset) {
		workers = len(subset)
	}

	var (
		cursor int64 = -1
		mu     sync.Mutex
		g      errgroup.Group
	)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				i := int(atomic.AddInt64(&cursor, 1))
				if i >= len(subset) {
					return nil
				}
				record, err := r.refreshOne(ctx, subset[i])
				result.Teams[i] = record
				if err != nil {
					mu.Lock()
					result.Errors = append(result.Errors, &ItemError{
						Index:   i,
						Team:    subset[i].Name,
						Message: err.Error(),
						Err:     err,
					})
					mu.Unlock()
				}
			}
		})
	}
	_ = g.Wait()

	result.Duration = time.Since(start)
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"teams":    len(subset),
		"failed":   len(result.Errors),
		"workers":  workers,
		"duration": result.Duration.String(),
	}).Info("Refresh finished")

	return result
}

func (r *Refresher) refreshOne(ctx context.Context, team models.TeamRecord) (models.TeamRecord, error) {
	start := time.Now()
	metrics.IncInFlight()
	defer metrics.DecInFlight()

	record, err := r.fetch(ctx, team)
	metrics.ObserveRefreshItem(err == nil, time.Since(start))
	if err != nil {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"team":       team.Name,
			"repository": team.RepositoryURL,
		}).WithError(err).Warn("Failed to refresh team repository")

		failed := team.Clone()
		failed.Status = models.TeamStatusFailure
		return failed, err
	}
	return record, nil
}

func (r *Refresher) fetch(ctx context.Context, team models.TeamRecord) (models.TeamRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.TeamRecord{}, err
	}

	owner, name, err := models.RepositoryPath(team.RepositoryURL)
	if err != nil {
		return models.TeamRecord{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidRepositoryPath, err)
	}

	info, err := r.client.GetRepository(ctx, owner, name)
	if err != nil {
		return models.TeamRecord{}, err
	}

	// A failed or malformed commit listing only leaves the date empty
	latest, err := r.client.GetLatestCommitDate(ctx, owner, name)
	if err != nil {
		logger.WithContext(ctx).WithField("team", team.Name).WithError(err).Debug("Latest commit unavailable")
		latest = nil
	}

	refreshed := models.TeamRecord{
		Name:             team.Name,
		RepositoryURL:    team.RepositoryURL,
		Status:           models.TeamStatusSuccess,
		CreatedAt:        info.CreatedAt,
		IsFork:           models.BoolPtr(info.Fork),
		LatestCommitDate: latest,
	}
	if team.Class != nil {
		refreshed.Class = models.StringPtr(*team.Class)
	}
	return refreshed, nil
}
