package service

import (
	"context"
	"sync"
	"time"

	"hackmonitor-backend/internal/logger"
	"hackmonitor-backend/internal/metrics"
	"hackmonitor-backend/internal/models"
	"hackmonitor-backend/internal/repository"
)

// MergeKind describes how a finished refresh was applied to the store
type MergeKind string

const (
	MergeFull       MergeKind = "full"
	MergePartial    MergeKind = "partial"
	MergeSuperseded MergeKind = "superseded"
)

// RefreshOutcome is the final state of one scheduled refresh
type RefreshOutcome struct {
	Generation uint64         `json:"generation"`
	Merge      MergeKind      `json:"merge"`
	Requested  int            `json:"requested"`
	Replaced   int            `json:"replaced"`
	Result     *RefreshResult `json:"-"`
	FinishedAt time.Time      `json:"finished_at"`
}

// RefreshStatus is a point-in-time view of the reconciler
type RefreshStatus struct {
	Generation  uint64       `json:"generation"`
	InFlight    bool         `json:"in_flight"`
	LastMerge   MergeKind    `json:"last_merge,omitempty"`
	LastMessage string       `json:"last_message,omitempty"`
	LastErrors  []*ItemError `json:"last_errors"`
	FinishedAt  *time.Time   `json:"finished_at,omitempty"`
}

type pendingMark struct {
	generation uint64
	original   models.TeamStatus
}

// Reconciler schedules refreshes against the team store and merges their
// results. Only the most recently scheduled refresh may merge: scheduling a
// new one cancels the previous one and its results are discarded.
type Reconciler struct {
	repo      repository.TeamRepositoryInterface
	refresher RefreshRunner

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	pending    map[string]pendingMark // name key -> refresh holding the Loading mark
	last       *RefreshOutcome
}

// NewReconciler creates a reconciler over repo
func NewReconciler(repo repository.TeamRepositoryInterface, refresher RefreshRunner) *Reconciler {
	return &Reconciler{
		repo:      repo,
		refresher: refresher,
		pending:   make(map[string]pendingMark),
	}
}

// Schedule marks every team in subset as Loading and refreshes them in the
// background. The returned channel yields the outcome once and is closed.
// The refresh is detached from ctx cancellation but keeps its values.
func (r *Reconciler) Schedule(ctx context.Context, subset []models.TeamRecord) (uint64, <-chan *RefreshOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scheduleLocked(ctx, models.CloneTeams(subset))
}

// Replace swaps the whole store for teams and schedules a full refresh of
// them. Loading marks of any superseded refresh are dropped with the old
// list. Nothing changes when teams is rejected by the store.
func (r *Reconciler) Replace(ctx context.Context, teams []models.TeamRecord) (uint64, <-chan *RefreshOutcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.repo.ReplaceAll(teams); err != nil {
		return 0, nil, err
	}
	r.pending = make(map[string]pendingMark)
	gen, done := r.scheduleLocked(ctx, models.CloneTeams(teams))
	return gen, done, nil
}

func (r *Reconciler) scheduleLocked(ctx context.Context, subset []models.TeamRecord) (uint64, <-chan *RefreshOutcome) {
	if r.cancel != nil {
		r.cancel()
	}
	r.generation++
	gen := r.generation
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	r.cancel = cancel

	names := make([]string, len(subset))
	for i, team := range subset {
		names[i] = team.Name
	}
	previous := r.repo.SetStatuses(names, models.TeamStatusLoading)
	for key, status := range previous {
		if mark, held := r.pending[key]; held {
			status = mark.original
		}
		r.pending[key] = pendingMark{generation: gen, original: status}
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"generation": gen,
		"teams":      len(subset),
	}).Info("Refresh scheduled")

	done := make(chan *RefreshOutcome, 1)
	go func() {
		defer close(done)
		defer cancel()
		result := r.refresher.Refresh(runCtx, subset)
		done <- r.complete(runCtx, gen, subset, result)
	}()
	return gen, done
}

// Run schedules a refresh and waits for its outcome
func (r *Reconciler) Run(ctx context.Context, subset []models.TeamRecord) *RefreshOutcome {
	_, done := r.Schedule(ctx, subset)
	return <-done
}

// Cancel stops the refresh in flight, if any. Its results will not merge.
func (r *Reconciler) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
		r.generation++
	}
}

// Status reports the current generation and the last merged outcome
func (r *Reconciler) Status() RefreshStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	status := RefreshStatus{
		Generation: r.generation,
		InFlight:   r.cancel != nil,
		LastErrors: []*ItemError{},
	}
	if r.last != nil {
		status.LastMerge = r.last.Merge
		status.LastMessage = r.last.Result.Message()
		status.LastErrors = append(status.LastErrors, r.last.Result.Errors...)
		finished := r.last.FinishedAt
		status.FinishedAt = &finished
	}
	return status
}

func (r *Reconciler) complete(ctx context.Context, gen uint64, subset []models.TeamRecord, result *RefreshResult) *RefreshOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	outcome := &RefreshOutcome{
		Generation: gen,
		Requested:  len(subset),
		Result:     result,
		FinishedAt: time.Now(),
	}
	log := logger.WithContext(ctx).WithField("generation", gen)

	if gen != r.generation {
		outcome.Merge = MergeSuperseded
		reverted := r.repo.RevertStatuses(r.releaseMarks(gen), models.TeamStatusLoading)
		metrics.ObserveRefreshRun(string(outcome.Merge), result.Duration)
		log.WithField("reverted", reverted).Info("Refresh superseded, results discarded")
		return outcome
	}

	// A subset as large as the store is taken to be the whole store. Classes
	// are user edits and stay as they are in the store.
	if len(subset) == r.repo.Count() {
		if err := r.repo.ReplaceRefreshed(result.Teams); err != nil {
			log.WithError(err).Warn("Full merge rejected, merging by name")
			outcome.Merge = MergePartial
			outcome.Replaced = r.repo.MergeByName(result.Teams)
		} else {
			outcome.Merge = MergeFull
			outcome.Replaced = len(result.Teams)
		}
	} else {
		outcome.Merge = MergePartial
		outcome.Replaced = r.repo.MergeByName(result.Teams)
	}
	r.releaseMarks(gen)
	r.cancel = nil
	r.last = outcome

	metrics.ObserveRefreshRun(string(outcome.Merge), result.Duration)
	metrics.SetTeamStatusCounts(countStatuses(r.repo.GetAll()))
	log.WithFields(map[string]interface{}{
		"merge":    outcome.Merge,
		"replaced": outcome.Replaced,
		"failed":   len(result.Errors),
	}).Info("Refresh merged")
	return outcome
}

// releaseMarks drops the Loading marks held by gen and returns the statuses
// they replaced. A team that was never refreshed goes back to Pending rather
// than Loading. Caller holds r.mu.
func (r *Reconciler) releaseMarks(gen uint64) map[string]models.TeamStatus {
	released := make(map[string]models.TeamStatus)
	for key, mark := range r.pending {
		if mark.generation != gen {
			continue
		}
		original := mark.original
		if original == models.TeamStatusLoading {
			original = models.TeamStatusPending
		}
		released[key] = original
		delete(r.pending, key)
	}
	return released
}

func countStatuses(teams []models.TeamRecord) map[string]int {
	counts := make(map[string]int)
	for _, team := range teams {
		counts[team.StatusLabel()]++
	}
	return counts
}
