package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"hackmonitor-backend/internal/models"
	"hackmonitor-backend/internal/repository"
	"hackmonitor-backend/internal/service"
	"hackmonitor-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// scriptedRunner stands in for the worker pool; fn receives the 1-based call number
type scriptedRunner struct {
	mu    sync.Mutex
	calls int
	fn    func(ctx context.Context, call int, subset []models.TeamRecord) *service.RefreshResult
}

func (r *scriptedRunner) Refresh(ctx context.Context, subset []models.TeamRecord) *service.RefreshResult {
	r.mu.Lock()
	r.calls++
	call := r.calls
	r.mu.Unlock()
	return r.fn(ctx, call, subset)
}

// succeed marks every team as refreshed with createdAt as a marker
func succeed(subset []models.TeamRecord, createdAt time.Time) *service.RefreshResult {
	out := models.CloneTeams(subset)
	for i := range out {
		out[i].Status = models.TeamStatusSuccess
		out[i].CreatedAt = models.TimePtr(createdAt)
		out[i].IsFork = models.BoolPtr(false)
	}
	return &service.RefreshResult{Teams: out, Errors: []*service.ItemError{}}
}

var (
	markerA = time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	markerB = time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
)

// ReconcilerTestSuite defines the test suite for the reconciliation merger
type ReconcilerTestSuite struct {
	suite.Suite
	repo    *repository.TeamRepository
	factory *testutils.TeamFactory
	seeded  []models.TeamRecord
}

func (suite *ReconcilerTestSuite) SetupTest() {
	suite.repo = repository.NewTeamRepository()
	suite.factory = testutils.NewTeamFactory()
	suite.seeded = make([]models.TeamRecord, 5)
	for i := range suite.seeded {
		team := suite.factory.Refreshed(fmt.Sprintf("Team %d", i+1), createdFor(i), createdFor(i+100), i == 0)
		suite.seeded[i] = team
	}
	suite.Require().NoError(suite.repo.ReplaceAll(suite.seeded))
}

func (suite *ReconcilerTestSuite) TestFullRefreshReplacesStore() {
	var output []models.TeamRecord
	runner := &scriptedRunner{fn: func(ctx context.Context, call int, subset []models.TeamRecord) *service.RefreshResult {
		result := succeed(subset, markerA)
		output = models.CloneTeams(result.Teams)
		return result
	}}
	reconciler := service.NewReconciler(suite.repo, runner)

	outcome := reconciler.Run(context.Background(), suite.repo.GetAll())

	suite.Equal(service.MergeFull, outcome.Merge)
	suite.Equal(len(suite.seeded), outcome.Replaced)
	suite.Equal(output, suite.repo.GetAll())
}

func (suite *ReconcilerTestSuite) TestPartialRefreshMergesByName() {
	before := suite.repo.GetAll()
	subset := []models.TeamRecord{before[3], before[1]}
	runner := &scriptedRunner{fn: func(ctx context.Context, call int, subset []models.TeamRecord) *service.RefreshResult {
		return succeed(subset, markerA)
	}}
	reconciler := service.NewReconciler(suite.repo, runner)

	outcome := reconciler.Run(context.Background(), subset)

	suite.Equal(service.MergePartial, outcome.Merge)
	suite.Equal(2, outcome.Replaced)
	after := suite.repo.GetAll()
	suite.Require().Len(after, len(before))
	for i := range before {
		suite.Equal(before[i].Name, after[i].Name, "store order must not change")
	}
	for _, i := range []int{0, 2, 4} {
		suite.Equal(before[i], after[i])
	}
	for _, i := range []int{1, 3} {
		suite.True(markerA.Equal(*after[i].CreatedAt))
	}
}

func (suite *ReconcilerTestSuite) TestClassEditDuringFullRefreshSurvives() {
	release := make(chan struct{})
	runner := &scriptedRunner{fn: func(ctx context.Context, call int, subset []models.TeamRecord) *service.RefreshResult {
		<-release
		return succeed(subset, markerA)
	}}
	reconciler := service.NewReconciler(suite.repo, runner)

	_, done := reconciler.Schedule(context.Background(), suite.repo.GetAll())
	_, err := suite.repo.UpdateClass("Team 3", "E-101")
	suite.Require().NoError(err)
	close(release)
	outcome := <-done

	suite.Equal(service.MergeFull, outcome.Merge)
	got, err := suite.repo.GetByName("Team 3")
	suite.Require().NoError(err)
	suite.Equal("E-101", got.ClassLabel())
	suite.True(markerA.Equal(*got.CreatedAt))
}

func (suite *ReconcilerTestSuite) TestClassEditDuringPartialRefreshSurvives() {
	release := make(chan struct{})
	runner := &scriptedRunner{fn: func(ctx context.Context, call int, subset []models.TeamRecord) *service.RefreshResult {
		<-release
		return succeed(subset, markerA)
	}}
	reconciler := service.NewReconciler(suite.repo, runner)

	_, done := reconciler.Schedule(context.Background(), suite.seeded[:2])
	_, err := suite.repo.UpdateClass("Team 2", "E-103")
	suite.Require().NoError(err)
	close(release)
	outcome := <-done

	suite.Equal(service.MergePartial, outcome.Merge)
	got, err := suite.repo.GetByName("Team 2")
	suite.Require().NoError(err)
	suite.Equal("E-103", got.ClassLabel())
	suite.Equal(models.TeamStatusSuccess, got.Status)
}

func (suite *ReconcilerTestSuite) TestLoadingMarksWhileInFlight() {
	release := make(chan struct{})
	runner := &scriptedRunner{fn: func(ctx context.Context, call int, subset []models.TeamRecord) *service.RefreshResult {
		<-release
		return succeed(subset, markerA)
	}}
	reconciler := service.NewReconciler(suite.repo, runner)

	_, done := reconciler.Schedule(context.Background(), suite.seeded[:2])

	during := suite.repo.GetAll()
	suite.Equal(models.TeamStatusLoading, during[0].Status)
	suite.Equal(models.TeamStatusLoading, during[1].Status)
	suite.Equal(models.TeamStatusSuccess, during[2].Status)
	suite.True(reconciler.Status().InFlight)

	close(release)
	outcome := <-done

	suite.Equal(service.MergePartial, outcome.Merge)
	suite.False(reconciler.Status().InFlight)
	for _, team := range suite.repo.GetAll() {
		suite.Equal(models.TeamStatusSuccess, team.Status)
	}
}

func (suite *ReconcilerTestSuite) TestNewerRefreshSupersedesOlder() {
	runner := &scriptedRunner{fn: func(ctx context.Context, call int, subset []models.TeamRecord) *service.RefreshResult {
		if call == 1 {
			<-ctx.Done()
			return succeed(subset, markerA)
		}
		return succeed(subset, markerB)
	}}
	reconciler := service.NewReconciler(suite.repo, runner)

	genA, doneA := reconciler.Schedule(context.Background(), suite.repo.GetAll())
	genB, doneB := reconciler.Schedule(context.Background(), []models.TeamRecord{suite.seeded[2]})
	outcomeA := <-doneA
	outcomeB := <-doneB

	suite.Greater(genB, genA)
	suite.Equal(service.MergeSuperseded, outcomeA.Merge)
	suite.Equal(service.MergePartial, outcomeB.Merge)

	after := suite.repo.GetAll()
	for i, team := range after {
		suite.False(markerA.Equal(*team.CreatedAt), "superseded results must not be visible")
		suite.Equal(models.TeamStatusSuccess, team.Status)
		if i == 2 {
			suite.True(markerB.Equal(*team.CreatedAt))
			continue
		}
		suite.Equal(suite.seeded[i], team)
	}
}

func (suite *ReconcilerTestSuite) TestSupersededNeverRefreshedTeamsBecomePending() {
	staged := suite.factory.List(3)
	suite.Require().NoError(suite.repo.ReplaceAll(staged))
	runner := &scriptedRunner{fn: func(ctx context.Context, call int, subset []models.TeamRecord) *service.RefreshResult {
		if call == 1 {
			<-ctx.Done()
		}
		return succeed(subset, markerB)
	}}
	reconciler := service.NewReconciler(suite.repo, runner)

	_, doneA := reconciler.Schedule(context.Background(), staged)
	_, doneB := reconciler.Schedule(context.Background(), staged[:1])
	<-doneA
	<-doneB

	after := suite.repo.GetAll()
	suite.Equal(models.TeamStatusSuccess, after[0].Status)
	suite.Equal(models.TeamStatusPending, after[1].Status)
	suite.Equal(models.TeamStatusPending, after[2].Status)
}

func (suite *ReconcilerTestSuite) TestCancel() {
	runner := &scriptedRunner{fn: func(ctx context.Context, call int, subset []models.TeamRecord) *service.RefreshResult {
		<-ctx.Done()
		return succeed(subset, markerA)
	}}
	reconciler := service.NewReconciler(suite.repo, runner)

	_, done := reconciler.Schedule(context.Background(), suite.repo.GetAll())
	reconciler.Cancel()
	outcome := <-done

	suite.Equal(service.MergeSuperseded, outcome.Merge)
	suite.Equal(suite.seeded, suite.repo.GetAll())
	suite.False(reconciler.Status().InFlight)
}

func (suite *ReconcilerTestSuite) TestReplaceSchedulesFullRefresh() {
	runner := &scriptedRunner{fn: func(ctx context.Context, call int, subset []models.TeamRecord) *service.RefreshResult {
		return succeed(subset, markerB)
	}}
	reconciler := service.NewReconciler(suite.repo, runner)
	teams := suite.factory.List(2)

	_, done, err := reconciler.Replace(context.Background(), teams)
	suite.Require().NoError(err)
	outcome := <-done

	suite.Equal(service.MergeFull, outcome.Merge)
	after := suite.repo.GetAll()
	suite.Require().Len(after, 2)
	suite.Equal("Team 1", after[0].Name)
	suite.Equal(models.TeamStatusSuccess, after[1].Status)
}

func (suite *ReconcilerTestSuite) TestReplaceRejectsDuplicates() {
	runner := &scriptedRunner{fn: func(ctx context.Context, call int, subset []models.TeamRecord) *service.RefreshResult {
		return succeed(subset, markerB)
	}}
	reconciler := service.NewReconciler(suite.repo, runner)
	dupes := []models.TeamRecord{suite.factory.WithName("Alpha"), suite.factory.WithName("ALPHA")}

	_, done, err := reconciler.Replace(context.Background(), dupes)

	suite.Error(err)
	suite.Nil(done)
	suite.Equal(suite.seeded, suite.repo.GetAll())
	suite.Equal(uint64(0), reconciler.Status().Generation)
}

func (suite *ReconcilerTestSuite) TestStatusReportsLastErrors() {
	runner := &scriptedRunner{fn: func(ctx context.Context, call int, subset []models.TeamRecord) *service.RefreshResult {
		result := succeed(subset, markerA)
		result.Teams[0].Status = models.TeamStatusFailure
		result.Errors = append(result.Errors,
			&service.ItemError{Index: 0, Team: subset[0].Name, Message: "first"},
			&service.ItemError{Index: 1, Team: subset[1].Name, Message: "second"},
		)
		return result
	}}
	reconciler := service.NewReconciler(suite.repo, runner)

	reconciler.Run(context.Background(), suite.repo.GetAll())
	status := reconciler.Status()

	suite.Equal(uint64(1), status.Generation)
	suite.Equal(service.MergeFull, status.LastMerge)
	suite.Equal("second", status.LastMessage)
	suite.Len(status.LastErrors, 2)
	suite.NotNil(status.FinishedAt)
}

func TestReconcilerTestSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerTestSuite))
}

func TestReconcilerEndToEnd(t *testing.T) {
	fake := testutils.NewFakeGitHub()
	defer fake.Close()
	fake.AddRepo("test-org/alpha-repo", testutils.FakeRepo{CreatedAt: "2025-12-30T10:00:00Z", Fork: true, LatestCommit: "2026-01-02T10:00:00Z"})
	fake.AddRepo("test-org/beta-repo", testutils.FakeRepo{Status: 500})

	factory := testutils.NewTeamFactory()
	repo := repository.NewTeamRepository()
	client, err := service.NewGitHubServiceWithOptions("", fake.URL(), 5*time.Second)
	require.NoError(t, err)
	reconciler := service.NewReconciler(repo, service.NewRefresher(client, 5))

	_, done, err := reconciler.Replace(context.Background(), []models.TeamRecord{factory.WithName("Alpha"), factory.WithName("Beta")})
	require.NoError(t, err)
	outcome := <-done

	assert.Equal(t, service.MergeFull, outcome.Merge)
	teams := repo.GetAll()
	assert.Equal(t, models.TeamStatusSuccess, teams[0].Status)
	assert.True(t, teams[0].Fork())
	assert.Equal(t, models.TeamStatusFailure, teams[1].Status)
	assert.Equal(t, "repo fetch failed: 500", reconciler.Status().LastMessage)
}
