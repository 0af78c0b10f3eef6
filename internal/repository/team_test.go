package repository

import (
	"testing"
	"time"

	apperrors "hackmonitor-backend/internal/errors"
	"hackmonitor-backend/internal/models"
	"hackmonitor-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// TeamRepositoryTestSuite tests the in-memory TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	repo      *TeamRepository
	factories *testutils.FactorySet
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.repo = NewTeamRepository()
	suite.factories = testutils.NewFactorySet()
}

func (suite *TeamRepositoryTestSuite) TestCreate() {
	team := suite.factories.Team.WithName("Alpha")

	err := suite.repo.Create(team)

	suite.NoError(err)
	suite.Equal(1, suite.repo.Count())
	got, err := suite.repo.GetByName("alpha")
	suite.NoError(err)
	suite.Equal("Alpha", got.Name)
}

func (suite *TeamRepositoryTestSuite) TestCreateDuplicateNameCaseInsensitive() {
	suite.NoError(suite.repo.Create(suite.factories.Team.WithName("Alpha")))

	err := suite.repo.Create(suite.factories.Team.WithName("ALPHA"))

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrTeamExists)
	suite.Equal(1, suite.repo.Count())
}

func (suite *TeamRepositoryTestSuite) TestCreateEmptyName() {
	team := suite.factories.Team.Create()
	team.Name = "   "

	err := suite.repo.Create(team)

	suite.True(apperrors.IsValidation(err))
}

func (suite *TeamRepositoryTestSuite) TestGetByNameNotFound() {
	_, err := suite.repo.GetByName("ghost")
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

func (suite *TeamRepositoryTestSuite) TestGetAllReturnsCopies() {
	suite.NoError(suite.repo.Create(suite.factories.Team.WithName("Alpha")))

	teams := suite.repo.GetAll()
	teams[0].Name = "Mutated"
	*teams[0].Class = "Mutated"

	got, err := suite.repo.GetByName("Alpha")
	suite.NoError(err)
	suite.Equal(models.ClassOptions[0], *got.Class)
}

func (suite *TeamRepositoryTestSuite) TestGetAllEmpty() {
	suite.NotNil(suite.repo.GetAll())
	suite.Empty(suite.repo.GetAll())
}

func (suite *TeamRepositoryTestSuite) TestReplaceAllPreservesOrder() {
	teams := suite.factories.Team.List(4)
	teams[0], teams[3] = teams[3], teams[0]

	suite.NoError(suite.repo.ReplaceAll(teams))

	suite.Equal(teams, suite.repo.GetAll())
}

func (suite *TeamRepositoryTestSuite) TestReplaceAllRejectsDuplicates() {
	suite.NoError(suite.repo.ReplaceAll(suite.factories.Team.List(2)))
	before := suite.repo.GetAll()

	teams := suite.factories.Team.List(2)
	teams[1].Name = "team 1"
	err := suite.repo.ReplaceAll(teams)

	suite.True(apperrors.IsAlreadyExists(err))
	suite.Equal(before, suite.repo.GetAll())
}

func (suite *TeamRepositoryTestSuite) TestMergeByNameLeavesOthersUntouched() {
	teams := suite.factories.Team.List(5)
	suite.NoError(suite.repo.ReplaceAll(teams))
	before := suite.repo.GetAll()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	refreshed := []models.TeamRecord{
		suite.factories.Team.Refreshed("Team 4", now, now, true),
		suite.factories.Team.Refreshed("Team 2", now, now, false),
		suite.factories.Team.Refreshed("Not Stored", now, now, false),
	}

	replaced := suite.repo.MergeByName(refreshed)

	suite.Equal(2, replaced)
	after := suite.repo.GetAll()
	suite.Len(after, 5)
	suite.Equal(before[0], after[0])
	suite.Equal(before[2], after[2])
	suite.Equal(before[4], after[4])
	for _, pair := range []struct{ stored, fresh int }{{1, 1}, {3, 0}} {
		got := after[pair.stored]
		suite.Equal(before[pair.stored].Name, got.Name)
		suite.Equal(before[pair.stored].RepositoryURL, got.RepositoryURL)
		suite.Equal(before[pair.stored].ClassLabel(), got.ClassLabel())
		suite.Equal(refreshed[pair.fresh].Status, got.Status)
		suite.Equal(refreshed[pair.fresh].CreatedAt, got.CreatedAt)
		suite.Equal(refreshed[pair.fresh].IsFork, got.IsFork)
		suite.Equal(refreshed[pair.fresh].LatestCommitDate, got.LatestCommitDate)
	}
}

func (suite *TeamRepositoryTestSuite) TestReplaceRefreshedKeepsStoredClass() {
	teams := suite.factories.Team.List(3)
	suite.NoError(suite.repo.ReplaceAll(teams))
	_, err := suite.repo.UpdateClass("Team 2", "E-101")
	suite.Require().NoError(err)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	refreshed := make([]models.TeamRecord, len(teams))
	for i, team := range teams {
		refreshed[i] = suite.factories.Team.Refreshed(team.Name, now, now, false)
		refreshed[i].Class = team.Class
	}

	suite.NoError(suite.repo.ReplaceRefreshed(refreshed))

	after := suite.repo.GetAll()
	suite.Require().Len(after, 3)
	suite.Equal("E-101", after[1].ClassLabel())
	suite.Equal(teams[0].ClassLabel(), after[0].ClassLabel())
	for _, team := range after {
		suite.Equal(models.TeamStatusSuccess, team.Status)
	}
}

func (suite *TeamRepositoryTestSuite) TestReplaceRefreshedRejectsDuplicates() {
	suite.NoError(suite.repo.ReplaceAll(suite.factories.Team.List(2)))
	before := suite.repo.GetAll()

	err := suite.repo.ReplaceRefreshed([]models.TeamRecord{before[0], before[0]})

	suite.True(apperrors.IsAlreadyExists(err))
	suite.Equal(before, suite.repo.GetAll())
}

func (suite *TeamRepositoryTestSuite) TestUpdateClass() {
	suite.NoError(suite.repo.Create(suite.factories.Team.WithName("Alpha")))

	updated, err := suite.repo.UpdateClass("ALPHA", "E-101")

	suite.NoError(err)
	suite.Equal("E-101", *updated.Class)
	got, _ := suite.repo.GetByName("Alpha")
	suite.Equal("E-101", got.ClassLabel())

	_, err = suite.repo.UpdateClass("ghost", "E-101")
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

func (suite *TeamRepositoryTestSuite) TestSetAndRevertStatuses() {
	teams := suite.factories.Team.List(3)
	teams[0].Status = models.TeamStatusSuccess
	teams[1].Status = models.TeamStatusFailure
	teams[2].Status = models.TeamStatusSuccess
	suite.NoError(suite.repo.ReplaceAll(teams))

	previous := suite.repo.SetStatuses([]string{"Team 1", "Team 2", "ghost"}, models.TeamStatusLoading)
	suite.Len(previous, 2)

	// Team 2 is finished by someone else before the revert
	suite.repo.MergeByName([]models.TeamRecord{suite.factories.Team.Refreshed("Team 2", time.Now(), time.Now(), false)})

	reverted := suite.repo.RevertStatuses(previous, models.TeamStatusLoading)

	suite.Equal(1, reverted)
	all := suite.repo.GetAll()
	suite.Equal(models.TeamStatusSuccess, all[0].Status)
	suite.Equal(models.TeamStatusSuccess, all[1].Status)
	suite.Equal(models.TeamStatusSuccess, all[2].Status)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
