package service_test

import (
	"context"
	"testing"
	"time"

	apperrors "hackmonitor-backend/internal/errors"
	"hackmonitor-backend/internal/mocks"
	"hackmonitor-backend/internal/models"
	"hackmonitor-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const twoTeamsCSV = "Team Name,Repository URL\nAlpha,https://github.com/a/b\nBeta,https://github.com/c/d"

// OnboardingServiceTestSuite defines the test suite for the onboarding flow
type OnboardingServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	starter    *mocks.MockTeamStarter
	onboarding *service.OnboardingService
	start      time.Time
}

func (suite *OnboardingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.starter = mocks.NewMockTeamStarter(suite.ctrl)
	suite.start = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.starter.EXPECT().HackathonStart().Return(suite.start).AnyTimes()
	suite.onboarding = service.NewOnboardingService(service.NewImportService(validator.New()), suite.starter)
}

func (suite *OnboardingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OnboardingServiceTestSuite) TestInitialState() {
	state := suite.onboarding.State()

	suite.Equal(service.StepUpload, state.Step)
	suite.Empty(state.Staged)
	suite.Equal(suite.start, state.HackathonStart)
}

func (suite *OnboardingServiceTestSuite) TestCSVWithoutClassesGoesToClassAssign() {
	state, err := suite.onboarding.ImportCSV(context.Background(), twoTeamsCSV)

	suite.Require().NoError(err)
	suite.Equal(service.StepClassAssign, state.Step)
	suite.Len(state.Staged, 2)
	suite.Empty(state.Error)
}

func (suite *OnboardingServiceTestSuite) TestCSVWithEveryClassAutoCommits() {
	csv := "Team Name,Repository URL,Class\nAlpha,https://github.com/a/b,E-101\nBeta,https://github.com/c/d,C-203"
	suite.starter.EXPECT().
		Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, teams []models.TeamRecord) (uint64, error) {
			suite.Len(teams, 2)
			suite.Equal("E-101", *teams[0].Class)
			return 7, nil
		})

	state, err := suite.onboarding.ImportCSV(context.Background(), csv)

	suite.Require().NoError(err)
	suite.Equal(service.StepCommitted, state.Step)
	suite.Equal(uint64(7), state.Generation)
}

func (suite *OnboardingServiceTestSuite) TestCSVRowErrorsAreReported() {
	state, err := suite.onboarding.ImportCSV(context.Background(), twoTeamsCSV+"\nGamma,bad")

	suite.Require().NoError(err)
	suite.Equal([]string{"Row 4: invalid repo URL"}, state.RowErrors)
	suite.Equal("Some rows skipped: Row 4: invalid repo URL", state.Error)
}

func (suite *OnboardingServiceTestSuite) TestCSVFailureKeepsUploadStep() {
	_, err := suite.onboarding.ImportCSV(context.Background(), "Name,Repo\nAlpha,https://github.com/a/b")

	suite.ErrorIs(err, apperrors.ErrMissingRequiredColumns)
	state := suite.onboarding.State()
	suite.Equal(service.StepUpload, state.Step)
	suite.Equal(apperrors.ErrMissingRequiredColumns.Error(), state.Error)
}

func (suite *OnboardingServiceTestSuite) TestManualAddAndNext() {
	_, err := suite.onboarding.Next()
	suite.ErrorIs(err, apperrors.ErrNoStagedTeams)
	suite.Equal("please add at least one team", suite.onboarding.State().Error)

	_, err = suite.onboarding.AddManualTeam(&service.ManualTeamRequest{Name: "Alpha", RepositoryURL: "nope"})
	suite.ErrorIs(err, apperrors.ErrInvalidRepositoryURL)

	state, err := suite.onboarding.AddManualTeam(&service.ManualTeamRequest{Name: "Alpha", RepositoryURL: "https://github.com/a/b"})
	suite.Require().NoError(err)
	suite.Empty(state.Error)
	state, err = suite.onboarding.AddManualTeam(&service.ManualTeamRequest{Name: "Beta", RepositoryURL: "https://github.com/c/d"})
	suite.Require().NoError(err)
	suite.Equal(models.ClassOptions[1], *state.Staged[1].Class)

	state, err = suite.onboarding.Next()
	suite.Require().NoError(err)
	suite.Equal(service.StepClassAssign, state.Step)
}

func (suite *OnboardingServiceTestSuite) TestAssignClassAndCommit() {
	_, err := suite.onboarding.ImportCSV(context.Background(), twoTeamsCSV)
	suite.Require().NoError(err)

	_, err = suite.onboarding.AssignClass(5, "E-101")
	suite.ErrorIs(err, apperrors.ErrStagedTeamNotFound)
	_, err = suite.onboarding.AssignClass(0, "Z-1")
	suite.ErrorIs(err, apperrors.ErrUnknownClass)

	state, err := suite.onboarding.AssignClass(1, "E-101-A")
	suite.Require().NoError(err)
	suite.Equal("E-101-A", *state.Staged[1].Class)

	suite.starter.EXPECT().
		Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, teams []models.TeamRecord) (uint64, error) {
			suite.Equal("E-101-A", *teams[1].Class)
			return 1, nil
		})
	state, err = suite.onboarding.Commit(context.Background())
	suite.Require().NoError(err)
	suite.Equal(service.StepCommitted, state.Step)

	_, err = suite.onboarding.Commit(context.Background())
	suite.ErrorIs(err, apperrors.ErrOnboardingCommitted)
	_, err = suite.onboarding.ImportCSV(context.Background(), twoTeamsCSV)
	suite.ErrorIs(err, apperrors.ErrOnboardingCommitted)
}

func (suite *OnboardingServiceTestSuite) TestCommitFailureStaysInClassAssign() {
	_, err := suite.onboarding.ImportCSV(context.Background(), twoTeamsCSV)
	suite.Require().NoError(err)
	suite.starter.EXPECT().Start(gomock.Any(), gomock.Any()).Return(uint64(0), apperrors.NewDuplicateTeamError("Alpha"))

	_, err = suite.onboarding.Commit(context.Background())

	suite.True(apperrors.IsAlreadyExists(err))
	state := suite.onboarding.State()
	suite.Equal(service.StepClassAssign, state.Step)
	suite.Contains(state.Error, "Alpha")
}

func (suite *OnboardingServiceTestSuite) TestBackClearsErrorsAndKeepsStaged() {
	_, err := suite.onboarding.ImportCSV(context.Background(), twoTeamsCSV+"\nGamma,")
	suite.Require().NoError(err)

	state, err := suite.onboarding.Back()
	suite.Require().NoError(err)
	suite.Equal(service.StepUpload, state.Step)
	suite.Empty(state.Error)
	suite.Empty(state.RowErrors)
	suite.Len(state.Staged, 2)

	_, err = suite.onboarding.Back()
	suite.ErrorIs(err, apperrors.ErrInvalidOnboardingStep)
}

func (suite *OnboardingServiceTestSuite) TestWrongStepOperations() {
	_, err := suite.onboarding.AssignClass(0, "E-101")
	suite.ErrorIs(err, apperrors.ErrInvalidOnboardingStep)
	_, err = suite.onboarding.Commit(context.Background())
	suite.ErrorIs(err, apperrors.ErrInvalidOnboardingStep)
}

func (suite *OnboardingServiceTestSuite) TestSetHackathonStart() {
	suite.starter.EXPECT().SetHackathonStart(time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC))

	_, err := suite.onboarding.SetHackathonStart("2026-02-01T09:30")
	suite.Require().NoError(err)

	_, err = suite.onboarding.SetHackathonStart("next tuesday")
	suite.ErrorIs(err, apperrors.ErrInvalidHackathonStart)
	suite.Equal("Invalid hackathon start date", suite.onboarding.State().Error)
}

func TestOnboardingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OnboardingServiceTestSuite))
}

func TestParseHackathonStart(t *testing.T) {
	for raw, want := range map[string]time.Time{
		"2026-01-01T00:00:00Z":      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		"2026-01-01T10:00:00+02:00": time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
		"2026-03-04T05:06":          time.Date(2026, 3, 4, 5, 6, 0, 0, time.UTC),
		"2026-03-04":                time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
	} {
		got, err := service.ParseHackathonStart(raw)
		require.NoError(t, err, raw)
		assert.True(t, want.Equal(got), raw)
	}

	_, err := service.ParseHackathonStart("")
	assert.ErrorIs(t, err, apperrors.ErrInvalidHackathonStart)
}
