package repository

import (
	"hackmonitor-backend/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team store operations
type TeamRepositoryInterface interface {
	GetAll() []models.TeamRecord
	Count() int
	GetByName(name string) (*models.TeamRecord, error)
	Create(team models.TeamRecord) error
	ReplaceAll(teams []models.TeamRecord) error
	ReplaceRefreshed(teams []models.TeamRecord) error
	MergeByName(teams []models.TeamRecord) int
	UpdateClass(name, class string) (*models.TeamRecord, error)
	SetStatuses(names []string, status models.TeamStatus) map[string]models.TeamStatus
	RevertStatuses(previous map[string]models.TeamStatus, expect models.TeamStatus) int
}

var _ TeamRepositoryInterface = (*TeamRepository)(nil)
