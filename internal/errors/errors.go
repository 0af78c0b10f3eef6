package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTeamNotFound       = &NotFoundError{Entity: "team"}
	ErrStagedTeamNotFound = &NotFoundError{Entity: "staged team"}
)

// Already Exists Errors
var (
	ErrTeamExists = &AlreadyExistsError{Entity: "team", Context: "with this name"}
)

// Import and onboarding errors
var (
	ErrEmptyCSV                = errors.New("empty CSV")
	ErrMissingRequiredColumns  = errors.New("CSV needs headers including Team Name and Repository URL")
	ErrNoRowsParsed            = errors.New("no rows parsed. Check CSV content")
	ErrNoStagedTeams           = errors.New("please add at least one team")
	ErrInvalidOnboardingStep   = errors.New("operation not allowed in the current onboarding step")
	ErrOnboardingCommitted     = errors.New("onboarding already completed")
	ErrInvalidHackathonStart   = errors.New("invalid hackathon start date")
	ErrInvalidRepositoryURL    = errors.New("invalid repository URL")
	ErrInvalidRepositoryPath   = errors.New("invalid repo path")
	ErrUnknownClass            = errors.New("unknown class label")
	ErrInvalidFilterCriteria   = errors.New("invalid filter criteria")
	ErrUnexpectedTeamsResponse = errors.New("unexpected API response. Expected an array of teams")
)

// Refresh errors
var (
	ErrGitHubAPIRateLimitExceeded = errors.New("GitHub API rate limit exceeded")
	ErrRepositoryFetchFailed      = errors.New("repo fetch failed")
	ErrTeamsAPIRequestFailed      = errors.New("teams API request failed")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError or one of the
// input sentinels that callers report as bad requests
func IsValidation(err error) bool {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return true
	}
	for _, target := range []error{
		ErrEmptyCSV,
		ErrMissingRequiredColumns,
		ErrNoRowsParsed,
		ErrNoStagedTeams,
		ErrInvalidHackathonStart,
		ErrInvalidRepositoryURL,
		ErrUnknownClass,
		ErrInvalidFilterCriteria,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewDuplicateTeamError reports a team name that is already taken
func NewDuplicateTeamError(name string) error {
	return &AlreadyExistsError{Entity: "team", Context: fmt.Sprintf("with name %q", name)}
}
