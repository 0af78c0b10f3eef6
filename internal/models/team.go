package models

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// TeamRecord is one tracked hackathon team and the live status of its repository.
// JSON keys follow the report format consumed by the dashboard UI.
type TeamRecord struct {
	Name             string     `json:"Team Name" yaml:"Team Name"`
	RepositoryURL    string     `json:"Repository URL" yaml:"Repository URL"`
	Status           TeamStatus `json:"Status" yaml:"Status"`
	CreatedAt        *time.Time `json:"Created At" yaml:"Created At"`
	IsFork           *bool      `json:"Is Fork" yaml:"Is Fork"`
	LatestCommitDate *time.Time `json:"Latest Commit Date" yaml:"Latest Commit Date"`
	Class            *string    `json:"Class,omitempty" yaml:"Class,omitempty"`
}

// Clone returns a deep copy so callers never share pointer fields with the store
func (t TeamRecord) Clone() TeamRecord {
	out := t
	if t.CreatedAt != nil {
		v := *t.CreatedAt
		out.CreatedAt = &v
	}
	if t.IsFork != nil {
		v := *t.IsFork
		out.IsFork = &v
	}
	if t.LatestCommitDate != nil {
		v := *t.LatestCommitDate
		out.LatestCommitDate = &v
	}
	if t.Class != nil {
		v := *t.Class
		out.Class = &v
	}
	return out
}

// ClassLabel returns the class or UnassignedClass when absent
func (t TeamRecord) ClassLabel() string {
	if t.Class == nil || *t.Class == "" {
		return UnassignedClass
	}
	return *t.Class
}

// StatusLabel returns the status or "Unknown" when empty
func (t TeamRecord) StatusLabel() string {
	if t.Status == "" {
		return string(TeamStatusUnknown)
	}
	return string(t.Status)
}

// Fork reports the fork flag, treating an absent value as false
func (t TeamRecord) Fork() bool {
	return t.IsFork != nil && *t.IsFork
}

// NameKey is the case-insensitive identity of a team name
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CloneTeams deep-copies a slice of records
func CloneTeams(teams []TeamRecord) []TeamRecord {
	if teams == nil {
		return nil
	}
	out := make([]TeamRecord, len(teams))
	for i := range teams {
		out[i] = teams[i].Clone()
	}
	return out
}

// ValidateRepositoryURL checks that raw parses as an absolute URL.
// Paths without an owner/name segment are admitted and fail at refresh time.
func ValidateRepositoryURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("repository URL is empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || (u.Host == "" && u.Opaque == "") {
		return fmt.Errorf("repository URL %q is not absolute", raw)
	}
	return nil
}

// RepositoryPath extracts "owner/name" from a repository URL. The leading
// slash is stripped; the remaining path must contain a separator.
func RepositoryPath(raw string) (owner, name string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("invalid repository URL: %w", err)
	}
	path := strings.TrimPrefix(u.Path, "/")
	if path == "" || !strings.Contains(path, "/") {
		return "", "", fmt.Errorf("invalid repo path %q", path)
	}
	parts := strings.SplitN(path, "/", 3)
	owner = parts[0]
	name = strings.TrimSuffix(parts[1], ".git")
	if owner == "" || name == "" {
		return "", "", fmt.Errorf("invalid repo path %q", path)
	}
	return owner, name, nil
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string { return &s }

// BoolPtr returns a pointer to b
func BoolPtr(b bool) *bool { return &b }

// TimePtr returns a pointer to t
func TimePtr(t time.Time) *time.Time { return &t }
