package service

import (
	"sync"

	"hackmonitor-backend/internal/models"
)

// Selection tracks the team currently shown in the detail panel
type Selection struct {
	mu   sync.Mutex
	name string
}

// Set selects the named team. An empty name clears the selection.
func (s *Selection) Set(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

// Reconcile keeps the selection when it is still in view. Otherwise it falls
// back to the first team of view, or clears it when view is empty.
func (s *Selection) Reconcile(view []models.TeamRecord) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(view) == 0 {
		s.name = ""
		return ""
	}
	for _, team := range view {
		if team.Name == s.name {
			return s.name
		}
	}
	s.name = view[0].Name
	return s.name
}
