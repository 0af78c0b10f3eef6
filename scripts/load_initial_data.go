package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"hackmonitor-backend/internal/config"
	"hackmonitor-backend/internal/models"
	"hackmonitor-backend/internal/service"
)

// Builds the bundled team dataset from the YAML files in scripts/data and
// writes it to BUNDLED_DATA_PATH
func main() {
	log.Println("Loading initial team data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	teams, err := loadDataFromYAMLFiles("scripts/data")
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	if err := writeDataset(cfg.BundledDataPath, teams); err != nil {
		log.Fatalf("Failed to write bundled dataset: %v", err)
	}

	log.Printf("Wrote %d teams to %s", len(teams), cfg.BundledDataPath)
}

func loadDataFromYAMLFiles(dataDir string) ([]models.TeamRecord, error) {
	var files []string
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !d.IsDir() && (ext == ".yaml" || ext == ".yml") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var all []models.TeamRecord
	for _, file := range files {
		teams, err := service.LoadBundledTeams(file)
		if err != nil {
			return nil, err
		}
		all = append(all, teams...)
	}
	return normalizeTeams(all), nil
}

// normalizeTeams drops entries the dashboard would reject and fills in
// missing classes
func normalizeTeams(teams []models.TeamRecord) []models.TeamRecord {
	seen := make(map[string]bool, len(teams))
	out := make([]models.TeamRecord, 0, len(teams))
	for _, team := range teams {
		team.Name = strings.TrimSpace(team.Name)
		if team.Name == "" {
			team.Name = "Unknown Team"
		}
		if err := models.ValidateRepositoryURL(team.RepositoryURL); err != nil {
			log.Printf("Skipping %q: invalid repository URL %q", team.Name, team.RepositoryURL)
			continue
		}
		key := models.NameKey(team.Name)
		if seen[key] {
			log.Printf("Skipping duplicate team %q", team.Name)
			continue
		}
		seen[key] = true

		if team.Class == nil || !models.IsValidClass(*team.Class) {
			team.Class = models.StringPtr(models.RoundRobinClass(len(out)))
		}
		if team.Status == "" {
			team.Status = models.TeamStatusLoading
		}
		out = append(out, team)
	}
	return out
}

func writeDataset(path string, teams []models.TeamRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(teams, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode teams: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
