package service

import (
	"sort"
	"time"

	"hackmonitor-backend/internal/models"
)

// Bucket labels shown by the dashboard charts
const (
	BucketLast24h         = "Last 24h"
	BucketOneToThreeDays  = "1-3 days"
	BucketFourToSevenDays = "4-7 days"
	BucketStale           = "Stale (>7d)"
	BucketNoCommits       = "No commits yet"
	BucketOnPace          = "On pace (≤4h)"
	BucketLate            = "Late (>4h)"
)

var (
	recencyOrder = []string{BucketLast24h, BucketOneToThreeDays, BucketFourToSevenDays, BucketStale, BucketNoCommits}
	paceOrder    = []string{BucketOnPace, BucketLate, BucketNoCommits}
)

const topActivityLimit = 10

// BucketCount is one bar of a dashboard chart
type BucketCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ActivityEntry is a team with a known latest commit
type ActivityEntry struct {
	Name             string    `json:"name"`
	RepositoryURL    string    `json:"repo"`
	LatestCommitDate time.Time `json:"latest_commit_date"`
}

// DashboardStats summarizes the store for the overview page
type DashboardStats struct {
	TotalTeams     int             `json:"total_teams"`
	Forks          int             `json:"forks"`
	Originals      int             `json:"originals"`
	ActiveRepos    int             `json:"active_repos"`
	StaleTeams     int             `json:"stale_teams"`
	Recency        []BucketCount   `json:"recency"`
	Pace           []BucketCount   `json:"pace"`
	ForkSplit      []BucketCount   `json:"fork_split"`
	LatestActivity []ActivityEntry `json:"latest_activity"`
	StatusOptions  []string        `json:"status_options"`
	ClassOptions   []string        `json:"class_options"`
}

// ComputeStats derives the dashboard summary of teams at now
func ComputeStats(teams []models.TeamRecord, now time.Time) *DashboardStats {
	stats := &DashboardStats{
		TotalTeams:     len(teams),
		LatestActivity: make([]ActivityEntry, 0, topActivityLimit),
		StatusOptions:  StatusOptions(teams),
		ClassOptions:   append([]string{}, models.ClassOptions...),
	}

	recency := make(map[string]int, len(recencyOrder))
	pace := make(map[string]int, len(paceOrder))
	for _, team := range teams {
		if team.Fork() {
			stats.Forks++
		}
		if team.Status == models.TeamStatusSuccess {
			stats.ActiveRepos++
		}
		recency[RecencyBucket(team, now)]++
		pace[PaceBucket(team, now)]++
		if team.LatestCommitDate != nil {
			stats.LatestActivity = append(stats.LatestActivity, ActivityEntry{
				Name:             team.Name,
				RepositoryURL:    team.RepositoryURL,
				LatestCommitDate: *team.LatestCommitDate,
			})
		}
	}
	stats.Originals = stats.TotalTeams - stats.Forks
	stats.StaleTeams = recency[BucketStale] + recency[BucketNoCommits]
	stats.Recency = bucketCounts(recencyOrder, recency)
	stats.Pace = bucketCounts(paceOrder, pace)
	stats.ForkSplit = []BucketCount{
		{Name: "Original", Value: stats.Originals},
		{Name: "Fork", Value: stats.Forks},
	}

	sort.SliceStable(stats.LatestActivity, func(i, j int) bool {
		return stats.LatestActivity[i].LatestCommitDate.After(stats.LatestActivity[j].LatestCommitDate)
	})
	if len(stats.LatestActivity) > topActivityLimit {
		stats.LatestActivity = stats.LatestActivity[:topActivityLimit]
	}
	return stats
}

// StatusOptions lists the status filter choices: the fixed ones first, then
// any other status present in teams, in first-seen order
func StatusOptions(teams []models.TeamRecord) []string {
	options := []string{
		string(models.TeamStatusSuccess),
		string(models.TeamStatusPending),
		string(models.TeamStatusUnknown),
	}
	seen := map[string]bool{}
	for _, o := range options {
		seen[o] = true
	}
	for _, team := range teams {
		label := team.StatusLabel()
		if !seen[label] {
			seen[label] = true
			options = append(options, label)
		}
	}
	return options
}

func bucketCounts(order []string, counts map[string]int) []BucketCount {
	out := make([]BucketCount, len(order))
	for i, name := range order {
		out[i] = BucketCount{Name: name, Value: counts[name]}
	}
	return out
}
