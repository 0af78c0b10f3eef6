package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// FakeRepo describes how the fake hosting API answers for one repository
type FakeRepo struct {
	CreatedAt     string // RFC3339
	Fork          bool
	Status        int    // metadata status override, 0 = 200
	RateLimited   bool   // metadata answers 403 with an exhausted rate limit
	LatestCommit  string // RFC3339, empty = no commits
	CommitsStatus int    // commits status override, 0 = 200
	RawCommits    string // raw commits body, overrides LatestCommit
	Delay         time.Duration
}

// FakeGitHub is an httptest server that imitates the repository metadata and
// commit listing endpoints of the GitHub REST API
type FakeGitHub struct {
	Server *httptest.Server

	mu       sync.Mutex
	repos    map[string]FakeRepo
	authSeen []string

	inFlight    int64
	maxInFlight int64
	requests    int64
}

// NewFakeGitHub starts a fake hosting API
func NewFakeGitHub() *FakeGitHub {
	f := &FakeGitHub{repos: make(map[string]FakeRepo)}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

// URL returns the base URL of the fake API
func (f *FakeGitHub) URL() string {
	return f.Server.URL
}

// Close shuts down the server
func (f *FakeGitHub) Close() {
	f.Server.Close()
}

// AddRepo registers a repository under "owner/name"
func (f *FakeGitHub) AddRepo(fullName string, repo FakeRepo) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.repos[fullName] = repo
}

// MaxInFlight returns the highest number of concurrent requests observed
func (f *FakeGitHub) MaxInFlight() int {
	return int(atomic.LoadInt64(&f.maxInFlight))
}

// Requests returns the total number of requests served
func (f *FakeGitHub) Requests() int {
	return int(atomic.LoadInt64(&f.requests))
}

// AuthorizationHeaders returns every Authorization header received
func (f *FakeGitHub) AuthorizationHeaders() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.authSeen...)
}

func (f *FakeGitHub) handle(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt64(&f.requests, 1)
	current := atomic.AddInt64(&f.inFlight, 1)
	defer atomic.AddInt64(&f.inFlight, -1)
	for {
		max := atomic.LoadInt64(&f.maxInFlight)
		if current <= max || atomic.CompareAndSwapInt64(&f.maxInFlight, max, current) {
			break
		}
	}

	f.mu.Lock()
	f.authSeen = append(f.authSeen, r.Header.Get("Authorization"))
	f.mu.Unlock()

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 3 || parts[0] != "repos" {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		return
	}

	f.mu.Lock()
	repo, ok := f.repos[parts[1]+"/"+parts[2]]
	f.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		return
	}

	if repo.Delay > 0 {
		select {
		case <-time.After(repo.Delay):
		case <-r.Context().Done():
			return
		}
	}

	switch {
	case len(parts) == 3:
		if repo.RateLimited {
			w.Header().Set("X-RateLimit-Limit", "60")
			w.Header().Set("X-RateLimit-Remaining", "0")
			writeJSON(w, http.StatusForbidden, map[string]string{"message": "API rate limit exceeded for 127.0.0.1."})
			return
		}
		if repo.Status != 0 && repo.Status != http.StatusOK {
			writeJSON(w, repo.Status, map[string]string{"message": http.StatusText(repo.Status)})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"full_name":  parts[1] + "/" + parts[2],
			"created_at": repo.CreatedAt,
			"fork":       repo.Fork,
		})
	case len(parts) == 4 && parts[3] == "commits":
		if repo.CommitsStatus != 0 && repo.CommitsStatus != http.StatusOK {
			writeJSON(w, repo.CommitsStatus, map[string]string{"message": http.StatusText(repo.CommitsStatus)})
			return
		}
		if repo.RawCommits != "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(repo.RawCommits))
			return
		}
		commits := []map[string]interface{}{}
		if repo.LatestCommit != "" {
			commits = append(commits, map[string]interface{}{
				"sha": "0123456789abcdef",
				"commit": map[string]interface{}{
					"message": "latest",
					"author":  map[string]interface{}{"name": "dev", "date": repo.LatestCommit},
				},
			})
		}
		writeJSON(w, http.StatusOK, commits)
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
