package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	refreshItemsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hackmonitor",
			Subsystem: "refresh",
			Name:      "items_total",
			Help:      "Total number of team refreshes grouped by outcome.",
		},
		[]string{"outcome"},
	)
	refreshItemDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hackmonitor",
			Subsystem: "refresh",
			Name:      "item_duration_seconds",
			Help:      "Latency of a single team refresh against the hosting API.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)
	refreshRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hackmonitor",
			Subsystem: "refresh",
			Name:      "runs_total",
			Help:      "Total number of refresh runs grouped by how they were merged.",
		},
		[]string{"merge"},
	)
	refreshRunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "hackmonitor",
			Subsystem: "refresh",
			Name:      "run_duration_seconds",
			Help:      "Duration of complete refresh runs.",
			Buckets:   prometheus.DefBuckets,
		},
	)
	refreshInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "hackmonitor",
			Subsystem: "refresh",
			Name:      "in_flight",
			Help:      "Number of team fetches currently outstanding.",
		},
	)
	teamsStatusGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "hackmonitor",
			Subsystem: "store",
			Name:      "teams_status",
			Help:      "Current number of teams grouped by status.",
		},
		[]string{"status"},
	)
)

var defaultStatuses = []string{"Loading", "Success", "Failure"}

func init() {
	Register()
}

// Register registers all collectors with the default registry
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			refreshItemsTotal,
			refreshItemDuration,
			refreshRunsTotal,
			refreshRunDuration,
			refreshInFlight,
			teamsStatusGauge,
		)

		for _, s := range defaultStatuses {
			teamsStatusGauge.WithLabelValues(s).Set(0)
		}
	})
}

// ObserveRefreshItem records one team fetch
func ObserveRefreshItem(success bool, duration time.Duration) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	refreshItemsTotal.WithLabelValues(outcome).Inc()
	refreshItemDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// ObserveRefreshRun records a finished refresh run. merge is "full",
// "partial" or "superseded".
func ObserveRefreshRun(merge string, duration time.Duration) {
	refreshRunsTotal.WithLabelValues(merge).Inc()
	refreshRunDuration.Observe(duration.Seconds())
}

// IncInFlight marks a fetch as started
func IncInFlight() {
	refreshInFlight.Inc()
}

// DecInFlight marks a fetch as finished
func DecInFlight() {
	refreshInFlight.Dec()
}

// SetTeamStatusCounts publishes the current status distribution of the store
func SetTeamStatusCounts(counts map[string]int) {
	teamsStatusGauge.Reset()
	for _, s := range defaultStatuses {
		teamsStatusGauge.WithLabelValues(s).Set(0)
	}
	for status, n := range counts {
		teamsStatusGauge.WithLabelValues(status).Set(float64(n))
	}
}
