package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRefreshItem(t *testing.T) {
	before := testutil.ToFloat64(refreshItemsTotal.WithLabelValues("failure"))

	ObserveRefreshItem(false, 20*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(refreshItemsTotal.WithLabelValues("failure")))
}

func TestObserveRefreshRun(t *testing.T) {
	before := testutil.ToFloat64(refreshRunsTotal.WithLabelValues("partial"))

	ObserveRefreshRun("partial", time.Second)

	assert.Equal(t, before+1, testutil.ToFloat64(refreshRunsTotal.WithLabelValues("partial")))
}

func TestInFlightGauge(t *testing.T) {
	IncInFlight()
	IncInFlight()
	DecInFlight()
	assert.Equal(t, float64(1), testutil.ToFloat64(refreshInFlight))
	DecInFlight()
	assert.Equal(t, float64(0), testutil.ToFloat64(refreshInFlight))
}

func TestSetTeamStatusCounts(t *testing.T) {
	SetTeamStatusCounts(map[string]int{"Success": 3, "Custom": 1})

	assert.Equal(t, float64(3), testutil.ToFloat64(teamsStatusGauge.WithLabelValues("Success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(teamsStatusGauge.WithLabelValues("Custom")))
	assert.Equal(t, float64(0), testutil.ToFloat64(teamsStatusGauge.WithLabelValues("Loading")))
}
