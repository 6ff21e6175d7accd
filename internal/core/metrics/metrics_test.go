package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveTracking("tracking", "found")
	m.ObserveTracking("tracking", "found")
	m.ObserveTracking("none", "not_found")
	m.ObserveProjection(time.Millisecond, 3)
	m.ObserveProjection(time.Millisecond, 0)
	m.IncrementAllocated()
	m.IncrementAllocationFailures()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.TrackingRequests.WithLabelValues("tracking", "found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TrackingRequests.WithLabelValues("none", "not_found")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.EventsCollapsed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ConsignmentsAllocated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AllocationFailures))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveTracking("tracking", "found")
		m.ObserveProjection(time.Second, 1)
		m.IncrementAllocated()
		m.IncrementAllocationFailures()
	})
}
