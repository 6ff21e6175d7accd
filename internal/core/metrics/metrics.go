package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	TrackingRequests      *prometheus.CounterVec
	ProjectionLatency     prometheus.Histogram
	EventsCollapsed       prometheus.Counter
	ConsignmentsAllocated prometheus.Counter
	AllocationFailures    prometheus.Counter
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TrackingRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "courier_tracking_requests_total",
			Help: "Tracking lookups by source kind and outcome",
		}, []string{"source", "outcome"}),
		ProjectionLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "courier_tracking_projection_seconds",
			Help:    "Time spent rebuilding a shipment timeline from its source document",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
		EventsCollapsed: factory.NewCounter(prometheus.CounterOpts{
			Name: "courier_tracking_events_collapsed_total",
			Help: "Movement events dropped as duplicates",
		}),
		ConsignmentsAllocated: factory.NewCounter(prometheus.CounterOpts{
			Name: "courier_consignments_allocated_total",
			Help: "Consignment numbers issued",
		}),
		AllocationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "courier_consignment_allocation_failures_total",
			Help: "Consignment allocations that aborted",
		}),
	}
}

// ObserveTracking records a tracking lookup. Safe on a nil receiver.
func (m *Metrics) ObserveTracking(source, outcome string) {
	if m == nil {
		return
	}
	m.TrackingRequests.WithLabelValues(source, outcome).Inc()
}

// ObserveProjection records projection latency and the number of collapsed events.
func (m *Metrics) ObserveProjection(d time.Duration, collapsed int) {
	if m == nil {
		return
	}
	m.ProjectionLatency.Observe(d.Seconds())
	if collapsed > 0 {
		m.EventsCollapsed.Add(float64(collapsed))
	}
}

// IncrementAllocated counts one issued consignment number.
func (m *Metrics) IncrementAllocated() {
	if m == nil {
		return
	}
	m.ConsignmentsAllocated.Inc()
}

// IncrementAllocationFailures counts one aborted allocation.
func (m *Metrics) IncrementAllocationFailures() {
	if m == nil {
		return
	}
	m.AllocationFailures.Inc()
}
