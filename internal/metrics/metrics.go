package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qc_http_requests_total",
		Help: "Total HTTP requests by method, path and status code",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "qc_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	InspectionsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qc_inspections_submitted_total",
		Help: "Submitted inspections by outcome",
	}, []string{"outcome"})

	HoldsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "qc_holds_created_total",
		Help: "Holds created from out-of-spec inspections",
	})

	LockConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "qc_lock_conflicts_total",
		Help: "Inspection start attempts rejected because the item was locked",
	})

	ActiveLocks = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "qc_active_locks",
		Help: "Queue items currently locked for inspection",
	})
)
