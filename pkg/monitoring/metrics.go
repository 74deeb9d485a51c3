package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

// Domain-specific metric collectors.
//
// These complement the generic controller-runtime metrics (reconcile counts,
// durations, work queue depth, etc.) with operator-specific state that the
// framework cannot know about.
var (
	collectorInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "telemetry_operator_collector_info",
			Help: "Info-style metric for Collector discovery and phase tracking. Always 1.",
		},
		[]string{"name", "namespace", "phase"},
	)

	collectorReplicas = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "telemetry_operator_collector_replicas",
			Help: "Collector replica counts, split by desired and ready state.",
		},
		[]string{"name", "namespace", "state"},
	)

	reconcileTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telemetry_operator_reconcile_total",
			Help: "Total number of Collector reconciliations by result.",
		},
		[]string{"result"},
	)

	reconcileDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "telemetry_operator_reconcile_duration_seconds",
			Help:    "Latency of Collector reconciliations in seconds.",
			Buckets: prometheus.DefBuckets,
		},
	)

	specValidationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telemetry_operator_spec_validation_failures_total",
			Help: "Total number of Collector specs rejected as permanently invalid.",
		},
		[]string{"name", "namespace"},
	)
)

func init() {
	metrics.Registry.MustRegister(
		collectorInfo,
		collectorReplicas,
		reconcileTotal,
		reconcileDuration,
		specValidationFailures,
	)
}

// Collectors returns all registered metric collectors. This is useful for
// testing that metrics are properly registered.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		collectorInfo,
		collectorReplicas,
		reconcileTotal,
		reconcileDuration,
		specValidationFailures,
	}
}
