package monitoring

import "time"

// SetCollectorInfo sets the info-style gauge for a Collector.
// Old phase labels are automatically cleaned up via DeletePartialMatch.
func SetCollectorInfo(name, namespace, phase string) {
	collectorInfo.DeletePartialMatch(map[string]string{
		"name":      name,
		"namespace": namespace,
	})
	collectorInfo.WithLabelValues(name, namespace, phase).Set(1)
}

// SetCollectorReplicas sets the desired and ready replica gauges for a Collector.
func SetCollectorReplicas(name, namespace string, desired, ready int32) {
	collectorReplicas.WithLabelValues(name, namespace, "desired").Set(float64(desired))
	collectorReplicas.WithLabelValues(name, namespace, "ready").Set(float64(ready))
}

// RecordReconcile records a reconciliation's result and duration.
func RecordReconcile(err error, duration time.Duration) {
	result := "success"
	if err != nil {
		result = "error"
	}
	reconcileTotal.WithLabelValues(result).Inc()
	reconcileDuration.Observe(duration.Seconds())
}

// RecordSpecValidationFailure records a Collector spec that could not produce
// a valid desired state (for example a malformed image reference).
func RecordSpecValidationFailure(name, namespace string) {
	specValidationFailures.WithLabelValues(name, namespace).Inc()
}
