// Package monitoring provides Prometheus metrics and recording helpers for
// the Telemetry Operator. It exposes domain-specific gauges and counters
// that complement the generic controller-runtime metrics already registered
// by the framework.
//
// All metrics follow the naming convention telemetry_operator_<metric>_<unit>
// and are registered against controller-runtime's default Prometheus registry
// on import.
//
// Usage in controllers:
//
//	monitoring.SetCollectorInfo(col.Name, col.Namespace, string(col.Status.Phase))
//	monitoring.SetCollectorReplicas(col.Name, col.Namespace, desired, ready)
//	monitoring.RecordReconcile(err, elapsed)
package monitoring
