// Package handlers contains the admission webhook handlers for the
// Collector custom resource: a mutating defaulter that materializes implicit
// defaults, and a validating handler that rejects specs which could never
// produce a valid desired state.
package handlers
