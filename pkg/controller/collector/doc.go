// Package collector implements the reconciliation controller for the
// Collector custom resource.
//
// The controller is level-triggered: every reconcile re-derives the desired
// Deployment and Service purely from the Collector spec, compares them
// against the observed cluster state, and issues the minimal create/update
// calls needed to converge. It keeps no state between invocations, so
// duplicate, reordered, or coalesced watch events all converge to the same
// result. Child resources carry a controller owner reference, leaving
// cascade deletion to the Kubernetes garbage collector.
package collector
