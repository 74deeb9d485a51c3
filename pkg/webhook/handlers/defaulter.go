package handlers

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/controller-runtime/pkg/webhook"

	telemetryv1alpha1 "github.com/openprobe/telemetry-operator/api/v1alpha1"
	"github.com/openprobe/telemetry-operator/pkg/controller/collector"
)

// +kubebuilder:webhook:path=/mutate-telemetry-openprobe-io-v1alpha1-collector,mutating=true,failurePolicy=fail,sideEffects=None,groups=telemetry.openprobe.io,resources=collectors,verbs=create;update,versions=v1alpha1,name=mcollector.kb.io,admissionReviewVersions=v1

// CollectorDefaulter handles the mutation of Collector resources.
//
// Defaults are materialized explicitly in the stored spec rather than being
// applied silently at reconcile time, so users can see exactly what the
// operator will deploy.
type CollectorDefaulter struct{}

var _ webhook.CustomDefaulter = &CollectorDefaulter{}

// NewCollectorDefaulter creates a new defaulter handler.
func NewCollectorDefaulter() *CollectorDefaulter {
	return &CollectorDefaulter{}
}

// Default implements webhook.CustomDefaulter.
func (d *CollectorDefaulter) Default(ctx context.Context, obj runtime.Object) error {
	col, ok := obj.(*telemetryv1alpha1.Collector)
	if !ok {
		return fmt.Errorf("expected Collector, got %T", obj)
	}

	if col.Spec.Image == "" {
		col.Spec.Image = collector.DefaultImage
	}
	if col.Spec.Replicas == nil {
		col.Spec.Replicas = ptr.To(collector.DefaultReplicas)
	}
	if col.Spec.Port == 0 {
		col.Spec.Port = collector.IngestPort
	}

	return nil
}
