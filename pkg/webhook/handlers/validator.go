package handlers

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/webhook"
	"sigs.k8s.io/controller-runtime/pkg/webhook/admission"

	telemetryv1alpha1 "github.com/openprobe/telemetry-operator/api/v1alpha1"
	"github.com/openprobe/telemetry-operator/pkg/controller/collector"
)

// +kubebuilder:webhook:path=/validate-telemetry-openprobe-io-v1alpha1-collector,mutating=false,failurePolicy=fail,sideEffects=None,groups=telemetry.openprobe.io,resources=collectors,verbs=create;update,versions=v1alpha1,name=vcollector.kb.io,admissionReviewVersions=v1

// CollectorValidator validates Create and Update events for Collectors.
//
// It applies the same spec validation the reconciler uses, so permanently
// invalid input is rejected at admission time instead of surfacing later as
// a Degraded status.
type CollectorValidator struct{}

var _ webhook.CustomValidator = &CollectorValidator{}

// NewCollectorValidator creates a new validator for Collectors.
func NewCollectorValidator() *CollectorValidator {
	return &CollectorValidator{}
}

func (v *CollectorValidator) ValidateCreate(
	ctx context.Context,
	obj runtime.Object,
) (admission.Warnings, error) {
	return v.validate(obj)
}

func (v *CollectorValidator) ValidateUpdate(
	ctx context.Context,
	oldObj, newObj runtime.Object,
) (admission.Warnings, error) {
	return v.validate(newObj)
}

func (v *CollectorValidator) ValidateDelete(
	ctx context.Context,
	obj runtime.Object,
) (admission.Warnings, error) {
	return nil, nil
}

func (v *CollectorValidator) validate(obj runtime.Object) (admission.Warnings, error) {
	col, ok := obj.(*telemetryv1alpha1.Collector)
	if !ok {
		return nil, fmt.Errorf("expected Collector, got %T", obj)
	}

	if err := collector.ValidateSpec(&col.Spec); err != nil {
		return nil, err
	}

	return nil, nil
}
