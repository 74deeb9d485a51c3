package collector

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"

	telemetryv1alpha1 "github.com/openprobe/telemetry-operator/api/v1alpha1"
	"github.com/openprobe/telemetry-operator/pkg/metadata"
)

// BuildService creates the ingest Service for a Collector.
// The service load balances across all collector replicas.
func BuildService(
	col *telemetryv1alpha1.Collector,
	scheme *runtime.Scheme,
) (*corev1.Service, error) {
	labels := metadata.BuildStandardLabels(col.Name, ComponentName)

	serviceType := corev1.ServiceTypeClusterIP
	if col.Spec.ServiceType != "" {
		serviceType = col.Spec.ServiceType
	}

	svc := &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name:        col.Name,
			Namespace:   col.Namespace,
			Labels:      labels,
			Annotations: col.Spec.ServiceAnnotations,
		},
		Spec: corev1.ServiceSpec{
			Type:     serviceType,
			Selector: labels,
			Ports:    buildServicePorts(col),
		},
	}

	if err := ctrl.SetControllerReference(col, svc, scheme); err != nil {
		return nil, fmt.Errorf("failed to set controller reference: %w", err)
	}

	return svc, nil
}
