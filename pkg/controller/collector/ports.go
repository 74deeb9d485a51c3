package collector

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/intstr"

	telemetryv1alpha1 "github.com/openprobe/telemetry-operator/api/v1alpha1"
)

const (
	// IngestPort is the default port for telemetry ingest connections.
	IngestPort int32 = 9464
)

// buildContainerPorts creates the port definitions for the collector container.
func buildContainerPorts(col *telemetryv1alpha1.Collector) []corev1.ContainerPort {
	ingestPort := IngestPort
	if col.Spec.Port != 0 {
		ingestPort = col.Spec.Port
	}

	return []corev1.ContainerPort{
		{
			Name:          "ingest",
			ContainerPort: ingestPort,
			Protocol:      corev1.ProtocolTCP,
		},
	}
}

// buildServicePorts creates service ports for the ingest service.
func buildServicePorts(col *telemetryv1alpha1.Collector) []corev1.ServicePort {
	ingestPort := IngestPort
	if col.Spec.Port != 0 {
		ingestPort = col.Spec.Port
	}

	return []corev1.ServicePort{
		{
			Name:       "ingest",
			Port:       ingestPort,
			TargetPort: intstr.FromString("ingest"),
			Protocol:   corev1.ProtocolTCP,
		},
	}
}
