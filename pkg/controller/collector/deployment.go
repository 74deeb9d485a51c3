package collector

import (
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"

	telemetryv1alpha1 "github.com/openprobe/telemetry-operator/api/v1alpha1"
	"github.com/openprobe/telemetry-operator/pkg/metadata"
)

const (
	// ComponentName is the component label value for Collector resources
	ComponentName = "collector"

	// DefaultReplicas is the default number of collector replicas
	DefaultReplicas int32 = 1

	// DefaultImage is the default collector container image
	DefaultImage = "openprobe/collector:latest"
)

// BuildDeployment creates a Deployment for the Collector workload.
// Returns a deterministic Deployment based on the Collector spec.
func BuildDeployment(
	col *telemetryv1alpha1.Collector,
	scheme *runtime.Scheme,
) (*appsv1.Deployment, error) {
	replicas := DefaultReplicas
	if col.Spec.Replicas != nil {
		replicas = *col.Spec.Replicas
	}

	image := DefaultImage
	if col.Spec.Image != "" {
		image = col.Spec.Image
	}

	labels := metadata.BuildStandardLabels(col.Name, ComponentName)
	podLabels := metadata.MergeLabels(labels, col.Spec.PodLabels)

	deployment := &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:      col.Name,
			Namespace: col.Namespace,
			Labels:    labels,
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: &replicas,
			Selector: &metav1.LabelSelector{
				MatchLabels: labels,
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels:      podLabels,
					Annotations: col.Spec.PodAnnotations,
				},
				Spec: corev1.PodSpec{
					ServiceAccountName: col.Spec.ServiceAccountName,
					ImagePullSecrets:   col.Spec.ImagePullSecrets,
					Containers: []corev1.Container{
						{
							Name:      "collector",
							Image:     image,
							Command:   col.Spec.Command,
							Args:      col.Spec.Args,
							Resources: col.Spec.Resources,
							Ports:     buildContainerPorts(col),
						},
					},
					Affinity:     col.Spec.Affinity,
					Tolerations:  col.Spec.Tolerations,
					NodeSelector: col.Spec.NodeSelector,
				},
			},
		},
	}

	if err := ctrl.SetControllerReference(col, deployment, scheme); err != nil {
		return nil, fmt.Errorf("failed to set controller reference: %w", err)
	}

	return deployment, nil
}
