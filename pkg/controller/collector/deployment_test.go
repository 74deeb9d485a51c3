package collector

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"

	telemetryv1alpha1 "github.com/openprobe/telemetry-operator/api/v1alpha1"
)

func int32Ptr(i int32) *int32 {
	return &i
}

func boolPtr(b bool) *bool {
	return &b
}

func TestBuildDeployment(t *testing.T) {
	scheme := runtime.NewScheme()
	_ = telemetryv1alpha1.AddToScheme(scheme)

	tests := map[string]struct {
		col     *telemetryv1alpha1.Collector
		scheme  *runtime.Scheme
		want    *appsv1.Deployment
		wantErr bool
	}{
		"minimal spec - all defaults": {
			col: &telemetryv1alpha1.Collector{
				ObjectMeta: metav1.ObjectMeta{
					Name:      "test-collector",
					Namespace: "default",
					UID:       "test-uid",
				},
				Spec: telemetryv1alpha1.CollectorSpec{},
			},
			scheme: scheme,
			want: &appsv1.Deployment{
				ObjectMeta: metav1.ObjectMeta{
					Name:      "test-collector",
					Namespace: "default",
					Labels: map[string]string{
						"app.kubernetes.io/name":       "telemetry",
						"app.kubernetes.io/instance":   "test-collector",
						"app.kubernetes.io/component":  "collector",
						"app.kubernetes.io/part-of":    "telemetry",
						"app.kubernetes.io/managed-by": "telemetry-operator",
					},
					OwnerReferences: []metav1.OwnerReference{
						{
							APIVersion:         "telemetry.openprobe.io/v1alpha1",
							Kind:               "Collector",
							Name:               "test-collector",
							UID:                "test-uid",
							Controller:         boolPtr(true),
							BlockOwnerDeletion: boolPtr(true),
						},
					},
				},
				Spec: appsv1.DeploymentSpec{
					Replicas: int32Ptr(1),
					Selector: &metav1.LabelSelector{
						MatchLabels: map[string]string{
							"app.kubernetes.io/name":       "telemetry",
							"app.kubernetes.io/instance":   "test-collector",
							"app.kubernetes.io/component":  "collector",
							"app.kubernetes.io/part-of":    "telemetry",
							"app.kubernetes.io/managed-by": "telemetry-operator",
						},
					},
					Template: corev1.PodTemplateSpec{
						ObjectMeta: metav1.ObjectMeta{
							Labels: map[string]string{
								"app.kubernetes.io/name":       "telemetry",
								"app.kubernetes.io/instance":   "test-collector",
								"app.kubernetes.io/component":  "collector",
								"app.kubernetes.io/part-of":    "telemetry",
								"app.kubernetes.io/managed-by": "telemetry-operator",
							},
						},
						Spec: corev1.PodSpec{
							Containers: []corev1.Container{
								{
									Name:      "collector",
									Image:     DefaultImage,
									Resources: corev1.ResourceRequirements{},
									Ports: buildContainerPorts(
										&telemetryv1alpha1.Collector{},
									),
								},
							},
						},
					},
				},
			},
		},
		"custom replicas, image and command": {
			col: &telemetryv1alpha1.Collector{
				ObjectMeta: metav1.ObjectMeta{
					Name:      "test-collector",
					Namespace: "default",
					UID:       "test-uid",
				},
				Spec: telemetryv1alpha1.CollectorSpec{
					Replicas: int32Ptr(3),
					Image:    "foo/bar:1.2.3",
					Command:  []string{"/bin/collector", "--verbose"},
					PodLabels: map[string]string{
						"team": "observability",
					},
				},
			},
			scheme: scheme,
			want: &appsv1.Deployment{
				ObjectMeta: metav1.ObjectMeta{
					Name:      "test-collector",
					Namespace: "default",
					Labels: map[string]string{
						"app.kubernetes.io/name":       "telemetry",
						"app.kubernetes.io/instance":   "test-collector",
						"app.kubernetes.io/component":  "collector",
						"app.kubernetes.io/part-of":    "telemetry",
						"app.kubernetes.io/managed-by": "telemetry-operator",
					},
					OwnerReferences: []metav1.OwnerReference{
						{
							APIVersion:         "telemetry.openprobe.io/v1alpha1",
							Kind:               "Collector",
							Name:               "test-collector",
							UID:                "test-uid",
							Controller:         boolPtr(true),
							BlockOwnerDeletion: boolPtr(true),
						},
					},
				},
				Spec: appsv1.DeploymentSpec{
					Replicas: int32Ptr(3),
					Selector: &metav1.LabelSelector{
						MatchLabels: map[string]string{
							"app.kubernetes.io/name":       "telemetry",
							"app.kubernetes.io/instance":   "test-collector",
							"app.kubernetes.io/component":  "collector",
							"app.kubernetes.io/part-of":    "telemetry",
							"app.kubernetes.io/managed-by": "telemetry-operator",
						},
					},
					Template: corev1.PodTemplateSpec{
						ObjectMeta: metav1.ObjectMeta{
							Labels: map[string]string{
								"app.kubernetes.io/name":       "telemetry",
								"app.kubernetes.io/instance":   "test-collector",
								"app.kubernetes.io/component":  "collector",
								"app.kubernetes.io/part-of":    "telemetry",
								"app.kubernetes.io/managed-by": "telemetry-operator",
								"team":                         "observability",
							},
						},
						Spec: corev1.PodSpec{
							Containers: []corev1.Container{
								{
									Name:      "collector",
									Image:     "foo/bar:1.2.3",
									Command:   []string{"/bin/collector", "--verbose"},
									Resources: corev1.ResourceRequirements{},
									Ports: buildContainerPorts(
										&telemetryv1alpha1.Collector{},
									),
								},
							},
						},
					},
				},
			},
		},
		"scheme with incorrect type - should error": {
			col: &telemetryv1alpha1.Collector{
				ObjectMeta: metav1.ObjectMeta{
					Name:      "test-collector",
					Namespace: "default",
				},
				Spec: telemetryv1alpha1.CollectorSpec{},
			},
			scheme:  runtime.NewScheme(), // empty scheme with incorrect type
			wantErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := BuildDeployment(tc.col, tc.scheme)

			if (err != nil) != tc.wantErr {
				t.Errorf("BuildDeployment() error = %v, wantErr %v", err, tc.wantErr)
				return
			}

			if tc.wantErr {
				return
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("BuildDeployment() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
