package collector

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"

	telemetryv1alpha1 "github.com/openprobe/telemetry-operator/api/v1alpha1"
)

func TestBuildService(t *testing.T) {
	scheme := runtime.NewScheme()
	_ = telemetryv1alpha1.AddToScheme(scheme)

	tests := map[string]struct {
		col     *telemetryv1alpha1.Collector
		scheme  *runtime.Scheme
		want    *corev1.Service
		wantErr bool
	}{
		"minimal spec": {
			col: &telemetryv1alpha1.Collector{
				ObjectMeta: metav1.ObjectMeta{
					Name:      "test-collector",
					Namespace: "default",
					UID:       "test-uid",
				},
				Spec: telemetryv1alpha1.CollectorSpec{},
			},
			scheme: scheme,
			want: &corev1.Service{
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
				Spec: corev1.ServiceSpec{
					Type: corev1.ServiceTypeClusterIP,
					Selector: map[string]string{
						"app.kubernetes.io/name":       "telemetry",
						"app.kubernetes.io/instance":   "test-collector",
						"app.kubernetes.io/component":  "collector",
						"app.kubernetes.io/part-of":    "telemetry",
						"app.kubernetes.io/managed-by": "telemetry-operator",
					},
					Ports: buildServicePorts(&telemetryv1alpha1.Collector{}),
				},
			},
		},
		"custom service type and annotations": {
			col: &telemetryv1alpha1.Collector{
				ObjectMeta: metav1.ObjectMeta{
					Name:      "test-collector",
					Namespace: "default",
					UID:       "test-uid",
				},
				Spec: telemetryv1alpha1.CollectorSpec{
					ServiceType: corev1.ServiceTypeLoadBalancer,
					ServiceAnnotations: map[string]string{
						"external-dns.alpha.kubernetes.io/hostname": "ingest.example.com",
					},
				},
			},
			scheme: scheme,
			want: &corev1.Service{
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
					Annotations: map[string]string{
						"external-dns.alpha.kubernetes.io/hostname": "ingest.example.com",
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
				Spec: corev1.ServiceSpec{
					Type: corev1.ServiceTypeLoadBalancer,
					Selector: map[string]string{
						"app.kubernetes.io/name":       "telemetry",
						"app.kubernetes.io/instance":   "test-collector",
						"app.kubernetes.io/component":  "collector",
						"app.kubernetes.io/part-of":    "telemetry",
						"app.kubernetes.io/managed-by": "telemetry-operator",
					},
					Ports: buildServicePorts(&telemetryv1alpha1.Collector{}),
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
			got, err := BuildService(tc.col, tc.scheme)

			if (err != nil) != tc.wantErr {
				t.Errorf("BuildService() error = %v, wantErr %v", err, tc.wantErr)
				return
			}

			if tc.wantErr {
				return
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("BuildService() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
