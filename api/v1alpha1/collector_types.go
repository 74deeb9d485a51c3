/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// NOTE: json tags are required.  Any new fields you add must have json tags for
// the fields to be serialized.

// Phase describes the coarse lifecycle state of a Collector, derived from
// the readiness of its Deployment.
// +kubebuilder:validation:Enum=Initializing;Progressing;Healthy
type Phase string

const (
	// PhaseInitializing means no replicas have been observed yet.
	PhaseInitializing Phase = "Initializing"

	// PhaseProgressing means some, but not all, replicas are ready.
	PhaseProgressing Phase = "Progressing"

	// PhaseHealthy means all desired replicas are ready.
	PhaseHealthy Phase = "Healthy"
)

// CollectorSpec defines the desired state of Collector.
type CollectorSpec struct {
	// Image is the container image for the collector workload.
	// +kubebuilder:validation:MinLength=1
	// +kubebuilder:default="openprobe/collector:latest"
	// +optional
	Image string `json:"image,omitempty"`

	// ImagePullSecrets is an optional list of references to secrets in the same namespace
	// to use for pulling the image.
	// +optional
	ImagePullSecrets []corev1.LocalObjectReference `json:"imagePullSecrets,omitempty"`

	// Replicas is the desired number of collector pods.
	// +kubebuilder:validation:Minimum=0
	// +kubebuilder:default=1
	// +optional
	Replicas *int32 `json:"replicas,omitempty"`

	// Port is the port the collector listens on for telemetry ingest.
	// +kubebuilder:validation:Minimum=1
	// +kubebuilder:validation:Maximum=65535
	// +kubebuilder:default=9464
	// +optional
	Port int32 `json:"port,omitempty"`

	// Command overrides the container entrypoint.
	// +optional
	Command []string `json:"command,omitempty"`

	// Args are arguments passed to the container entrypoint.
	// +optional
	Args []string `json:"args,omitempty"`

	// Resources defines the resource requirements for the collector container.
	// +optional
	Resources corev1.ResourceRequirements `json:"resources,omitempty"`

	// ServiceAccountName is the name of the ServiceAccount to use for the collector pods.
	// +optional
	ServiceAccountName string `json:"serviceAccountName,omitempty"`

	// ServiceType determines how the ingest Service is exposed.
	// +kubebuilder:validation:Enum=ClusterIP;NodePort;LoadBalancer
	// +kubebuilder:default="ClusterIP"
	// +optional
	ServiceType corev1.ServiceType `json:"serviceType,omitempty"`

	// ServiceAnnotations are annotations to add to the ingest Service.
	// +optional
	ServiceAnnotations map[string]string `json:"serviceAnnotations,omitempty"`

	// Affinity defines pod affinity and anti-affinity rules.
	// +optional
	Affinity *corev1.Affinity `json:"affinity,omitempty"`

	// Tolerations allows pods to schedule onto nodes with matching taints.
	// +optional
	Tolerations []corev1.Toleration `json:"tolerations,omitempty"`

	// NodeSelector is a selector which must be true for the pod to fit on a node.
	// +optional
	NodeSelector map[string]string `json:"nodeSelector,omitempty"`

	// PodAnnotations are annotations to add to the collector pods.
	// +optional
	PodAnnotations map[string]string `json:"podAnnotations,omitempty"`

	// PodLabels are additional labels to add to the collector pods.
	// +optional
	PodLabels map[string]string `json:"podLabels,omitempty"`
}

// CollectorStatus defines the observed state of Collector.
type CollectorStatus struct {
	// Ready indicates whether the Collector is healthy and available.
	Ready bool `json:"ready"`

	// Replicas is the most recently observed number of replicas on the
	// managed Deployment.
	Replicas int32 `json:"replicas"`

	// ReadyReplicas is the number of ready replicas.
	ReadyReplicas int32 `json:"readyReplicas"`

	// Phase is the coarse lifecycle state derived from replica readiness.
	// +optional
	Phase Phase `json:"phase,omitempty"`

	// ObservedGeneration reflects the generation of the most recently observed Collector spec.
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`

	// Conditions represent the latest available observations of the Collector's state.
	// +listType=map
	// +listMapKey=type
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Ready",type=boolean,JSONPath=`.status.ready`
// +kubebuilder:printcolumn:name="Replicas",type=string,JSONPath=`.status.readyReplicas`
// +kubebuilder:printcolumn:name="Phase",type=string,JSONPath=`.status.phase`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// Collector is the Schema for the collectors API
type Collector struct {
	metav1.TypeMeta `json:",inline"`

	// metadata is a standard object metadata
	// +optional
	metav1.ObjectMeta `json:"metadata,omitempty,omitzero"`

	// spec defines the desired state of Collector
	// +required
	Spec CollectorSpec `json:"spec"`

	// status defines the observed state of Collector
	// +optional
	Status CollectorStatus `json:"status,omitempty,omitzero"`
}

// +kubebuilder:object:root=true

// CollectorList contains a list of Collector
type CollectorList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Collector `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Collector{}, &CollectorList{})
}
