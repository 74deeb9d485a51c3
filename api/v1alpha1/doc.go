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

// Package v1alpha1 defines the API types for the Telemetry Operator.
//
// This package contains the Go type definitions for all Custom Resources in
// the telemetry.openprobe.io API group. These types are used by kubebuilder
// to generate:
//   - CustomResourceDefinitions (CRDs)
//   - DeepCopy methods
//   - Client code
//
// # Custom Resources
//
// The API defines a single user-facing resource:
//
//   - Collector: a replicated telemetry-collection microservice. Users
//     declare the desired replica count, container image, ingest port, and
//     command; the operator owns the Deployment and Service that realize it.
//
// # Resource Hierarchy
//
//	Collector
//	├── Deployment (collector replicas)
//	└── Service (ingest endpoint)
//
// Child resources carry a controller owner reference back to the Collector,
// so deleting the Collector cascades to its children through the Kubernetes
// garbage collector. The operator itself never deletes children directly.
//
// # Versioning
//
// This is the v1alpha1 version, indicating the API is in early development
// and may change in backward-incompatible ways.
package v1alpha1
