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

// Package status provides utilities for managing and calculating the Phase
// and Status conditions of Telemetry Operator Custom Resources.
package status

import (
	telemetryv1alpha1 "github.com/openprobe/telemetry-operator/api/v1alpha1"
)

// ComputePhase determines the phase of a resource based on its readiness.
func ComputePhase(ready, total int32) telemetryv1alpha1.Phase {
	if total == 0 {
		return telemetryv1alpha1.PhaseInitializing
	}
	if ready == total {
		return telemetryv1alpha1.PhaseHealthy
	}
	return telemetryv1alpha1.PhaseProgressing
}
