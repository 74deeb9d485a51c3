package collector

import (
	"fmt"

	"github.com/distribution/reference"

	telemetryv1alpha1 "github.com/openprobe/telemetry-operator/api/v1alpha1"
)

// ValidateSpec checks whether a Collector spec can produce a valid desired
// state. A non-nil error means the spec is permanently invalid: retrying the
// same input cannot succeed, so the caller should report the problem on
// status instead of returning a retryable error.
func ValidateSpec(spec *telemetryv1alpha1.CollectorSpec) error {
	if spec.Image != "" {
		if _, err := reference.ParseNormalizedNamed(spec.Image); err != nil {
			return fmt.Errorf("invalid image reference %q: %w", spec.Image, err)
		}
	}

	// Zero means unset; the defaulting path fills in the ingest port.
	if spec.Port < 0 || spec.Port > 65535 {
		return fmt.Errorf("port %d is outside the valid range 0-65535", spec.Port)
	}

	if spec.Replicas != nil && *spec.Replicas < 0 {
		return fmt.Errorf("replicas must not be negative, got %d", *spec.Replicas)
	}

	for i, word := range spec.Command {
		if word == "" {
			return fmt.Errorf("command contains an empty word at position %d", i)
		}
	}

	return nil
}
