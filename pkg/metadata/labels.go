package metadata

import "maps"

// Standard Kubernetes label keys following kubernetes.io conventions.
//
// See: https://kubernetes.io/docs/concepts/overview/working-with-objects/common-labels/
const (
	// LabelAppName is the standard label key for the application name.
	LabelAppName = "app.kubernetes.io/name"

	// LabelAppInstance is the standard label key for the unique instance name.
	LabelAppInstance = "app.kubernetes.io/instance"

	// LabelAppVersion is the standard label key for the application version.
	LabelAppVersion = "app.kubernetes.io/version"

	// LabelAppComponent is the standard label key for the component within the
	// application.
	LabelAppComponent = "app.kubernetes.io/component"

	// LabelAppPartOf is the standard label key for the name of a higher level
	// application this one is part of.
	LabelAppPartOf = "app.kubernetes.io/part-of"

	// LabelAppManagedBy is the standard label key for the tool managing the
	// resource.
	LabelAppManagedBy = "app.kubernetes.io/managed-by"
)

const (
	// AppNameTelemetry is the fixed application name for all operator-managed
	// resources.
	AppNameTelemetry = "telemetry"

	// ManagedByOperator identifies the operator managing these resources.
	ManagedByOperator = "telemetry-operator"
)

// BuildStandardLabels builds the standard Kubernetes labels for an
// operator-managed component. These labels are applied to every resource the
// operator creates and double as the Deployment's pod selector, so they must
// be deterministic for a given resource name.
//
// Standard labels include:
//   - app.kubernetes.io/name: "telemetry"
//   - app.kubernetes.io/instance: <resourceName>
//   - app.kubernetes.io/component: <componentName>
//   - app.kubernetes.io/part-of: "telemetry"
//   - app.kubernetes.io/managed-by: "telemetry-operator"
func BuildStandardLabels(resourceName, componentName string) map[string]string {
	return map[string]string{
		LabelAppName:      AppNameTelemetry,
		LabelAppInstance:  resourceName,
		LabelAppComponent: componentName,
		LabelAppPartOf:    AppNameTelemetry,
		LabelAppManagedBy: ManagedByOperator,
	}
}

// MergeLabels merges custom labels with standard labels.
//
// Note that standard labels take precedence over custom labels to prevent
// users from overriding critical operator-managed labels.
func MergeLabels(standardLabels, customLabels map[string]string) map[string]string {
	merged := make(map[string]string)

	maps.Copy(merged, customLabels)
	maps.Copy(merged, standardLabels)

	return merged
}
