package collector

import (
	"context"
	"fmt"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/equality"
	"k8s.io/apimachinery/pkg/api/errors"
	apimeta "k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/log"

	telemetryv1alpha1 "github.com/openprobe/telemetry-operator/api/v1alpha1"
	"github.com/openprobe/telemetry-operator/pkg/monitoring"
	"github.com/openprobe/telemetry-operator/pkg/status"
)

const (
	// ConditionReady tracks whether all desired replicas are ready.
	ConditionReady = "Ready"

	// ConditionDegraded is set when the spec cannot produce a valid desired
	// state. Such specs are reported instead of retried.
	ConditionDegraded = "Degraded"

	// createConfirmDelay is how long to wait before re-checking a freshly
	// created child resource. Creation is asynchronous on the cluster side,
	// so a follow-up reconcile confirms convergence.
	createConfirmDelay = 10 * time.Second

	// conflictRetryDelay is how soon to retry after an optimistic-concurrency
	// clash. The next reconcile re-fetches, so no backoff is needed.
	conflictRetryDelay = time.Second
)

// CollectorReconciler reconciles a Collector object.
type CollectorReconciler struct {
	client.Client
	Scheme *runtime.Scheme

	// MaxConcurrentReconciles bounds the worker pool. Reconciles for the same
	// key never run concurrently; this only controls parallelism across keys.
	MaxConcurrentReconciles int
}

// +kubebuilder:rbac:groups=telemetry.openprobe.io,resources=collectors,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=telemetry.openprobe.io,resources=collectors/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=apps,resources=deployments,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups="",resources=services,verbs=get;list;watch;create;update;patch;delete

// Reconcile drives the cluster toward the state declared by a Collector.
// It is idempotent and level-triggered: the triggering event carries no
// payload, and all needed state is re-derived from the current cluster state.
func (r *CollectorReconciler) Reconcile(
	ctx context.Context,
	req ctrl.Request,
) (_ ctrl.Result, retErr error) {
	logger := log.FromContext(ctx)
	start := time.Now()

	ctx, span := monitoring.StartReconcileSpan(
		ctx, "collector.Reconcile", req.Name, req.Namespace)
	defer span.End()
	defer func() {
		monitoring.RecordReconcile(retErr, time.Since(start))
		monitoring.RecordSpanError(span, retErr)
	}()

	// Fetch the Collector instance
	col := &telemetryv1alpha1.Collector{}
	if err := r.Get(ctx, req.NamespacedName, col); err != nil {
		if errors.IsNotFound(err) {
			// Deleted. Owner references cascade deletion of the children
			// through the garbage collector, so there is nothing to do.
			logger.Info("Collector resource not found, ignoring")
			return ctrl.Result{}, nil
		}
		logger.Error(err, "Failed to get Collector")
		return ctrl.Result{}, err
	}

	// A malformed spec cannot converge no matter how often it is retried.
	// Report it on status and stop instead of churning the queue.
	if err := ValidateSpec(&col.Spec); err != nil {
		logger.Error(err, "Collector spec cannot produce a valid desired state")
		monitoring.RecordSpecValidationFailure(col.Name, col.Namespace)
		return ctrl.Result{}, r.markDegraded(ctx, col, err)
	}

	createdDeployment, err := r.reconcileDeployment(ctx, col)
	if err != nil {
		if errors.IsConflict(err) {
			logger.Info("Conflict updating Deployment, retrying")
			return ctrl.Result{RequeueAfter: conflictRetryDelay}, nil
		}
		logger.Error(err, "Failed to reconcile Deployment")
		return ctrl.Result{}, err
	}

	createdService, err := r.reconcileService(ctx, col)
	if err != nil {
		if errors.IsConflict(err) {
			logger.Info("Conflict updating Service, retrying")
			return ctrl.Result{RequeueAfter: conflictRetryDelay}, nil
		}
		logger.Error(err, "Failed to reconcile Service")
		return ctrl.Result{}, err
	}

	if err := r.updateStatus(ctx, col); err != nil {
		if errors.IsConflict(err) {
			logger.Info("Conflict updating status, retrying")
			return ctrl.Result{RequeueAfter: conflictRetryDelay}, nil
		}
		logger.Error(err, "Failed to update status")
		return ctrl.Result{}, err
	}

	if createdDeployment || createdService {
		return ctrl.Result{RequeueAfter: createConfirmDelay}, nil
	}

	return ctrl.Result{}, nil
}

// reconcileDeployment creates or updates the Deployment for a Collector.
// It reports whether the Deployment was created on this pass.
func (r *CollectorReconciler) reconcileDeployment(
	ctx context.Context,
	col *telemetryv1alpha1.Collector,
) (bool, error) {
	ctx, span := monitoring.StartChildSpan(ctx, "collector.ReconcileDeployment")
	defer span.End()

	desired, err := BuildDeployment(col, r.Scheme)
	if err != nil {
		return false, fmt.Errorf("failed to build Deployment: %w", err)
	}

	existing := &appsv1.Deployment{}
	err = r.Get(ctx, client.ObjectKey{Namespace: col.Namespace, Name: col.Name}, existing)
	if err != nil {
		if errors.IsNotFound(err) {
			if err := r.Create(ctx, desired); err != nil {
				return false, fmt.Errorf("failed to create Deployment: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to get Deployment: %w", err)
	}

	if !deploymentNeedsUpdate(existing, desired) {
		return false, nil
	}

	existing.Spec = desired.Spec
	existing.Labels = desired.Labels
	if err := r.Update(ctx, existing); err != nil {
		if errors.IsConflict(err) {
			return false, err
		}
		return false, fmt.Errorf("failed to update Deployment: %w", err)
	}

	return false, nil
}

// reconcileService creates or updates the ingest Service for a Collector.
func (r *CollectorReconciler) reconcileService(
	ctx context.Context,
	col *telemetryv1alpha1.Collector,
) (bool, error) {
	ctx, span := monitoring.StartChildSpan(ctx, "collector.ReconcileService")
	defer span.End()

	desired, err := BuildService(col, r.Scheme)
	if err != nil {
		return false, fmt.Errorf("failed to build Service: %w", err)
	}

	existing := &corev1.Service{}
	err = r.Get(ctx, client.ObjectKey{Namespace: col.Namespace, Name: col.Name}, existing)
	if err != nil {
		if errors.IsNotFound(err) {
			if err := r.Create(ctx, desired); err != nil {
				return false, fmt.Errorf("failed to create Service: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to get Service: %w", err)
	}

	if !serviceNeedsUpdate(existing, desired) {
		return false, nil
	}

	existing.Spec.Type = desired.Spec.Type
	existing.Spec.Ports = desired.Spec.Ports
	existing.Spec.Selector = desired.Spec.Selector
	existing.Labels = desired.Labels
	existing.Annotations = desired.Annotations
	if err := r.Update(ctx, existing); err != nil {
		if errors.IsConflict(err) {
			return false, err
		}
		return false, fmt.Errorf("failed to update Service: %w", err)
	}

	return false, nil
}

// deploymentNeedsUpdate reports whether the fields this operator owns have
// drifted from the desired spec. Fields populated by the API server elsewhere
// in the object are ignored so that steady state issues no writes.
func deploymentNeedsUpdate(existing, desired *appsv1.Deployment) bool {
	if !equality.Semantic.DeepEqual(existing.Spec.Replicas, desired.Spec.Replicas) {
		return true
	}
	if !equality.Semantic.DeepEqual(existing.Labels, desired.Labels) ||
		!equality.Semantic.DeepEqual(existing.Spec.Template.Labels, desired.Spec.Template.Labels) ||
		!equality.Semantic.DeepEqual(existing.Spec.Template.Annotations, desired.Spec.Template.Annotations) {
		return true
	}

	ps := existing.Spec.Template.Spec
	ds := desired.Spec.Template.Spec
	if len(ps.Containers) != len(ds.Containers) {
		return true
	}
	for i := range ds.Containers {
		ec, dc := ps.Containers[i], ds.Containers[i]
		if ec.Image != dc.Image ||
			!equality.Semantic.DeepEqual(ec.Command, dc.Command) ||
			!equality.Semantic.DeepEqual(ec.Args, dc.Args) ||
			!equality.Semantic.DeepEqual(ec.Ports, dc.Ports) ||
			!equality.Semantic.DeepEqual(ec.Resources, dc.Resources) {
			return true
		}
	}

	return ps.ServiceAccountName != ds.ServiceAccountName ||
		!equality.Semantic.DeepEqual(ps.ImagePullSecrets, ds.ImagePullSecrets) ||
		!equality.Semantic.DeepEqual(ps.NodeSelector, ds.NodeSelector) ||
		!equality.Semantic.DeepEqual(ps.Tolerations, ds.Tolerations) ||
		!equality.Semantic.DeepEqual(ps.Affinity, ds.Affinity)
}

// serviceNeedsUpdate reports whether the operator-owned Service fields have
// drifted from the desired spec.
func serviceNeedsUpdate(existing, desired *corev1.Service) bool {
	return existing.Spec.Type != desired.Spec.Type ||
		!equality.Semantic.DeepEqual(existing.Spec.Ports, desired.Spec.Ports) ||
		!equality.Semantic.DeepEqual(existing.Spec.Selector, desired.Spec.Selector) ||
		!equality.Semantic.DeepEqual(existing.Labels, desired.Labels) ||
		!equality.Semantic.DeepEqual(existing.Annotations, desired.Annotations)
}

// updateStatus updates the Collector status based on observed state.
// The write is skipped when nothing changed, keeping reconciles free of side
// effects at steady state.
func (r *CollectorReconciler) updateStatus(
	ctx context.Context,
	col *telemetryv1alpha1.Collector,
) error {
	ctx, span := monitoring.StartChildSpan(ctx, "collector.UpdateStatus")
	defer span.End()

	dp := &appsv1.Deployment{}
	err := r.Get(ctx, client.ObjectKey{Namespace: col.Namespace, Name: col.Name}, dp)
	if err != nil {
		if errors.IsNotFound(err) {
			// Deployment not created yet
			return nil
		}
		return fmt.Errorf("failed to get Deployment for status: %w", err)
	}

	newStatus := *col.Status.DeepCopy()
	newStatus.Replicas = dp.Status.Replicas
	newStatus.ReadyReplicas = dp.Status.ReadyReplicas
	newStatus.Ready = dp.Status.ReadyReplicas == dp.Status.Replicas && dp.Status.Replicas > 0
	newStatus.Phase = status.ComputePhase(dp.Status.ReadyReplicas, dp.Status.Replicas)
	newStatus.ObservedGeneration = col.Generation
	apimeta.SetStatusCondition(&newStatus.Conditions, r.buildReadyCondition(col, dp))
	apimeta.RemoveStatusCondition(&newStatus.Conditions, ConditionDegraded)

	desiredReplicas := int32(0)
	if dp.Spec.Replicas != nil {
		desiredReplicas = *dp.Spec.Replicas
	}
	monitoring.SetCollectorInfo(col.Name, col.Namespace, string(newStatus.Phase))
	monitoring.SetCollectorReplicas(col.Name, col.Namespace, desiredReplicas, dp.Status.ReadyReplicas)

	if equality.Semantic.DeepEqual(col.Status, newStatus) {
		return nil
	}

	col.Status = newStatus
	if err := r.Status().Update(ctx, col); err != nil {
		if errors.IsConflict(err) {
			return err
		}
		return fmt.Errorf("failed to update status: %w", err)
	}

	return nil
}

// buildReadyCondition creates the Ready condition based on observed state.
// LastTransitionTime is left unset; SetStatusCondition fills it only when the
// condition actually flips.
func (r *CollectorReconciler) buildReadyCondition(
	col *telemetryv1alpha1.Collector,
	dp *appsv1.Deployment,
) metav1.Condition {
	condition := metav1.Condition{
		Type:               ConditionReady,
		ObservedGeneration: col.Generation,
	}

	if dp.Status.ReadyReplicas == dp.Status.Replicas && dp.Status.Replicas > 0 {
		condition.Status = metav1.ConditionTrue
		condition.Reason = "AllReplicasReady"
		condition.Message = fmt.Sprintf("All %d replicas are ready", dp.Status.ReadyReplicas)
	} else {
		condition.Status = metav1.ConditionFalse
		condition.Reason = "NotAllReplicasReady"
		condition.Message = fmt.Sprintf(
			"%d/%d replicas ready", dp.Status.ReadyReplicas, dp.Status.Replicas)
	}

	return condition
}

// markDegraded records a permanently invalid spec on the Collector status.
// It returns nil when the status write succeeds so the runtime does not
// retry input that cannot converge; the user fixes the spec instead.
func (r *CollectorReconciler) markDegraded(
	ctx context.Context,
	col *telemetryv1alpha1.Collector,
	cause error,
) error {
	newStatus := *col.Status.DeepCopy()
	newStatus.Ready = false
	apimeta.SetStatusCondition(&newStatus.Conditions, metav1.Condition{
		Type:               ConditionDegraded,
		Status:             metav1.ConditionTrue,
		Reason:             "InvalidSpec",
		Message:            cause.Error(),
		ObservedGeneration: col.Generation,
	})

	if equality.Semantic.DeepEqual(col.Status, newStatus) {
		return nil
	}

	col.Status = newStatus
	if err := r.Status().Update(ctx, col); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	return nil
}

// SetupWithManager sets up the controller with the Manager.
func (r *CollectorReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&telemetryv1alpha1.Collector{}).
		Owns(&appsv1.Deployment{}).
		Owns(&corev1.Service{}).
		Named("collector").
		WithOptions(controller.Options{
			MaxConcurrentReconciles: r.MaxConcurrentReconciles,
		}).
		Complete(r)
}
