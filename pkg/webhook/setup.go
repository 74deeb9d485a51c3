// Package webhook provides the entry point for the Telemetry Operator's
// admission control layer.
//
// It registers the Collector admission handlers (from the 'handlers'
// subpackage) with the controller-runtime webhook server. Certificate
// provisioning is expected to be handled externally (for example by
// cert-manager) and mounted into the webhook server's certificate directory.
//
// Usage:
//
//	if err := webhook.Setup(mgr, opts); err != nil {
//	    setupLog.Error(err, "unable to setup webhook")
//	    os.Exit(1)
//	}
package webhook

import (
	"fmt"

	ctrl "sigs.k8s.io/controller-runtime"

	telemetryv1alpha1 "github.com/openprobe/telemetry-operator/api/v1alpha1"
	"github.com/openprobe/telemetry-operator/pkg/webhook/handlers"
)

// Options contains the configuration required to set up the webhook server.
type Options struct {
	// Enable indicates whether to register the admission webhooks.
	Enable bool
}

// Setup registers the Collector admission handlers with the manager.
func Setup(mgr ctrl.Manager, opts Options) error {
	if !opts.Enable {
		return nil
	}

	logger := mgr.GetLogger().WithName("webhook-setup")
	logger.Info("Setting up webhook server")

	if err := ctrl.NewWebhookManagedBy(mgr).
		For(&telemetryv1alpha1.Collector{}).
		WithDefaulter(handlers.NewCollectorDefaulter()).
		WithValidator(handlers.NewCollectorValidator()).
		Complete(); err != nil {
		return fmt.Errorf("failed to register Collector webhooks: %w", err)
	}

	return nil
}
