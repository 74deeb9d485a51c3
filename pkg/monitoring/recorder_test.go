package monitoring

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestSetCollectorInfo(t *testing.T) {
	t.Cleanup(func() { collectorInfo.Reset() })

	SetCollectorInfo("test-collector", "default", "Healthy")

	val := gaugeValue(t, collectorInfo, "test-collector", "default", "Healthy")
	if val != 1 {
		t.Errorf("expected collectorInfo gauge to be 1, got %f", val)
	}

	// Phase change should clean up old label set
	SetCollectorInfo("test-collector", "default", "Progressing")

	val = gaugeValue(t, collectorInfo, "test-collector", "default", "Progressing")
	if val != 1 {
		t.Errorf("expected collectorInfo gauge for Progressing to be 1, got %f", val)
	}

	// Old phase must have been cleaned up (value 0)
	oldVal := gaugeValue(t, collectorInfo, "test-collector", "default", "Healthy")
	if oldVal != 0 {
		t.Error("old phase label set should have been cleaned up")
	}
}

func TestSetCollectorReplicas(t *testing.T) {
	t.Cleanup(func() { collectorReplicas.Reset() })

	SetCollectorReplicas("test-collector", "default", 3, 2)

	desired := gaugeValue(t, collectorReplicas, "test-collector", "default", "desired")
	if desired != 3 {
		t.Errorf("expected desired=3, got %f", desired)
	}
	ready := gaugeValue(t, collectorReplicas, "test-collector", "default", "ready")
	if ready != 2 {
		t.Errorf("expected ready=2, got %f", ready)
	}
}

func TestRecordReconcile(t *testing.T) {
	t.Cleanup(func() { reconcileTotal.Reset() })

	RecordReconcile(nil, 50*time.Millisecond)
	RecordReconcile(errors.New("update failed"), 100*time.Millisecond)

	successVal := counterValue(t, reconcileTotal, "success")
	if successVal != 1 {
		t.Errorf("expected success counter=1, got %f", successVal)
	}

	errorVal := counterValue(t, reconcileTotal, "error")
	if errorVal != 1 {
		t.Errorf("expected error counter=1, got %f", errorVal)
	}
}

func TestRecordSpecValidationFailure(t *testing.T) {
	t.Cleanup(func() { specValidationFailures.Reset() })

	RecordSpecValidationFailure("test-collector", "default")
	RecordSpecValidationFailure("test-collector", "default")

	val := counterValue(t, specValidationFailures, "test-collector", "default")
	if val != 2 {
		t.Errorf("expected validation failure counter=2, got %f", val)
	}
}

// --- helpers ---

func gaugeValue(t *testing.T, vec *prometheus.GaugeVec, labels ...string) float64 {
	t.Helper()
	g, err := vec.GetMetricWithLabelValues(labels...)
	if err != nil {
		t.Fatalf("GetMetricWithLabelValues(%v): %v", labels, err)
	}
	m := &dto.Metric{}
	if err := g.Write(m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return m.GetGauge().GetValue()
}

func counterValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	c, err := vec.GetMetricWithLabelValues(labels...)
	if err != nil {
		t.Fatalf("GetMetricWithLabelValues(%v): %v", labels, err)
	}
	m := &dto.Metric{}
	if err := c.Write(m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return m.GetCounter().GetValue()
}
