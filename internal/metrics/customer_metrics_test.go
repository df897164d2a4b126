package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/jhoicas/rocketstore-api/internal/domain"
)

func counterValue(t *testing.T, m *CustomerMetrics, op, outcome string) float64 {
	t.Helper()
	var out dto.Metric
	if err := m.operations.WithLabelValues(op, outcome).Write(&out); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return out.GetCounter().GetValue()
}

func TestCustomerMetrics_ObserveOperation(t *testing.T) {
	m := NewCustomerMetrics(prometheus.NewRegistry())

	m.ObserveOperation("create", "")
	m.ObserveOperation("create", "")
	m.ObserveOperation("create", domain.ErrCodeCustomerAlreadyExists)

	if got := counterValue(t, m, "create", "ok"); got != 2 {
		t.Fatalf("expected 2 ok creates, got %v", got)
	}
	if got := counterValue(t, m, "create", "CustomerAlreadyExists"); got != 1 {
		t.Fatalf("expected 1 conflict, got %v", got)
	}
}

func TestCustomerMetrics_ObserveGeocoding(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCustomerMetrics(reg)

	m.ObserveGeocoding(true, 120*time.Millisecond)
	m.ObserveGeocoding(false, 3*time.Second)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	var samples uint64
	for _, f := range families {
		if f.GetName() != "rocketstore_geocoding_request_duration_seconds" {
			continue
		}
		for _, metric := range f.GetMetric() {
			samples += metric.GetHistogram().GetSampleCount()
		}
	}
	if samples != 2 {
		t.Fatalf("expected 2 samples, got %d", samples)
	}
}

func TestNewCustomerMetrics_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewCustomerMetrics(reg)
	second := NewCustomerMetrics(reg)

	first.ObserveOperation("list", "")
	if got := counterValue(t, second, "list", "ok"); got != 1 {
		t.Fatalf("expected shared collector, got %v", got)
	}
}
