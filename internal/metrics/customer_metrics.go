package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/rocketstore-api/internal/application/ports"
	"github.com/jhoicas/rocketstore-api/internal/domain"
	"github.com/jhoicas/rocketstore-api/internal/infrastructure/geocoding"
)

var (
	_ ports.OperationRecorder   = (*CustomerMetrics)(nil)
	_ geocoding.LatencyObserver = (*CustomerMetrics)(nil)
)

// outcomeOK etiqueta de las operaciones exitosas.
const outcomeOK = "ok"

// CustomerMetrics métricas de las operaciones de clientes y de la geocodificación.
type CustomerMetrics struct {
	operations      *prometheus.CounterVec
	geocodeDuration *prometheus.HistogramVec
}

// NewCustomerMetrics registra las métricas en registerer (DefaultRegisterer si es nil).
func NewCustomerMetrics(registerer prometheus.Registerer) *CustomerMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	return &CustomerMetrics{
		operations: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "rocketstore_customer_operations_total",
			Help: "Customer operations by operation and outcome (ok or error code)",
		}, []string{"operation", "outcome"}),
		geocodeDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "rocketstore_geocoding_request_duration_seconds",
			Help:    "Duration of forward geocoding requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"outcome"}),
	}
}

// ObserveOperation cuenta una operación; code vacío = éxito.
func (m *CustomerMetrics) ObserveOperation(operation string, code domain.ErrorCode) {
	outcome := outcomeOK
	if code != "" {
		outcome = string(code)
	}
	m.operations.WithLabelValues(operation, outcome).Inc()
}

// ObserveGeocoding registra la latencia de una llamada de geocodificación.
func (m *CustomerMetrics) ObserveGeocoding(success bool, elapsed time.Duration) {
	outcome := outcomeOK
	if !success {
		outcome = "error"
	}
	m.geocodeDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}
