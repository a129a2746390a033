package metrics

import (
	"errors"
	"fmt"
	"time"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSuccess      = "success"
	outcomeNotFound     = "not_found"
	outcomeBusinessRule = "business_rule"
	outcomeError        = "error"
)

// WorkOrderMetrics implements interfaces.IWorkOrderMetrics on Prometheus.
type WorkOrderMetrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	concluded  prometheus.Counter
	revenue    prometheus.Counter
}

var _ interfaces.IWorkOrderMetrics = (*WorkOrderMetrics)(nil)

func NewWorkOrderMetrics() *WorkOrderMetrics {
	return newWorkOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newWorkOrderMetricsWithRegisterer(registerer prometheus.Registerer) *WorkOrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &WorkOrderMetrics{
		operations: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "oficina_work_order_operations_total",
			Help: "Work-order operations by operation and outcome",
		}, []string{"operation", "outcome"})),
		duration: register(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "oficina_work_order_operation_duration_seconds",
			Help:    "Duration of work-order operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		}, []string{"operation"})),
		concluded: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "oficina_work_orders_concluded_total",
			Help: "Total number of concluded work orders",
		})),
		revenue: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "oficina_work_orders_concluded_value_total",
			Help: "Sum of total values of concluded work orders",
		})),
	}
}

// register returns the already registered collector when one with the same
// descriptor exists.
func register[C prometheus.Collector](registerer prometheus.Registerer, collector C) C {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(C)
			if !ok {
				panic(fmt.Sprintf("collector already registered with unexpected type %T", alreadyRegistered.ExistingCollector))
			}
			return existing
		}
		panic(fmt.Sprintf("register collector: %v", err))
	}
	return collector
}

func (m *WorkOrderMetrics) ObserveOperation(operation string, err error, elapsed time.Duration) {
	m.operations.WithLabelValues(operation, outcome(err)).Inc()
	m.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func (m *WorkOrderMetrics) WorkOrderConcluded(total float64) {
	m.concluded.Inc()
	if total > 0 {
		m.revenue.Add(total)
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case entities.IsNotFound(err):
		return outcomeNotFound
	case entities.IsBusinessRule(err):
		return outcomeBusinessRule
	default:
		return outcomeError
	}
}
