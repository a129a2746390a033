package interfaces

import "time"

//go:generate mockgen -source=work_order_metrics_interface.go -destination=mocks/work_order_metrics_interface_mock.go -package=mock_interfaces

// IWorkOrderMetrics records work-order operation outcomes.
type IWorkOrderMetrics interface {
	ObserveOperation(operation string, err error, elapsed time.Duration)
	WorkOrderConcluded(total float64)
}
