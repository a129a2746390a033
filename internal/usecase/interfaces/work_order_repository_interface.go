package interfaces

import (
	"context"
	"oficina_mecanica/internal/domain/entities"
)

//go:generate mockgen -source=work_order_repository_interface.go -destination=mocks/work_order_repository_interface_mock.go -package=mock_interfaces

// IWorkOrderRepository abstracts persistence for the work-order aggregate and
// its attachment rows.
//
//   - GetByID loads the joined aggregate (customer, mechanic, attached services
//     and parts with current catalog prices). Zero value when absent.
//   - Create writes the order row and every attachment row it carries.
//   - Update writes the scalar columns only (customer, mechanic, status,
//     concluded_at, total_value).
//   - Delete removes the order and cascades its attachment rows.
//   - AttachService fails with entities.ErrServiceAlreadyAttached on a duplicate
//     (order, service) key.
//   - SavePart inserts the (order, part) row or overwrites its quantity.
//   - List returns summaries (customer and mechanic joined, no attachments)
//     ordered by opened_at descending.
type IWorkOrderRepository interface {
	Create(ctx context.Context, wo entities.WorkOrder) error
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	List(ctx context.Context, filter WorkOrderFilter) ([]entities.WorkOrder, error)
	Update(ctx context.Context, wo entities.WorkOrder) error
	Delete(ctx context.Context, id string) error

	AttachService(ctx context.Context, workOrderID, serviceID string) error
	DetachService(ctx context.Context, workOrderID, serviceID string) error
	SavePart(ctx context.Context, workOrderID string, item entities.WorkOrderPart) error
	DetachPart(ctx context.Context, workOrderID, partID string) error

	ExistsByCustomerID(ctx context.Context, customerID string) (bool, error)
	ExistsByMechanicID(ctx context.Context, mechanicID string) (bool, error)
	ExistsByServiceID(ctx context.Context, serviceID string) (bool, error)
	ExistsByPartID(ctx context.Context, partID string) (bool, error)
}
