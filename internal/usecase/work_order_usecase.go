package usecase

import (
	"context"
	"strings"
	"time"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=work_order_usecase.go -destination=../adapter/http/handlers/mocks/work_order_usecase_mock.go -package=mocks

// PartItemInput is one {part, quantity} line of a work order request.
type PartItemInput struct {
	PartID   string
	Quantity int
}

type CreateWorkOrderInput struct {
	CustomerID string
	MechanicID string
	ServiceIDs []string
	Parts      []PartItemInput
}

// IWorkOrderUseCase is the work-order aggregate manager.
//
// Every method runs as exactly one unit of work: either all of its writes
// (attachments, total value, status) are committed or none is. Mutators return
// the aggregate as persisted, with the recomputed total.
type IWorkOrderUseCase interface {
	Create(ctx context.Context, in CreateWorkOrderInput) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	List(ctx context.Context, filter interfaces.WorkOrderFilter) ([]entities.WorkOrder, error)
	Reassign(ctx context.Context, id, customerID, mechanicID string) (entities.WorkOrder, error)
	Delete(ctx context.Context, id string) (entities.WorkOrder, error)
	Conclude(ctx context.Context, id string) (entities.WorkOrder, error)
	AddService(ctx context.Context, id, serviceID string) (entities.WorkOrder, error)
	RemoveService(ctx context.Context, id, serviceID string) (entities.WorkOrder, error)
	AddPart(ctx context.Context, id string, item PartItemInput) (entities.WorkOrder, error)
	RemovePart(ctx context.Context, id, partID string) (entities.WorkOrder, error)
}

type WorkOrderUseCase struct {
	uow     interfaces.IUnitOfWork
	metrics interfaces.IWorkOrderMetrics
	logger  *log.Entry

	now   func() time.Time
	newID func() string
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(uow interfaces.IUnitOfWork, metrics interfaces.IWorkOrderMetrics, logger *log.Entry) *WorkOrderUseCase {
	if logger == nil {
		logger = log.WithField("component", "workorder-usecase")
	}
	return &WorkOrderUseCase{
		uow:     uow,
		metrics: metrics,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

func (u *WorkOrderUseCase) Create(ctx context.Context, in CreateWorkOrderInput) (created entities.WorkOrder, err error) {
	defer u.observe("create", time.Now(), &err)

	in, err = normalizeCreateInput(in)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	err = u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		customer, err := requireCustomer(ctx, repos, in.CustomerID)
		if err != nil {
			return err
		}
		mechanic, err := requireMechanic(ctx, repos, in.MechanicID)
		if err != nil {
			return err
		}

		order := entities.NewWorkOrder(u.newID(), customer, mechanic, u.now())
		for _, serviceID := range in.ServiceIDs {
			svc, err := requireService(ctx, repos, serviceID)
			if err != nil {
				return err
			}
			if err := order.AttachService(svc); err != nil {
				return err
			}
		}
		for _, item := range in.Parts {
			part, err := requirePart(ctx, repos, item.PartID)
			if err != nil {
				return err
			}
			if _, err := order.AddPart(part, item.Quantity); err != nil {
				return err
			}
		}

		if err := repos.WorkOrders().Create(ctx, order); err != nil {
			return err
		}
		created = order
		return nil
	})
	if err != nil {
		u.logFailure("create", log.Fields{"customer_id": in.CustomerID, "mechanic_id": in.MechanicID}, err)
		return entities.WorkOrder{}, err
	}

	u.logger.WithFields(log.Fields{
		"work_order_id": created.ID,
		"services":      len(created.Services),
		"parts":         len(created.Parts),
		"total_value":   created.TotalValue.String(),
	}).Info("work order created")
	return created, nil
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (wo entities.WorkOrder, err error) {
	defer u.observe("get", time.Now(), &err)

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	err = u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		var err error
		wo, err = requireWorkOrder(ctx, repos, id)
		return err
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	return wo, nil
}

func (u *WorkOrderUseCase) List(ctx context.Context, filter interfaces.WorkOrderFilter) (orders []entities.WorkOrder, err error) {
	defer u.observe("list", time.Now(), &err)

	filter.Page = filter.Page.Normalize()
	filter.CustomerID = strings.TrimSpace(filter.CustomerID)
	filter.MechanicID = strings.TrimSpace(filter.MechanicID)
	filter.CustomerName = strings.TrimSpace(filter.CustomerName)
	filter.MechanicName = strings.TrimSpace(filter.MechanicName)

	err = u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		var err error
		orders, err = repos.WorkOrders().List(ctx, filter)
		return err
	})
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []entities.WorkOrder{}
	}
	return orders, nil
}

// Reassign changes the customer and/or the mechanic of a pending order. A
// blank id keeps the current reference.
func (u *WorkOrderUseCase) Reassign(ctx context.Context, id, customerID, mechanicID string) (updated entities.WorkOrder, err error) {
	defer u.observe("reassign", time.Now(), &err)

	id = strings.TrimSpace(id)
	customerID = strings.TrimSpace(customerID)
	mechanicID = strings.TrimSpace(mechanicID)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	if customerID == "" && mechanicID == "" {
		return entities.WorkOrder{}, ErrInvalidReassignment
	}

	err = u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		order, err := requireWorkOrder(ctx, repos, id)
		if err != nil {
			return err
		}
		if customerID == "" {
			customerID = order.CustomerID
		}
		if mechanicID == "" {
			mechanicID = order.MechanicID
		}
		customer, err := requireCustomer(ctx, repos, customerID)
		if err != nil {
			return err
		}
		mechanic, err := requireMechanic(ctx, repos, mechanicID)
		if err != nil {
			return err
		}

		if err := order.Reassign(customer, mechanic); err != nil {
			return err
		}
		if err := repos.WorkOrders().Update(ctx, order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		u.logFailure("reassign", log.Fields{"work_order_id": id}, err)
		return entities.WorkOrder{}, err
	}

	u.logger.WithFields(log.Fields{
		"work_order_id": id,
		"customer_id":   updated.CustomerID,
		"mechanic_id":   updated.MechanicID,
	}).Info("work order reassigned")
	return updated, nil
}

// Delete removes the order with its attachment rows and returns the snapshot
// taken right before deletion. Customer, mechanic and catalog records are
// left untouched.
func (u *WorkOrderUseCase) Delete(ctx context.Context, id string) (deleted entities.WorkOrder, err error) {
	defer u.observe("delete", time.Now(), &err)

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	err = u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		order, err := requireWorkOrder(ctx, repos, id)
		if err != nil {
			return err
		}
		if err := repos.WorkOrders().Delete(ctx, order.ID); err != nil {
			return err
		}
		deleted = order
		return nil
	})
	if err != nil {
		u.logFailure("delete", log.Fields{"work_order_id": id}, err)
		return entities.WorkOrder{}, err
	}

	u.logger.WithField("work_order_id", id).Info("work order deleted")
	return deleted, nil
}

func (u *WorkOrderUseCase) Conclude(ctx context.Context, id string) (concluded entities.WorkOrder, err error) {
	defer u.observe("conclude", time.Now(), &err)

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	err = u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		order, err := requireWorkOrder(ctx, repos, id)
		if err != nil {
			return err
		}
		if err := order.Conclude(u.now()); err != nil {
			return err
		}
		if err := repos.WorkOrders().Update(ctx, order); err != nil {
			return err
		}
		concluded = order
		return nil
	})
	if err != nil {
		u.logFailure("conclude", log.Fields{"work_order_id": id}, err)
		return entities.WorkOrder{}, err
	}

	if u.metrics != nil {
		total, _ := concluded.TotalValue.Float64()
		u.metrics.WorkOrderConcluded(total)
	}
	u.logger.WithFields(log.Fields{
		"work_order_id": id,
		"total_value":   concluded.TotalValue.String(),
	}).Info("work order concluded")
	return concluded, nil
}

func (u *WorkOrderUseCase) AddService(ctx context.Context, id, serviceID string) (updated entities.WorkOrder, err error) {
	defer u.observe("add_service", time.Now(), &err)

	id, serviceID = strings.TrimSpace(id), strings.TrimSpace(serviceID)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	if serviceID == "" {
		return entities.WorkOrder{}, ErrInvalidServiceID
	}

	updated, err = u.mutate(ctx, id, func(ctx context.Context, repos interfaces.IRepositories, order *entities.WorkOrder) error {
		svc, err := requireService(ctx, repos, serviceID)
		if err != nil {
			return err
		}
		if err := order.AttachService(svc); err != nil {
			return err
		}
		return repos.WorkOrders().AttachService(ctx, order.ID, svc.ID)
	})
	if err != nil {
		u.logFailure("add_service", log.Fields{"work_order_id": id, "service_id": serviceID}, err)
		return entities.WorkOrder{}, err
	}
	u.logMutation("service attached", updated, log.Fields{"service_id": serviceID})
	return updated, nil
}

func (u *WorkOrderUseCase) RemoveService(ctx context.Context, id, serviceID string) (updated entities.WorkOrder, err error) {
	defer u.observe("remove_service", time.Now(), &err)

	id, serviceID = strings.TrimSpace(id), strings.TrimSpace(serviceID)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	if serviceID == "" {
		return entities.WorkOrder{}, ErrInvalidServiceID
	}

	updated, err = u.mutate(ctx, id, func(ctx context.Context, repos interfaces.IRepositories, order *entities.WorkOrder) error {
		if _, err := requireService(ctx, repos, serviceID); err != nil {
			return err
		}
		if err := order.DetachService(serviceID); err != nil {
			return err
		}
		return repos.WorkOrders().DetachService(ctx, order.ID, serviceID)
	})
	if err != nil {
		u.logFailure("remove_service", log.Fields{"work_order_id": id, "service_id": serviceID}, err)
		return entities.WorkOrder{}, err
	}
	u.logMutation("service detached", updated, log.Fields{"service_id": serviceID})
	return updated, nil
}

// AddPart attaches item.Quantity units of a part, incrementing the existing
// row when the part is already attached.
func (u *WorkOrderUseCase) AddPart(ctx context.Context, id string, item PartItemInput) (updated entities.WorkOrder, err error) {
	defer u.observe("add_part", time.Now(), &err)

	id, item.PartID = strings.TrimSpace(id), strings.TrimSpace(item.PartID)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	if item.PartID == "" {
		return entities.WorkOrder{}, ErrInvalidPartID
	}
	if item.Quantity <= 0 {
		return entities.WorkOrder{}, ErrInvalidQuantity
	}

	updated, err = u.mutate(ctx, id, func(ctx context.Context, repos interfaces.IRepositories, order *entities.WorkOrder) error {
		part, err := requirePart(ctx, repos, item.PartID)
		if err != nil {
			return err
		}
		row, err := order.AddPart(part, item.Quantity)
		if err != nil {
			return err
		}
		return repos.WorkOrders().SavePart(ctx, order.ID, row)
	})
	if err != nil {
		u.logFailure("add_part", log.Fields{"work_order_id": id, "part_id": item.PartID}, err)
		return entities.WorkOrder{}, err
	}
	u.logMutation("part added", updated, log.Fields{"part_id": item.PartID, "quantity": item.Quantity})
	return updated, nil
}

// RemovePart deletes the whole attachment row of a part.
func (u *WorkOrderUseCase) RemovePart(ctx context.Context, id, partID string) (updated entities.WorkOrder, err error) {
	defer u.observe("remove_part", time.Now(), &err)

	id, partID = strings.TrimSpace(id), strings.TrimSpace(partID)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	if partID == "" {
		return entities.WorkOrder{}, ErrInvalidPartID
	}

	updated, err = u.mutate(ctx, id, func(ctx context.Context, repos interfaces.IRepositories, order *entities.WorkOrder) error {
		if _, err := requirePart(ctx, repos, partID); err != nil {
			return err
		}
		if err := order.RemovePart(partID); err != nil {
			return err
		}
		return repos.WorkOrders().DetachPart(ctx, order.ID, partID)
	})
	if err != nil {
		u.logFailure("remove_part", log.Fields{"work_order_id": id, "part_id": partID}, err)
		return entities.WorkOrder{}, err
	}
	u.logMutation("part removed", updated, log.Fields{"part_id": partID})
	return updated, nil
}

// mutate loads the order, applies change (which must touch the attachment
// rows through repos) and persists the recomputed total, all in one unit.
func (u *WorkOrderUseCase) mutate(
	ctx context.Context,
	id string,
	change func(ctx context.Context, repos interfaces.IRepositories, order *entities.WorkOrder) error,
) (entities.WorkOrder, error) {
	var result entities.WorkOrder
	err := u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		order, err := requireWorkOrder(ctx, repos, id)
		if err != nil {
			return err
		}
		if err := change(ctx, repos, &order); err != nil {
			return err
		}
		order.RecalculateTotal()
		if err := repos.WorkOrders().Update(ctx, order); err != nil {
			return err
		}
		result = order
		return nil
	})
	return result, err
}

func normalizeCreateInput(in CreateWorkOrderInput) (CreateWorkOrderInput, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.MechanicID = strings.TrimSpace(in.MechanicID)
	if in.CustomerID == "" {
		return in, ErrInvalidCustomerID
	}
	if in.MechanicID == "" {
		return in, ErrInvalidMechanicID
	}

	serviceIDs := make([]string, 0, len(in.ServiceIDs))
	for _, id := range in.ServiceIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			return in, ErrInvalidServiceID
		}
		serviceIDs = append(serviceIDs, id)
	}
	parts := make([]PartItemInput, 0, len(in.Parts))
	distinctParts := map[string]struct{}{}
	for _, item := range in.Parts {
		item.PartID = strings.TrimSpace(item.PartID)
		if item.PartID == "" {
			return in, ErrInvalidPartID
		}
		if item.Quantity <= 0 {
			return in, ErrInvalidQuantity
		}
		parts = append(parts, item)
		distinctParts[item.PartID] = struct{}{}
	}
	if len(serviceIDs)+len(distinctParts) > MaxCreateLines {
		return in, ErrTooManyLines
	}
	in.ServiceIDs = serviceIDs
	in.Parts = parts
	return in, nil
}

func (u *WorkOrderUseCase) observe(operation string, started time.Time, err *error) {
	if u.metrics == nil {
		return
	}
	u.metrics.ObserveOperation(operation, *err, time.Since(started))
}

func (u *WorkOrderUseCase) logMutation(msg string, wo entities.WorkOrder, fields log.Fields) {
	fields["work_order_id"] = wo.ID
	fields["total_value"] = wo.TotalValue.String()
	u.logger.WithFields(fields).Info(msg)
}

func (u *WorkOrderUseCase) logFailure(operation string, fields log.Fields, err error) {
	fields["operation"] = operation
	entry := u.logger.WithError(err).WithFields(fields)
	switch {
	case entities.IsNotFound(err), entities.IsBusinessRule(err):
		entry.Warn("work order operation rejected")
	default:
		entry.Error("work order operation failed")
	}
}
