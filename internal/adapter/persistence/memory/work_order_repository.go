package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"
)

type workOrderRepository struct {
	st *state
}

var _ interfaces.IWorkOrderRepository = (*workOrderRepository)(nil)

// row strips the joined data; only the scalar columns are stored.
func row(wo entities.WorkOrder) entities.WorkOrder {
	wo.Customer, wo.Mechanic = nil, nil
	wo.Services, wo.Parts = nil, nil
	return wo
}

func (r *workOrderRepository) Create(_ context.Context, wo entities.WorkOrder) error {
	if _, exists := r.st.orders[wo.ID]; exists {
		return fmt.Errorf("memory: duplicate work order %q", wo.ID)
	}

	serviceIDs := make([]string, 0, len(wo.Services))
	for _, s := range wo.Services {
		for _, existing := range serviceIDs {
			if existing == s.ServiceID {
				return entities.ErrServiceAlreadyAttached
			}
		}
		serviceIDs = append(serviceIDs, s.ServiceID)
	}
	parts := make([]partRow, 0, len(wo.Parts))
	for _, p := range wo.Parts {
		parts = append(parts, partRow{partID: p.PartID, quantity: p.Quantity})
	}

	r.st.orders[wo.ID] = entry[entities.WorkOrder]{seq: r.st.nextSeq(), value: row(wo)}
	r.st.orderServices[wo.ID] = serviceIDs
	r.st.orderParts[wo.ID] = parts
	return nil
}

func (r *workOrderRepository) GetByID(_ context.Context, id string) (entities.WorkOrder, error) {
	e, ok := r.st.orders[id]
	if !ok {
		return entities.WorkOrder{}, nil
	}
	wo := r.withReferences(e.value)

	wo.Services = []entities.WorkOrderService{}
	for _, serviceID := range r.st.orderServices[id] {
		svc, ok := r.st.services[serviceID]
		if !ok {
			continue
		}
		wo.Services = append(wo.Services, entities.WorkOrderService{
			ServiceID: svc.value.ID,
			Name:      svc.value.Name,
			Price:     svc.value.Price,
			Category:  svc.value.Category,
		})
	}
	wo.Parts = []entities.WorkOrderPart{}
	for _, pr := range r.st.orderParts[id] {
		part, ok := r.st.parts[pr.partID]
		if !ok {
			continue
		}
		wo.Parts = append(wo.Parts, entities.WorkOrderPart{
			PartID:   part.value.ID,
			Name:     part.value.Name,
			Brand:    part.value.Brand,
			Model:    part.value.Model,
			Price:    part.value.Price,
			Quantity: pr.quantity,
		})
	}
	return wo, nil
}

func (r *workOrderRepository) withReferences(wo entities.WorkOrder) entities.WorkOrder {
	if c, ok := r.st.customers[wo.CustomerID]; ok {
		customer := c.value
		wo.Customer = &customer
	}
	if m, ok := r.st.mechanics[wo.MechanicID]; ok {
		mechanic := m.value
		wo.Mechanic = &mechanic
	}
	return wo
}

func (r *workOrderRepository) List(_ context.Context, filter interfaces.WorkOrderFilter) ([]entities.WorkOrder, error) {
	var orders []entities.WorkOrder
	for _, e := range r.st.orders {
		wo := r.withReferences(e.value)
		if matchesFilter(wo, filter) {
			orders = append(orders, wo)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].OpenedAt.Equal(orders[j].OpenedAt) {
			return orders[i].OpenedAt.After(orders[j].OpenedAt)
		}
		return orders[i].ID > orders[j].ID
	})

	return paginate(orders, filter.Page), nil
}

// matchesFilter evaluates the list predicates against a summary carrying its
// customer and mechanic.
func matchesFilter(wo entities.WorkOrder, f interfaces.WorkOrderFilter) bool {
	if f.CustomerID != "" && wo.CustomerID != f.CustomerID {
		return false
	}
	if f.MechanicID != "" && wo.MechanicID != f.MechanicID {
		return false
	}
	if f.CustomerName != "" && (wo.Customer == nil || !containsFold(wo.Customer.Name, f.CustomerName)) {
		return false
	}
	if f.MechanicName != "" && (wo.Mechanic == nil || !containsFold(wo.Mechanic.Name, f.MechanicName)) {
		return false
	}
	if f.HasOpenedAtRange() && (wo.OpenedAt.Before(*f.OpenedAtFrom) || wo.OpenedAt.After(*f.OpenedAtTo)) {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func (r *workOrderRepository) Update(_ context.Context, wo entities.WorkOrder) error {
	e, ok := r.st.orders[wo.ID]
	if !ok {
		return entities.ErrWorkOrderNotFound
	}
	e.value = row(wo)
	r.st.orders[wo.ID] = e
	return nil
}

func (r *workOrderRepository) Delete(_ context.Context, id string) error {
	delete(r.st.orders, id)
	delete(r.st.orderServices, id)
	delete(r.st.orderParts, id)
	return nil
}

func (r *workOrderRepository) AttachService(_ context.Context, workOrderID, serviceID string) error {
	current := r.st.orderServices[workOrderID]
	for _, id := range current {
		if id == serviceID {
			return entities.ErrServiceAlreadyAttached
		}
	}
	r.st.orderServices[workOrderID] = append(append([]string(nil), current...), serviceID)
	return nil
}

func (r *workOrderRepository) DetachService(_ context.Context, workOrderID, serviceID string) error {
	current := r.st.orderServices[workOrderID]
	kept := make([]string, 0, len(current))
	for _, id := range current {
		if id != serviceID {
			kept = append(kept, id)
		}
	}
	r.st.orderServices[workOrderID] = kept
	return nil
}

func (r *workOrderRepository) SavePart(_ context.Context, workOrderID string, item entities.WorkOrderPart) error {
	current := r.st.orderParts[workOrderID]
	rows := append([]partRow(nil), current...)
	for i := range rows {
		if rows[i].partID == item.PartID {
			rows[i].quantity = item.Quantity
			r.st.orderParts[workOrderID] = rows
			return nil
		}
	}
	r.st.orderParts[workOrderID] = append(rows, partRow{partID: item.PartID, quantity: item.Quantity})
	return nil
}

func (r *workOrderRepository) DetachPart(_ context.Context, workOrderID, partID string) error {
	current := r.st.orderParts[workOrderID]
	kept := make([]partRow, 0, len(current))
	for _, p := range current {
		if p.partID != partID {
			kept = append(kept, p)
		}
	}
	r.st.orderParts[workOrderID] = kept
	return nil
}

func (r *workOrderRepository) ExistsByCustomerID(_ context.Context, customerID string) (bool, error) {
	for _, e := range r.st.orders {
		if e.value.CustomerID == customerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *workOrderRepository) ExistsByMechanicID(_ context.Context, mechanicID string) (bool, error) {
	for _, e := range r.st.orders {
		if e.value.MechanicID == mechanicID {
			return true, nil
		}
	}
	return false, nil
}

func (r *workOrderRepository) ExistsByServiceID(_ context.Context, serviceID string) (bool, error) {
	for _, ids := range r.st.orderServices {
		for _, id := range ids {
			if id == serviceID {
				return true, nil
			}
		}
	}
	return false, nil
}

func (r *workOrderRepository) ExistsByPartID(_ context.Context, partID string) (bool, error) {
	for _, rows := range r.st.orderParts {
		for _, p := range rows {
			if p.partID == partID {
				return true, nil
			}
		}
	}
	return false, nil
}
