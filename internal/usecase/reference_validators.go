package usecase

import (
	"context"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"
)

// Reference validators resolve an id inside the current unit of work and fail
// with the matching NotFound error. They run before any write.

func requireCustomer(ctx context.Context, repos interfaces.IRepositories, id string) (entities.Customer, error) {
	c, err := repos.Customers().GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, entities.ErrCustomerNotFound
	}
	return c, nil
}

func requireMechanic(ctx context.Context, repos interfaces.IRepositories, id string) (entities.Mechanic, error) {
	m, err := repos.Mechanics().GetByID(ctx, id)
	if err != nil {
		return entities.Mechanic{}, err
	}
	if m.ID == "" {
		return entities.Mechanic{}, entities.ErrMechanicNotFound
	}
	return m, nil
}

func requireService(ctx context.Context, repos interfaces.IRepositories, id string) (entities.Service, error) {
	s, err := repos.Services().GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, entities.ErrServiceNotFound
	}
	return s, nil
}

func requirePart(ctx context.Context, repos interfaces.IRepositories, id string) (entities.Part, error) {
	p, err := repos.Parts().GetByID(ctx, id)
	if err != nil {
		return entities.Part{}, err
	}
	if p.ID == "" {
		return entities.Part{}, entities.ErrPartNotFound
	}
	return p, nil
}

// requireWorkOrder loads the joined aggregate. A pending order's total is
// recomputed from the current catalog prices it was joined with; a concluded
// order keeps the total stored when it was concluded.
func requireWorkOrder(ctx context.Context, repos interfaces.IRepositories, id string) (entities.WorkOrder, error) {
	wo, err := repos.WorkOrders().GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, entities.ErrWorkOrderNotFound
	}
	if !wo.IsConcluded() {
		wo.RecalculateTotal()
	}
	return wo, nil
}
