package usecase

import (
	"context"
	"strings"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/google/uuid"
)

//go:generate mockgen -source=customer_usecase.go -destination=../adapter/http/handlers/mocks/customer_usecase_mock.go -package=mocks

type ICustomerUseCase interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context, page interfaces.Page) ([]entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) (entities.Customer, error)
}

type CustomerUseCase struct {
	uow interfaces.IUnitOfWork
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(uow interfaces.IUnitOfWork) *CustomerUseCase {
	return &CustomerUseCase{uow: uow}
}

func (u *CustomerUseCase) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Customer{}, ErrInvalidName
	}
	c.ID = uuid.NewString()

	var created entities.Customer
	err := u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		var err error
		created, err = repos.Customers().Create(ctx, c)
		return err
	})
	return created, err
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	var found entities.Customer
	err := u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		var err error
		found, err = requireCustomer(ctx, repos, id)
		return err
	})
	return found, err
}

func (u *CustomerUseCase) List(ctx context.Context, page interfaces.Page) ([]entities.Customer, error) {
	page = page.Normalize()

	var items []entities.Customer
	err := u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		var err error
		items, err = repos.Customers().List(ctx, page)
		return err
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entities.Customer{}
	}
	return items, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.ID = strings.TrimSpace(c.ID)
	c.Name = strings.TrimSpace(c.Name)
	if c.ID == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	if c.Name == "" {
		return entities.Customer{}, ErrInvalidName
	}

	var updated entities.Customer
	err := u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		if _, err := requireCustomer(ctx, repos, c.ID); err != nil {
			return err
		}
		var err error
		updated, err = repos.Customers().Update(ctx, c)
		return err
	})
	return updated, err
}

// Delete refuses to remove a customer still referenced by a work order.
func (u *CustomerUseCase) Delete(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	var deleted entities.Customer
	err := u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		c, err := requireCustomer(ctx, repos, id)
		if err != nil {
			return err
		}
		inUse, err := repos.WorkOrders().ExistsByCustomerID(ctx, id)
		if err != nil {
			return err
		}
		if inUse {
			return entities.ErrCustomerInUse
		}
		if err := repos.Customers().Delete(ctx, id); err != nil {
			return err
		}
		deleted = c
		return nil
	})
	return deleted, err
}
