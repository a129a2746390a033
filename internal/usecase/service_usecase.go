package usecase

import (
	"context"
	"strings"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service_usecase.go -destination=../adapter/http/handlers/mocks/service_usecase_mock.go -package=mocks

// IServiceUseCase manages the service catalog (labor items).
type IServiceUseCase interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context, page interfaces.Page) ([]entities.Service, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	Delete(ctx context.Context, id string) (entities.Service, error)
}

type ServiceUseCase struct {
	uow interfaces.IUnitOfWork
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(uow interfaces.IUnitOfWork) *ServiceUseCase {
	return &ServiceUseCase{uow: uow}
}

// Create registers a new, active service.
func (u *ServiceUseCase) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return entities.Service{}, ErrInvalidName
	}
	if s.Price.IsNegative() {
		return entities.Service{}, ErrInvalidPrice
	}
	s.ID = uuid.NewString()
	s.Active = true

	var created entities.Service
	err := u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		var err error
		created, err = repos.Services().Create(ctx, s)
		return err
	})
	return created, err
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	var found entities.Service
	err := u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		var err error
		found, err = requireService(ctx, repos, id)
		return err
	})
	return found, err
}

func (u *ServiceUseCase) List(ctx context.Context, page interfaces.Page) ([]entities.Service, error) {
	page = page.Normalize()

	var items []entities.Service
	err := u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		var err error
		items, err = repos.Services().List(ctx, page)
		return err
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entities.Service{}
	}
	return items, nil
}

func (u *ServiceUseCase) Count(ctx context.Context) (int64, error) {
	var total int64
	err := u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		var err error
		total, err = repos.Services().Count(ctx)
		return err
	})
	return total, err
}

// Update overwrites name, price, category and the active flag. Pending orders
// carrying the service are priced with the new value whenever they are loaded;
// the stored total used by list summaries catches up on their next mutation.
// Concluded orders keep the total they were concluded with.
func (u *ServiceUseCase) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	s.ID = strings.TrimSpace(s.ID)
	s.Name = strings.TrimSpace(s.Name)
	if s.ID == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	if s.Name == "" {
		return entities.Service{}, ErrInvalidName
	}
	if s.Price.IsNegative() {
		return entities.Service{}, ErrInvalidPrice
	}

	var updated entities.Service
	err := u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		if _, err := requireService(ctx, repos, s.ID); err != nil {
			return err
		}
		var err error
		updated, err = repos.Services().Update(ctx, s)
		return err
	})
	return updated, err
}

func (u *ServiceUseCase) Delete(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	var deleted entities.Service
	err := u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		s, err := requireService(ctx, repos, id)
		if err != nil {
			return err
		}
		inUse, err := repos.WorkOrders().ExistsByServiceID(ctx, id)
		if err != nil {
			return err
		}
		if inUse {
			return entities.ErrServiceInUse
		}
		if err := repos.Services().Delete(ctx, id); err != nil {
			return err
		}
		deleted = s
		return nil
	})
	return deleted, err
}
