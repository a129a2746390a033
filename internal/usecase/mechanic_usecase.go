package usecase

import (
	"context"
	"strings"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/google/uuid"
)

//go:generate mockgen -source=mechanic_usecase.go -destination=../adapter/http/handlers/mocks/mechanic_usecase_mock.go -package=mocks

type IMechanicUseCase interface {
	Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error)
	GetByID(ctx context.Context, id string) (entities.Mechanic, error)
	List(ctx context.Context, page interfaces.Page) ([]entities.Mechanic, error)
	Update(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error)
	Delete(ctx context.Context, id string) (entities.Mechanic, error)
}

type MechanicUseCase struct {
	uow interfaces.IUnitOfWork
}

var _ IMechanicUseCase = (*MechanicUseCase)(nil)

func NewMechanicUseCase(uow interfaces.IUnitOfWork) *MechanicUseCase {
	return &MechanicUseCase{uow: uow}
}

func (u *MechanicUseCase) Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error) {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return entities.Mechanic{}, ErrInvalidName
	}
	m.ID = uuid.NewString()

	var created entities.Mechanic
	err := u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		var err error
		created, err = repos.Mechanics().Create(ctx, m)
		return err
	})
	return created, err
}

func (u *MechanicUseCase) GetByID(ctx context.Context, id string) (entities.Mechanic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Mechanic{}, ErrInvalidMechanicID
	}

	var found entities.Mechanic
	err := u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		var err error
		found, err = requireMechanic(ctx, repos, id)
		return err
	})
	return found, err
}

func (u *MechanicUseCase) List(ctx context.Context, page interfaces.Page) ([]entities.Mechanic, error) {
	page = page.Normalize()

	var items []entities.Mechanic
	err := u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		var err error
		items, err = repos.Mechanics().List(ctx, page)
		return err
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entities.Mechanic{}
	}
	return items, nil
}

func (u *MechanicUseCase) Update(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error) {
	m.ID = strings.TrimSpace(m.ID)
	m.Name = strings.TrimSpace(m.Name)
	if m.ID == "" {
		return entities.Mechanic{}, ErrInvalidMechanicID
	}
	if m.Name == "" {
		return entities.Mechanic{}, ErrInvalidName
	}

	var updated entities.Mechanic
	err := u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		if _, err := requireMechanic(ctx, repos, m.ID); err != nil {
			return err
		}
		var err error
		updated, err = repos.Mechanics().Update(ctx, m)
		return err
	})
	return updated, err
}

func (u *MechanicUseCase) Delete(ctx context.Context, id string) (entities.Mechanic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Mechanic{}, ErrInvalidMechanicID
	}

	var deleted entities.Mechanic
	err := u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		m, err := requireMechanic(ctx, repos, id)
		if err != nil {
			return err
		}
		inUse, err := repos.WorkOrders().ExistsByMechanicID(ctx, id)
		if err != nil {
			return err
		}
		if inUse {
			return entities.ErrMechanicInUse
		}
		if err := repos.Mechanics().Delete(ctx, id); err != nil {
			return err
		}
		deleted = m
		return nil
	})
	return deleted, err
}
