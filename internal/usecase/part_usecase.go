package usecase

import (
	"context"
	"strings"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/google/uuid"
)

//go:generate mockgen -source=part_usecase.go -destination=../adapter/http/handlers/mocks/part_usecase_mock.go -package=mocks

// IPartUseCase manages the parts catalog.
type IPartUseCase interface {
	Create(ctx context.Context, p entities.Part) (entities.Part, error)
	GetByID(ctx context.Context, id string) (entities.Part, error)
	List(ctx context.Context, page interfaces.Page) ([]entities.Part, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, p entities.Part) (entities.Part, error)
	Delete(ctx context.Context, id string) (entities.Part, error)
}

type PartUseCase struct {
	uow interfaces.IUnitOfWork
}

var _ IPartUseCase = (*PartUseCase)(nil)

func NewPartUseCase(uow interfaces.IUnitOfWork) *PartUseCase {
	return &PartUseCase{uow: uow}
}

func (u *PartUseCase) Create(ctx context.Context, p entities.Part) (entities.Part, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return entities.Part{}, ErrInvalidName
	}
	if p.Price.IsNegative() {
		return entities.Part{}, ErrInvalidPrice
	}
	p.ID = uuid.NewString()

	var created entities.Part
	err := u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		var err error
		created, err = repos.Parts().Create(ctx, p)
		return err
	})
	return created, err
}

func (u *PartUseCase) GetByID(ctx context.Context, id string) (entities.Part, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Part{}, ErrInvalidPartID
	}

	var found entities.Part
	err := u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		var err error
		found, err = requirePart(ctx, repos, id)
		return err
	})
	return found, err
}

func (u *PartUseCase) List(ctx context.Context, page interfaces.Page) ([]entities.Part, error) {
	page = page.Normalize()

	var items []entities.Part
	err := u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		var err error
		items, err = repos.Parts().List(ctx, page)
		return err
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entities.Part{}
	}
	return items, nil
}

func (u *PartUseCase) Count(ctx context.Context) (int64, error) {
	var total int64
	err := u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		var err error
		total, err = repos.Parts().Count(ctx)
		return err
	})
	return total, err
}

// Update overwrites the part. Price changes reach orders the same way as
// ServiceUseCase.Update.
func (u *PartUseCase) Update(ctx context.Context, p entities.Part) (entities.Part, error) {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	if p.ID == "" {
		return entities.Part{}, ErrInvalidPartID
	}
	if p.Name == "" {
		return entities.Part{}, ErrInvalidName
	}
	if p.Price.IsNegative() {
		return entities.Part{}, ErrInvalidPrice
	}

	var updated entities.Part
	err := u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		if _, err := requirePart(ctx, repos, p.ID); err != nil {
			return err
		}
		var err error
		updated, err = repos.Parts().Update(ctx, p)
		return err
	})
	return updated, err
}

func (u *PartUseCase) Delete(ctx context.Context, id string) (entities.Part, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Part{}, ErrInvalidPartID
	}

	var deleted entities.Part
	err := u.uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		p, err := requirePart(ctx, repos, id)
		if err != nil {
			return err
		}
		inUse, err := repos.WorkOrders().ExistsByPartID(ctx, id)
		if err != nil {
			return err
		}
		if inUse {
			return entities.ErrPartInUse
		}
		if err := repos.Parts().Delete(ctx, id); err != nil {
			return err
		}
		deleted = p
		return nil
	})
	return deleted, err
}
