package interfaces

import (
	"context"
	"oficina_mecanica/internal/domain/entities"
)

//go:generate mockgen -source=part_repository_interface.go -destination=mocks/part_repository_interface_mock.go -package=mock_interfaces

// IPartRepository abstracts persistence for the parts catalog.
type IPartRepository interface {
	Create(ctx context.Context, p entities.Part) (entities.Part, error)
	GetByID(ctx context.Context, id string) (entities.Part, error)
	List(ctx context.Context, page Page) ([]entities.Part, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, p entities.Part) (entities.Part, error)
	Delete(ctx context.Context, id string) error
}
