package interfaces

import (
	"context"
	"oficina_mecanica/internal/domain/entities"
)

//go:generate mockgen -source=service_repository_interface.go -destination=mocks/service_repository_interface_mock.go -package=mock_interfaces

// IServiceRepository abstracts persistence for the service catalog.
type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context, page Page) ([]entities.Service, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}
