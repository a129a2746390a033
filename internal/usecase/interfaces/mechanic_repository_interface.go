package interfaces

import (
	"context"
	"oficina_mecanica/internal/domain/entities"
)

//go:generate mockgen -source=mechanic_repository_interface.go -destination=mocks/mechanic_repository_interface_mock.go -package=mock_interfaces

// IMechanicRepository abstracts persistence for Mechanic.
type IMechanicRepository interface {
	Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error)
	GetByID(ctx context.Context, id string) (entities.Mechanic, error)
	List(ctx context.Context, page Page) ([]entities.Mechanic, error)
	Update(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error)
	Delete(ctx context.Context, id string) error
}
