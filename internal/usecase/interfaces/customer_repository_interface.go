package interfaces

import (
	"context"
	"oficina_mecanica/internal/domain/entities"
)

//go:generate mockgen -source=customer_repository_interface.go -destination=mocks/customer_repository_interface_mock.go -package=mock_interfaces

// ICustomerRepository abstracts persistence for Customer.
//
// GetByID returns a zero Customer and a nil error when the id is unknown.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context, page Page) ([]entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}
