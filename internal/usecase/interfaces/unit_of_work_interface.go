package interfaces

import "context"

//go:generate mockgen -source=unit_of_work_interface.go -destination=mocks/unit_of_work_interface_mock.go -package=mock_interfaces

// IUnitOfWork runs fn as one atomic unit against the persistence collaborator.
//
// fn receives repositories bound to the unit. A nil return commits every write
// made through them; an error (or panic) discards all of them. Implementations
// never hold a unit open across calls.
type IUnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, repos IRepositories) error) error
}

// IRepositories groups the repositories participating in one unit of work.
type IRepositories interface {
	Customers() ICustomerRepository
	Mechanics() IMechanicRepository
	Services() IServiceRepository
	Parts() IPartRepository
	WorkOrders() IWorkOrderRepository
}
