package entities

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every layer.
//
//   - ErrNotFound: a referenced record (or attachment) does not exist.
//   - ErrBusinessRule: the request is rejected by the current state.
//
// Anything that matches neither is an unexpected failure.
var (
	ErrNotFound     = errors.New("not found")
	ErrBusinessRule = errors.New("business rule violation")
)

var (
	ErrCustomerNotFound  = fmt.Errorf("customer %w", ErrNotFound)
	ErrMechanicNotFound  = fmt.Errorf("mechanic %w", ErrNotFound)
	ErrServiceNotFound   = fmt.Errorf("service %w", ErrNotFound)
	ErrPartNotFound      = fmt.Errorf("part %w", ErrNotFound)
	ErrWorkOrderNotFound = fmt.Errorf("work order %w", ErrNotFound)

	ErrWorkOrderConcluded     = fmt.Errorf("%w: work order is concluded", ErrBusinessRule)
	ErrServiceAlreadyAttached = fmt.Errorf("%w: service already attached to work order", ErrBusinessRule)
	ErrServiceNotAttached     = fmt.Errorf("%w: service is not attached to work order", ErrBusinessRule)
	ErrPartNotAttached        = fmt.Errorf("%w: part is not attached to work order", ErrBusinessRule)
	ErrInvalidPartQuantity    = fmt.Errorf("%w: part quantity must be greater than zero", ErrBusinessRule)

	ErrCustomerInUse = fmt.Errorf("%w: customer is referenced by a work order", ErrBusinessRule)
	ErrMechanicInUse = fmt.Errorf("%w: mechanic is referenced by a work order", ErrBusinessRule)
	ErrServiceInUse  = fmt.Errorf("%w: service is attached to a work order", ErrBusinessRule)
	ErrPartInUse     = fmt.Errorf("%w: part is attached to a work order", ErrBusinessRule)
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsBusinessRule(err error) bool {
	return errors.Is(err, ErrBusinessRule)
}
