package usecase

import (
	"errors"
	"fmt"
)

// Input validation errors. They are reported before any unit of work starts
// and map to "invalid request" at the HTTP boundary.
var (
	ErrInvalidWorkOrderID  = errors.New("invalid work order id")
	ErrInvalidCustomerID   = errors.New("invalid customer id")
	ErrInvalidMechanicID   = errors.New("invalid mechanic id")
	ErrInvalidServiceID    = errors.New("invalid service id")
	ErrInvalidPartID       = errors.New("invalid part id")
	ErrInvalidQuantity     = errors.New("invalid part quantity")
	ErrInvalidReassignment = errors.New("customer_id or mechanic_id is required")
	ErrInvalidPrice        = errors.New("invalid price")
	ErrInvalidName         = errors.New("invalid name")
	ErrTooManyLines        = fmt.Errorf("a work order is created with at most %d services and parts", MaxCreateLines)
)

// MaxCreateLines bounds the distinct services and parts a single create may
// carry, so the order and its rows always commit as one write on every store.
// Orders can still grow past it through later attachments.
const MaxCreateLines = 99

// IsValidationError reports whether err is one of the input validation errors.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrInvalidWorkOrderID, ErrInvalidCustomerID, ErrInvalidMechanicID,
		ErrInvalidServiceID, ErrInvalidPartID, ErrInvalidQuantity,
		ErrInvalidReassignment, ErrInvalidPrice, ErrInvalidName, ErrTooManyLines,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
