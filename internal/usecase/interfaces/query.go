package interfaces

import "time"

const (
	DefaultPageLimit = 5
	MaxPageLimit     = 100
)

// Page is an offset/limit window. Range checks belong to the caller.
type Page struct {
	Skip  int
	Limit int
}

// Normalize fills defaults for unset values.
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

// WorkOrderFilter is a conjunction of optional predicates.
//
// Names match case-insensitively as substrings of the customer/mechanic first
// name. The opened-at range is inclusive and only applies when both bounds
// are set.
type WorkOrderFilter struct {
	Page

	CustomerID   string
	MechanicID   string
	CustomerName string
	MechanicName string
	OpenedAtFrom *time.Time
	OpenedAtTo   *time.Time
}

func (f WorkOrderFilter) HasOpenedAtRange() bool {
	return f.OpenedAtFrom != nil && f.OpenedAtTo != nil
}
