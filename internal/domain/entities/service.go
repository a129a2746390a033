package entities

import "github.com/shopspring/decimal"

// Service is a catalog labor item (alignment, oil change...).
//
// New services start active. A service attached to any work order cannot be
// deleted.
type Service struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Active   bool            `json:"active"`
	Category string          `json:"category"`
}
