package entities

import "github.com/shopspring/decimal"

// Part is a catalog replacement part. Same deletion guard as Service.
type Part struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Brand string          `json:"brand"`
	Model string          `json:"model"`
	Price decimal.Decimal `json:"price"`
}
