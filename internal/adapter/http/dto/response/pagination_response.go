package response

import (
	"encoding/json"

	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

type Pagination struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

type PaginatedResponse[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

func NewPaginated[E any, T any](items []E, page interfaces.Page, convert func(E) T) PaginatedResponse[T] {
	out := make([]T, 0, len(items))
	for _, it := range items {
		out = append(out, convert(it))
	}
	return PaginatedResponse[T]{Items: out, Pagination: Pagination{Skip: page.Skip, Limit: page.Limit}}
}

type CountResponse struct {
	Count int64 `json:"count"`
}

// money renders an amount as a JSON number with two decimal places.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}
