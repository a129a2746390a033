package request

import (
	"strings"

	"oficina_mecanica/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Surname string `json:"surname"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (r CustomerRequest) ToEntity(id string) entities.Customer {
	return entities.Customer{
		ID:      id,
		Name:    strings.TrimSpace(r.Name),
		Surname: strings.TrimSpace(r.Surname),
		Address: strings.TrimSpace(r.Address),
		Phone:   strings.TrimSpace(r.Phone),
	}
}

type MechanicRequest struct {
	Name    string `json:"name" binding:"required"`
	Surname string `json:"surname"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
}

func (r MechanicRequest) ToEntity(id string) entities.Mechanic {
	return entities.Mechanic{
		ID:      id,
		Name:    strings.TrimSpace(r.Name),
		Surname: strings.TrimSpace(r.Surname),
		Phone:   strings.TrimSpace(r.Phone),
		Email:   strings.TrimSpace(r.Email),
	}
}

// ServiceRequest is used for create and update. Active is only read on
// update; new services always start active.
type ServiceRequest struct {
	Name     string           `json:"name" binding:"required"`
	Price    *decimal.Decimal `json:"price" binding:"required"`
	Category string           `json:"category"`
	Active   *bool            `json:"active"`
}

func (r ServiceRequest) ToEntity(id string) entities.Service {
	s := entities.Service{
		ID:       id,
		Name:     strings.TrimSpace(r.Name),
		Category: strings.TrimSpace(r.Category),
		Active:   true,
	}
	if r.Price != nil {
		s.Price = *r.Price
	}
	if r.Active != nil {
		s.Active = *r.Active
	}
	return s
}

type PartRequest struct {
	Name  string           `json:"name" binding:"required"`
	Brand string           `json:"brand"`
	Model string           `json:"model"`
	Price *decimal.Decimal `json:"price" binding:"required"`
}

func (r PartRequest) ToEntity(id string) entities.Part {
	p := entities.Part{
		ID:    id,
		Name:  strings.TrimSpace(r.Name),
		Brand: strings.TrimSpace(r.Brand),
		Model: strings.TrimSpace(r.Model),
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	return p
}
