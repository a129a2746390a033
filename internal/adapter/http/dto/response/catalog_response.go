package response

import (
	"encoding/json"

	"oficina_mecanica/internal/domain/entities"
)

type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{ID: c.ID, Name: c.Name, Surname: c.Surname, Address: c.Address, Phone: c.Phone}
}

type MechanicResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func FromMechanic(m entities.Mechanic) MechanicResponse {
	return MechanicResponse{ID: m.ID, Name: m.Name, Surname: m.Surname, Phone: m.Phone, Email: m.Email}
}

type ServiceResponse struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Price    json.Number `json:"price" swaggertype:"number"`
	Category string      `json:"category"`
	Active   bool        `json:"active"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{ID: s.ID, Name: s.Name, Price: money(s.Price), Category: s.Category, Active: s.Active}
}

type PartResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Brand string      `json:"brand"`
	Model string      `json:"model"`
	Price json.Number `json:"price" swaggertype:"number"`
}

func FromPart(p entities.Part) PartResponse {
	return PartResponse{ID: p.ID, Name: p.Name, Brand: p.Brand, Model: p.Model, Price: money(p.Price)}
}
