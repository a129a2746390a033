package response

import (
	"encoding/json"
	"time"

	"oficina_mecanica/internal/domain/entities"
)

// WorkOrderResponse is the summary used by list.
type WorkOrderResponse struct {
	ID          string            `json:"id"`
	CustomerID  string            `json:"customer_id"`
	MechanicID  string            `json:"mechanic_id"`
	OpenedAt    time.Time         `json:"opened_at"`
	ConcludedAt *time.Time        `json:"concluded_at"`
	Status      string            `json:"status"`
	TotalValue  json.Number       `json:"total_value" swaggertype:"number"`
	Customer    *CustomerResponse `json:"customer,omitempty"`
	Mechanic    *MechanicResponse `json:"mechanic,omitempty"`
}

func FromWorkOrder(wo entities.WorkOrder) WorkOrderResponse {
	resp := WorkOrderResponse{
		ID:          wo.ID,
		CustomerID:  wo.CustomerID,
		MechanicID:  wo.MechanicID,
		OpenedAt:    wo.OpenedAt,
		ConcludedAt: wo.ConcludedAt,
		Status:      string(wo.Status),
		TotalValue:  money(wo.TotalValue),
	}
	if wo.Customer != nil {
		c := FromCustomer(*wo.Customer)
		resp.Customer = &c
	}
	if wo.Mechanic != nil {
		m := FromMechanic(*wo.Mechanic)
		resp.Mechanic = &m
	}
	return resp
}

type WorkOrderServiceResponse struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Price    json.Number `json:"price" swaggertype:"number"`
	Category string      `json:"category"`
}

type WorkOrderPartResponse struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Brand    string      `json:"brand"`
	Model    string      `json:"model"`
	Price    json.Number `json:"price" swaggertype:"number"`
	Quantity int         `json:"quantity"`
}

// WorkOrderFullResponse is the whole aggregate.
type WorkOrderFullResponse struct {
	WorkOrderResponse
	Services []WorkOrderServiceResponse `json:"services"`
	Parts    []WorkOrderPartResponse    `json:"parts"`
}

func FromWorkOrderFull(wo entities.WorkOrder) WorkOrderFullResponse {
	resp := WorkOrderFullResponse{
		WorkOrderResponse: FromWorkOrder(wo),
		Services:          make([]WorkOrderServiceResponse, 0, len(wo.Services)),
		Parts:             make([]WorkOrderPartResponse, 0, len(wo.Parts)),
	}
	for _, s := range wo.Services {
		resp.Services = append(resp.Services, WorkOrderServiceResponse{
			ID: s.ServiceID, Name: s.Name, Price: money(s.Price), Category: s.Category,
		})
	}
	for _, p := range wo.Parts {
		resp.Parts = append(resp.Parts, WorkOrderPartResponse{
			ID: p.PartID, Name: p.Name, Brand: p.Brand, Model: p.Model, Price: money(p.Price), Quantity: p.Quantity,
		})
	}
	return resp
}
