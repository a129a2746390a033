package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkOrderStatus represents the lifecycle of a work order (ordem de serviço).
//
// The only transition is pendente -> concluida; concluida is terminal.
type WorkOrderStatus string

const (
	WorkOrderStatusPendente  WorkOrderStatus = "pendente"
	WorkOrderStatusConcluida WorkOrderStatus = "concluida"
)

// WorkOrderService is a service attached to a work order, joined with the
// catalog data current at load time.
type WorkOrderService struct {
	ServiceID string          `json:"service_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Category  string          `json:"category"`
}

// WorkOrderPart is a part attached to a work order with its quantity.
// A work order holds at most one row per part.
type WorkOrderPart struct {
	PartID   string          `json:"part_id"`
	Name     string          `json:"name"`
	Brand    string          `json:"brand"`
	Model    string          `json:"model"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Subtotal is price x quantity.
func (p WorkOrderPart) Subtotal() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// WorkOrder is the aggregate root of one repair job.
//
// Storage model (DynamoDB):
//   - work_orders, PK: id; GSIs customer_id-index and mechanic_id-index
//   - work_order_items, PK: work_order_id, SK: item_key ("service#<id>" | "part#<id>")
//
// Invariants kept by the methods below:
//   - TotalValue == sum(service prices) + sum(part price * quantity)
//   - no attachment change or reassignment once concluded
//
// Customer and Mechanic are referenced, never owned. Services and Parts are
// owned attachment rows and go away with the work order.
type WorkOrder struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	MechanicID  string          `json:"mechanic_id"`
	OpenedAt    time.Time       `json:"opened_at"`
	ConcludedAt *time.Time      `json:"concluded_at,omitempty"`
	Status      WorkOrderStatus `json:"status"`
	TotalValue  decimal.Decimal `json:"total_value"`

	Customer *Customer          `json:"customer,omitempty"`
	Mechanic *Mechanic          `json:"mechanic,omitempty"`
	Services []WorkOrderService `json:"services,omitempty"`
	Parts    []WorkOrderPart    `json:"parts,omitempty"`
}

// NewWorkOrder opens a pending work order with a zero total.
func NewWorkOrder(id string, customer Customer, mechanic Mechanic, now time.Time) WorkOrder {
	return WorkOrder{
		ID:         id,
		CustomerID: customer.ID,
		MechanicID: mechanic.ID,
		OpenedAt:   now.UTC(),
		Status:     WorkOrderStatusPendente,
		TotalValue: decimal.Zero,
		Customer:   &customer,
		Mechanic:   &mechanic,
		Services:   []WorkOrderService{},
		Parts:      []WorkOrderPart{},
	}
}

func (w *WorkOrder) IsConcluded() bool {
	return w.Status == WorkOrderStatusConcluida
}

func (w *WorkOrder) ensurePending() error {
	if w.IsConcluded() {
		return ErrWorkOrderConcluded
	}
	return nil
}

func (w *WorkOrder) HasService(serviceID string) bool {
	for _, s := range w.Services {
		if s.ServiceID == serviceID {
			return true
		}
	}
	return false
}

// Part returns the attachment row for partID, if any.
func (w *WorkOrder) Part(partID string) (WorkOrderPart, bool) {
	for _, p := range w.Parts {
		if p.PartID == partID {
			return p, true
		}
	}
	return WorkOrderPart{}, false
}

// AttachService adds s to the order. A service can be attached only once.
func (w *WorkOrder) AttachService(s Service) error {
	if err := w.ensurePending(); err != nil {
		return err
	}
	if w.HasService(s.ID) {
		return ErrServiceAlreadyAttached
	}
	w.Services = append(w.Services, WorkOrderService{
		ServiceID: s.ID,
		Name:      s.Name,
		Price:     s.Price,
		Category:  s.Category,
	})
	w.RecalculateTotal()
	return nil
}

func (w *WorkOrder) DetachService(serviceID string) error {
	if err := w.ensurePending(); err != nil {
		return err
	}
	for i, s := range w.Services {
		if s.ServiceID == serviceID {
			w.Services = append(append([]WorkOrderService{}, w.Services[:i]...), w.Services[i+1:]...)
			w.RecalculateTotal()
			return nil
		}
	}
	return ErrServiceNotAttached
}

// AddPart attaches quantity units of p. When p is already attached its
// quantity is incremented instead of adding a second row. The resulting row
// is returned.
func (w *WorkOrder) AddPart(p Part, quantity int) (WorkOrderPart, error) {
	if err := w.ensurePending(); err != nil {
		return WorkOrderPart{}, err
	}
	if quantity <= 0 {
		return WorkOrderPart{}, ErrInvalidPartQuantity
	}

	for i := range w.Parts {
		if w.Parts[i].PartID == p.ID {
			parts := append([]WorkOrderPart{}, w.Parts...)
			parts[i].Quantity += quantity
			parts[i].Price = p.Price
			w.Parts = parts
			w.RecalculateTotal()
			return parts[i], nil
		}
	}

	row := WorkOrderPart{
		PartID:   p.ID,
		Name:     p.Name,
		Brand:    p.Brand,
		Model:    p.Model,
		Price:    p.Price,
		Quantity: quantity,
	}
	w.Parts = append(w.Parts, row)
	w.RecalculateTotal()
	return row, nil
}

// RemovePart drops the whole attachment row, whatever its quantity.
func (w *WorkOrder) RemovePart(partID string) error {
	if err := w.ensurePending(); err != nil {
		return err
	}
	for i, p := range w.Parts {
		if p.PartID == partID {
			w.Parts = append(append([]WorkOrderPart{}, w.Parts[:i]...), w.Parts[i+1:]...)
			w.RecalculateTotal()
			return nil
		}
	}
	return ErrPartNotAttached
}

func (w *WorkOrder) Reassign(customer Customer, mechanic Mechanic) error {
	if err := w.ensurePending(); err != nil {
		return err
	}
	w.CustomerID = customer.ID
	w.MechanicID = mechanic.ID
	w.Customer = &customer
	w.Mechanic = &mechanic
	return nil
}

// Conclude recomputes the total and closes the order. Concluding twice is an
// error, not a no-op.
func (w *WorkOrder) Conclude(now time.Time) error {
	if err := w.ensurePending(); err != nil {
		return err
	}
	w.RecalculateTotal()
	concludedAt := now.UTC()
	w.Status = WorkOrderStatusConcluida
	w.ConcludedAt = &concludedAt
	return nil
}

// RecalculateTotal stores and returns the current total value.
func (w *WorkOrder) RecalculateTotal() decimal.Decimal {
	w.TotalValue = CalculateTotal(w.Services, w.Parts)
	return w.TotalValue
}

// CalculateTotal sums service prices and part subtotals. Empty sets add zero.
func CalculateTotal(services []WorkOrderService, parts []WorkOrderPart) decimal.Decimal {
	servicesTotal := decimal.Zero
	for _, s := range services {
		servicesTotal = servicesTotal.Add(s.Price)
	}
	partsTotal := decimal.Zero
	for _, p := range parts {
		partsTotal = partsTotal.Add(p.Subtotal())
	}
	return servicesTotal.Add(partsTotal)
}
