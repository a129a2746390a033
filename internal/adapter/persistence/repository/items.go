package repository

import (
	"strings"

	"oficina_mecanica/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	itemTypeService = "service"
	itemTypePart    = "part"
)

type customerItem struct {
	ID      string `dynamodbav:"id"`
	Name    string `dynamodbav:"name"`
	Surname string `dynamodbav:"surname"`
	Address string `dynamodbav:"address"`
	Phone   string `dynamodbav:"phone"`
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{ID: c.ID, Name: c.Name, Surname: c.Surname, Address: c.Address, Phone: c.Phone}
}

func fromCustomerItem(it customerItem) entities.Customer {
	return entities.Customer{ID: it.ID, Name: it.Name, Surname: it.Surname, Address: it.Address, Phone: it.Phone}
}

type mechanicItem struct {
	ID      string `dynamodbav:"id"`
	Name    string `dynamodbav:"name"`
	Surname string `dynamodbav:"surname"`
	Phone   string `dynamodbav:"phone"`
	Email   string `dynamodbav:"email"`
}

func toMechanicItem(m entities.Mechanic) mechanicItem {
	return mechanicItem{ID: m.ID, Name: m.Name, Surname: m.Surname, Phone: m.Phone, Email: m.Email}
}

func fromMechanicItem(it mechanicItem) entities.Mechanic {
	return entities.Mechanic{ID: it.ID, Name: it.Name, Surname: it.Surname, Phone: it.Phone, Email: it.Email}
}

// Prices are stored as decimal strings so no precision is lost.
type serviceItem struct {
	ID       string `dynamodbav:"id"`
	Name     string `dynamodbav:"name"`
	Price    string `dynamodbav:"price"`
	Active   bool   `dynamodbav:"active"`
	Category string `dynamodbav:"category"`
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{ID: s.ID, Name: s.Name, Price: s.Price.String(), Active: s.Active, Category: s.Category}
}

func fromServiceItem(it serviceItem) entities.Service {
	return entities.Service{ID: it.ID, Name: it.Name, Price: parseDecimal(it.Price), Active: it.Active, Category: it.Category}
}

type partItem struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name"`
	Brand string `dynamodbav:"brand"`
	Model string `dynamodbav:"model"`
	Price string `dynamodbav:"price"`
}

func toPartItem(p entities.Part) partItem {
	return partItem{ID: p.ID, Name: p.Name, Brand: p.Brand, Model: p.Model, Price: p.Price.String()}
}

func fromPartItem(it partItem) entities.Part {
	return entities.Part{ID: it.ID, Name: it.Name, Brand: it.Brand, Model: it.Model, Price: parseDecimal(it.Price)}
}

type workOrderItem struct {
	ID          string `dynamodbav:"id"`
	CustomerID  string `dynamodbav:"customer_id"`
	MechanicID  string `dynamodbav:"mechanic_id"`
	OpenedAt    string `dynamodbav:"opened_at"`
	ConcludedAt string `dynamodbav:"concluded_at,omitempty"`
	Status      string `dynamodbav:"status"`
	TotalValue  string `dynamodbav:"total_value"`
}

func toWorkOrderItem(wo entities.WorkOrder) workOrderItem {
	it := workOrderItem{
		ID:         wo.ID,
		CustomerID: wo.CustomerID,
		MechanicID: wo.MechanicID,
		OpenedAt:   formatTime(wo.OpenedAt),
		Status:     string(wo.Status),
		TotalValue: wo.TotalValue.String(),
	}
	if wo.ConcludedAt != nil {
		it.ConcludedAt = formatTime(*wo.ConcludedAt)
	}
	return it
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	wo := entities.WorkOrder{
		ID:         it.ID,
		CustomerID: it.CustomerID,
		MechanicID: it.MechanicID,
		OpenedAt:   parseTime(it.OpenedAt),
		Status:     entities.WorkOrderStatus(it.Status),
		TotalValue: parseDecimal(it.TotalValue),
	}
	if it.ConcludedAt != "" {
		concludedAt := parseTime(it.ConcludedAt)
		wo.ConcludedAt = &concludedAt
	}
	return wo
}

// workOrderLine is one attachment row in the work_order_items table.
type workOrderLine struct {
	WorkOrderID string `dynamodbav:"work_order_id"`
	ItemKey     string `dynamodbav:"item_key"`
	ItemType    string `dynamodbav:"item_type"`
	RefID       string `dynamodbav:"ref_id"`
	Quantity    int    `dynamodbav:"quantity,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

func serviceLineKey(serviceID string) string { return itemTypeService + "#" + serviceID }
func partLineKey(partID string) string       { return itemTypePart + "#" + partID }

func lineRef(itemKey string) (itemType, refID string) {
	itemType, refID, _ = strings.Cut(itemKey, "#")
	return itemType, refID
}

func parseDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
