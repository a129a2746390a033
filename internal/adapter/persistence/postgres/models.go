package postgres

import (
	"time"

	"oficina_mecanica/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type customerModel struct {
	ID      string `gorm:"column:id;primaryKey"`
	Name    string `gorm:"column:name"`
	Surname string `gorm:"column:surname"`
	Address string `gorm:"column:address"`
	Phone   string `gorm:"column:phone"`
}

func (customerModel) TableName() string { return "customers" }

func toCustomerModel(c entities.Customer) customerModel {
	return customerModel{ID: c.ID, Name: c.Name, Surname: c.Surname, Address: c.Address, Phone: c.Phone}
}

func fromCustomerModel(m customerModel) entities.Customer {
	return entities.Customer{ID: m.ID, Name: m.Name, Surname: m.Surname, Address: m.Address, Phone: m.Phone}
}

type mechanicModel struct {
	ID      string `gorm:"column:id;primaryKey"`
	Name    string `gorm:"column:name"`
	Surname string `gorm:"column:surname"`
	Phone   string `gorm:"column:phone"`
	Email   string `gorm:"column:email"`
}

func (mechanicModel) TableName() string { return "mechanics" }

func toMechanicModel(m entities.Mechanic) mechanicModel {
	return mechanicModel{ID: m.ID, Name: m.Name, Surname: m.Surname, Phone: m.Phone, Email: m.Email}
}

func fromMechanicModel(m mechanicModel) entities.Mechanic {
	return entities.Mechanic{ID: m.ID, Name: m.Name, Surname: m.Surname, Phone: m.Phone, Email: m.Email}
}

type serviceModel struct {
	ID       string          `gorm:"column:id;primaryKey"`
	Name     string          `gorm:"column:name"`
	Price    decimal.Decimal `gorm:"column:price;type:numeric(12,2)"`
	Active   bool            `gorm:"column:active"`
	Category string          `gorm:"column:category"`
}

func (serviceModel) TableName() string { return "services" }

func toServiceModel(s entities.Service) serviceModel {
	return serviceModel{ID: s.ID, Name: s.Name, Price: s.Price, Active: s.Active, Category: s.Category}
}

func fromServiceModel(m serviceModel) entities.Service {
	return entities.Service{ID: m.ID, Name: m.Name, Price: m.Price, Active: m.Active, Category: m.Category}
}

type partModel struct {
	ID    string          `gorm:"column:id;primaryKey"`
	Name  string          `gorm:"column:name"`
	Brand string          `gorm:"column:brand"`
	Model string          `gorm:"column:model"`
	Price decimal.Decimal `gorm:"column:price;type:numeric(12,2)"`
}

func (partModel) TableName() string { return "parts" }

func toPartModel(p entities.Part) partModel {
	return partModel{ID: p.ID, Name: p.Name, Brand: p.Brand, Model: p.Model, Price: p.Price}
}

func fromPartModel(m partModel) entities.Part {
	return entities.Part{ID: m.ID, Name: m.Name, Brand: m.Brand, Model: m.Model, Price: m.Price}
}

type workOrderModel struct {
	ID          string          `gorm:"column:id;primaryKey"`
	CustomerID  string          `gorm:"column:customer_id"`
	MechanicID  string          `gorm:"column:mechanic_id"`
	OpenedAt    time.Time       `gorm:"column:opened_at"`
	ConcludedAt *time.Time      `gorm:"column:concluded_at"`
	Status      string          `gorm:"column:status"`
	TotalValue  decimal.Decimal `gorm:"column:total_value;type:numeric(12,2)"`
}

func (workOrderModel) TableName() string { return "work_orders" }

func toWorkOrderModel(wo entities.WorkOrder) workOrderModel {
	return workOrderModel{
		ID:          wo.ID,
		CustomerID:  wo.CustomerID,
		MechanicID:  wo.MechanicID,
		OpenedAt:    wo.OpenedAt.UTC(),
		ConcludedAt: wo.ConcludedAt,
		Status:      string(wo.Status),
		TotalValue:  wo.TotalValue,
	}
}

func fromWorkOrderModel(m workOrderModel) entities.WorkOrder {
	wo := entities.WorkOrder{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		MechanicID: m.MechanicID,
		OpenedAt:   m.OpenedAt.UTC(),
		Status:     entities.WorkOrderStatus(m.Status),
		TotalValue: m.TotalValue,
	}
	if m.ConcludedAt != nil {
		concludedAt := m.ConcludedAt.UTC()
		wo.ConcludedAt = &concludedAt
	}
	return wo
}

type workOrderServiceModel struct {
	WorkOrderID string `gorm:"column:work_order_id;primaryKey"`
	ServiceID   string `gorm:"column:service_id;primaryKey"`
}

func (workOrderServiceModel) TableName() string { return "work_order_services" }

type workOrderPartModel struct {
	WorkOrderID string `gorm:"column:work_order_id;primaryKey"`
	PartID      string `gorm:"column:part_id;primaryKey"`
	Quantity    int    `gorm:"column:quantity"`
}

func (workOrderPartModel) TableName() string { return "work_order_parts" }

// attachedPartRow is a part joined with its attachment quantity.
type attachedPartRow struct {
	ID       string          `gorm:"column:id"`
	Name     string          `gorm:"column:name"`
	Brand    string          `gorm:"column:brand"`
	Model    string          `gorm:"column:model"`
	Price    decimal.Decimal `gorm:"column:price"`
	Quantity int             `gorm:"column:quantity"`
}
