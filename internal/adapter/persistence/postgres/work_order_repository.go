package postgres

import (
	"context"
	"strings"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type workOrderRepository struct {
	db *gorm.DB
}

var _ interfaces.IWorkOrderRepository = (*workOrderRepository)(nil)

func (r *workOrderRepository) Create(ctx context.Context, wo entities.WorkOrder) error {
	db := r.db.WithContext(ctx)

	m := toWorkOrderModel(wo)
	if err := db.Create(&m).Error; err != nil {
		return err
	}

	if len(wo.Services) > 0 {
		rows := make([]workOrderServiceModel, 0, len(wo.Services))
		for _, s := range wo.Services {
			rows = append(rows, workOrderServiceModel{WorkOrderID: wo.ID, ServiceID: s.ServiceID})
		}
		if err := db.Create(&rows).Error; err != nil {
			if isUniqueViolation(err) {
				return entities.ErrServiceAlreadyAttached
			}
			return err
		}
	}

	if len(wo.Parts) > 0 {
		rows := make([]workOrderPartModel, 0, len(wo.Parts))
		for _, p := range wo.Parts {
			rows = append(rows, workOrderPartModel{WorkOrderID: wo.ID, PartID: p.PartID, Quantity: p.Quantity})
		}
		if err := db.Create(&rows).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *workOrderRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	db := r.db.WithContext(ctx)

	var m workOrderModel
	res := db.Where("id = ?", id).Limit(1).Find(&m)
	if res.Error != nil {
		return entities.WorkOrder{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.WorkOrder{}, nil
	}

	orders, err := r.withReferences(ctx, []workOrderModel{m})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	wo := orders[0]

	var services []serviceModel
	err = db.Table("services AS s").
		Select("s.id, s.name, s.price, s.active, s.category").
		Joins("JOIN work_order_services wos ON wos.service_id = s.id").
		Where("wos.work_order_id = ?", id).
		Order("wos.created_at ASC").Order("s.id ASC").
		Scan(&services).Error
	if err != nil {
		return entities.WorkOrder{}, err
	}
	wo.Services = make([]entities.WorkOrderService, 0, len(services))
	for _, s := range services {
		wo.Services = append(wo.Services, entities.WorkOrderService{
			ServiceID: s.ID, Name: s.Name, Price: s.Price, Category: s.Category,
		})
	}

	var parts []attachedPartRow
	err = db.Table("parts AS p").
		Select("p.id, p.name, p.brand, p.model, p.price, wop.quantity").
		Joins("JOIN work_order_parts wop ON wop.part_id = p.id").
		Where("wop.work_order_id = ?", id).
		Order("wop.created_at ASC").Order("p.id ASC").
		Scan(&parts).Error
	if err != nil {
		return entities.WorkOrder{}, err
	}
	wo.Parts = make([]entities.WorkOrderPart, 0, len(parts))
	for _, p := range parts {
		wo.Parts = append(wo.Parts, entities.WorkOrderPart{
			PartID: p.ID, Name: p.Name, Brand: p.Brand, Model: p.Model, Price: p.Price, Quantity: p.Quantity,
		})
	}
	return wo, nil
}

// withReferences loads the customers and mechanics of a page of orders with
// one query each.
func (r *workOrderRepository) withReferences(ctx context.Context, models []workOrderModel) ([]entities.WorkOrder, error) {
	customerIDs := make([]string, 0, len(models))
	mechanicIDs := make([]string, 0, len(models))
	for _, m := range models {
		customerIDs = append(customerIDs, m.CustomerID)
		mechanicIDs = append(mechanicIDs, m.MechanicID)
	}

	db := r.db.WithContext(ctx)
	var customers []customerModel
	if err := db.Where("id IN ?", customerIDs).Find(&customers).Error; err != nil {
		return nil, err
	}
	var mechanics []mechanicModel
	if err := db.Where("id IN ?", mechanicIDs).Find(&mechanics).Error; err != nil {
		return nil, err
	}

	customerByID := make(map[string]entities.Customer, len(customers))
	for _, c := range customers {
		customerByID[c.ID] = fromCustomerModel(c)
	}
	mechanicByID := make(map[string]entities.Mechanic, len(mechanics))
	for _, m := range mechanics {
		mechanicByID[m.ID] = fromMechanicModel(m)
	}

	out := make([]entities.WorkOrder, 0, len(models))
	for _, m := range models {
		wo := fromWorkOrderModel(m)
		if c, ok := customerByID[m.CustomerID]; ok {
			wo.Customer = &c
		}
		if mech, ok := mechanicByID[m.MechanicID]; ok {
			wo.Mechanic = &mech
		}
		out = append(out, wo)
	}
	return out, nil
}

func (r *workOrderRepository) List(ctx context.Context, filter interfaces.WorkOrderFilter) ([]entities.WorkOrder, error) {
	page := filter.Page.Normalize()

	q := r.db.WithContext(ctx).
		Table("work_orders AS wo").
		Select("wo.id, wo.customer_id, wo.mechanic_id, wo.opened_at, wo.concluded_at, wo.status, wo.total_value").
		Joins("JOIN customers c ON c.id = wo.customer_id").
		Joins("JOIN mechanics m ON m.id = wo.mechanic_id")

	if filter.CustomerID != "" {
		q = q.Where("wo.customer_id = ?", filter.CustomerID)
	}
	if filter.MechanicID != "" {
		q = q.Where("wo.mechanic_id = ?", filter.MechanicID)
	}
	if filter.CustomerName != "" {
		q = q.Where("c.name ILIKE ?", likePattern(filter.CustomerName))
	}
	if filter.MechanicName != "" {
		q = q.Where("m.name ILIKE ?", likePattern(filter.MechanicName))
	}
	if filter.HasOpenedAtRange() {
		q = q.Where("wo.opened_at >= ? AND wo.opened_at <= ?", filter.OpenedAtFrom.UTC(), filter.OpenedAtTo.UTC())
	}

	var models []workOrderModel
	err := q.Order("wo.opened_at DESC").Order("wo.id DESC").
		Offset(page.Skip).Limit(page.Limit).
		Scan(&models).Error
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return []entities.WorkOrder{}, nil
	}
	return r.withReferences(ctx, models)
}

// likePattern escapes LIKE metacharacters so the filter is a plain substring.
func likePattern(s string) string {
	s = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
	return "%" + s + "%"
}

func (r *workOrderRepository) Update(ctx context.Context, wo entities.WorkOrder) error {
	res := r.db.WithContext(ctx).Model(&workOrderModel{}).Where("id = ?", wo.ID).Updates(map[string]any{
		"customer_id":  wo.CustomerID,
		"mechanic_id":  wo.MechanicID,
		"status":       string(wo.Status),
		"concluded_at": wo.ConcludedAt,
		"total_value":  wo.TotalValue,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ErrWorkOrderNotFound
	}
	return nil
}

// Delete relies on ON DELETE CASCADE for the attachment rows.
func (r *workOrderRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&workOrderModel{}).Error
}

func (r *workOrderRepository) AttachService(ctx context.Context, workOrderID, serviceID string) error {
	err := r.db.WithContext(ctx).Create(&workOrderServiceModel{WorkOrderID: workOrderID, ServiceID: serviceID}).Error
	if isUniqueViolation(err) {
		return entities.ErrServiceAlreadyAttached
	}
	return err
}

func (r *workOrderRepository) DetachService(ctx context.Context, workOrderID, serviceID string) error {
	return r.db.WithContext(ctx).
		Where("work_order_id = ? AND service_id = ?", workOrderID, serviceID).
		Delete(&workOrderServiceModel{}).Error
}

func (r *workOrderRepository) SavePart(ctx context.Context, workOrderID string, item entities.WorkOrderPart) error {
	row := workOrderPartModel{WorkOrderID: workOrderID, PartID: item.PartID, Quantity: item.Quantity}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "work_order_id"}, {Name: "part_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
	}).Create(&row).Error
}

func (r *workOrderRepository) DetachPart(ctx context.Context, workOrderID, partID string) error {
	return r.db.WithContext(ctx).
		Where("work_order_id = ? AND part_id = ?", workOrderID, partID).
		Delete(&workOrderPartModel{}).Error
}

func (r *workOrderRepository) ExistsByCustomerID(ctx context.Context, customerID string) (bool, error) {
	return r.exists(ctx, &workOrderModel{}, "customer_id = ?", customerID)
}

func (r *workOrderRepository) ExistsByMechanicID(ctx context.Context, mechanicID string) (bool, error) {
	return r.exists(ctx, &workOrderModel{}, "mechanic_id = ?", mechanicID)
}

func (r *workOrderRepository) ExistsByServiceID(ctx context.Context, serviceID string) (bool, error) {
	return r.exists(ctx, &workOrderServiceModel{}, "service_id = ?", serviceID)
}

func (r *workOrderRepository) ExistsByPartID(ctx context.Context, partID string) (bool, error) {
	return r.exists(ctx, &workOrderPartModel{}, "part_id = ?", partID)
}

func (r *workOrderRepository) exists(ctx context.Context, model any, query string, arg string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(model).Where(query, arg).Limit(1).Count(&n).Error
	return n > 0, err
}
