package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// WorkOrderDynamoRepository persists the work-order aggregate across the
// work_orders and work_order_items tables. Writes go to the unit-of-work
// buffer.
type WorkOrderDynamoRepository struct {
	ddb    DynamoAPI
	tx     *txn
	tables Tables
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func (r *WorkOrderDynamoRepository) Create(_ context.Context, wo entities.WorkOrder) error {
	av, err := attributevalue.MarshalMap(toWorkOrderItem(wo))
	if err != nil {
		return err
	}
	r.tx.put(r.tables.WorkOrders, av, "attribute_not_exists(#id)", map[string]string{"#id": "id"}, nil)

	now := formatTime(time.Now())
	for _, s := range wo.Services {
		if err := r.putLine(workOrderLine{
			WorkOrderID: wo.ID, ItemKey: serviceLineKey(s.ServiceID),
			ItemType: itemTypeService, RefID: s.ServiceID, CreatedAt: now,
		}, true); err != nil {
			return err
		}
	}
	for _, p := range wo.Parts {
		if err := r.putLine(workOrderLine{
			WorkOrderID: wo.ID, ItemKey: partLineKey(p.PartID),
			ItemType: itemTypePart, RefID: p.PartID, Quantity: p.Quantity, CreatedAt: now,
		}, false); err != nil {
			return err
		}
	}
	return nil
}

// putLine buffers an attachment row. unique rejects an existing row with
// ErrServiceAlreadyAttached at commit.
func (r *WorkOrderDynamoRepository) putLine(line workOrderLine, unique bool) error {
	av, err := attributevalue.MarshalMap(line)
	if err != nil {
		return err
	}
	if unique {
		r.tx.put(r.tables.WorkOrderItems, av, "attribute_not_exists(#sk)", map[string]string{"#sk": "item_key"}, entities.ErrServiceAlreadyAttached)
		return nil
	}
	r.tx.put(r.tables.WorkOrderItems, av, "", nil, nil)
	return nil
}

func lineKey(workOrderID, itemKey string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"work_order_id": &types.AttributeValueMemberS{Value: workOrderID},
		"item_key":      &types.AttributeValueMemberS{Value: itemKey},
	}
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.WorkOrders),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}
	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}

	refs := newReferenceCache(r.ddb, r.tables)
	wo, err := refs.attach(ctx, fromWorkOrderItem(it))
	if err != nil {
		return entities.WorkOrder{}, err
	}

	lines, err := r.lines(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	wo.Services = []entities.WorkOrderService{}
	wo.Parts = []entities.WorkOrderPart{}
	for _, line := range lines {
		switch line.ItemType {
		case itemTypeService:
			svc, err := getCatalogItem(ctx, r.ddb, r.tables.Services, line.RefID, fromServiceItem)
			if err != nil {
				return entities.WorkOrder{}, err
			}
			if svc.ID == "" {
				continue
			}
			wo.Services = append(wo.Services, entities.WorkOrderService{
				ServiceID: svc.ID, Name: svc.Name, Price: svc.Price, Category: svc.Category,
			})
		case itemTypePart:
			part, err := getCatalogItem(ctx, r.ddb, r.tables.Parts, line.RefID, fromPartItem)
			if err != nil {
				return entities.WorkOrder{}, err
			}
			if part.ID == "" {
				continue
			}
			wo.Parts = append(wo.Parts, entities.WorkOrderPart{
				PartID: part.ID, Name: part.Name, Brand: part.Brand, Model: part.Model,
				Price: part.Price, Quantity: line.Quantity,
			})
		}
	}
	return wo, nil
}

// lines returns the attachment rows of an order in attachment order.
func (r *WorkOrderDynamoRepository) lines(ctx context.Context, workOrderID string) ([]workOrderLine, error) {
	var (
		raws  []map[string]types.AttributeValue
		start map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tables.WorkOrderItems),
			KeyConditionExpression:    aws.String("#pk = :pk"),
			ExpressionAttributeNames:  map[string]string{"#pk": "work_order_id"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":pk": &types.AttributeValueMemberS{Value: workOrderID}},
			ConsistentRead:            aws.Bool(true),
			ExclusiveStartKey:         start,
		})
		if err != nil {
			return nil, err
		}
		raws = append(raws, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		start = out.LastEvaluatedKey
	}
	sortByCreatedAt(raws, "item_key")

	lines := make([]workOrderLine, 0, len(raws))
	for _, raw := range raws {
		var line workOrderLine
		if err := attributevalue.UnmarshalMap(raw, &line); err != nil {
			return nil, err
		}
		if line.ItemType == "" {
			line.ItemType, line.RefID = lineRef(line.ItemKey)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// List reads candidate orders (through a GSI when filtering by customer or
// mechanic id, otherwise a full scan), then filters, sorts and paginates in
// process.
func (r *WorkOrderDynamoRepository) List(ctx context.Context, filter interfaces.WorkOrderFilter) ([]entities.WorkOrder, error) {
	page := filter.Page.Normalize()

	var (
		raws []map[string]types.AttributeValue
		err  error
	)
	switch {
	case filter.CustomerID != "":
		raws, err = r.queryIndex(ctx, customerIDIndex, "customer_id", filter.CustomerID, 0)
	case filter.MechanicID != "":
		raws, err = r.queryIndex(ctx, mechanicIDIndex, "mechanic_id", filter.MechanicID, 0)
	default:
		raws, err = scanAll(ctx, r.ddb, r.tables.WorkOrders)
	}
	if err != nil {
		return nil, err
	}

	refs := newReferenceCache(r.ddb, r.tables)
	matches := make([]entities.WorkOrder, 0, len(raws))
	for _, raw := range raws {
		var it workOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		wo := fromWorkOrderItem(it)
		if !matchesIDs(wo, filter) {
			continue
		}
		wo, err := refs.attach(ctx, wo)
		if err != nil {
			return nil, err
		}
		if matchesNames(wo, filter) {
			matches = append(matches, wo)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if !matches[i].OpenedAt.Equal(matches[j].OpenedAt) {
			return matches[i].OpenedAt.After(matches[j].OpenedAt)
		}
		return matches[i].ID > matches[j].ID
	})

	if page.Skip >= len(matches) {
		return []entities.WorkOrder{}, nil
	}
	end := page.Skip + page.Limit
	if end > len(matches) {
		end = len(matches)
	}
	return matches[page.Skip:end], nil
}

func matchesIDs(wo entities.WorkOrder, f interfaces.WorkOrderFilter) bool {
	if f.CustomerID != "" && wo.CustomerID != f.CustomerID {
		return false
	}
	if f.MechanicID != "" && wo.MechanicID != f.MechanicID {
		return false
	}
	if f.HasOpenedAtRange() && (wo.OpenedAt.Before(*f.OpenedAtFrom) || wo.OpenedAt.After(*f.OpenedAtTo)) {
		return false
	}
	return true
}

func matchesNames(wo entities.WorkOrder, f interfaces.WorkOrderFilter) bool {
	if f.CustomerName != "" && (wo.Customer == nil || !containsFold(wo.Customer.Name, f.CustomerName)) {
		return false
	}
	if f.MechanicName != "" && (wo.Mechanic == nil || !containsFold(wo.Mechanic.Name, f.MechanicName)) {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// queryIndex reads a GSI. limit 0 reads every page. GSIs are eventually
// consistent.
func (r *WorkOrderDynamoRepository) queryIndex(ctx context.Context, index, attr, value string, limit int32) ([]map[string]types.AttributeValue, error) {
	return queryIndex(ctx, r.ddb, r.tables.WorkOrders, index, attr, value, limit)
}

func queryIndex(ctx context.Context, ddb DynamoAPI, table, index, attr, value string, limit int32) ([]map[string]types.AttributeValue, error) {
	var (
		items []map[string]types.AttributeValue
		start map[string]types.AttributeValue
	)
	for {
		in := &dynamodb.QueryInput{
			TableName:                 aws.String(table),
			IndexName:                 aws.String(index),
			KeyConditionExpression:    aws.String("#pk = :pk"),
			ExpressionAttributeNames:  map[string]string{"#pk": attr},
			ExpressionAttributeValues: map[string]types.AttributeValue{":pk": &types.AttributeValueMemberS{Value: value}},
			ExclusiveStartKey:         start,
		}
		if limit > 0 {
			in.Limit = aws.Int32(limit)
		}
		out, err := ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if limit > 0 || len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		start = out.LastEvaluatedKey
	}
}

func (r *WorkOrderDynamoRepository) Update(_ context.Context, wo entities.WorkOrder) error {
	av, err := attributevalue.MarshalMap(toWorkOrderItem(wo))
	if err != nil {
		return err
	}
	r.tx.put(r.tables.WorkOrders, av, "attribute_exists(#id)", map[string]string{"#id": "id"}, entities.ErrWorkOrderNotFound)
	return nil
}

// Delete buffers the removal of the order and of every attachment row. Rows
// beyond the transaction limit are removed ahead of the order row, so an order
// with any number of attachments can be deleted.
func (r *WorkOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	lines, err := r.lines(ctx, id)
	if err != nil {
		return err
	}
	r.tx.deleteExisting(r.tables.WorkOrders, stringKey("id", id), "id", entities.ErrWorkOrderNotFound)
	for _, line := range lines {
		r.tx.cascadeDelete(r.tables.WorkOrderItems, lineKey(id, line.ItemKey))
	}
	return nil
}

func (r *WorkOrderDynamoRepository) AttachService(_ context.Context, workOrderID, serviceID string) error {
	return r.putLine(workOrderLine{
		WorkOrderID: workOrderID,
		ItemKey:     serviceLineKey(serviceID),
		ItemType:    itemTypeService,
		RefID:       serviceID,
		CreatedAt:   formatTime(time.Now()),
	}, true)
}

func (r *WorkOrderDynamoRepository) DetachService(_ context.Context, workOrderID, serviceID string) error {
	r.tx.delete(r.tables.WorkOrderItems, lineKey(workOrderID, serviceLineKey(serviceID)))
	return nil
}

// SavePart upserts the part row, keeping the original attachment time.
func (r *WorkOrderDynamoRepository) SavePart(ctx context.Context, workOrderID string, item entities.WorkOrderPart) error {
	createdAt := formatTime(time.Now())
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.WorkOrderItems),
		Key:            lineKey(workOrderID, partLineKey(item.PartID)),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return err
	}
	if existing := stringAttr(out.Item, "created_at"); existing != "" {
		createdAt = existing
	}

	return r.putLine(workOrderLine{
		WorkOrderID: workOrderID,
		ItemKey:     partLineKey(item.PartID),
		ItemType:    itemTypePart,
		RefID:       item.PartID,
		Quantity:    item.Quantity,
		CreatedAt:   createdAt,
	}, false)
}

func (r *WorkOrderDynamoRepository) DetachPart(_ context.Context, workOrderID, partID string) error {
	r.tx.delete(r.tables.WorkOrderItems, lineKey(workOrderID, partLineKey(partID)))
	return nil
}

func (r *WorkOrderDynamoRepository) ExistsByCustomerID(ctx context.Context, customerID string) (bool, error) {
	items, err := r.queryIndex(ctx, customerIDIndex, "customer_id", customerID, 1)
	return len(items) > 0, err
}

func (r *WorkOrderDynamoRepository) ExistsByMechanicID(ctx context.Context, mechanicID string) (bool, error) {
	items, err := r.queryIndex(ctx, mechanicIDIndex, "mechanic_id", mechanicID, 1)
	return len(items) > 0, err
}

func (r *WorkOrderDynamoRepository) ExistsByServiceID(ctx context.Context, serviceID string) (bool, error) {
	items, err := queryIndex(ctx, r.ddb, r.tables.WorkOrderItems, itemKeyIndex, "item_key", serviceLineKey(serviceID), 1)
	return len(items) > 0, err
}

func (r *WorkOrderDynamoRepository) ExistsByPartID(ctx context.Context, partID string) (bool, error) {
	items, err := queryIndex(ctx, r.ddb, r.tables.WorkOrderItems, itemKeyIndex, "item_key", partLineKey(partID), 1)
	return len(items) > 0, err
}

// referenceCache joins customers and mechanics, reading each id once.
type referenceCache struct {
	ddb       DynamoAPI
	tables    Tables
	customers map[string]entities.Customer
	mechanics map[string]entities.Mechanic
}

func newReferenceCache(ddb DynamoAPI, tables Tables) *referenceCache {
	return &referenceCache{
		ddb:       ddb,
		tables:    tables,
		customers: map[string]entities.Customer{},
		mechanics: map[string]entities.Mechanic{},
	}
}

func (c *referenceCache) attach(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	customer, ok := c.customers[wo.CustomerID]
	if !ok {
		var err error
		customer, err = getCatalogItem(ctx, c.ddb, c.tables.Customers, wo.CustomerID, fromCustomerItem)
		if err != nil {
			return entities.WorkOrder{}, err
		}
		c.customers[wo.CustomerID] = customer
	}
	mechanic, ok := c.mechanics[wo.MechanicID]
	if !ok {
		var err error
		mechanic, err = getCatalogItem(ctx, c.ddb, c.tables.Mechanics, wo.MechanicID, fromMechanicItem)
		if err != nil {
			return entities.WorkOrder{}, err
		}
		c.mechanics[wo.MechanicID] = mechanic
	}
	if customer.ID != "" {
		wo.Customer = &customer
	}
	if mechanic.ID != "" {
		wo.Mechanic = &mechanic
	}
	return wo, nil
}

func getCatalogItem[I any, E any](ctx context.Context, ddb DynamoAPI, table, id string, from func(I) E) (E, error) {
	var zero E
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return zero, err
	}
	if len(out.Item) == 0 {
		return zero, nil
	}
	var it I
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return zero, err
	}
	return from(it), nil
}
