package repository

import (
	"context"
	"errors"
	"fmt"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// maxTransactItems is the TransactWriteItems limit.
const maxTransactItems = 100

var ErrTransactionTooLarge = errors.New("dynamodb: unit of work exceeds the transaction item limit")

// UnitOfWork reads through strongly consistent calls and buffers every write
// until fn returns, then commits them with a single TransactWriteItems.
//
// Reads inside a unit do not observe that unit's own buffered writes. The
// work-order manager always reads before it writes, so this never matters
// there.
type UnitOfWork struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IUnitOfWork = (*UnitOfWork)(nil)

func NewUnitOfWork(ddb DynamoAPI, tables Tables) *UnitOfWork {
	return &UnitOfWork{ddb: ddb, tables: tables}
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos interfaces.IRepositories) error) error {
	tx := &txn{}
	if err := fn(ctx, newRepositories(u.ddb, u.tables, tx)); err != nil {
		return err
	}
	return tx.commit(ctx, u.ddb)
}

// txn is the write buffer of one unit of work. conflicts[i] is returned when
// writes[i] fails its condition.
//
// cascade holds deletes of owned rows that may leave the atomic commit when
// there are too many of them. They are committed ahead of writes, in chunks,
// so the owner row always goes last and a failed unit can be retried.
type txn struct {
	writes    []types.TransactWriteItem
	conflicts []error
	cascade   []types.TransactWriteItem
}

func (t *txn) put(table string, item map[string]types.AttributeValue, condition string, names map[string]string, onConflict error) {
	put := &types.Put{TableName: aws.String(table), Item: item}
	if condition != "" {
		put.ConditionExpression = aws.String(condition)
		put.ExpressionAttributeNames = names
	}
	t.writes = append(t.writes, types.TransactWriteItem{Put: put})
	t.conflicts = append(t.conflicts, onConflict)
}

func (t *txn) delete(table string, key map[string]types.AttributeValue) {
	t.writes = append(t.writes, types.TransactWriteItem{
		Delete: &types.Delete{TableName: aws.String(table), Key: key},
	})
	t.conflicts = append(t.conflicts, nil)
}

// deleteExisting deletes the row at key and fails the unit with onConflict
// when it is already gone.
func (t *txn) deleteExisting(table string, key map[string]types.AttributeValue, keyAttr string, onConflict error) {
	t.writes = append(t.writes, types.TransactWriteItem{
		Delete: &types.Delete{
			TableName:                aws.String(table),
			Key:                      key,
			ConditionExpression:      aws.String("attribute_exists(#pk)"),
			ExpressionAttributeNames: map[string]string{"#pk": keyAttr},
		},
	})
	t.conflicts = append(t.conflicts, onConflict)
}

func (t *txn) cascadeDelete(table string, key map[string]types.AttributeValue) {
	t.cascade = append(t.cascade, types.TransactWriteItem{
		Delete: &types.Delete{TableName: aws.String(table), Key: key},
	})
}

func (t *txn) commit(ctx context.Context, ddb DynamoAPI) error {
	if len(t.writes)+len(t.cascade) == 0 {
		return nil
	}
	if len(t.writes) > maxTransactItems {
		return fmt.Errorf("%w: %d writes", ErrTransactionTooLarge, len(t.writes))
	}

	cascade := t.cascade
	if overflow := len(t.writes) + len(cascade) - maxTransactItems; overflow > 0 {
		for start := 0; start < overflow; start += maxTransactItems {
			chunk := cascade[start:min(start+maxTransactItems, overflow)]
			if _, err := ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: chunk}); err != nil {
				return err
			}
		}
		cascade = cascade[overflow:]
	}

	// writes come first so cancellation reasons line up with conflicts.
	items := append(append(make([]types.TransactWriteItem, 0, len(t.writes)+len(cascade)), t.writes...), cascade...)
	_, err := ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err == nil {
		return nil
	}

	var canceled *types.TransactionCanceledException
	if errors.As(err, &canceled) {
		for i, reason := range canceled.CancellationReasons {
			if aws.ToString(reason.Code) == "ConditionalCheckFailed" && i < len(t.conflicts) && t.conflicts[i] != nil {
				return t.conflicts[i]
			}
		}
	}
	return err
}

type repositories struct {
	customers  *catalogDynamoRepository[entities.Customer, customerItem]
	mechanics  *catalogDynamoRepository[entities.Mechanic, mechanicItem]
	services   *catalogDynamoRepository[entities.Service, serviceItem]
	parts      *catalogDynamoRepository[entities.Part, partItem]
	workOrders *WorkOrderDynamoRepository
}

func newRepositories(ddb DynamoAPI, tables Tables, tx *txn) *repositories {
	return &repositories{
		customers: &catalogDynamoRepository[entities.Customer, customerItem]{
			ddb: ddb, tx: tx, tableName: tables.Customers,
			toItem: toCustomerItem, fromItem: fromCustomerItem,
			id:       func(c entities.Customer) string { return c.ID },
			notFound: entities.ErrCustomerNotFound,
		},
		mechanics: &catalogDynamoRepository[entities.Mechanic, mechanicItem]{
			ddb: ddb, tx: tx, tableName: tables.Mechanics,
			toItem: toMechanicItem, fromItem: fromMechanicItem,
			id:       func(m entities.Mechanic) string { return m.ID },
			notFound: entities.ErrMechanicNotFound,
		},
		services: &catalogDynamoRepository[entities.Service, serviceItem]{
			ddb: ddb, tx: tx, tableName: tables.Services,
			toItem: toServiceItem, fromItem: fromServiceItem,
			id:       func(s entities.Service) string { return s.ID },
			notFound: entities.ErrServiceNotFound,
		},
		parts: &catalogDynamoRepository[entities.Part, partItem]{
			ddb: ddb, tx: tx, tableName: tables.Parts,
			toItem: toPartItem, fromItem: fromPartItem,
			id:       func(p entities.Part) string { return p.ID },
			notFound: entities.ErrPartNotFound,
		},
		workOrders: &WorkOrderDynamoRepository{ddb: ddb, tx: tx, tables: tables},
	}
}

func (r *repositories) Customers() interfaces.ICustomerRepository   { return r.customers }
func (r *repositories) Mechanics() interfaces.IMechanicRepository   { return r.mechanics }
func (r *repositories) Services() interfaces.IServiceRepository     { return r.services }
func (r *repositories) Parts() interfaces.IPartRepository           { return r.parts }
func (r *repositories) WorkOrders() interfaces.IWorkOrderRepository { return r.workOrders }
