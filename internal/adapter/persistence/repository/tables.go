package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	customerIDIndex = "customer_id-index"
	mechanicIDIndex = "mechanic_id-index"
	itemKeyIndex    = "item_key-index"
)

// DynamoAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// Tables holds the physical table names.
//
//   - customers, mechanics, services, parts: PK id
//   - work_orders: PK id; GSIs customer_id-index, mechanic_id-index
//   - work_order_items: PK work_order_id, SK item_key ("service#<id>" | "part#<id>");
//     GSI item_key-index answers "is this service/part attached anywhere"
type Tables struct {
	Customers      string
	Mechanics      string
	Services       string
	Parts          string
	WorkOrders     string
	WorkOrderItems string
}

// DefaultTables prefixes the default names. Each name can still be
// overridden through its own env var (e.g. WORK_ORDERS_TABLE).
func DefaultTables(prefix string) Tables {
	return Tables{
		Customers:      getenvDefault("CUSTOMERS_TABLE", prefix+"customers"),
		Mechanics:      getenvDefault("MECHANICS_TABLE", prefix+"mechanics"),
		Services:       getenvDefault("SERVICES_TABLE", prefix+"services"),
		Parts:          getenvDefault("PARTS_TABLE", prefix+"parts"),
		WorkOrders:     getenvDefault("WORK_ORDERS_TABLE", prefix+"work_orders"),
		WorkOrderItems: getenvDefault("WORK_ORDER_ITEMS_TABLE", prefix+"work_order_items"),
	}
}

type tableCreator interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// EnsureTables creates missing tables (on-demand billing) and waits for them
// to become active. Meant for local DynamoDB and first boots.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client, tables Tables) error {
	for _, in := range tableDefinitions(tables) {
		created, err := createIfMissing(ctx, ddb, in)
		if err != nil {
			return err
		}
		if !created {
			continue
		}
		waiter := dynamodb.NewTableExistsWaiter(ddb)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: in.TableName}, 2*time.Minute); err != nil {
			return fmt.Errorf("wait for table %s: %w", aws.ToString(in.TableName), err)
		}
	}
	return nil
}

func createIfMissing(ctx context.Context, ddb tableCreator, in *dynamodb.CreateTableInput) (bool, error) {
	_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: in.TableName})
	if err == nil {
		return false, nil
	}
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return false, fmt.Errorf("describe table %s: %w", aws.ToString(in.TableName), err)
	}
	if _, err := ddb.CreateTable(ctx, in); err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			return false, nil
		}
		return false, fmt.Errorf("create table %s: %w", aws.ToString(in.TableName), err)
	}
	return true, nil
}

func tableDefinitions(t Tables) []*dynamodb.CreateTableInput {
	str := func(name string) types.AttributeDefinition {
		return types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: types.ScalarAttributeTypeS}
	}
	hash := func(name string) types.KeySchemaElement {
		return types.KeySchemaElement{AttributeName: aws.String(name), KeyType: types.KeyTypeHash}
	}
	gsi := func(index, attr string) types.GlobalSecondaryIndex {
		return types.GlobalSecondaryIndex{
			IndexName:  aws.String(index),
			KeySchema:  []types.KeySchemaElement{hash(attr)},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		}
	}
	simple := func(name string) *dynamodb.CreateTableInput {
		return &dynamodb.CreateTableInput{
			TableName:            aws.String(name),
			AttributeDefinitions: []types.AttributeDefinition{str("id")},
			KeySchema:            []types.KeySchemaElement{hash("id")},
			BillingMode:          types.BillingModePayPerRequest,
		}
	}

	return []*dynamodb.CreateTableInput{
		simple(t.Customers),
		simple(t.Mechanics),
		simple(t.Services),
		simple(t.Parts),
		{
			TableName:              aws.String(t.WorkOrders),
			AttributeDefinitions:   []types.AttributeDefinition{str("id"), str("customer_id"), str("mechanic_id")},
			KeySchema:              []types.KeySchemaElement{hash("id")},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{gsi(customerIDIndex, "customer_id"), gsi(mechanicIDIndex, "mechanic_id")},
			BillingMode:            types.BillingModePayPerRequest,
		},
		{
			TableName:            aws.String(t.WorkOrderItems),
			AttributeDefinitions: []types.AttributeDefinition{str("work_order_id"), str("item_key")},
			KeySchema: []types.KeySchemaElement{
				hash("work_order_id"),
				{AttributeName: aws.String("item_key"), KeyType: types.KeyTypeRange},
			},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{gsi(itemKeyIndex, "item_key")},
			BillingMode:            types.BillingModePayPerRequest,
		},
	}
}
