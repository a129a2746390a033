package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory DynamoAPI covering the calls and expressions
// the repositories issue.
type fakeDynamo struct {
	mu      sync.Mutex
	keys    map[string][]string
	indexes map[string]string
	items   map[string]map[string]map[string]types.AttributeValue

	transactCalls int
	transactErr   error
}

func newFakeDynamo(tables Tables) *fakeDynamo {
	f := &fakeDynamo{
		keys:    map[string][]string{},
		indexes: map[string]string{customerIDIndex: "customer_id", mechanicIDIndex: "mechanic_id", itemKeyIndex: "item_key"},
		items:   map[string]map[string]map[string]types.AttributeValue{},
	}
	for _, name := range []string{tables.Customers, tables.Mechanics, tables.Services, tables.Parts, tables.WorkOrders} {
		f.keys[name] = []string{"id"}
	}
	f.keys[tables.WorkOrderItems] = []string{"work_order_id", "item_key"}
	for name := range f.keys {
		f.items[name] = map[string]map[string]types.AttributeValue{}
	}
	return f
}

func (f *fakeDynamo) keyOf(table string, item map[string]types.AttributeValue) (string, error) {
	attrs, ok := f.keys[table]
	if !ok {
		return "", &types.ResourceNotFoundException{Message: aws.String("table " + table)}
	}
	parts := make([]string, 0, len(attrs))
	for _, a := range attrs {
		parts = append(parts, stringAttr(item, a))
	}
	return strings.Join(parts, "|"), nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	table := aws.ToString(in.TableName)
	key, err := f.keyOf(table, in.Key)
	if err != nil {
		return nil, err
	}
	return &dynamodb.GetItemOutput{Item: copyItem(f.items[table][key])}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	table := aws.ToString(in.TableName)
	if _, ok := f.keys[table]; !ok {
		return nil, &types.ResourceNotFoundException{Message: aws.String("table " + table)}
	}
	if aws.ToString(in.KeyConditionExpression) != "#pk = :pk" {
		return nil, fmt.Errorf("fake: unsupported key condition %q", aws.ToString(in.KeyConditionExpression))
	}
	attr := in.ExpressionAttributeNames["#pk"]
	if in.IndexName != nil && f.indexes[aws.ToString(in.IndexName)] != attr {
		return nil, fmt.Errorf("fake: index %s is not keyed by %s", aws.ToString(in.IndexName), attr)
	}
	value := stringAttr(in.ExpressionAttributeValues, ":pk")

	out := &dynamodb.QueryOutput{}
	for _, item := range f.items[table] {
		if stringAttr(item, attr) != value {
			continue
		}
		out.Items = append(out.Items, copyItem(item))
		if in.Limit != nil && int32(len(out.Items)) >= *in.Limit {
			break
		}
	}
	out.Count = int32(len(out.Items))
	return out, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	table := aws.ToString(in.TableName)
	if _, ok := f.keys[table]; !ok {
		return nil, &types.ResourceNotFoundException{Message: aws.String("table " + table)}
	}
	out := &dynamodb.ScanOutput{Count: int32(len(f.items[table]))}
	if in.Select == types.SelectCount {
		return out, nil
	}
	for _, item := range f.items[table] {
		out.Items = append(out.Items, copyItem(item))
	}
	return out, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transactCalls++
	if f.transactErr != nil {
		return nil, f.transactErr
	}

	if len(in.TransactItems) > 100 {
		return nil, fmt.Errorf("fake: ValidationException: %d transact items exceed the limit", len(in.TransactItems))
	}

	reasons := make([]types.CancellationReason, len(in.TransactItems))
	failed := false
	for i, w := range in.TransactItems {
		reasons[i] = types.CancellationReason{Code: aws.String("None")}
		var table string
		var key map[string]types.AttributeValue
		var cond *string
		switch {
		case w.Put != nil:
			table, key, cond = aws.ToString(w.Put.TableName), w.Put.Item, w.Put.ConditionExpression
		case w.Delete != nil:
			table, key, cond = aws.ToString(w.Delete.TableName), w.Delete.Key, w.Delete.ConditionExpression
		}
		if cond == nil {
			continue
		}
		k, err := f.keyOf(table, key)
		if err != nil {
			return nil, err
		}
		_, exists := f.items[table][k]
		switch expr := aws.ToString(cond); {
		case strings.HasPrefix(expr, "attribute_not_exists("):
			if exists {
				reasons[i].Code = aws.String("ConditionalCheckFailed")
				failed = true
			}
		case strings.HasPrefix(expr, "attribute_exists("):
			if !exists {
				reasons[i].Code = aws.String("ConditionalCheckFailed")
				failed = true
			}
		default:
			return nil, fmt.Errorf("fake: unsupported condition %q", expr)
		}
	}
	if failed {
		return nil, &types.TransactionCanceledException{
			Message:             aws.String("Transaction cancelled"),
			CancellationReasons: reasons,
		}
	}

	for _, w := range in.TransactItems {
		switch {
		case w.Put != nil:
			table := aws.ToString(w.Put.TableName)
			key, _ := f.keyOf(table, w.Put.Item)
			f.items[table][key] = copyItem(w.Put.Item)
		case w.Delete != nil:
			table := aws.ToString(w.Delete.TableName)
			key, err := f.keyOf(table, w.Delete.Key)
			if err != nil {
				return nil, err
			}
			delete(f.items[table], key)
		}
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func (f *fakeDynamo) count(table string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items[table])
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	if item == nil {
		return nil
	}
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}
