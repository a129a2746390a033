package repository

import (
	"context"
	"time"

	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// catalogDynamoRepository persists one single-table record kind (customers,
// mechanics, services, parts). E is the domain entity, I its item shape.
//
// Table requirements:
//   - PK: id (string)
//
// Items also carry created_at, used to keep listings in insertion order.
type catalogDynamoRepository[E any, I any] struct {
	ddb       DynamoAPI
	tx        *txn
	tableName string

	toItem   func(E) I
	fromItem func(I) E
	id       func(E) string
	notFound error
}

func (r *catalogDynamoRepository[E, I]) Create(_ context.Context, e E) (E, error) {
	var zero E
	av, err := attributevalue.MarshalMap(r.toItem(e))
	if err != nil {
		return zero, err
	}
	av["created_at"] = &types.AttributeValueMemberS{Value: formatTime(time.Now())}

	r.tx.put(r.tableName, av, "attribute_not_exists(#id)", map[string]string{"#id": "id"}, nil)
	return e, nil
}

func (r *catalogDynamoRepository[E, I]) GetByID(ctx context.Context, id string) (E, error) {
	var zero E
	raw, err := r.getRaw(ctx, id)
	if err != nil || raw == nil {
		return zero, err
	}
	return r.decode(raw)
}

func (r *catalogDynamoRepository[E, I]) getRaw(ctx context.Context, id string) (map[string]types.AttributeValue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}

func (r *catalogDynamoRepository[E, I]) decode(raw map[string]types.AttributeValue) (E, error) {
	var it I
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		var zero E
		return zero, err
	}
	return r.fromItem(it), nil
}

// List scans the whole table and paginates in process. Catalog tables are
// small enough for this.
func (r *catalogDynamoRepository[E, I]) List(ctx context.Context, page interfaces.Page) ([]E, error) {
	page = page.Normalize()

	raws, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	sortByCreatedAt(raws, "id")

	out := make([]E, 0, page.Limit)
	for i := page.Skip; i < len(raws) && len(out) < page.Limit; i++ {
		e, err := r.decode(raws[i])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *catalogDynamoRepository[E, I]) Count(ctx context.Context) (int64, error) {
	var (
		total int64
		start map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			Select:            types.SelectCount,
			ExclusiveStartKey: start,
			ConsistentRead:    aws.Bool(true),
		})
		if err != nil {
			return 0, err
		}
		total += int64(out.Count)
		if len(out.LastEvaluatedKey) == 0 {
			return total, nil
		}
		start = out.LastEvaluatedKey
	}
}

// Update replaces the item, keeping its created_at.
func (r *catalogDynamoRepository[E, I]) Update(ctx context.Context, e E) (E, error) {
	var zero E
	current, err := r.getRaw(ctx, r.id(e))
	if err != nil || current == nil {
		return zero, err
	}

	av, err := attributevalue.MarshalMap(r.toItem(e))
	if err != nil {
		return zero, err
	}
	if createdAt, ok := current["created_at"]; ok {
		av["created_at"] = createdAt
	}

	r.tx.put(r.tableName, av, "attribute_exists(#id)", map[string]string{"#id": "id"}, r.notFound)
	return e, nil
}

// Delete has no storage-level reference check; the use case guards it.
func (r *catalogDynamoRepository[E, I]) Delete(_ context.Context, id string) error {
	r.tx.delete(r.tableName, stringKey("id", id))
	return nil
}

func scanAll(ctx context.Context, ddb DynamoAPI, table string) ([]map[string]types.AttributeValue, error) {
	var (
		items []map[string]types.AttributeValue
		start map[string]types.AttributeValue
	)
	for {
		out, err := ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: start,
			ConsistentRead:    aws.Bool(true),
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		start = out.LastEvaluatedKey
	}
}
