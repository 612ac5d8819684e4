package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"agencyops/internal/domain/entities"
	"agencyops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// dynamoClient is the subset of *dynamodb.Client used by the repositories.
type dynamoClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ dynamoClient = (*dynamodb.Client)(nil)

func tableOrDefault(name, def string) string {
	if strings.TrimSpace(name) != "" {
		return name
	}
	return def
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// putNew writes an item that must not exist yet.
func putNew(ctx context.Context, ddb dynamoClient, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// replaceExisting overwrites an item that must already exist.
//
// When expectedVersion > 0 the stored version must match it; a mismatch on an
// existing item yields entities.ErrVersionConflict. A missing item yields found=false.
func replaceExisting(ctx context.Context, ddb dynamoClient, table string, item any, expectedVersion int) (found bool, err error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return false, err
	}
	in := &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	}
	if expectedVersion > 0 {
		in.ConditionExpression = aws.String("attribute_exists(#id) AND #version = :expected")
		in.ExpressionAttributeNames["#version"] = "version"
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.Itoa(expectedVersion)},
		}
	}

	return conditionalPut(ctx, ddb, in, entities.ErrVersionConflict)
}

// replaceIfStatus overwrites an item only while the stored attr still holds
// expected. A mismatch reports entities.ErrStatusConflict. When acceptMissing
// is set, rows written before attr existed pass the check as well.
func replaceIfStatus(ctx context.Context, ddb dynamoClient, table string, item any, attr, expected string, acceptMissing bool) (found bool, err error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return false, err
	}
	cond := "attribute_exists(#id) AND #status = :expected"
	if acceptMissing {
		cond = "attribute_exists(#id) AND (attribute_not_exists(#status) OR #status = :expected)"
	}
	return conditionalPut(ctx, ddb, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String(cond),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: expected},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	}, entities.ErrStatusConflict)
}

// conditionalPut runs a guarded PutItem. A failed check with the old item
// attached means the row exists but changed, reported as conflict.
func conditionalPut(ctx context.Context, ddb dynamoClient, in *dynamodb.PutItemInput, conflict error) (found bool, err error) {
	if _, err := ddb.PutItem(ctx, in); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) > 0 {
				return true, conflict
			}
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// getByID loads one item by primary key. found is false when nothing is stored.
func getByID[T any](ctx context.Context, ddb dynamoClient, table, id string) (it T, found bool, err error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return it, false, err
	}
	if len(out.Item) == 0 {
		return it, false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return it, false, err
	}
	return it, true, nil
}

// deleteByID removes an item and reports whether it existed.
func deleteByID(ctx context.Context, ddb dynamoClient, table, id string) (bool, error) {
	_, err := ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(table),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// queryIndex reads every item of a GSI partition, following pagination.
func queryIndex[T any](ctx context.Context, ddb dynamoClient, table, index, attr, value string) ([]T, error) {
	p := dynamodb.NewQueryPaginator(ddb, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})

	var items []T
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}
	return items, nil
}

// scanFilter is an optional equality filter applied server side during a scan.
type scanFilter struct {
	attr  string
	value string
}

func scanAll[T any](ctx context.Context, ddb dynamoClient, table string, filters ...scanFilter) ([]T, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(table)}
	if len(filters) > 0 {
		names := map[string]string{}
		values := map[string]types.AttributeValue{}
		var conds []string
		for i, f := range filters {
			n, v := "#f"+strconv.Itoa(i), ":f"+strconv.Itoa(i)
			names[n] = f.attr
			values[v] = &types.AttributeValueMemberS{Value: f.value}
			conds = append(conds, n+" = "+v)
		}
		in.FilterExpression = aws.String(strings.Join(conds, " AND "))
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}

	p := dynamodb.NewScanPaginator(ddb, in)
	var items []T
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}
	return items, nil
}

// applyListOptions sorts, searches and truncates an in-memory result set.
//
// Supported sorts: created_date, -created_date (default), updated_date, -updated_date.
func applyListOptions[T any](items []T, opts interfaces.ListOptions, created, updated func(T) time.Time, text func(T) string) []T {
	if q := strings.ToLower(strings.TrimSpace(opts.Search)); q != "" && text != nil {
		filtered := items[:0]
		for _, it := range items {
			if strings.Contains(strings.ToLower(text(it)), q) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	key := created
	sortField := strings.TrimSpace(opts.Sort)
	desc := true
	if strings.HasPrefix(sortField, "-") {
		sortField = sortField[1:]
	} else if sortField != "" {
		desc = false
	}
	if sortField == "updated_date" && updated != nil {
		key = updated
	}
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return key(items[i]).After(key(items[j]))
		}
		return key(items[i]).Before(key(items[j]))
	})

	if opts.Limit > 0 && len(items) > opts.Limit {
		items = items[:opts.Limit]
	}
	return items
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
