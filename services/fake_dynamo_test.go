package services

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type putCall struct {
	table string
	item  interface{}
}

type updateCall struct {
	table     string
	expr      string
	condition string
	key       map[string]types.AttributeValue
	values    map[string]types.AttributeValue
	names     map[string]string
}

// fakeDynamo is an in-memory stand-in for DynamoService. Tests preload scan
// results, override the query/get hooks they care about, and inspect the
// recorded writes afterwards.
type fakeDynamo struct {
	puts            []putCall
	conditionalPuts []putCall
	updates         []updateCall
	deletes         []string

	scanItems map[string][]map[string]types.AttributeValue

	putErr            error
	conditionalPutErr error
	updateErr         error

	getItemFn      func(table string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error)
	queryFn        func(table, keyCondition string, values map[string]types.AttributeValue) ([]map[string]types.AttributeValue, error)
	queryFiltersFn func(table, keyCondition, filter string, values map[string]types.AttributeValue) ([]map[string]types.AttributeValue, error)
	queryOptionsFn func(table string, limit int32, latestFirst bool) ([]map[string]types.AttributeValue, error)
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func (f *fakeDynamo) GetItem(_ context.Context, table string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	if f.getItemFn != nil {
		return f.getItemFn(table, key)
	}
	return nil, ErrItemNotFound
}

func (f *fakeDynamo) PutItem(_ context.Context, table string, item interface{}) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.puts = append(f.puts, putCall{table: table, item: item})
	return nil
}

func (f *fakeDynamo) PutItemIfNotExists(_ context.Context, table string, item interface{}, _ string) error {
	if f.conditionalPutErr != nil {
		return f.conditionalPutErr
	}
	f.conditionalPuts = append(f.conditionalPuts, putCall{table: table, item: item})
	return nil
}

func (f *fakeDynamo) UpdateItem(ctx context.Context, table string, expr string, key map[string]types.AttributeValue, values map[string]types.AttributeValue, names map[string]string) (map[string]types.AttributeValue, error) {
	return f.UpdateItemWithCondition(ctx, table, expr, "", key, values, names)
}

func (f *fakeDynamo) UpdateItemWithCondition(_ context.Context, table string, expr string, condition string, key map[string]types.AttributeValue, values map[string]types.AttributeValue, names map[string]string) (map[string]types.AttributeValue, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updates = append(f.updates, updateCall{table: table, expr: expr, condition: condition, key: key, values: values, names: names})
	return map[string]types.AttributeValue{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, table string, _ map[string]types.AttributeValue) error {
	f.deletes = append(f.deletes, table)
	return nil
}

func (f *fakeDynamo) QueryItems(_ context.Context, table string, keyCondition string, values map[string]types.AttributeValue, _ map[string]string, _ int32) ([]map[string]types.AttributeValue, error) {
	if f.queryFn != nil {
		return f.queryFn(table, keyCondition, values)
	}
	return nil, nil
}

func (f *fakeDynamo) QueryItemsWithFilters(_ context.Context, table string, keyCondition string, values map[string]types.AttributeValue, _ map[string]string, filter string) ([]map[string]types.AttributeValue, error) {
	if f.queryFiltersFn != nil {
		return f.queryFiltersFn(table, keyCondition, filter, values)
	}
	return nil, nil
}

func (f *fakeDynamo) QueryItemsWithOptions(_ context.Context, table string, _ string, _ map[string]types.AttributeValue, _ map[string]string, limit int32, latestFirst bool) ([]map[string]types.AttributeValue, error) {
	if f.queryOptionsFn != nil {
		return f.queryOptionsFn(table, limit, latestFirst)
	}
	return nil, nil
}

func (f *fakeDynamo) ScanWithFilter(_ context.Context, table string, filterFunc func(map[string]types.AttributeValue) bool, result interface{}) error {
	var filtered []map[string]types.AttributeValue
	for _, item := range f.scanItems[table] {
		if filterFunc == nil || filterFunc(item) {
			filtered = append(filtered, item)
		}
	}
	return attributevalue.UnmarshalListOfMaps(filtered, result)
}

func (f *fakeDynamo) BatchWriteItems(_ context.Context, _ string, _ []types.WriteRequest) error {
	return nil
}

// mustMarshal converts a model into a DynamoDB attribute map for preloading
// the fake's scan/query results.
func mustMarshal(item interface{}) map[string]types.AttributeValue {
	m, err := attributevalue.MarshalMap(item)
	if err != nil {
		panic(err)
	}
	return m
}
