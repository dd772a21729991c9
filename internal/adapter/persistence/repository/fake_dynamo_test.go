package repository

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var testTables = Tables{
	Vehicles: "vehicles",
	Clients:  "clients",
	Payments: "payments",
	Sales:    "sales",
	Uniques:  "uniques",
}

// fakeDynamo serves GetItem from seeded items, returns canned query pages and
// records transactions.
type fakeDynamo struct {
	items      map[string]map[string]map[string]types.AttributeValue
	pages      []*dynamodb.QueryOutput
	queries    []*dynamodb.QueryInput
	txs        []*dynamodb.TransactWriteItemsInput
	txErr      error
	getItemErr error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) seed(t *testing.T, table, key string, item any) {
	t.Helper()
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if f.items[table] == nil {
		f.items[table] = map[string]map[string]types.AttributeValue{}
	}
	f.items[table][key] = av
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getItemErr != nil {
		return nil, f.getItemErr
	}
	var key string
	for _, v := range in.Key {
		key = v.(*types.AttributeValueMemberS).Value
	}
	return &dynamodb.GetItemOutput{Item: f.items[*in.TableName][key]}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	if len(f.pages) == 0 {
		return &dynamodb.QueryOutput{}, nil
	}
	page := f.pages[0]
	f.pages = f.pages[1:]
	return page, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.txs = append(f.txs, in)
	if f.txErr != nil {
		return nil, f.txErr
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}
