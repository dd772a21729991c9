package repository

import (
	"context"
	"fmt"

	"revenda_veiculos/internal/domain/entities"
	"revenda_veiculos/internal/infrastructure/config"
	"revenda_veiculos/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const vehiclesStatusIndex = "status-index"

// DynamoAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// Tables names every table the dealership uses.
//
// Table requirements:
//   - vehicles: PK id (string), GSI status-index (PK: status)
//   - clients, payments, sales: PK id (string)
//   - uniques: PK key (string)
type Tables struct {
	Vehicles string
	Clients  string
	Payments string
	Sales    string
	Uniques  string
}

func TablesFromConfig(cfg config.DynamoDB) Tables {
	return Tables{
		Vehicles: cfg.VehiclesTable,
		Clients:  cfg.ClientsTable,
		Payments: cfg.PaymentsTable,
		Sales:    cfg.SalesTable,
		Uniques:  cfg.UniquesTable,
	}
}

// Schemas describes the tables for database.EnsureTables.
func (t Tables) Schemas() []database.TableSchema {
	return []database.TableSchema{
		{Name: t.Vehicles, HashKey: "id", Indexes: []database.IndexSchema{{Name: vehiclesStatusIndex, HashKey: "status"}}},
		{Name: t.Clients, HashKey: "id"},
		{Name: t.Payments, HashKey: "id"},
		{Name: t.Sales, HashKey: "id"},
		{Name: t.Uniques, HashKey: "key"},
	}
}

func stringKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		name: &types.AttributeValueMemberS{Value: value},
	}
}

// getItem performs a consistent read and reports whether the item exists.
func getItem(ctx context.Context, ddb DynamoAPI, table, keyName, key string, out any) (bool, error) {
	res, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            stringKey(keyName, key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, fmt.Errorf("unmarshal %s item %s: %w", table, key, err)
	}
	return true, nil
}

// lookupOwner resolves a unique guard to the id of the entity holding it.
func lookupOwner(ctx context.Context, ddb DynamoAPI, table, key string) (string, error) {
	var it uniqueItem
	found, err := getItem(ctx, ddb, table, "key", key, &it)
	if err != nil || !found {
		return "", err
	}
	return it.OwnerID, nil
}

// entityBase returns the persisted identity of one of the aggregate entities.
func entityBase(entity any) (*entities.Base, error) {
	switch e := entity.(type) {
	case *entities.Vehicle:
		return &e.Base, nil
	case *entities.Client:
		return &e.Base, nil
	case *entities.Payment:
		return &e.Base, nil
	case *entities.Sale:
		return &e.Base, nil
	default:
		return nil, fmt.Errorf("unsupported entity type %T", entity)
	}
}

// bumpVersions mirrors the version increment performed by a committed update.
func bumpVersions(changes entities.ChangeSet) {
	for _, ch := range changes.Changes() {
		if ch.Kind != entities.ChangeUpdate {
			continue
		}
		if b, err := entityBase(ch.Entity); err == nil {
			b.Version++
		}
	}
}
