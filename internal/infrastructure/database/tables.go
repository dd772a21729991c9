package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const tableReadyTimeout = 2 * time.Minute

// TableSchema is a string-keyed table with optional global secondary indexes.
type TableSchema struct {
	Name    string
	HashKey string
	Indexes []IndexSchema
}

type IndexSchema struct {
	Name    string
	HashKey string
}

// TableAPI is the subset of *dynamodb.Client needed to bootstrap tables.
type TableAPI interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// EnsureTables creates the missing tables (on-demand billing) and waits until
// every table is active. Existing tables are left untouched.
func EnsureTables(ctx context.Context, api TableAPI, schemas []TableSchema, log *zap.Logger) error {
	waiter := dynamodb.NewTableExistsWaiter(api)

	for _, s := range schemas {
		_, err := api.CreateTable(ctx, createTableInput(s))
		var inUse *types.ResourceInUseException
		switch {
		case err == nil:
			log.Info("[database] table created", zap.String("table", s.Name))
		case errors.As(err, &inUse):
			log.Debug("[database] table already exists", zap.String("table", s.Name))
		default:
			return fmt.Errorf("create table %s: %w", s.Name, err)
		}

		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.Name)}, tableReadyTimeout); err != nil {
			return fmt.Errorf("wait for table %s: %w", s.Name, err)
		}
	}
	return nil
}

func createTableInput(s TableSchema) *dynamodb.CreateTableInput {
	attrs := map[string]bool{s.HashKey: true}
	definitions := []types.AttributeDefinition{
		{AttributeName: aws.String(s.HashKey), AttributeType: types.ScalarAttributeTypeS},
	}

	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(s.Name),
		BillingMode: types.BillingModePayPerRequest,
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(s.HashKey), KeyType: types.KeyTypeHash},
		},
	}

	for _, idx := range s.Indexes {
		if !attrs[idx.HashKey] {
			attrs[idx.HashKey] = true
			definitions = append(definitions, types.AttributeDefinition{
				AttributeName: aws.String(idx.HashKey),
				AttributeType: types.ScalarAttributeTypeS,
			})
		}
		in.GlobalSecondaryIndexes = append(in.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
			IndexName: aws.String(idx.Name),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(idx.HashKey), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	in.AttributeDefinitions = definitions
	return in
}
