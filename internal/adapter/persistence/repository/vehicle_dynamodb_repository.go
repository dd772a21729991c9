package repository

import (
	"context"

	"revenda_veiculos/internal/domain/entities"
	"revenda_veiculos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// VehicleDynamoRepository reads Vehicle entities from DynamoDB.
type VehicleDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb DynamoAPI, tables Tables) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{ddb: ddb, tableName: tables.Vehicles}
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (*entities.Vehicle, error) {
	var it vehicleItem
	found, err := getItem(ctx, r.ddb, r.tableName, "id", id, &it)
	if err != nil || !found {
		return nil, err
	}
	return fromVehicleItem(it)
}

// ListByStatus queries the status index. Ordering is left to the caller.
func (r *VehicleDynamoRepository) ListByStatus(ctx context.Context, status entities.VehicleStatus) ([]*entities.Vehicle, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(vehiclesStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})

	vehicles := make([]*entities.Vehicle, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it vehicleItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			v, err := fromVehicleItem(it)
			if err != nil {
				return nil, err
			}
			vehicles = append(vehicles, v)
		}
	}
	return vehicles, nil
}
