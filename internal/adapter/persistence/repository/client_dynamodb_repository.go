package repository

import (
	"context"

	"revenda_veiculos/internal/domain/entities"
	"revenda_veiculos/internal/usecase/interfaces"
)

// ClientDynamoRepository reads Client entities from DynamoDB. The Cpf lookup
// goes through the client_cpf guard in the uniques table.
type ClientDynamoRepository struct {
	ddb          DynamoAPI
	tableName    string
	uniquesTable string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb DynamoAPI, tables Tables) *ClientDynamoRepository {
	return &ClientDynamoRepository{ddb: ddb, tableName: tables.Clients, uniquesTable: tables.Uniques}
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (*entities.Client, error) {
	var it clientItem
	found, err := getItem(ctx, r.ddb, r.tableName, "id", id, &it)
	if err != nil || !found {
		return nil, err
	}
	return fromClientItem(it)
}

func (r *ClientDynamoRepository) GetByCpf(ctx context.Context, cpf entities.Cpf) (*entities.Client, error) {
	ownerID, err := lookupOwner(ctx, r.ddb, r.uniquesTable, clientCpfKey(cpf))
	if err != nil || ownerID == "" {
		return nil, err
	}
	return r.GetByID(ctx, ownerID)
}
