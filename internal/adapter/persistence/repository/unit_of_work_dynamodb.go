package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"revenda_veiculos/internal/domain/entities"
	"revenda_veiculos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// failureKind classifies a failed condition of one transaction item.
type failureKind int

const (
	failDuplicate failureKind = iota
	failConcurrent
)

// DynamoUnitOfWork commits a ChangeSet with a single TransactWriteItems call.
//
// Inserts are conditioned on attribute_not_exists(id), updates and checks on
// the version the entity was loaded with. Unique guards live in the uniques
// table and are written in the same transaction.
type DynamoUnitOfWork struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IUnitOfWork = (*DynamoUnitOfWork)(nil)

func NewDynamoUnitOfWork(ddb DynamoAPI, tables Tables) *DynamoUnitOfWork {
	return &DynamoUnitOfWork{ddb: ddb, tables: tables}
}

func (u *DynamoUnitOfWork) Commit(ctx context.Context, changes entities.ChangeSet) error {
	if changes.IsEmpty() {
		return nil
	}

	tx := transaction{}
	for _, ch := range changes.Changes() {
		if err := u.add(ctx, &tx, ch); err != nil {
			return err
		}
	}

	_, err := u.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: tx.items,
	})
	if err != nil {
		return tx.classify(err)
	}

	bumpVersions(changes)
	return nil
}

func (u *DynamoUnitOfWork) add(ctx context.Context, tx *transaction, ch entities.Change) error {
	switch e := ch.Entity.(type) {
	case *entities.Vehicle:
		return tx.entity(u.tables.Vehicles, ch.Kind, &e.Base, toVehicleItem(e))
	case *entities.Client:
		if err := tx.entity(u.tables.Clients, ch.Kind, &e.Base, toClientItem(e)); err != nil {
			return err
		}
		if ch.Kind == entities.ChangeInsert {
			return tx.claim(u.tables.Uniques, clientCpfKey(e.Cpf), e.ID, false)
		}
		return nil
	case *entities.Payment:
		if err := tx.entity(u.tables.Payments, ch.Kind, &e.Base, toPaymentItem(e)); err != nil {
			return err
		}
		if ch.Kind == entities.ChangeInsert {
			return tx.claim(u.tables.Uniques, paymentCodeKey(e.Code), e.SaleID, false)
		}
		return nil
	case *entities.Sale:
		if err := tx.entity(u.tables.Sales, ch.Kind, &e.Base, toSaleItem(e)); err != nil {
			return err
		}
		return u.saleVehicleGuard(ctx, tx, ch.Kind, e)
	default:
		return fmt.Errorf("unsupported entity type %T", ch.Entity)
	}
}

// saleVehicleGuard keeps sale_vehicle#<vehicle> owned by the vehicle's only
// non-canceled sale.
func (u *DynamoUnitOfWork) saleVehicleGuard(ctx context.Context, tx *transaction, kind entities.ChangeKind, s *entities.Sale) error {
	key := saleVehicleKey(s.VehicleID)
	switch {
	case kind == entities.ChangeInsert:
		return tx.claim(u.tables.Uniques, key, s.ID, false)
	case kind == entities.ChangeUpdate && !s.Canceled:
		return tx.claim(u.tables.Uniques, key, s.ID, true)
	case kind == entities.ChangeUpdate && s.Canceled:
		owner, err := lookupOwner(ctx, u.ddb, u.tables.Uniques, key)
		if err != nil {
			return err
		}
		if owner == s.ID {
			tx.release(u.tables.Uniques, key, s.ID)
		}
	}
	return nil
}

type transaction struct {
	items  []types.TransactWriteItem
	onFail []failureKind
}

func (tx *transaction) push(item types.TransactWriteItem, kind failureKind) {
	tx.items = append(tx.items, item)
	tx.onFail = append(tx.onFail, kind)
}

func (tx *transaction) entity(table string, kind entities.ChangeKind, base *entities.Base, item any) error {
	switch kind {
	case entities.ChangeCheck:
		tx.push(types.TransactWriteItem{
			ConditionCheck: &types.ConditionCheck{
				TableName:                aws.String(table),
				Key:                      stringKey("id", base.ID),
				ConditionExpression:      aws.String("#version = :version"),
				ExpressionAttributeNames: map[string]string{"#version": "version"},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":version": versionValue(base.Version),
				},
			},
		}, failConcurrent)
		return nil
	case entities.ChangeInsert, entities.ChangeUpdate:
	default:
		return fmt.Errorf("unsupported change kind %s", kind)
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}

	if kind == entities.ChangeInsert {
		tx.push(types.TransactWriteItem{
			Put: &types.Put{
				TableName:                aws.String(table),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		}, failDuplicate)
		return nil
	}

	av["version"] = versionValue(base.Version + 1)
	tx.push(types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(table),
			Item:                av,
			ConditionExpression: aws.String("#version = :version"),
			ExpressionAttributeNames: map[string]string{
				"#version": "version",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":version": versionValue(base.Version),
			},
		},
	}, failConcurrent)
	return nil
}

// claim writes a guard item. With reentrant set the current owner may
// re-assert it.
func (tx *transaction) claim(table, key, ownerID string, reentrant bool) error {
	av, err := attributevalue.MarshalMap(uniqueItem{Key: key, OwnerID: ownerID})
	if err != nil {
		return err
	}
	put := &types.Put{
		TableName:                aws.String(table),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#key)"),
		ExpressionAttributeNames: map[string]string{"#key": "key"},
	}
	if reentrant {
		put.ConditionExpression = aws.String("attribute_not_exists(#key) OR #owner = :owner")
		put.ExpressionAttributeNames["#owner"] = "owner_id"
		put.ExpressionAttributeValues = map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: ownerID},
		}
	}
	tx.push(types.TransactWriteItem{Put: put}, failDuplicate)
	return nil
}

func (tx *transaction) release(table, key, ownerID string) {
	tx.push(types.TransactWriteItem{
		Delete: &types.Delete{
			TableName:                aws.String(table),
			Key:                      stringKey("key", key),
			ConditionExpression:      aws.String("#owner = :owner"),
			ExpressionAttributeNames: map[string]string{"#owner": "owner_id"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":owner": &types.AttributeValueMemberS{Value: ownerID},
			},
		},
	}, failConcurrent)
}

// classify maps a failed transaction onto the domain error taxonomy. A
// duplicate key wins over a concurrent update when both are reported.
func (tx *transaction) classify(err error) error {
	var canceled *types.TransactionCanceledException
	if errors.As(err, &canceled) {
		duplicate, concurrent := false, false
		for i, reason := range canceled.CancellationReasons {
			switch aws.ToString(reason.Code) {
			case "ConditionalCheckFailed":
				if i < len(tx.onFail) && tx.onFail[i] == failDuplicate {
					duplicate = true
				} else {
					concurrent = true
				}
			case "TransactionConflict":
				concurrent = true
			}
		}
		switch {
		case duplicate:
			return entities.ErrDuplicateKey
		case concurrent:
			return entities.ErrConcurrentUpdate
		}
		return err
	}

	var conflict *types.TransactionConflictException
	if errors.As(err, &conflict) {
		return entities.ErrConcurrentUpdate
	}
	return err
}

func versionValue(v int) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.Itoa(v)}
}
