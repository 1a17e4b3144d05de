package repository

import (
	"context"
	"strconv"

	"oficina_prime/internal/domain/entities"
	"oficina_prime/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInventoryTableName = "inventory_items"

type inventoryItemRecord struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	PurchasePrice string `dynamodbav:"purchase_price"`
	SellingPrice  string `dynamodbav:"selling_price"`
	Stock         int    `dynamodbav:"stock"`
	MinStock      int    `dynamodbav:"min_stock"`
}

// InventoryDynamoRepository persists InventoryItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type InventoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInventoryRepository = (*InventoryDynamoRepository)(nil)

func NewInventoryDynamoRepository(ddb *dynamodb.Client) *InventoryDynamoRepository {
	return &InventoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVENTORY_TABLE", defaultInventoryTableName),
	}
}

func (r *InventoryDynamoRepository) List(ctx context.Context) ([]entities.InventoryItem, error) {
	var items []entities.InventoryItem
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var records []inventoryItemRecord
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &records); err != nil {
			return nil, err
		}
		for _, rec := range records {
			items = append(items, fromInventoryRecord(rec))
		}

		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *InventoryDynamoRepository) Create(ctx context.Context, item entities.InventoryItem) error {
	av, err := attributevalue.MarshalMap(toInventoryRecord(item))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *InventoryDynamoRepository) Update(ctx context.Context, item entities.InventoryItem) error {
	av, err := attributevalue.MarshalMap(toInventoryRecord(item))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// UpdateStock writes the absolute stock value. Stock math happens in the
// usecase layer so the repository never decides the floor.
func (r *InventoryDynamoRepository) UpdateStock(ctx context.Context, id string, stock int) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #stock = :stock"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":stock": &types.AttributeValueMemberN{Value: strconv.Itoa(stock)},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#stock": "stock"},
			map[string]string{"#id": "id"},
		),
	})
	return err
}

func (r *InventoryDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toInventoryRecord(item entities.InventoryItem) inventoryItemRecord {
	return inventoryItemRecord{
		ID:            item.ID,
		Name:          item.Name,
		PurchasePrice: floatToString(item.PurchasePrice),
		SellingPrice:  floatToString(item.SellingPrice),
		Stock:         item.Stock,
		MinStock:      item.MinStock,
	}
}

func fromInventoryRecord(rec inventoryItemRecord) entities.InventoryItem {
	return entities.InventoryItem{
		ID:            rec.ID,
		Name:          rec.Name,
		PurchasePrice: stringToFloat(rec.PurchasePrice),
		SellingPrice:  stringToFloat(rec.SellingPrice),
		Stock:         rec.Stock,
		MinStock:      rec.MinStock,
	}
}
