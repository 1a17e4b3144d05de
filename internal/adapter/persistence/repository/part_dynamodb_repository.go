package repository

import (
	"context"

	"oficina_prime/internal/domain/entities"
	"oficina_prime/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPartsTableName  = "service_order_parts"
	partsByServiceOrderGSI = "service_order_id-index"
	partsBatchMaxSize      = 25
)

type partItem struct {
	ID              string `dynamodbav:"id"`
	ServiceOrderID  string `dynamodbav:"service_order_id"`
	Name            string `dynamodbav:"name"`
	Price           string `dynamodbav:"price"`
	Quantity        int    `dynamodbav:"quantity"`
	InventoryItemID string `dynamodbav:"inventory_item_id,omitempty"`
}

// PartDynamoRepository persists part lines of service orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI service_order_id-index: PK service_order_id (string)
//
// Part lines are immutable once written; edits to an order replace its
// whole part set (delete by order, then create the new lines).

type PartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPartRepository = (*PartDynamoRepository)(nil)

func NewPartDynamoRepository(ddb *dynamodb.Client) *PartDynamoRepository {
	return &PartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_ORDER_PARTS_TABLE", defaultPartsTableName),
	}
}

func (r *PartDynamoRepository) List(ctx context.Context) ([]entities.Part, error) {
	var parts []entities.Part
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []partItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			parts = append(parts, fromPartItem(it))
		}

		if out.LastEvaluatedKey == nil {
			return parts, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *PartDynamoRepository) CreateMany(ctx context.Context, parts []entities.Part) error {
	if len(parts) == 0 {
		return nil
	}

	writes := make([]types.WriteRequest, 0, len(parts))
	for _, p := range parts {
		av, err := attributevalue.MarshalMap(toPartItem(p))
		if err != nil {
			return err
		}
		writes = append(writes, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: av},
		})
	}

	for start := 0; start < len(writes); start += partsBatchMaxSize {
		end := start + partsBatchMaxSize
		if end > len(writes) {
			end = len(writes)
		}
		_, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				r.tableName: writes[start:end],
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *PartDynamoRepository) DeleteByServiceOrderID(ctx context.Context, serviceOrderID string) error {
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(partsByServiceOrderGSI),
			KeyConditionExpression: aws.String("#so = :so"),
			ExpressionAttributeNames: map[string]string{
				"#so": "service_order_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":so": &types.AttributeValueMemberS{Value: serviceOrderID},
			},
			ProjectionExpression: aws.String("id"),
			ExclusiveStartKey:    startKey,
		})
		if err != nil {
			return err
		}

		for _, item := range out.Items {
			var it partItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return err
			}
			_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: it.ID},
				},
			})
			if err != nil {
				return err
			}
		}

		if out.LastEvaluatedKey == nil {
			return nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toPartItem(p entities.Part) partItem {
	return partItem{
		ID:              p.ID,
		ServiceOrderID:  p.ServiceOrderID,
		Name:            p.Name,
		Price:           floatToString(p.Price),
		Quantity:        p.Quantity,
		InventoryItemID: p.InventoryItemID,
	}
}

func fromPartItem(it partItem) entities.Part {
	return entities.Part{
		ID:              it.ID,
		ServiceOrderID:  it.ServiceOrderID,
		Name:            it.Name,
		Price:           stringToFloat(it.Price),
		Quantity:        it.Quantity,
		InventoryItemID: it.InventoryItemID,
	}
}
