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

const defaultServiceOrdersTableName = "service_orders"

type serviceOrderItem struct {
	ID           string `dynamodbav:"id"`
	ClientName   string `dynamodbav:"client_name"`
	VehicleModel string `dynamodbav:"vehicle_model"`
	VehicleYear  string `dynamodbav:"vehicle_year"`
	VehiclePlate string `dynamodbav:"vehicle_plate"`
	ServiceType  string `dynamodbav:"service_type"`
	LaborCost    string `dynamodbav:"labor_cost"`
	Total        string `dynamodbav:"total"`
	Status       string `dynamodbav:"status"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
	CompletedAt  string `dynamodbav:"completed_at,omitempty"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Parts are a separate table (see PartDynamoRepository); the order row
// never embeds its part lines.

type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	var orders []entities.ServiceOrder
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []serviceOrderItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			orders = append(orders, fromServiceOrderItem(it))
		}

		if out.LastEvaluatedKey == nil {
			return orders, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) error {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
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

func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, o entities.ServiceOrder) error {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
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

func (r *ServiceOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	it := serviceOrderItem{
		ID:           o.ID,
		ClientName:   o.ClientName,
		VehicleModel: o.Vehicle.Model,
		VehicleYear:  o.Vehicle.Year,
		VehiclePlate: o.Vehicle.Plate,
		ServiceType:  o.ServiceType,
		LaborCost:    floatToString(o.LaborCost),
		Total:        floatToString(o.Total),
		Status:       string(o.Status),
		CreatedAt:    timeToString(o.CreatedAt),
		UpdatedAt:    timeToString(o.UpdatedAt),
	}
	if o.CompletedAt != nil {
		it.CompletedAt = timeToString(*o.CompletedAt)
	}
	return it
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	o := entities.ServiceOrder{
		ID:         it.ID,
		ClientName: it.ClientName,
		Vehicle: entities.VehicleRef{
			Model: it.VehicleModel,
			Year:  it.VehicleYear,
			Plate: it.VehiclePlate,
		},
		ServiceType: it.ServiceType,
		LaborCost:   stringToFloat(it.LaborCost),
		Total:       stringToFloat(it.Total),
		Status:      entities.ServiceOrderStatus(it.Status),
		CreatedAt:   stringToTime(it.CreatedAt),
		UpdatedAt:   stringToTime(it.UpdatedAt),
	}
	if it.CompletedAt != "" {
		completedAt := stringToTime(it.CompletedAt)
		o.CompletedAt = &completedAt
	}
	return o
}
