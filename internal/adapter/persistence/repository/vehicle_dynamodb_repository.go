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

const defaultVehiclesTableName = "vehicles"

type vehicleItem struct {
	Plate     string `dynamodbav:"plate"`
	ID        string `dynamodbav:"id"`
	Model     string `dynamodbav:"model"`
	Year      string `dynamodbav:"year"`
	CreatedAt string `dynamodbav:"created_at"`
}

// VehicleDynamoRepository persists Vehicle entities in DynamoDB.
//
// Table requirements:
//   - PK: plate (string)
//
// We purposely use the license plate as PK: it is the natural identity of
// a vehicle, guarantees one row per car, and makes the get-or-create path
// a single GetItem.

type VehicleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
	}
}

func (r *VehicleDynamoRepository) List(ctx context.Context) ([]entities.Vehicle, error) {
	var vehicles []entities.Vehicle
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []vehicleItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			vehicles = append(vehicles, fromVehicleItem(it))
		}

		if out.LastEvaluatedKey == nil {
			return vehicles, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *VehicleDynamoRepository) GetByPlate(ctx context.Context, plate string) (entities.Vehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"plate": &types.AttributeValueMemberS{Value: plate},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.Vehicle) error {
	av, err := attributevalue.MarshalMap(toVehicleItem(v))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#plate)"),
		ExpressionAttributeNames: map[string]string{
			"#plate": "plate",
		},
	})
	return err
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	return vehicleItem{
		Plate:     v.Plate,
		ID:        v.ID,
		Model:     v.Model,
		Year:      v.Year,
		CreatedAt: timeToString(v.CreatedAt),
	}
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	return entities.Vehicle{
		ID:        it.ID,
		Plate:     it.Plate,
		Model:     it.Model,
		Year:      it.Year,
		CreatedAt: stringToTime(it.CreatedAt),
	}
}
