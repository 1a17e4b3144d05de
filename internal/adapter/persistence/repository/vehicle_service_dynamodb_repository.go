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

const defaultVehicleServicesTableName = "vehicle_services"

type vehicleServiceItem struct {
	ID           string `dynamodbav:"id"`
	VehicleID    string `dynamodbav:"vehicle_id"`
	ServiceType  string `dynamodbav:"service_type"`
	Description  string `dynamodbav:"description,omitempty"`
	Notes        string `dynamodbav:"notes,omitempty"`
	ServiceDate  string `dynamodbav:"service_date"`
	Price        string `dynamodbav:"price,omitempty"`
	MechanicName string `dynamodbav:"mechanic_name,omitempty"`
	ClientName   string `dynamodbav:"client_name"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// VehicleServiceDynamoRepository persists the append-only service history
// in DynamoDB. Rows are never updated or deleted.
//
// Table requirements:
//   - PK: id (string)

type VehicleServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVehicleServiceRepository = (*VehicleServiceDynamoRepository)(nil)

func NewVehicleServiceDynamoRepository(ddb *dynamodb.Client) *VehicleServiceDynamoRepository {
	return &VehicleServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VEHICLE_SERVICES_TABLE", defaultVehicleServicesTableName),
	}
}

func (r *VehicleServiceDynamoRepository) List(ctx context.Context) ([]entities.VehicleService, error) {
	var services []entities.VehicleService
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []vehicleServiceItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			services = append(services, fromVehicleServiceItem(it))
		}

		if out.LastEvaluatedKey == nil {
			return services, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *VehicleServiceDynamoRepository) Create(ctx context.Context, vs entities.VehicleService) error {
	av, err := attributevalue.MarshalMap(toVehicleServiceItem(vs))
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

func toVehicleServiceItem(vs entities.VehicleService) vehicleServiceItem {
	it := vehicleServiceItem{
		ID:           vs.ID,
		VehicleID:    vs.VehicleID,
		ServiceType:  vs.ServiceType,
		Description:  vs.Description,
		Notes:        vs.Notes,
		ServiceDate:  timeToString(vs.ServiceDate),
		MechanicName: vs.MechanicName,
		ClientName:   vs.ClientName,
		CreatedAt:    timeToString(vs.CreatedAt),
	}
	if vs.Price != 0 {
		it.Price = floatToString(vs.Price)
	}
	return it
}

func fromVehicleServiceItem(it vehicleServiceItem) entities.VehicleService {
	vs := entities.VehicleService{
		ID:           it.ID,
		VehicleID:    it.VehicleID,
		ServiceType:  it.ServiceType,
		Description:  it.Description,
		Notes:        it.Notes,
		ServiceDate:  stringToTime(it.ServiceDate),
		MechanicName: it.MechanicName,
		ClientName:   it.ClientName,
		CreatedAt:    stringToTime(it.CreatedAt),
	}
	if it.Price != "" {
		vs.Price = stringToFloat(it.Price)
	}
	return vs
}
