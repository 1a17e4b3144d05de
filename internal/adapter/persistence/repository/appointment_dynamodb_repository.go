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

const defaultAppointmentsTableName = "appointments"

type appointmentItem struct {
	ID           string `dynamodbav:"id"`
	ClientName   string `dynamodbav:"client_name"`
	VehicleModel string `dynamodbav:"vehicle_model"`
	VehicleYear  string `dynamodbav:"vehicle_year"`
	VehiclePlate string `dynamodbav:"vehicle_plate"`
	ServiceType  string `dynamodbav:"service_type"`
	Date         string `dynamodbav:"date"`
	Time         string `dynamodbav:"time"`
	Notes        string `dynamodbav:"notes,omitempty"`
	Status       string `dynamodbav:"status"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// AppointmentDynamoRepository persists Appointment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Date and time are stored as the display strings the scheduler works
// with ("2006-01-02" and "15:04"), not as epoch values.

type AppointmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb *dynamodb.Client) *AppointmentDynamoRepository {
	return &AppointmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPOINTMENTS_TABLE", defaultAppointmentsTableName),
	}
}

func (r *AppointmentDynamoRepository) List(ctx context.Context) ([]entities.Appointment, error) {
	var appointments []entities.Appointment
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []appointmentItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			appointments = append(appointments, fromAppointmentItem(it))
		}

		if out.LastEvaluatedKey == nil {
			return appointments, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *AppointmentDynamoRepository) Create(ctx context.Context, a entities.Appointment) error {
	av, err := attributevalue.MarshalMap(toAppointmentItem(a))
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

func (r *AppointmentDynamoRepository) Update(ctx context.Context, a entities.Appointment) error {
	av, err := attributevalue.MarshalMap(toAppointmentItem(a))
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

func (r *AppointmentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#status": "status"},
			map[string]string{"#id": "id"},
		),
	})
	return err
}

func (r *AppointmentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toAppointmentItem(a entities.Appointment) appointmentItem {
	return appointmentItem{
		ID:           a.ID,
		ClientName:   a.ClientName,
		VehicleModel: a.Vehicle.Model,
		VehicleYear:  a.Vehicle.Year,
		VehiclePlate: a.Vehicle.Plate,
		ServiceType:  a.ServiceType,
		Date:         a.Date,
		Time:         a.Time,
		Notes:        a.Notes,
		Status:       string(a.Status),
		CreatedAt:    timeToString(a.CreatedAt),
	}
}

func fromAppointmentItem(it appointmentItem) entities.Appointment {
	return entities.Appointment{
		ID:         it.ID,
		ClientName: it.ClientName,
		Vehicle: entities.VehicleRef{
			Model: it.VehicleModel,
			Year:  it.VehicleYear,
			Plate: it.VehiclePlate,
		},
		ServiceType: it.ServiceType,
		Date:        it.Date,
		Time:        it.Time,
		Notes:       it.Notes,
		Status:      entities.AppointmentStatus(it.Status),
		CreatedAt:   stringToTime(it.CreatedAt),
	}
}
