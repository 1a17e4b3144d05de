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

const defaultExpensesTableName = "expenses"

type expenseItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Amount      string `dynamodbav:"amount"`
	Date        string `dynamodbav:"date"`
	Category    string `dynamodbav:"category"`
}

// ExpenseDynamoRepository persists Expense entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ExpenseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IExpenseRepository = (*ExpenseDynamoRepository)(nil)

func NewExpenseDynamoRepository(ddb *dynamodb.Client) *ExpenseDynamoRepository {
	return &ExpenseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EXPENSES_TABLE", defaultExpensesTableName),
	}
}

func (r *ExpenseDynamoRepository) List(ctx context.Context) ([]entities.Expense, error) {
	var expenses []entities.Expense
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []expenseItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			expenses = append(expenses, fromExpenseItem(it))
		}

		if out.LastEvaluatedKey == nil {
			return expenses, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *ExpenseDynamoRepository) Create(ctx context.Context, e entities.Expense) error {
	av, err := attributevalue.MarshalMap(toExpenseItem(e))
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

func (r *ExpenseDynamoRepository) Update(ctx context.Context, e entities.Expense) error {
	av, err := attributevalue.MarshalMap(toExpenseItem(e))
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

func (r *ExpenseDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toExpenseItem(e entities.Expense) expenseItem {
	return expenseItem{
		ID:          e.ID,
		Description: e.Description,
		Amount:      floatToString(e.Amount),
		Date:        timeToString(e.Date),
		Category:    e.Category,
	}
}

func fromExpenseItem(it expenseItem) entities.Expense {
	return entities.Expense{
		ID:          it.ID,
		Description: it.Description,
		Amount:      stringToFloat(it.Amount),
		Date:        stringToTime(it.Date),
		Category:    it.Category,
	}
}
