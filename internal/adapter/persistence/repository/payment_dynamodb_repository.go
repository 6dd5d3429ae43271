package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"eprinter/internal/domain/entities"
	"eprinter/internal/usecase/interfaces"
)

const (
	defaultPaymentsTableName = "payments"
	paymentJobIDIndexName    = "job_id-index"
)

type paymentItem struct {
	ID      string `dynamodbav:"id"`
	JobID   string `dynamodbav:"job_id"`
	OrderID string `dynamodbav:"order_id"`
	Amount  string `dynamodbav:"amount"`
	Date    string `dynamodbav:"date"`
	Status  string `dynamodbav:"status"`

	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (provider payment id, string)
//   - GSI job_id-index: PK job_id (string)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentJobIDIndexName),
		KeyConditionExpression: aws.String("#job_id = :job_id"),
		ExpressionAttributeNames: map[string]string{
			"#job_id": "job_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":job_id": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	var items []paymentItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(items))
	for _, it := range items {
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                 p.ID,
		JobID:              p.JobID,
		OrderID:            p.OrderID,
		Amount:             p.Amount.String(),
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	p := entities.Payment{
		ID:      it.ID,
		JobID:   it.JobID,
		OrderID: it.OrderID,
		Amount:  decimalFromString(it.Amount),
		Date:    date,
		Status:  entities.PaymentStatus(it.Status),
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = json.RawMessage(it.ProviderPayloadRaw)
		var parsed map[string]interface{}
		if err := json.Unmarshal(p.ProviderPayloadRaw, &parsed); err == nil {
			p.ProviderPayload = parsed
		}
	}
	return p
}
