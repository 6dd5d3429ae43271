package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	"eprinter/internal/domain/entities"
	"eprinter/internal/printcalc"
	"eprinter/internal/usecase/interfaces"
)

const (
	defaultPrintJobsTableName = "print_jobs"
	printJobStatusIndexName   = "status-index"
)

type printJobItem struct {
	ID          string `dynamodbav:"id"`
	DocumentID  string `dynamodbav:"document_id"`
	PickupCode  string `dynamodbav:"pickup_code"`
	Expression  string `dynamodbav:"expression"`
	TotalPages  int    `dynamodbav:"total_pages"`
	Pages       []int  `dynamodbav:"pages"`
	Copies      int    `dynamodbav:"copies"`
	Mode        string `dynamodbav:"mode"`
	PaperSize   string `dynamodbav:"paper_size"`
	Orientation string `dynamodbav:"orientation"`
	Duplex      bool   `dynamodbav:"duplex"`

	Impressions  int    `dynamodbav:"impressions"`
	UnitPrice    string `dynamodbav:"unit_price"`
	TotalCost    string `dynamodbav:"total_cost"`
	Currency     string `dynamodbav:"currency"`
	PriceChanged bool   `dynamodbav:"price_changed"`

	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PrintJobDynamoRepository persists PrintJob entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI status-index: PK status (string)
//
// Money fields are stored as decimal strings so the persisted value is
// exactly the computed one.

type PrintJobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPrintJobRepository = (*PrintJobDynamoRepository)(nil)

func NewPrintJobDynamoRepository(ddb *dynamodb.Client) *PrintJobDynamoRepository {
	return &PrintJobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRINT_JOBS_TABLE", defaultPrintJobsTableName),
	}
}

func (r *PrintJobDynamoRepository) Create(ctx context.Context, job entities.PrintJob) (entities.PrintJob, error) {
	av, err := attributevalue.MarshalMap(toPrintJobItem(job))
	if err != nil {
		return entities.PrintJob{}, err
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
		return entities.PrintJob{}, err
	}
	return job, nil
}

func (r *PrintJobDynamoRepository) GetByID(ctx context.Context, id string) (entities.PrintJob, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PrintJob{}, err
	}
	if len(out.Item) == 0 {
		return entities.PrintJob{}, nil
	}

	var it printJobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PrintJob{}, err
	}
	return fromPrintJobItem(it), nil
}

func (r *PrintJobDynamoRepository) ListByStatus(ctx context.Context, status entities.PrintJobStatus) ([]entities.PrintJob, error) {
	var jobs []entities.PrintJob
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(printJobStatusIndexName),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []printJobItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			jobs = append(jobs, fromPrintJobItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return jobs, nil
}

// TransitionStatus moves a job from one status to another with a
// conditional update; a concurrent transition loses the condition and
// yields an empty job, which the usecase maps to a conflict.
func (r *PrintJobDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.PrintJobStatus) (entities.PrintJob, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PrintJob{}, nil
		}
		return entities.PrintJob{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PrintJob{}, nil
	}

	var it printJobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PrintJob{}, err
	}
	return fromPrintJobItem(it), nil
}

func toPrintJobItem(j entities.PrintJob) printJobItem {
	return printJobItem{
		ID:           j.ID,
		DocumentID:   j.DocumentID,
		PickupCode:   j.PickupCode,
		Expression:   j.Expression,
		TotalPages:   j.TotalPages,
		Pages:        j.Pages,
		Copies:       j.Copies,
		Mode:         string(j.Mode),
		PaperSize:    string(j.PaperSize),
		Orientation:  string(j.Orientation),
		Duplex:       j.Duplex,
		Impressions:  j.Impressions,
		UnitPrice:    j.UnitPrice.String(),
		TotalCost:    j.TotalCost.String(),
		Currency:     j.Currency,
		PriceChanged: j.PriceChanged,
		Status:       string(j.Status),
		CreatedAt:    j.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    j.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPrintJobItem(it printJobItem) entities.PrintJob {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.PrintJob{
		ID:           it.ID,
		DocumentID:   it.DocumentID,
		PickupCode:   it.PickupCode,
		Expression:   it.Expression,
		TotalPages:   it.TotalPages,
		Pages:        it.Pages,
		Copies:       it.Copies,
		Mode:         printcalc.Mode(it.Mode),
		PaperSize:    printcalc.PaperSize(it.PaperSize),
		Orientation:  printcalc.Orientation(it.Orientation),
		Duplex:       it.Duplex,
		Impressions:  it.Impressions,
		UnitPrice:    decimalFromString(it.UnitPrice),
		TotalCost:    decimalFromString(it.TotalCost),
		Currency:     it.Currency,
		PriceChanged: it.PriceChanged,
		Status:       entities.PrintJobStatus(it.Status),
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

func decimalFromString(s string) decimal.Decimal {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
