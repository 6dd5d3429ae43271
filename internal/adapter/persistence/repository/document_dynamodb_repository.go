package repository

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"eprinter/internal/domain/entities"
	"eprinter/internal/usecase/interfaces"
)

const defaultDocumentsTableName = "documents"

type documentItem struct {
	ID          string `dynamodbav:"id"`
	FileName    string `dynamodbav:"file_name"`
	ContentType string `dynamodbav:"content_type"`
	SizeBytes   int64  `dynamodbav:"size_bytes"`
	PageCount   int    `dynamodbav:"page_count"`
	StorageKey  string `dynamodbav:"storage_key"`
	UploadedAt  string `dynamodbav:"uploaded_at"`
}

// DocumentDynamoRepository persists Document metadata in DynamoDB; the
// blob itself lives in object storage under StorageKey.
//
// Table requirements:
//   - PK: id (string)

type DocumentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDocumentRepository = (*DocumentDynamoRepository)(nil)

func NewDocumentDynamoRepository(ddb *dynamodb.Client) *DocumentDynamoRepository {
	return &DocumentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOCUMENTS_TABLE", defaultDocumentsTableName),
	}
}

func (r *DocumentDynamoRepository) Create(ctx context.Context, d entities.Document) (entities.Document, error) {
	av, err := attributevalue.MarshalMap(toDocumentItem(d))
	if err != nil {
		return entities.Document{}, err
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
		return entities.Document{}, err
	}
	return d, nil
}

func (r *DocumentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Document, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Document{}, err
	}
	if len(out.Item) == 0 {
		return entities.Document{}, nil
	}

	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Document{}, err
	}
	return fromDocumentItem(it), nil
}

func toDocumentItem(d entities.Document) documentItem {
	return documentItem{
		ID:          d.ID,
		FileName:    d.FileName,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		PageCount:   d.PageCount,
		StorageKey:  d.StorageKey,
		UploadedAt:  d.UploadedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDocumentItem(it documentItem) entities.Document {
	uploadedAt, _ := time.Parse(time.RFC3339Nano, it.UploadedAt)
	return entities.Document{
		ID:          it.ID,
		FileName:    it.FileName,
		ContentType: it.ContentType,
		SizeBytes:   it.SizeBytes,
		PageCount:   it.PageCount,
		StorageKey:  it.StorageKey,
		UploadedAt:  uploadedAt,
	}
}
