package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"eprinter/internal/domain/entities"
)

const defaultAdminsTableName = "admins"

type adminItem struct {
	Email        string `dynamodbav:"email"`
	PasswordHash string `dynamodbav:"password_hash"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// AdminDynamoRepository stores operator accounts keyed by email.

type AdminDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

func NewAdminDynamoRepository(ddb *dynamodb.Client) *AdminDynamoRepository {
	return &AdminDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ADMINS_TABLE", defaultAdminsTableName),
	}
}

// EnsureAdmin creates the account if it does not exist yet. Returns
// true when the account was created, false when it was already there.
func (r *AdminDynamoRepository) EnsureAdmin(ctx context.Context, a entities.Admin) (bool, error) {
	av, err := attributevalue.MarshalMap(adminItem{
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#email)"),
		ExpressionAttributeNames: map[string]string{
			"#email": "email",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
