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

const (
	defaultSettingsTableName = "settings"
	settingsItemID           = "current"
)

type settingsItem struct {
	ID                   string   `dynamodbav:"id"`
	PriceMonochrome      string   `dynamodbav:"price_monochrome"`
	PriceColor           string   `dynamodbav:"price_color"`
	Currency             string   `dynamodbav:"currency"`
	MaxCopies            int      `dynamodbav:"max_copies"`
	MaxFileSizeBytes     int64    `dynamodbav:"max_file_size_bytes"`
	AcceptedContentTypes []string `dynamodbav:"accepted_content_types"`
	OpenHour             int      `dynamodbav:"open_hour"`
	CloseHour            int      `dynamodbav:"close_hour"`
	UpdatedAt            string   `dynamodbav:"updated_at"`
}

// SettingsDynamoRepository stores the shop configuration as a single
// DynamoDB item with a fixed id. A PUT replaces it wholesale; a missing
// item comes back as a zero Settings, which callers treat as
// uninitialized.

type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

func (r *SettingsDynamoRepository) Get(ctx context.Context) (entities.Settings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: settingsItemID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Settings{}, err
	}
	if len(out.Item) == 0 {
		return entities.Settings{}, nil
	}

	var it settingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Settings{}, err
	}
	return fromSettingsItem(it), nil
}

func (r *SettingsDynamoRepository) Put(ctx context.Context, s entities.Settings) (entities.Settings, error) {
	av, err := attributevalue.MarshalMap(toSettingsItem(s))
	if err != nil {
		return entities.Settings{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Settings{}, err
	}
	return s, nil
}

func toSettingsItem(s entities.Settings) settingsItem {
	return settingsItem{
		ID:                   settingsItemID,
		PriceMonochrome:      s.PriceMonochrome.String(),
		PriceColor:           s.PriceColor.String(),
		Currency:             s.Currency,
		MaxCopies:            s.MaxCopies,
		MaxFileSizeBytes:     s.MaxFileSizeBytes,
		AcceptedContentTypes: s.AcceptedContentTypes,
		OpenHour:             s.OpenHour,
		CloseHour:            s.CloseHour,
		UpdatedAt:            s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSettingsItem(it settingsItem) entities.Settings {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Settings{
		PriceMonochrome:      decimalFromString(it.PriceMonochrome),
		PriceColor:           decimalFromString(it.PriceColor),
		Currency:             it.Currency,
		MaxCopies:            it.MaxCopies,
		MaxFileSizeBytes:     it.MaxFileSizeBytes,
		AcceptedContentTypes: it.AcceptedContentTypes,
		OpenHour:             it.OpenHour,
		CloseHour:            it.CloseHour,
		UpdatedAt:            updatedAt,
	}
}
