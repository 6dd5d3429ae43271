package database

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"eprinter/internal/config"
)

// NewAWSConfig builds the SDK config for DynamoDB and S3. Custom
// endpoints are for the local stack (dynamodb-local, MinIO); local
// emulators do not validate credentials but the SDK requires some.
func NewAWSConfig(ctx context.Context, cfg config.AWSConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
}

// NewDynamoDBClient creates the DynamoDB client, pointing at the
// configured local endpoint when one is set.
func NewDynamoDBClient(awsCfg aws.Config, cfg config.AWSConfig) *dynamodb.Client {
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	})
}

// NewS3Client creates the S3 client used for document blobs. Path-style
// addressing is needed for MinIO-style endpoints.
func NewS3Client(awsCfg aws.Config, cfg config.AWSConfig) *s3.Client {
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
