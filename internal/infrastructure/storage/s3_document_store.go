package storage

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"eprinter/internal/usecase/interfaces"
)

// S3DocumentStore keeps uploaded document blobs in an S3 bucket, keyed
// by the storage key recorded on the document metadata.

type S3DocumentStore struct {
	client *s3.Client
	bucket string
}

var _ interfaces.IDocumentStore = (*S3DocumentStore)(nil)

func NewS3DocumentStore(client *s3.Client, bucket string) *S3DocumentStore {
	return &S3DocumentStore{client: client, bucket: bucket}
}

func (s *S3DocumentStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	return err
}

func (s *S3DocumentStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
