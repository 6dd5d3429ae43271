package interfaces

import (
	"context"
	"io"
)

// IDocumentStore abstracts blob storage (S3) for uploaded documents.
type IDocumentStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
}

// IDocumentInspector inspects an uploaded file on local disk: content
// type by magic bytes and the authoritative page count.
type IDocumentInspector interface {
	Inspect(ctx context.Context, path string) (contentType string, pageCount int, err error)
}
