package interfaces

import (
	"context"

	"eprinter/internal/domain/entities"
)

// IDocumentRepository abstracts DynamoDB persistence for Document metadata.

type IDocumentRepository interface {
	Create(ctx context.Context, d entities.Document) (entities.Document, error)
	GetByID(ctx context.Context, id string) (entities.Document, error)
}
