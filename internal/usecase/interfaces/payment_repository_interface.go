package interfaces

import (
	"context"

	"eprinter/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error)
}
