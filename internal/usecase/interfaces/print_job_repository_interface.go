package interfaces

import (
	"context"

	"eprinter/internal/domain/entities"
)

// IPrintJobRepository abstracts DynamoDB persistence for PrintJob.
//
// The service must be able to:
//   - create a job at submission time with its authoritative cost
//   - fetch a job by id, and list the admin queue by status
//   - transition status with a conditional write so concurrent admins
//     cannot double-advance a job

type IPrintJobRepository interface {
	Create(ctx context.Context, job entities.PrintJob) (entities.PrintJob, error)
	GetByID(ctx context.Context, id string) (entities.PrintJob, error)
	ListByStatus(ctx context.Context, status entities.PrintJobStatus) ([]entities.PrintJob, error)
	TransitionStatus(ctx context.Context, id string, from, to entities.PrintJobStatus) (entities.PrintJob, error)
}
