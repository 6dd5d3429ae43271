package interfaces

import (
	"context"

	"eprinter/internal/domain/entities"
)

// ISettingsRepository abstracts DynamoDB persistence for the single
// service Settings record.

type ISettingsRepository interface {
	Get(ctx context.Context) (entities.Settings, error)
	Put(ctx context.Context, s entities.Settings) (entities.Settings, error)
}
