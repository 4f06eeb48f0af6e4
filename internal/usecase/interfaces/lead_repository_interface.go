package interfaces

import (
	"context"

	"fanvoyage/internal/domain/entities"
)

// ILeadRepository abstracts DynamoDB persistence for Lead.
//
// Update persists the full lead snapshot including status history and score;
// the use case owns the merge and transition rules.
type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	Update(ctx context.Context, l entities.Lead) (entities.Lead, error)
}
