package interfaces

import (
	"context"
	"time"

	"fanvoyage/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByLeadID(ctx context.Context, leadID string) ([]entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	MarkEmailed(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}
