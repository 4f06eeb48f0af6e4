package interfaces

import (
	"context"

	"fanvoyage/internal/domain/entities"
)

// IEventRepository abstracts DynamoDB persistence for Event.
type IEventRepository interface {
	GetByID(ctx context.Context, id string) (entities.Event, error)
}

// IPackageRepository abstracts DynamoDB persistence for TravelPackage.
type IPackageRepository interface {
	GetByID(ctx context.Context, id string) (entities.TravelPackage, error)
}

// IAddOnRepository abstracts DynamoDB persistence for AddOn.
//
// ListByIDs resolves the requested ids and silently skips unknown ones; the
// caller sums whatever resolved.
type IAddOnRepository interface {
	ListByIDs(ctx context.Context, ids []string) ([]entities.AddOn, error)
}

// IItineraryRepository abstracts DynamoDB persistence for ItineraryDay.
type IItineraryRepository interface {
	ListByIDs(ctx context.Context, ids []string) ([]entities.ItineraryDay, error)
}
