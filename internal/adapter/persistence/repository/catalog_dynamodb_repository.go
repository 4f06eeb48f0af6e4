package repository

import (
	"context"
	"time"

	"fanvoyage/internal/domain/entities"
	"fanvoyage/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEventsTableName        = "events"
	defaultPackagesTableName      = "packages"
	defaultAddOnsTableName        = "addons"
	defaultItineraryDaysTableName = "itinerary_days"
)

type eventItem struct {
	ID           string `dynamodbav:"id"`
	Title        string `dynamodbav:"title"`
	Location     string `dynamodbav:"location,omitempty"`
	StartDate    string `dynamodbav:"start_date"`
	EndDate      string `dynamodbav:"end_date"`
	SeasonMonths []int  `dynamodbav:"season_months,omitempty"`
	IsWeekend    *bool  `dynamodbav:"is_weekend,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

type packageItem struct {
	ID              string `dynamodbav:"id"`
	EventID         string `dynamodbav:"event_id"`
	Title           string `dynamodbav:"title"`
	BasePrice       string `dynamodbav:"base_price"`
	MinCapacity     int    `dynamodbav:"min_capacity"`
	MaxCapacity     int    `dynamodbav:"max_capacity"`
	EarlyBirdCutoff string `dynamodbav:"early_bird_cutoff,omitempty"`
	Currency        string `dynamodbav:"currency"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

type addOnItem struct {
	ID      string `dynamodbav:"id"`
	EventID string `dynamodbav:"event_id"`
	Title   string `dynamodbav:"title"`
	Price   string `dynamodbav:"price"`
}

type itineraryDayItem struct {
	ID        string `dynamodbav:"id"`
	PackageID string `dynamodbav:"package_id"`
	Title     string `dynamodbav:"title"`
	DayNumber int    `dynamodbav:"day_number"`
	BasePrice string `dynamodbav:"base_price,omitempty"`
}

// EventDynamoRepository reads Event entities from DynamoDB (PK: id).
type EventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEventRepository = (*EventDynamoRepository)(nil)

func NewEventDynamoRepository(ddb *dynamodb.Client, tableName string) *EventDynamoRepository {
	if tableName == "" {
		tableName = defaultEventsTableName
	}
	return &EventDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *EventDynamoRepository) GetByID(ctx context.Context, id string) (entities.Event, error) {
	item, err := getItemByID(ctx, r.ddb, r.tableName, id)
	if err != nil || item == nil {
		return entities.Event{}, err
	}

	var it eventItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Event{}, err
	}

	months := make([]time.Month, 0, len(it.SeasonMonths))
	for _, m := range it.SeasonMonths {
		months = append(months, time.Month(m))
	}
	return entities.Event{
		ID:           it.ID,
		Title:        it.Title,
		Location:     it.Location,
		StartDate:    stringToTime(it.StartDate),
		EndDate:      stringToTime(it.EndDate),
		SeasonMonths: months,
		IsWeekend:    it.IsWeekend,
		CreatedAt:    stringToTime(it.CreatedAt),
		UpdatedAt:    stringToTime(it.UpdatedAt),
	}, nil
}

// PackageDynamoRepository reads TravelPackage entities from DynamoDB (PK: id).
type PackageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPackageRepository = (*PackageDynamoRepository)(nil)

func NewPackageDynamoRepository(ddb *dynamodb.Client, tableName string) *PackageDynamoRepository {
	if tableName == "" {
		tableName = defaultPackagesTableName
	}
	return &PackageDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PackageDynamoRepository) GetByID(ctx context.Context, id string) (entities.TravelPackage, error) {
	item, err := getItemByID(ctx, r.ddb, r.tableName, id)
	if err != nil || item == nil {
		return entities.TravelPackage{}, err
	}

	var it packageItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.TravelPackage{}, err
	}
	return entities.TravelPackage{
		ID:              it.ID,
		EventID:         it.EventID,
		Title:           it.Title,
		BasePrice:       stringToFloat(it.BasePrice),
		MinCapacity:     it.MinCapacity,
		MaxCapacity:     it.MaxCapacity,
		EarlyBirdCutoff: stringToTimePtr(it.EarlyBirdCutoff),
		Currency:        it.Currency,
		CreatedAt:       stringToTime(it.CreatedAt),
		UpdatedAt:       stringToTime(it.UpdatedAt),
	}, nil
}

// AddOnDynamoRepository reads AddOn entities from DynamoDB (PK: id).
type AddOnDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAddOnRepository = (*AddOnDynamoRepository)(nil)

func NewAddOnDynamoRepository(ddb *dynamodb.Client, tableName string) *AddOnDynamoRepository {
	if tableName == "" {
		tableName = defaultAddOnsTableName
	}
	return &AddOnDynamoRepository{ddb: ddb, tableName: tableName}
}

// ListByIDs resolves each id with a point read and skips unknown ids.
func (r *AddOnDynamoRepository) ListByIDs(ctx context.Context, ids []string) ([]entities.AddOn, error) {
	out := make([]entities.AddOn, 0, len(ids))
	for _, id := range ids {
		item, err := getItemByID(ctx, r.ddb, r.tableName, id)
		if err != nil {
			return nil, err
		}
		if item == nil {
			continue
		}
		var it addOnItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, entities.AddOn{
			ID:      it.ID,
			EventID: it.EventID,
			Title:   it.Title,
			Price:   stringToFloat(it.Price),
		})
	}
	return out, nil
}

// ItineraryDynamoRepository reads ItineraryDay entities from DynamoDB (PK: id).
type ItineraryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IItineraryRepository = (*ItineraryDynamoRepository)(nil)

func NewItineraryDynamoRepository(ddb *dynamodb.Client, tableName string) *ItineraryDynamoRepository {
	if tableName == "" {
		tableName = defaultItineraryDaysTableName
	}
	return &ItineraryDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ItineraryDynamoRepository) ListByIDs(ctx context.Context, ids []string) ([]entities.ItineraryDay, error) {
	out := make([]entities.ItineraryDay, 0, len(ids))
	for _, id := range ids {
		item, err := getItemByID(ctx, r.ddb, r.tableName, id)
		if err != nil {
			return nil, err
		}
		if item == nil {
			continue
		}
		var it itineraryDayItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, entities.ItineraryDay{
			ID:        it.ID,
			PackageID: it.PackageID,
			Title:     it.Title,
			DayNumber: it.DayNumber,
			BasePrice: stringToFloat(it.BasePrice),
		})
	}
	return out, nil
}

func getItemByID(ctx context.Context, ddb *dynamodb.Client, tableName, id string) (map[string]types.AttributeValue, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}
