package repository

import (
	"context"
	"errors"
	"time"

	"fanvoyage/internal/domain/entities"
	"fanvoyage/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesLeadIDIndex      = "lead_id-index"
)

type quoteItem struct {
	ID              string   `dynamodbav:"id"`
	LeadID          string   `dynamodbav:"lead_id"`
	EventID         string   `dynamodbav:"event_id"`
	PackageID       string   `dynamodbav:"package_id"`
	AddOnIDs        []string `dynamodbav:"addon_ids,omitempty"`
	ItineraryDayIDs []string `dynamodbav:"itinerary_day_ids,omitempty"`
	Travelers       int      `dynamodbav:"travelers"`

	TravelStart string `dynamodbav:"travel_start"`
	TravelEnd   string `dynamodbav:"travel_end"`

	BasePrice        string `dynamodbav:"base_price"`
	SeasonalRate     string `dynamodbav:"seasonal_rate"`
	SeasonalAmount   string `dynamodbav:"seasonal_amount"`
	EarlyBirdRate    string `dynamodbav:"early_bird_rate"`
	EarlyBirdAmount  string `dynamodbav:"early_bird_amount"`
	LastMinuteRate   string `dynamodbav:"last_minute_rate"`
	LastMinuteAmount string `dynamodbav:"last_minute_amount"`
	GroupRate        string `dynamodbav:"group_rate"`
	GroupAmount      string `dynamodbav:"group_amount"`
	WeekendRate      string `dynamodbav:"weekend_rate"`
	WeekendAmount    string `dynamodbav:"weekend_amount"`

	AddOnsTotal      string `dynamodbav:"addons_total"`
	ItinerariesTotal string `dynamodbav:"itineraries_total"`
	Subtotal         string `dynamodbav:"subtotal"`
	FinalPrice       string `dynamodbav:"final_price"`

	DaysUntilEvent   int    `dynamodbav:"days_until_event"`
	IncludesWeekend  bool   `dynamodbav:"includes_weekend"`
	CalculationNotes string `dynamodbav:"calculation_notes,omitempty"`
	Notes            string `dynamodbav:"notes,omitempty"`
	Currency         string `dynamodbav:"currency"`

	Status    string `dynamodbav:"status"`
	ExpiresAt string `dynamodbav:"expires_at"`
	EmailedAt string `dynamodbav:"emailed_at,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: lead_id-index (PK: lead_id)
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteDynamoRepository {
	if tableName == "" {
		tableName = defaultQuotesTableName
	}
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByLeadID(ctx context.Context, leadID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesLeadIDIndex),
		KeyConditionExpression: aws.String("lead_id = :lid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: leadID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuoteItem(it))
	}
	return items, nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) MarkEmailed(ctx context.Context, id string, at time.Time) error {
	_, err := r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #emailed_at = :emailed_at, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":emailed_at": &types.AttributeValueMemberS{Value: timeToString(at)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#emailed_at": "emailed_at",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	return err
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Quote, error) {
	now := timeToString(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:              q.ID,
		LeadID:          q.LeadID,
		EventID:         q.EventID,
		PackageID:       q.PackageID,
		AddOnIDs:        q.AddOnIDs,
		ItineraryDayIDs: q.ItineraryDayIDs,
		Travelers:       q.Travelers,

		TravelStart: timeToString(q.TravelStart),
		TravelEnd:   timeToString(q.TravelEnd),

		BasePrice:        floatToString(q.BasePrice),
		SeasonalRate:     floatToString(q.SeasonalRate),
		SeasonalAmount:   floatToString(q.SeasonalAmount),
		EarlyBirdRate:    floatToString(q.EarlyBirdRate),
		EarlyBirdAmount:  floatToString(q.EarlyBirdAmount),
		LastMinuteRate:   floatToString(q.LastMinuteRate),
		LastMinuteAmount: floatToString(q.LastMinuteAmount),
		GroupRate:        floatToString(q.GroupRate),
		GroupAmount:      floatToString(q.GroupAmount),
		WeekendRate:      floatToString(q.WeekendRate),
		WeekendAmount:    floatToString(q.WeekendAmount),

		AddOnsTotal:      floatToString(q.AddOnsTotal),
		ItinerariesTotal: floatToString(q.ItinerariesTotal),
		Subtotal:         floatToString(q.Subtotal),
		FinalPrice:       floatToString(q.FinalPrice),

		DaysUntilEvent:   q.DaysUntilEvent,
		IncludesWeekend:  q.IncludesWeekend,
		CalculationNotes: q.CalculationNotes,
		Notes:            q.Notes,
		Currency:         q.Currency,

		Status:    string(q.Status),
		ExpiresAt: timeToString(q.ExpiresAt),
		EmailedAt: timePtrToString(q.EmailedAt),
		CreatedAt: timeToString(q.CreatedAt),
		UpdatedAt: timeToString(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:              it.ID,
		LeadID:          it.LeadID,
		EventID:         it.EventID,
		PackageID:       it.PackageID,
		AddOnIDs:        it.AddOnIDs,
		ItineraryDayIDs: it.ItineraryDayIDs,
		Travelers:       it.Travelers,

		TravelStart: stringToTime(it.TravelStart),
		TravelEnd:   stringToTime(it.TravelEnd),

		BasePrice:        stringToFloat(it.BasePrice),
		SeasonalRate:     stringToFloat(it.SeasonalRate),
		SeasonalAmount:   stringToFloat(it.SeasonalAmount),
		EarlyBirdRate:    stringToFloat(it.EarlyBirdRate),
		EarlyBirdAmount:  stringToFloat(it.EarlyBirdAmount),
		LastMinuteRate:   stringToFloat(it.LastMinuteRate),
		LastMinuteAmount: stringToFloat(it.LastMinuteAmount),
		GroupRate:        stringToFloat(it.GroupRate),
		GroupAmount:      stringToFloat(it.GroupAmount),
		WeekendRate:      stringToFloat(it.WeekendRate),
		WeekendAmount:    stringToFloat(it.WeekendAmount),

		AddOnsTotal:      stringToFloat(it.AddOnsTotal),
		ItinerariesTotal: stringToFloat(it.ItinerariesTotal),
		Subtotal:         stringToFloat(it.Subtotal),
		FinalPrice:       stringToFloat(it.FinalPrice),

		DaysUntilEvent:   it.DaysUntilEvent,
		IncludesWeekend:  it.IncludesWeekend,
		CalculationNotes: it.CalculationNotes,
		Notes:            it.Notes,
		Currency:         it.Currency,

		Status:    entities.QuoteStatus(it.Status),
		ExpiresAt: stringToTime(it.ExpiresAt),
		EmailedAt: stringToTimePtr(it.EmailedAt),
		CreatedAt: stringToTime(it.CreatedAt),
		UpdatedAt: stringToTime(it.UpdatedAt),
	}
}
