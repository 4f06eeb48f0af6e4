package repository

import (
	"context"

	"fanvoyage/internal/domain/entities"
	"fanvoyage/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLeadsTableName = "leads"

type leadStatusHistoryItem struct {
	From  string `dynamodbav:"from,omitempty"`
	To    string `dynamodbav:"to"`
	Actor string `dynamodbav:"actor"`
	Note  string `dynamodbav:"note,omitempty"`
	At    string `dynamodbav:"at"`
}

type leadItem struct {
	ID                    string                  `dynamodbav:"id"`
	Name                  string                  `dynamodbav:"name,omitempty"`
	Email                 string                  `dynamodbav:"email,omitempty"`
	Phone                 string                  `dynamodbav:"phone,omitempty"`
	Company               string                  `dynamodbav:"company,omitempty"`
	Position              string                  `dynamodbav:"position,omitempty"`
	Status                string                  `dynamodbav:"status"`
	Score                 int                     `dynamodbav:"score"`
	ConversationCount     int                     `dynamodbav:"conversation_count"`
	InterestedEventIDs    []string                `dynamodbav:"interested_event_ids,omitempty"`
	RecommendedPackageIDs []string                `dynamodbav:"recommended_package_ids,omitempty"`
	QuoteCount            int                     `dynamodbav:"quote_count"`
	OrderCount            int                     `dynamodbav:"order_count"`
	StatusHistory         []leadStatusHistoryItem `dynamodbav:"status_history,omitempty"`
	CreatedAt             string                  `dynamodbav:"created_at"`
	UpdatedAt             string                  `dynamodbav:"updated_at"`
}

// LeadDynamoRepository persists Lead entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The full snapshot including status history is written on every update;
// history entries are only ever appended by the use case.
type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client, tableName string) *LeadDynamoRepository {
	if tableName == "" {
		tableName = defaultLeadsTableName
	}
	return &LeadDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	av, err := attributevalue.MarshalMap(toLeadItem(l))
	if err != nil {
		return entities.Lead{}, err
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
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func (r *LeadDynamoRepository) Update(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	av, err := attributevalue.MarshalMap(toLeadItem(l))
	if err != nil {
		return entities.Lead{}, err
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
		return entities.Lead{}, err
	}
	return l, nil
}

func toLeadItem(l entities.Lead) leadItem {
	history := make([]leadStatusHistoryItem, 0, len(l.StatusHistory))
	for _, h := range l.StatusHistory {
		entry := leadStatusHistoryItem{
			To:    string(h.To),
			Actor: h.Actor,
			Note:  h.Note,
			At:    timeToString(h.At),
		}
		if h.From != nil {
			entry.From = string(*h.From)
		}
		history = append(history, entry)
	}

	return leadItem{
		ID:                    l.ID,
		Name:                  l.Name,
		Email:                 l.Email,
		Phone:                 l.Phone,
		Company:               l.Company,
		Position:              l.Position,
		Status:                string(l.Status),
		Score:                 l.Score,
		ConversationCount:     l.ConversationCount,
		InterestedEventIDs:    l.InterestedEventIDs,
		RecommendedPackageIDs: l.RecommendedPackageIDs,
		QuoteCount:            l.QuoteCount,
		OrderCount:            l.OrderCount,
		StatusHistory:         history,
		CreatedAt:             timeToString(l.CreatedAt),
		UpdatedAt:             timeToString(l.UpdatedAt),
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	history := make([]entities.LeadStatusHistory, 0, len(it.StatusHistory))
	for _, h := range it.StatusHistory {
		entry := entities.LeadStatusHistory{
			To:    entities.LeadStatus(h.To),
			Actor: h.Actor,
			Note:  h.Note,
			At:    stringToTime(h.At),
		}
		if h.From != "" {
			from := entities.LeadStatus(h.From)
			entry.From = &from
		}
		history = append(history, entry)
	}

	return entities.Lead{
		ID:                    it.ID,
		Name:                  it.Name,
		Email:                 it.Email,
		Phone:                 it.Phone,
		Company:               it.Company,
		Position:              it.Position,
		Status:                entities.LeadStatus(it.Status),
		Score:                 it.Score,
		ConversationCount:     it.ConversationCount,
		InterestedEventIDs:    it.InterestedEventIDs,
		RecommendedPackageIDs: it.RecommendedPackageIDs,
		QuoteCount:            it.QuoteCount,
		OrderCount:            it.OrderCount,
		StatusHistory:         history,
		CreatedAt:             stringToTime(it.CreatedAt),
		UpdatedAt:             stringToTime(it.UpdatedAt),
	}
}
