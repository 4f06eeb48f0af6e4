package response

import (
	"time"

	"fanvoyage/internal/domain/entities"
)

type LeadStatusHistoryResponse struct {
	From  string    `json:"from,omitempty"`
	To    string    `json:"to"`
	Actor string    `json:"actor"`
	Note  string    `json:"note,omitempty"`
	At    time.Time `json:"at"`
}

type LeadResponse struct {
	ID                    string                      `json:"id"`
	Name                  string                      `json:"name,omitempty"`
	Email                 string                      `json:"email,omitempty"`
	Phone                 string                      `json:"phone,omitempty"`
	Company               string                      `json:"company,omitempty"`
	Position              string                      `json:"position,omitempty"`
	Status                string                      `json:"status"`
	Score                 int                         `json:"score"`
	ConversationCount     int                         `json:"conversation_count"`
	InterestedEventIDs    []string                    `json:"interested_event_ids,omitempty"`
	RecommendedPackageIDs []string                    `json:"recommended_package_ids,omitempty"`
	QuoteCount            int                         `json:"quote_count"`
	OrderCount            int                         `json:"order_count"`
	StatusHistory         []LeadStatusHistoryResponse `json:"status_history,omitempty"`
	CreatedAt             time.Time                   `json:"created_at"`
	UpdatedAt             time.Time                   `json:"updated_at"`
}

func FromLead(l entities.Lead) LeadResponse {
	history := make([]LeadStatusHistoryResponse, 0, len(l.StatusHistory))
	for _, h := range l.StatusHistory {
		entry := LeadStatusHistoryResponse{
			To:    string(h.To),
			Actor: h.Actor,
			Note:  h.Note,
			At:    h.At,
		}
		if h.From != nil {
			entry.From = string(*h.From)
		}
		history = append(history, entry)
	}

	return LeadResponse{
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
		CreatedAt:             l.CreatedAt,
		UpdatedAt:             l.UpdatedAt,
	}
}
