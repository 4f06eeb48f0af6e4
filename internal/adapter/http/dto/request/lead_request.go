package request

import (
	"strings"

	"fanvoyage/internal/domain/entities"
)

// CreateLeadRequest is the public lead capture payload. Contact fields are
// each optional independently.
type CreateLeadRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Position string `json:"position"`
	Actor    string `json:"actor"`
}

// UpdateLeadRequest is a partial lead update; nil fields keep the stored
// value.
type UpdateLeadRequest struct {
	Name                  *string  `json:"name"`
	Email                 *string  `json:"email"`
	Phone                 *string  `json:"phone"`
	Company               *string  `json:"company"`
	Position              *string  `json:"position"`
	ConversationCount     *int     `json:"conversation_count"`
	InterestedEventIDs    []string `json:"interested_event_ids"`
	RecommendedPackageIDs []string `json:"recommended_package_ids"`
	QuoteCount            *int     `json:"quote_count"`
	OrderCount            *int     `json:"order_count"`
}

// ToPatch maps the request onto the domain patch shape.
func (r UpdateLeadRequest) ToPatch() entities.LeadPatch {
	return entities.LeadPatch{
		Name:                  r.Name,
		Email:                 r.Email,
		Phone:                 r.Phone,
		Company:               r.Company,
		Position:              r.Position,
		ConversationCount:     r.ConversationCount,
		InterestedEventIDs:    r.InterestedEventIDs,
		RecommendedPackageIDs: r.RecommendedPackageIDs,
		QuoteCount:            r.QuoteCount,
		OrderCount:            r.OrderCount,
	}
}

// TransitionLeadRequest asks for a lead status move.
type TransitionLeadRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
	Actor  string `json:"actor"`
}

// ResolveStatus normalizes and validates the target status.
func (r TransitionLeadRequest) ResolveStatus() (entities.LeadStatus, bool) {
	s := entities.LeadStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
	return s, s.IsValid()
}
