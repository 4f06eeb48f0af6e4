package entities

import (
	"strings"
	"time"
)

// LeadStatus is the lifecycle state of a prospect.
type LeadStatus string

const (
	LeadStatusNew        LeadStatus = "NEW"
	LeadStatusContacted  LeadStatus = "CONTACTED"
	LeadStatusQuoteSent  LeadStatus = "QUOTE_SENT"
	LeadStatusInterested LeadStatus = "INTERESTED"
	LeadStatusClosedWon  LeadStatus = "CLOSED_WON"
	LeadStatusClosedLost LeadStatus = "CLOSED_LOST"
)

// leadTransitions is the allowed-target set per status. CLOSED_WON is
// terminal; CLOSED_LOST keeps a re-engagement edge back to CONTACTED.
var leadTransitions = map[LeadStatus]map[LeadStatus]bool{
	LeadStatusNew:        {LeadStatusContacted: true, LeadStatusClosedLost: true},
	LeadStatusContacted:  {LeadStatusQuoteSent: true, LeadStatusClosedLost: true},
	LeadStatusQuoteSent:  {LeadStatusInterested: true, LeadStatusContacted: true, LeadStatusClosedLost: true},
	LeadStatusInterested: {LeadStatusQuoteSent: true, LeadStatusClosedWon: true, LeadStatusClosedLost: true},
	LeadStatusClosedWon:  {},
	LeadStatusClosedLost: {LeadStatusContacted: true},
}

// IsValid reports whether s is one of the enumerated lead statuses.
func (s LeadStatus) IsValid() bool {
	_, ok := leadTransitions[s]
	return ok
}

// ValidateTransition reports whether moving from one status to another is
// allowed. Same-state transitions are always permitted as a no-op.
func ValidateTransition(from, to LeadStatus) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}
	if from == to {
		return true
	}
	return leadTransitions[from][to]
}

// LeadStatusHistory records one status transition. From is nil for the entry
// written at lead creation. Entries are append-only.
type LeadStatusHistory struct {
	From  *LeadStatus `json:"from,omitempty"`
	To    LeadStatus  `json:"to"`
	Actor string      `json:"actor"`
	Note  string      `json:"note,omitempty"`
	At    time.Time   `json:"at"`
}

// Lead is a prospective customer.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Score is recomputed on every data change and clamped to [0,100]; status
// only changes through the transition workflow, which appends to
// StatusHistory.
type Lead struct {
	ID                    string              `json:"id"`
	Name                  string              `json:"name,omitempty"`
	Email                 string              `json:"email,omitempty"`
	Phone                 string              `json:"phone,omitempty"`
	Company               string              `json:"company,omitempty"`
	Position              string              `json:"position,omitempty"`
	Status                LeadStatus          `json:"status"`
	Score                 int                 `json:"score"`
	ConversationCount     int                 `json:"conversation_count"`
	InterestedEventIDs    []string            `json:"interested_event_ids,omitempty"`
	RecommendedPackageIDs []string            `json:"recommended_package_ids,omitempty"`
	QuoteCount            int                 `json:"quote_count"`
	OrderCount            int                 `json:"order_count"`
	StatusHistory         []LeadStatusHistory `json:"status_history,omitempty"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
}

// LeadPatch is a partial lead update. Nil fields keep the current value.
type LeadPatch struct {
	Name                  *string
	Email                 *string
	Phone                 *string
	Company               *string
	Position              *string
	ConversationCount     *int
	InterestedEventIDs    []string
	RecommendedPackageIDs []string
	QuoteCount            *int
	OrderCount            *int
}

// MergeLead applies a partial update onto a lead snapshot and returns the
// merged copy. Status and history are never touched here; those belong to
// the transition workflow.
func MergeLead(snapshot Lead, patch LeadPatch) Lead {
	out := snapshot
	if patch.Name != nil {
		out.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Email != nil {
		out.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.Phone != nil {
		out.Phone = strings.TrimSpace(*patch.Phone)
	}
	if patch.Company != nil {
		out.Company = strings.TrimSpace(*patch.Company)
	}
	if patch.Position != nil {
		out.Position = strings.TrimSpace(*patch.Position)
	}
	if patch.ConversationCount != nil {
		out.ConversationCount = *patch.ConversationCount
	}
	if patch.InterestedEventIDs != nil {
		out.InterestedEventIDs = patch.InterestedEventIDs
	}
	if patch.RecommendedPackageIDs != nil {
		out.RecommendedPackageIDs = patch.RecommendedPackageIDs
	}
	if patch.QuoteCount != nil {
		out.QuoteCount = *patch.QuoteCount
	}
	if patch.OrderCount != nil {
		out.OrderCount = *patch.OrderCount
	}
	return out
}
