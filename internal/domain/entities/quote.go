package entities

import "time"

// QuoteStatus represents the lifecycle of a quote after it is sent.
type QuoteStatus string

const (
	QuoteStatusSent     QuoteStatus = "SENT"
	QuoteStatusViewed   QuoteStatus = "VIEWED"
	QuoteStatusAccepted QuoteStatus = "ACCEPTED"
	QuoteStatusExpired  QuoteStatus = "EXPIRED"
	QuoteStatusDeclined QuoteStatus = "DECLINED"
)

var quoteStatuses = map[QuoteStatus]bool{
	QuoteStatusSent:     true,
	QuoteStatusViewed:   true,
	QuoteStatusAccepted: true,
	QuoteStatusExpired:  true,
	QuoteStatusDeclined: true,
}

// IsValid reports whether s is one of the enumerated quote statuses.
func (s QuoteStatus) IsValid() bool {
	return quoteStatuses[s]
}

// Quote is the computed pricing artifact persisted once per generation
// request.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (lead_id-index): lead_id
//
// Monetary representation:
//   - Amounts are rounded to 2 decimal places; rates are stored as fractions
//     (0.20 means 20%), never pre-multiplied percentages.
//
// Admin edits overwrite stored fields directly; pricing is never silently
// recomputed.
type Quote struct {
	ID              string   `json:"id"`
	LeadID          string   `json:"lead_id"`
	EventID         string   `json:"event_id"`
	PackageID       string   `json:"package_id"`
	AddOnIDs        []string `json:"addon_ids,omitempty"`
	ItineraryDayIDs []string `json:"itinerary_day_ids,omitempty"`
	Travelers       int      `json:"travelers"`

	TravelStart time.Time `json:"travel_start"`
	TravelEnd   time.Time `json:"travel_end"`

	BasePrice        float64 `json:"base_price"`
	SeasonalRate     float64 `json:"seasonal_rate"`
	SeasonalAmount   float64 `json:"seasonal_amount"`
	EarlyBirdRate    float64 `json:"early_bird_rate"`
	EarlyBirdAmount  float64 `json:"early_bird_amount"`
	LastMinuteRate   float64 `json:"last_minute_rate"`
	LastMinuteAmount float64 `json:"last_minute_amount"`
	GroupRate        float64 `json:"group_rate"`
	GroupAmount      float64 `json:"group_amount"`
	WeekendRate      float64 `json:"weekend_rate"`
	WeekendAmount    float64 `json:"weekend_amount"`

	AddOnsTotal      float64 `json:"addons_total"`
	ItinerariesTotal float64 `json:"itineraries_total"`
	Subtotal         float64 `json:"subtotal"`
	FinalPrice       float64 `json:"final_price"`

	DaysUntilEvent   int    `json:"days_until_event"`
	IncludesWeekend  bool   `json:"includes_weekend"`
	CalculationNotes string `json:"calculation_notes,omitempty"`
	Notes            string `json:"notes,omitempty"`
	Currency         string `json:"currency"`

	Status    QuoteStatus `json:"status"`
	ExpiresAt time.Time   `json:"expires_at"`
	EmailedAt *time.Time  `json:"emailed_at,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
