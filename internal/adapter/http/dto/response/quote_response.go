package response

import (
	"time"

	"fanvoyage/internal/domain/entities"
	"fanvoyage/internal/usecase"
)

type QuoteResponse struct {
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

	Status    string     `json:"status"`
	ExpiresAt time.Time  `json:"expires_at"`
	EmailedAt *time.Time `json:"emailed_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:              q.ID,
		LeadID:          q.LeadID,
		EventID:         q.EventID,
		PackageID:       q.PackageID,
		AddOnIDs:        q.AddOnIDs,
		ItineraryDayIDs: q.ItineraryDayIDs,
		Travelers:       q.Travelers,

		TravelStart: q.TravelStart,
		TravelEnd:   q.TravelEnd,

		BasePrice:        q.BasePrice,
		SeasonalRate:     q.SeasonalRate,
		SeasonalAmount:   q.SeasonalAmount,
		EarlyBirdRate:    q.EarlyBirdRate,
		EarlyBirdAmount:  q.EarlyBirdAmount,
		LastMinuteRate:   q.LastMinuteRate,
		LastMinuteAmount: q.LastMinuteAmount,
		GroupRate:        q.GroupRate,
		GroupAmount:      q.GroupAmount,
		WeekendRate:      q.WeekendRate,
		WeekendAmount:    q.WeekendAmount,

		AddOnsTotal:      q.AddOnsTotal,
		ItinerariesTotal: q.ItinerariesTotal,
		Subtotal:         q.Subtotal,
		FinalPrice:       q.FinalPrice,

		DaysUntilEvent:   q.DaysUntilEvent,
		IncludesWeekend:  q.IncludesWeekend,
		CalculationNotes: q.CalculationNotes,
		Notes:            q.Notes,
		Currency:         q.Currency,

		Status:    string(q.Status),
		ExpiresAt: q.ExpiresAt,
		EmailedAt: q.EmailedAt,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

// GenerateQuoteResponse is the quote plus its pricing breakdown and the
// human-readable calculation notes.
type GenerateQuoteResponse struct {
	Quote            QuoteResponse            `json:"quote"`
	Breakdown        usecase.PricingBreakdown `json:"pricing_breakdown"`
	CalculationNotes string                   `json:"calculation_notes"`
}

func FromQuoteResult(res usecase.QuoteResult) GenerateQuoteResponse {
	return GenerateQuoteResponse{
		Quote:            FromQuote(res.Quote),
		Breakdown:        res.Breakdown,
		CalculationNotes: res.CalculationNotes,
	}
}
