package entities

import "time"

// TravelPackage is a bookable offering tied to one event.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariants (enforced at the request boundary):
//   - MinCapacity >= 1
//   - BasePrice >= 0
type TravelPackage struct {
	ID              string     `json:"id"`
	EventID         string     `json:"event_id"`
	Title           string     `json:"title"`
	BasePrice       float64    `json:"base_price"`
	MinCapacity     int        `json:"min_capacity"`
	MaxCapacity     int        `json:"max_capacity"`
	EarlyBirdCutoff *time.Time `json:"early_bird_cutoff,omitempty"`
	Currency        string     `json:"currency"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// AddOn is an optional supplementary item priced additively on a quote; no
// pricing adjustments apply to it.
type AddOn struct {
	ID      string  `json:"id"`
	EventID string  `json:"event_id"`
	Title   string  `json:"title"`
	Price   float64 `json:"price"`
}

// ItineraryDay is one optional day of a package itinerary. A day without a
// price contributes zero to the quote total.
type ItineraryDay struct {
	ID        string  `json:"id"`
	PackageID string  `json:"package_id"`
	Title     string  `json:"title"`
	DayNumber int     `json:"day_number"`
	BasePrice float64 `json:"base_price"`
}
