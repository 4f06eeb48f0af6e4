package entities

import "time"

// Event is a sporting event that travel packages are sold against.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Pricing notes:
//   - SeasonMonths flags event-specific high-season months; when present it
//     takes precedence over the deployment-wide seasonal calendar.
//   - IsWeekend, when set, overrides the day-by-day weekend scan of the
//     travel date range.
type Event struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Location     string       `json:"location"`
	StartDate    time.Time    `json:"start_date"`
	EndDate      time.Time    `json:"end_date"`
	SeasonMonths []time.Month `json:"season_months,omitempty"`
	IsWeekend    *bool        `json:"is_weekend,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// InSeason reports whether the event flags the given month as high season.
// False when the event has no season months at all.
func (e Event) InSeason(m time.Month) bool {
	for _, sm := range e.SeasonMonths {
		if sm == m {
			return true
		}
	}
	return false
}
