package request

import (
	"errors"
	"strings"
	"time"

	"fanvoyage/internal/domain/entities"
)

var (
	ErrInvalidTravelDates = errors.New("invalid travel dates")
	ErrInvalidCurrency    = errors.New("invalid currency")
)

var supportedCurrencies = map[string]bool{
	"USD": true,
	"EUR": true,
	"GBP": true,
	"INR": true,
}

// GenerateQuoteRequest is the payload for quote generation.
//
// Travel dates accept either plain ISO dates (2006-01-02) or RFC3339
// timestamps.
type GenerateQuoteRequest struct {
	LeadID          string   `json:"lead_id" binding:"required"`
	EventID         string   `json:"event_id" binding:"required"`
	PackageID       string   `json:"package_id" binding:"required"`
	AddOnIDs        []string `json:"addon_ids"`
	ItineraryDayIDs []string `json:"itinerary_day_ids"`
	Travelers       int      `json:"travelers" binding:"required,min=1,max=50"`
	TravelStart     string   `json:"travel_start" binding:"required"`
	TravelEnd       string   `json:"travel_end" binding:"required"`
	Notes           string   `json:"notes"`
	Currency        string   `json:"currency"`
	Actor           string   `json:"actor"`
}

// ResolveTravelDates parses and orders the travel window. The start date must
// not lie in the past and must strictly precede the end date.
func (r GenerateQuoteRequest) ResolveTravelDates() (time.Time, time.Time, error) {
	start, err := parseDate(r.TravelStart)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidTravelDates
	}
	end, err := parseDate(r.TravelEnd)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidTravelDates
	}
	if start.Before(today()) {
		return time.Time{}, time.Time{}, ErrInvalidTravelDates
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, ErrInvalidTravelDates
	}
	return start, end, nil
}

// today truncates the wall clock to a UTC calendar day so a window starting
// later the same day is still accepted.
func today() time.Time {
	n := time.Now().UTC()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

// ResolveCurrency defaults to USD and rejects unsupported codes.
func (r GenerateQuoteRequest) ResolveCurrency() (string, error) {
	c := strings.ToUpper(strings.TrimSpace(r.Currency))
	if c == "" {
		return "USD", nil
	}
	if !supportedCurrencies[c] {
		return "", ErrInvalidCurrency
	}
	return c, nil
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// UpdateQuoteRequest overwrites stored quote fields. Nil fields keep the
// current value; pricing is never recomputed on update.
type UpdateQuoteRequest struct {
	Travelers  *int     `json:"travelers"`
	FinalPrice *float64 `json:"final_price"`
	Subtotal   *float64 `json:"subtotal"`
	Status     *string  `json:"status"`
	Notes      *string  `json:"notes"`
	ExpiresAt  *string  `json:"expires_at"`
}

// ResolveStatus normalizes the optional status override. The second return
// is false when a status is present but not one of the enumerated values.
func (r UpdateQuoteRequest) ResolveStatus() (*entities.QuoteStatus, bool) {
	if r.Status == nil {
		return nil, true
	}
	s := entities.QuoteStatus(strings.ToUpper(strings.TrimSpace(*r.Status)))
	if !s.IsValid() {
		return nil, false
	}
	return &s, true
}

// ResolveExpiry parses the optional expiry override.
func (r UpdateQuoteRequest) ResolveExpiry() (*time.Time, error) {
	if r.ExpiresAt == nil {
		return nil, nil
	}
	t, err := parseDate(*r.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
