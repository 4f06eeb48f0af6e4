// Package pricing computes the dynamic price adjustments applied to a travel
// package base price. Every function is pure: the clock is always an input
// and no storage is touched, so callers can test the money math directly.
package pricing

import (
	"math"
	"time"

	"fanvoyage/internal/domain/entities"
)

const (
	SeasonPeakRate         = 0.20
	EarlyBirdRateValue     = 0.10
	EarlyBirdDayThreshold  = 120
	LastMinuteRateValue    = 0.25
	LastMinuteDayThreshold = 15
	GroupRateValue         = 0.08
	GroupMinTravelers      = 4
	WeekendRateValue       = 0.08
)

// Calendar maps calendar months to the fallback seasonal rate used when an
// event declares no season months of its own.
type Calendar map[time.Month]float64

// DefaultCalendar is the stock seasonal calendar: high season in June, July
// and December, shoulder season in April, May and September.
func DefaultCalendar() Calendar {
	return Calendar{
		time.June:      SeasonPeakRate,
		time.July:      SeasonPeakRate,
		time.December:  SeasonPeakRate,
		time.April:     0.10,
		time.May:       0.10,
		time.September: 0.10,
	}
}

// Engine evaluates pricing adjustments against an injected seasonal calendar.
type Engine struct {
	calendar Calendar
}

func NewEngine(calendar Calendar) *Engine {
	if calendar == nil {
		calendar = DefaultCalendar()
	}
	return &Engine{calendar: calendar}
}

// Breakdown is the full output of a pricing computation. Rates are fractions
// of the base price; amounts are rate x base price rounded to 2 decimals.
type Breakdown struct {
	BasePrice float64

	SeasonalRate     float64
	SeasonalAmount   float64
	EarlyBirdRate    float64
	EarlyBirdAmount  float64
	LastMinuteRate   float64
	LastMinuteAmount float64
	GroupRate        float64
	GroupAmount      float64
	WeekendRate      float64
	WeekendAmount    float64

	Subtotal        float64
	DaysUntilEvent  int
	IncludesWeekend bool
}

// SeasonalRate returns the seasonal adjustment for travel in the given month.
// Event-specific season months win at the peak rate; otherwise the injected
// calendar decides.
func (e *Engine) SeasonalRate(ev entities.Event, travelMonth time.Month) float64 {
	if len(ev.SeasonMonths) > 0 && ev.InSeason(travelMonth) {
		return SeasonPeakRate
	}
	return e.calendar[travelMonth]
}

// EarlyBirdRate returns the early-booking discount rate.
//
// A package-specific cutoff date takes precedence over the generic
// days-until-event rule: when a cutoff is present the generic rule is never
// consulted, even if booking after the cutoff.
func EarlyBirdRate(now time.Time, daysUntilEvent int, cutoff *time.Time) float64 {
	if cutoff != nil {
		if !now.After(*cutoff) {
			return EarlyBirdRateValue
		}
		return 0
	}
	if daysUntilEvent >= EarlyBirdDayThreshold {
		return EarlyBirdRateValue
	}
	return 0
}

// LastMinuteRate returns the surcharge applied to bookings made close to the
// event start.
func LastMinuteRate(daysUntilEvent int) float64 {
	if daysUntilEvent < LastMinuteDayThreshold {
		return LastMinuteRateValue
	}
	return 0
}

// GroupRate returns the group discount rate. The effective threshold is the
// larger of the stock minimum and the package minimum capacity.
func GroupRate(travelers, packageMinCapacity int) float64 {
	threshold := GroupMinTravelers
	if packageMinCapacity > threshold {
		threshold = packageMinCapacity
	}
	if travelers >= threshold {
		return GroupRateValue
	}
	return 0
}

// WeekendRate returns the weekend surcharge. An explicit event flag wins;
// otherwise every calendar day of the inclusive travel range is scanned for a
// Saturday or Sunday.
func WeekendRate(ev entities.Event, travelStart, travelEnd time.Time) float64 {
	if ev.IsWeekend != nil {
		if *ev.IsWeekend {
			return WeekendRateValue
		}
		return 0
	}
	for d := travelStart; !d.After(travelEnd); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
			return WeekendRateValue
		}
	}
	return 0
}

// Calculate runs all adjustments for a quote.
//
// DaysUntilEvent may be negative when the event already started; that case is
// not rejected here, upstream validation owns it. The subtotal signs are
// fixed per factor: seasonal, last-minute and weekend add, early-bird and
// group subtract.
func (e *Engine) Calculate(
	now time.Time,
	basePrice float64,
	ev entities.Event,
	pkg entities.TravelPackage,
	travelers int,
	travelStart, travelEnd time.Time,
) Breakdown {
	daysUntilEvent := int(math.Floor(ev.StartDate.Sub(now).Hours() / 24))
	travelMonth := travelStart.Month()

	b := Breakdown{
		BasePrice:      basePrice,
		SeasonalRate:   e.SeasonalRate(ev, travelMonth),
		EarlyBirdRate:  EarlyBirdRate(now, daysUntilEvent, pkg.EarlyBirdCutoff),
		LastMinuteRate: LastMinuteRate(daysUntilEvent),
		GroupRate:      GroupRate(travelers, pkg.MinCapacity),
		WeekendRate:    WeekendRate(ev, travelStart, travelEnd),
		DaysUntilEvent: daysUntilEvent,
	}

	b.SeasonalAmount = Round2(b.SeasonalRate * basePrice)
	b.EarlyBirdAmount = Round2(b.EarlyBirdRate * basePrice)
	b.LastMinuteAmount = Round2(b.LastMinuteRate * basePrice)
	b.GroupAmount = Round2(b.GroupRate * basePrice)
	b.WeekendAmount = Round2(b.WeekendRate * basePrice)

	b.Subtotal = Round2(basePrice + b.SeasonalAmount - b.EarlyBirdAmount + b.LastMinuteAmount - b.GroupAmount + b.WeekendAmount)
	b.IncludesWeekend = b.WeekendRate > 0

	return b
}

// Round2 rounds a monetary amount to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
