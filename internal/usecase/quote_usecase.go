package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fanvoyage/internal/domain/entities"
	"fanvoyage/internal/domain/pricing"
	"fanvoyage/internal/domain/scoring"
	"fanvoyage/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrPackageNotFound      = errors.New("package not found")
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrInvalidQuoteID       = errors.New("invalid quote id")
	ErrPackageEventMismatch = errors.New("package does not belong to event")
)

const DefaultCurrency = "USD"

// IQuoteUseCase exposes quote generation and management operations.
//
// GenerateQuote is the orchestrator: pricing computation, quote persistence,
// lead status transition and email notification, in that order. Failures
// past the quote write degrade gracefully and never roll the quote back.
type IQuoteUseCase interface {
	GenerateQuote(ctx context.Context, input GenerateQuoteInput) (QuoteResult, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByLeadID(ctx context.Context, leadID string) ([]entities.Quote, error)
	MarkViewed(ctx context.Context, id string) (entities.Quote, error)
	Accept(ctx context.Context, id string) (entities.Quote, error)
	Decline(ctx context.Context, id string) (entities.Quote, error)
	Expire(ctx context.Context, id string) (entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
}

type GenerateQuoteInput struct {
	LeadID          string
	EventID         string
	PackageID       string
	AddOnIDs        []string
	ItineraryDayIDs []string
	Travelers       int
	TravelStart     time.Time
	TravelEnd       time.Time
	Notes           string
	Currency        string
	Actor           string
}

// PricingBreakdown is the engine output plus the additive totals, returned
// alongside the persisted quote.
type PricingBreakdown struct {
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
	DaysUntilEvent   int     `json:"days_until_event"`
	IncludesWeekend  bool    `json:"includes_weekend"`
	Currency         string  `json:"currency"`
}

type QuoteResult struct {
	Quote            entities.Quote   `json:"quote"`
	Breakdown        PricingBreakdown `json:"pricing_breakdown"`
	CalculationNotes string           `json:"calculation_notes"`
}

type QuoteUseCase struct {
	quotes      interfaces.IQuoteRepository
	leads       interfaces.ILeadRepository
	events      interfaces.IEventRepository
	packages    interfaces.IPackageRepository
	addons      interfaces.IAddOnRepository
	itineraries interfaces.IItineraryRepository
	notifier    interfaces.IQuoteNotifier
	engine      *pricing.Engine
	validity    time.Duration
	log         *zap.Logger
	now         func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	quotes interfaces.IQuoteRepository,
	leads interfaces.ILeadRepository,
	events interfaces.IEventRepository,
	packages interfaces.IPackageRepository,
	addons interfaces.IAddOnRepository,
	itineraries interfaces.IItineraryRepository,
	notifier interfaces.IQuoteNotifier,
	engine *pricing.Engine,
	validityDays int,
	log *zap.Logger,
) *QuoteUseCase {
	if engine == nil {
		engine = pricing.NewEngine(nil)
	}
	if validityDays <= 0 {
		validityDays = 30
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &QuoteUseCase{
		quotes:      quotes,
		leads:       leads,
		events:      events,
		packages:    packages,
		addons:      addons,
		itineraries: itineraries,
		notifier:    notifier,
		engine:      engine,
		validity:    time.Duration(validityDays) * 24 * time.Hour,
		log:         log,
		now:         time.Now,
	}
}

func (u *QuoteUseCase) GenerateQuote(ctx context.Context, input GenerateQuoteInput) (QuoteResult, error) {
	lead, err := u.leads.GetByID(ctx, strings.TrimSpace(input.LeadID))
	if err != nil {
		return QuoteResult{}, err
	}
	if lead.ID == "" {
		return QuoteResult{}, ErrLeadNotFound
	}

	event, err := u.events.GetByID(ctx, strings.TrimSpace(input.EventID))
	if err != nil {
		return QuoteResult{}, err
	}
	if event.ID == "" {
		return QuoteResult{}, ErrEventNotFound
	}

	pkg, err := u.packages.GetByID(ctx, strings.TrimSpace(input.PackageID))
	if err != nil {
		return QuoteResult{}, err
	}
	if pkg.ID == "" {
		return QuoteResult{}, ErrPackageNotFound
	}
	if pkg.EventID != event.ID {
		return QuoteResult{}, ErrPackageEventMismatch
	}

	addons, err := u.resolveAddOns(ctx, input.AddOnIDs)
	if err != nil {
		return QuoteResult{}, err
	}
	days, err := u.resolveItineraryDays(ctx, input.ItineraryDayIDs)
	if err != nil {
		return QuoteResult{}, err
	}

	now := u.now().UTC()
	b := u.engine.Calculate(now, pkg.BasePrice, event, pkg, input.Travelers, input.TravelStart, input.TravelEnd)

	addonsTotal := 0.0
	for _, a := range addons {
		addonsTotal += a.Price
	}
	itinerariesTotal := 0.0
	for _, d := range days {
		itinerariesTotal += d.BasePrice
	}
	addonsTotal = pricing.Round2(addonsTotal)
	itinerariesTotal = pricing.Round2(itinerariesTotal)
	finalPrice := pricing.Round2(b.Subtotal + addonsTotal + itinerariesTotal)

	currency := strings.TrimSpace(input.Currency)
	if currency == "" {
		currency = DefaultCurrency
	}

	calcNotes := buildCalculationNotes(b, addons, days)

	q := entities.Quote{
		ID:              uuid.NewString(),
		LeadID:          lead.ID,
		EventID:         event.ID,
		PackageID:       pkg.ID,
		AddOnIDs:        input.AddOnIDs,
		ItineraryDayIDs: input.ItineraryDayIDs,
		Travelers:       input.Travelers,
		TravelStart:     input.TravelStart,
		TravelEnd:       input.TravelEnd,

		BasePrice:        b.BasePrice,
		SeasonalRate:     b.SeasonalRate,
		SeasonalAmount:   b.SeasonalAmount,
		EarlyBirdRate:    b.EarlyBirdRate,
		EarlyBirdAmount:  b.EarlyBirdAmount,
		LastMinuteRate:   b.LastMinuteRate,
		LastMinuteAmount: b.LastMinuteAmount,
		GroupRate:        b.GroupRate,
		GroupAmount:      b.GroupAmount,
		WeekendRate:      b.WeekendRate,
		WeekendAmount:    b.WeekendAmount,

		AddOnsTotal:      addonsTotal,
		ItinerariesTotal: itinerariesTotal,
		Subtotal:         b.Subtotal,
		FinalPrice:       finalPrice,

		DaysUntilEvent:   b.DaysUntilEvent,
		IncludesWeekend:  b.IncludesWeekend,
		CalculationNotes: calcNotes,
		Notes:            strings.TrimSpace(input.Notes),
		Currency:         currency,

		Status:    entities.QuoteStatusSent,
		ExpiresAt: now.Add(u.validity),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		return QuoteResult{}, err
	}
	u.log.Info("quote generated",
		zap.String("quote_id", created.ID),
		zap.String("lead_id", lead.ID),
		zap.Float64("final_price", finalPrice),
		zap.String("currency", currency))

	// Lead lifecycle and email delivery run after the quote write; their
	// failures are logged, never surfaced.
	u.advanceLead(ctx, lead, event, pkg, input.Actor, now)
	created = u.emailQuote(ctx, lead, created)

	return QuoteResult{
		Quote: created,
		Breakdown: PricingBreakdown{
			BasePrice:        b.BasePrice,
			SeasonalRate:     b.SeasonalRate,
			SeasonalAmount:   b.SeasonalAmount,
			EarlyBirdRate:    b.EarlyBirdRate,
			EarlyBirdAmount:  b.EarlyBirdAmount,
			LastMinuteRate:   b.LastMinuteRate,
			LastMinuteAmount: b.LastMinuteAmount,
			GroupRate:        b.GroupRate,
			GroupAmount:      b.GroupAmount,
			WeekendRate:      b.WeekendRate,
			WeekendAmount:    b.WeekendAmount,
			AddOnsTotal:      addonsTotal,
			ItinerariesTotal: itinerariesTotal,
			Subtotal:         b.Subtotal,
			FinalPrice:       finalPrice,
			DaysUntilEvent:   b.DaysUntilEvent,
			IncludesWeekend:  b.IncludesWeekend,
			Currency:         currency,
		},
		CalculationNotes: calcNotes,
	}, nil
}

func (u *QuoteUseCase) resolveAddOns(ctx context.Context, ids []string) ([]entities.AddOn, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return u.addons.ListByIDs(ctx, ids)
}

func (u *QuoteUseCase) resolveItineraryDays(ctx context.Context, ids []string) ([]entities.ItineraryDay, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return u.itineraries.ListByIDs(ctx, ids)
}

// advanceLead moves the lead to QUOTE_SENT, bumps its quote counter and
// rescores it. A rejected transition (e.g. a brand-new lead that was never
// contacted) skips the status move but still records the quote on the lead.
func (u *QuoteUseCase) advanceLead(ctx context.Context, lead entities.Lead, event entities.Event, pkg entities.TravelPackage, actor string, now time.Time) {
	lead.QuoteCount++
	note := fmt.Sprintf("Quote generated for %s - %s", event.Title, pkg.Title)

	if err := applyTransition(&lead, entities.LeadStatusQuoteSent, actorOrSystem(actor), note, now); err != nil {
		u.log.Warn("lead status transition skipped",
			zap.String("lead_id", lead.ID),
			zap.String("from", string(lead.Status)),
			zap.Error(err))
		lead.Score = scoring.Score(lead, now)
		lead.UpdatedAt = now
	}

	if _, err := u.leads.Update(ctx, lead); err != nil {
		u.log.Error("lead update after quote failed",
			zap.String("lead_id", lead.ID),
			zap.Error(err))
	}
}

// emailQuote sends the quote to the lead when an email address exists and
// stamps the quote as emailed on success.
func (u *QuoteUseCase) emailQuote(ctx context.Context, lead entities.Lead, q entities.Quote) entities.Quote {
	if lead.Email == "" || u.notifier == nil {
		return q
	}

	if err := u.notifier.SendQuote(ctx, lead.Email, lead, q); err != nil {
		u.log.Warn("quote email delivery failed",
			zap.String("quote_id", q.ID),
			zap.String("lead_id", lead.ID),
			zap.Error(err))
		return q
	}

	at := u.now().UTC()
	if err := u.quotes.MarkEmailed(ctx, q.ID, at); err != nil {
		u.log.Warn("quote emailed marker update failed",
			zap.String("quote_id", q.ID),
			zap.Error(err))
		return q
	}
	q.EmailedAt = &at
	return q
}

// buildCalculationNotes renders one pipe-delimited clause per non-zero
// adjustment in fixed order, then the add-on and itinerary title clauses.
func buildCalculationNotes(b pricing.Breakdown, addons []entities.AddOn, days []entities.ItineraryDay) string {
	var clauses []string

	appendClause := func(label, sign string, rate float64) {
		if rate == 0 {
			return
		}
		clauses = append(clauses, fmt.Sprintf("%s: %s%s%%", label, sign, formatPercent(rate)))
	}

	appendClause("Seasonal adjustment", "+", b.SeasonalRate)
	appendClause("Early-bird discount", "-", b.EarlyBirdRate)
	appendClause("Last-minute surcharge", "+", b.LastMinuteRate)
	appendClause("Group discount", "-", b.GroupRate)
	appendClause("Weekend surcharge", "+", b.WeekendRate)

	if len(addons) > 0 {
		titles := make([]string, 0, len(addons))
		for _, a := range addons {
			titles = append(titles, a.Title)
		}
		clauses = append(clauses, "Add-ons: "+strings.Join(titles, ", "))
	}
	if len(days) > 0 {
		titles := make([]string, 0, len(days))
		for _, d := range days {
			titles = append(titles, d.Title)
		}
		clauses = append(clauses, "Itinerary: "+strings.Join(titles, ", "))
	}

	return strings.Join(clauses, " | ")
}

func formatPercent(rate float64) string {
	return strconv.FormatFloat(pricing.Round2(rate*100), 'f', -1, 64)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByLeadID(ctx context.Context, leadID string) ([]entities.Quote, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return nil, ErrInvalidLeadID
	}
	return u.quotes.ListByLeadID(ctx, leadID)
}

func (u *QuoteUseCase) MarkViewed(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusViewed)
}

func (u *QuoteUseCase) Accept(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusAccepted)
}

func (u *QuoteUseCase) Decline(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusDeclined)
}

func (u *QuoteUseCase) Expire(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusExpired)
}

func (u *QuoteUseCase) updateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	updated, err := u.quotes.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

// Update overwrites the stored quote fields directly; pricing is never
// recomputed here.
func (u *QuoteUseCase) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if strings.TrimSpace(q.ID) == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	existing, err := u.quotes.GetByID(ctx, q.ID)
	if err != nil {
		return entities.Quote{}, err
	}
	if existing.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	q.CreatedAt = existing.CreatedAt
	q.UpdatedAt = u.now().UTC()
	return u.quotes.Update(ctx, q)
}

func (u *QuoteUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.quotes.Delete(ctx, id)
}
