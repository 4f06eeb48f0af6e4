package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"fanvoyage/internal/domain/entities"
	"fanvoyage/internal/domain/pricing"
	mock_interfaces "fanvoyage/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type quoteUseCaseMocks struct {
	quotes      *mock_interfaces.MockIQuoteRepository
	leads       *mock_interfaces.MockILeadRepository
	events      *mock_interfaces.MockIEventRepository
	packages    *mock_interfaces.MockIPackageRepository
	addons      *mock_interfaces.MockIAddOnRepository
	itineraries *mock_interfaces.MockIItineraryRepository
	notifier    *mock_interfaces.MockIQuoteNotifier
}

func newQuoteUseCaseForTest(ctrl *gomock.Controller, now time.Time) (*QuoteUseCase, quoteUseCaseMocks) {
	m := quoteUseCaseMocks{
		quotes:      mock_interfaces.NewMockIQuoteRepository(ctrl),
		leads:       mock_interfaces.NewMockILeadRepository(ctrl),
		events:      mock_interfaces.NewMockIEventRepository(ctrl),
		packages:    mock_interfaces.NewMockIPackageRepository(ctrl),
		addons:      mock_interfaces.NewMockIAddOnRepository(ctrl),
		itineraries: mock_interfaces.NewMockIItineraryRepository(ctrl),
		notifier:    mock_interfaces.NewMockIQuoteNotifier(ctrl),
	}
	uc := NewQuoteUseCase(m.quotes, m.leads, m.events, m.packages, m.addons, m.itineraries, m.notifier, pricing.NewEngine(nil), 30, nil)
	uc.now = func() time.Time { return now }
	return uc, m
}

func TestQuoteUseCase_GenerateQuote(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	eventStart := time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC)
	travelStart := time.Date(2026, time.May, 29, 0, 0, 0, 0, time.UTC)
	travelEnd := time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC)

	baseInput := func() GenerateQuoteInput {
		return GenerateQuoteInput{
			LeadID:      "lead-1",
			EventID:     "ev-1",
			PackageID:   "pkg-1",
			Travelers:   4,
			TravelStart: travelStart,
			TravelEnd:   travelEnd,
		}
	}
	baseEvent := entities.Event{ID: "ev-1", Title: "Summer Cup Final", StartDate: eventStart, SeasonMonths: []time.Month{time.May}}
	basePkg := entities.TravelPackage{ID: "pkg-1", EventID: "ev-1", Title: "Gold Package", BasePrice: 1000, MinCapacity: 2}

	t.Run("lead not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl, now)

		m.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{}, nil)

		_, err := uc.GenerateQuote(context.Background(), baseInput())
		if !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})

	t.Run("event not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl, now)

		m.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{ID: "lead-1"}, nil)
		m.events.EXPECT().GetByID(gomock.Any(), "ev-1").Return(entities.Event{}, nil)

		_, err := uc.GenerateQuote(context.Background(), baseInput())
		if !errors.Is(err, ErrEventNotFound) {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
	})

	t.Run("package not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl, now)

		m.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{ID: "lead-1"}, nil)
		m.events.EXPECT().GetByID(gomock.Any(), "ev-1").Return(baseEvent, nil)
		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(entities.TravelPackage{}, nil)

		_, err := uc.GenerateQuote(context.Background(), baseInput())
		if !errors.Is(err, ErrPackageNotFound) {
			t.Fatalf("expected ErrPackageNotFound, got %v", err)
		}
	})

	t.Run("package event mismatch fails before pricing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl, now)

		m.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{ID: "lead-1"}, nil)
		m.events.EXPECT().GetByID(gomock.Any(), "ev-1").Return(baseEvent, nil)
		otherPkg := basePkg
		otherPkg.EventID = "ev-2"
		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(otherPkg, nil)

		_, err := uc.GenerateQuote(context.Background(), baseInput())
		if !errors.Is(err, ErrPackageEventMismatch) {
			t.Fatalf("expected ErrPackageEventMismatch, got %v", err)
		}
	})

	t.Run("repo error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl, now)

		m.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{}, errors.New("db"))

		_, err := uc.GenerateQuote(context.Background(), baseInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("quote create error surfaces and no side effects run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl, now)

		m.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{ID: "lead-1", Email: "ana@example.com", Status: entities.LeadStatusContacted}, nil)
		m.events.EXPECT().GetByID(gomock.Any(), "ev-1").Return(baseEvent, nil)
		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(basePkg, nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("db"))

		_, err := uc.GenerateQuote(context.Background(), baseInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success with contacted lead and email delivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl, now)

		lead := entities.Lead{ID: "lead-1", Email: "ana@example.com", Status: entities.LeadStatusContacted}
		m.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(lead, nil)
		m.events.EXPECT().GetByID(gomock.Any(), "ev-1").Return(baseEvent, nil)
		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(basePkg, nil)

		m.quotes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.LeadID != "lead-1" || q.EventID != "ev-1" || q.PackageID != "pkg-1" {
					t.Fatalf("unexpected quote identity: %+v", q)
				}
				if q.Status != entities.QuoteStatusSent {
					t.Fatalf("expected SENT status, got %s", q.Status)
				}
				// 1000 + 200 seasonal - 100 early-bird - 80 group + 80 weekend
				if q.Subtotal != 1100 || q.FinalPrice != 1100 {
					t.Fatalf("unexpected totals: subtotal=%v final=%v", q.Subtotal, q.FinalPrice)
				}
				if q.DaysUntilEvent != 150 || !q.IncludesWeekend {
					t.Fatalf("unexpected derived fields: %+v", q)
				}
				if q.Currency != DefaultCurrency {
					t.Fatalf("expected default currency, got %s", q.Currency)
				}
				if !q.ExpiresAt.Equal(now.Add(30 * 24 * time.Hour)) {
					t.Fatalf("unexpected expiry: %v", q.ExpiresAt)
				}
				return q, nil
			},
		)

		m.leads.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Lead{})).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) {
				if l.Status != entities.LeadStatusQuoteSent {
					t.Fatalf("expected QUOTE_SENT lead, got %s", l.Status)
				}
				if l.QuoteCount != 1 {
					t.Fatalf("expected quote count 1, got %d", l.QuoteCount)
				}
				last := l.StatusHistory[len(l.StatusHistory)-1]
				if last.To != entities.LeadStatusQuoteSent || !strings.Contains(last.Note, "Summer Cup Final") {
					t.Fatalf("unexpected history entry: %+v", last)
				}
				return l, nil
			},
		)

		m.notifier.EXPECT().SendQuote(gomock.Any(), "ana@example.com", gomock.Any(), gomock.Any()).Return(nil)
		m.quotes.EXPECT().MarkEmailed(gomock.Any(), gomock.Any(), now).Return(nil)

		res, err := uc.GenerateQuote(context.Background(), baseInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Quote.EmailedAt == nil || !res.Quote.EmailedAt.Equal(now) {
			t.Fatalf("expected emailed stamp, got %v", res.Quote.EmailedAt)
		}
		if res.Breakdown.Subtotal != 1100 || res.Breakdown.FinalPrice != 1100 {
			t.Fatalf("unexpected breakdown: %+v", res.Breakdown)
		}
		want := "Seasonal adjustment: +20% | Early-bird discount: -10% | Group discount: -8% | Weekend surcharge: +8%"
		if res.CalculationNotes != want {
			t.Fatalf("unexpected notes: %q", res.CalculationNotes)
		}
	})

	t.Run("new lead keeps its status but records the quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl, now)

		lead := entities.Lead{ID: "lead-1", Status: entities.LeadStatusNew}
		m.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(lead, nil)
		m.events.EXPECT().GetByID(gomock.Any(), "ev-1").Return(baseEvent, nil)
		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(basePkg, nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)

		m.leads.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) {
				if l.Status != entities.LeadStatusNew {
					t.Fatalf("expected NEW status kept, got %s", l.Status)
				}
				if l.QuoteCount != 1 {
					t.Fatalf("expected quote count 1, got %d", l.QuoteCount)
				}
				if len(l.StatusHistory) != 0 {
					t.Fatalf("expected no history entry, got %+v", l.StatusHistory)
				}
				return l, nil
			},
		)

		if _, err := uc.GenerateQuote(context.Background(), baseInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("quote survives lead update failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl, now)

		lead := entities.Lead{ID: "lead-1", Status: entities.LeadStatusContacted}
		m.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(lead, nil)
		m.events.EXPECT().GetByID(gomock.Any(), "ev-1").Return(baseEvent, nil)
		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(basePkg, nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)
		m.leads.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Lead{}, errors.New("db"))

		if _, err := uc.GenerateQuote(context.Background(), baseInput()); err != nil {
			t.Fatalf("expected graceful degradation, got %v", err)
		}
	})

	t.Run("quote survives email failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl, now)

		lead := entities.Lead{ID: "lead-1", Email: "ana@example.com", Status: entities.LeadStatusContacted}
		m.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(lead, nil)
		m.events.EXPECT().GetByID(gomock.Any(), "ev-1").Return(baseEvent, nil)
		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(basePkg, nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)
		m.leads.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) { return l, nil },
		)
		m.notifier.EXPECT().SendQuote(gomock.Any(), "ana@example.com", gomock.Any(), gomock.Any()).Return(errors.New("ses down"))

		res, err := uc.GenerateQuote(context.Background(), baseInput())
		if err != nil {
			t.Fatalf("expected graceful degradation, got %v", err)
		}
		if res.Quote.EmailedAt != nil {
			t.Fatalf("expected no emailed stamp, got %v", res.Quote.EmailedAt)
		}
	})

	t.Run("no email address skips the notifier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl, now)

		lead := entities.Lead{ID: "lead-1", Status: entities.LeadStatusContacted}
		m.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(lead, nil)
		m.events.EXPECT().GetByID(gomock.Any(), "ev-1").Return(baseEvent, nil)
		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(basePkg, nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)
		m.leads.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) { return l, nil },
		)

		if _, err := uc.GenerateQuote(context.Background(), baseInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("add-ons and itinerary days feed the final price and notes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl, now)

		lead := entities.Lead{ID: "lead-1", Status: entities.LeadStatusContacted}
		input := baseInput()
		input.AddOnIDs = []string{"ad-1", "ad-2"}
		input.ItineraryDayIDs = []string{"it-1"}

		m.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(lead, nil)
		m.events.EXPECT().GetByID(gomock.Any(), "ev-1").Return(baseEvent, nil)
		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(basePkg, nil)
		m.addons.EXPECT().ListByIDs(gomock.Any(), []string{"ad-1", "ad-2"}).Return([]entities.AddOn{
			{ID: "ad-1", Title: "VIP Lounge", Price: 120.50},
			{ID: "ad-2", Title: "Stadium Tour", Price: 79.50},
		}, nil)
		m.itineraries.EXPECT().ListByIDs(gomock.Any(), []string{"it-1"}).Return([]entities.ItineraryDay{
			{ID: "it-1", Title: "City Walk", BasePrice: 50},
		}, nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.AddOnsTotal != 200 || q.ItinerariesTotal != 50 {
					t.Fatalf("unexpected extras totals: %+v", q)
				}
				if q.FinalPrice != 1350 {
					t.Fatalf("expected final price 1350, got %v", q.FinalPrice)
				}
				return q, nil
			},
		)
		m.leads.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) { return l, nil },
		)

		res, err := uc.GenerateQuote(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(res.CalculationNotes, "Add-ons: VIP Lounge, Stadium Tour") {
			t.Fatalf("missing add-on clause: %q", res.CalculationNotes)
		}
		if !strings.Contains(res.CalculationNotes, "Itinerary: City Walk") {
			t.Fatalf("missing itinerary clause: %q", res.CalculationNotes)
		}
	})
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	now := time.Now().UTC()

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newQuoteUseCaseForTest(ctrl, now)

		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl, now)

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.GetByID(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success trims id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl, now)

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)

		q, err := uc.GetByID(context.Background(), " q-1 ")
		if err != nil || q.ID != "q-1" {
			t.Fatalf("unexpected result: %+v, %v", q, err)
		}
	})
}

func TestQuoteUseCase_StatusUpdates(t *testing.T) {
	now := time.Now().UTC()

	cases := []struct {
		name   string
		call   func(uc *QuoteUseCase) (entities.Quote, error)
		status entities.QuoteStatus
	}{
		{"mark viewed", func(uc *QuoteUseCase) (entities.Quote, error) { return uc.MarkViewed(context.Background(), "q-1") }, entities.QuoteStatusViewed},
		{"accept", func(uc *QuoteUseCase) (entities.Quote, error) { return uc.Accept(context.Background(), "q-1") }, entities.QuoteStatusAccepted},
		{"decline", func(uc *QuoteUseCase) (entities.Quote, error) { return uc.Decline(context.Background(), "q-1") }, entities.QuoteStatusDeclined},
		{"expire", func(uc *QuoteUseCase) (entities.Quote, error) { return uc.Expire(context.Background(), "q-1") }, entities.QuoteStatusExpired},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, m := newQuoteUseCaseForTest(ctrl, now)

			m.quotes.EXPECT().UpdateStatusByID(gomock.Any(), "q-1", c.status).Return(entities.Quote{ID: "q-1", Status: c.status}, nil)

			q, err := c.call(uc)
			if err != nil || q.Status != c.status {
				t.Fatalf("unexpected result: %+v, %v", q, err)
			}
		})
	}

	t.Run("missing quote maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl, now)

		m.quotes.EXPECT().UpdateStatusByID(gomock.Any(), "q-1", entities.QuoteStatusAccepted).Return(entities.Quote{}, nil)

		_, err := uc.Accept(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newQuoteUseCaseForTest(ctrl, now)

		_, err := uc.MarkViewed(context.Background(), "")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})
}

func TestQuoteUseCase_Update(t *testing.T) {
	now := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	t.Run("missing id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newQuoteUseCaseForTest(ctrl, now)

		_, err := uc.Update(context.Background(), entities.Quote{})
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl, now)

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.Update(context.Background(), entities.Quote{ID: "q-1"})
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("preserves created at and stamps updated at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl, now)

		created := now.Add(-48 * time.Hour)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", CreatedAt: created}, nil)
		m.quotes.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if !q.CreatedAt.Equal(created) {
					t.Fatalf("expected original created at, got %v", q.CreatedAt)
				}
				if !q.UpdatedAt.Equal(now) {
					t.Fatalf("expected updated at stamped, got %v", q.UpdatedAt)
				}
				return q, nil
			},
		)

		if _, err := uc.Update(context.Background(), entities.Quote{ID: "q-1", FinalPrice: 999}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_Delete(t *testing.T) {
	now := time.Now().UTC()

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl, now)

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		err := uc.Delete(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl, now)

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)
		m.quotes.EXPECT().Delete(gomock.Any(), "q-1").Return(nil)

		if err := uc.Delete(context.Background(), "q-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_ListByLeadID(t *testing.T) {
	now := time.Now().UTC()

	t.Run("empty lead id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newQuoteUseCaseForTest(ctrl, now)

		_, err := uc.ListByLeadID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidLeadID) {
			t.Fatalf("expected ErrInvalidLeadID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl, now)

		m.quotes.EXPECT().ListByLeadID(gomock.Any(), "lead-1").Return([]entities.Quote{{ID: "q-1"}, {ID: "q-2"}}, nil)

		quotes, err := uc.ListByLeadID(context.Background(), "lead-1")
		if err != nil || len(quotes) != 2 {
			t.Fatalf("unexpected result: %v, %v", quotes, err)
		}
	})
}

func TestBuildCalculationNotes(t *testing.T) {
	t.Run("zero rates are skipped", func(t *testing.T) {
		b := pricing.Breakdown{LastMinuteRate: 0.25}
		got := buildCalculationNotes(b, nil, nil)
		if got != "Last-minute surcharge: +25%" {
			t.Fatalf("unexpected notes: %q", got)
		}
	})

	t.Run("all adjustments in fixed order", func(t *testing.T) {
		b := pricing.Breakdown{
			SeasonalRate:   0.20,
			EarlyBirdRate:  0.10,
			LastMinuteRate: 0.25,
			GroupRate:      0.08,
			WeekendRate:    0.08,
		}
		want := "Seasonal adjustment: +20% | Early-bird discount: -10% | Last-minute surcharge: +25% | Group discount: -8% | Weekend surcharge: +8%"
		if got := buildCalculationNotes(b, nil, nil); got != want {
			t.Fatalf("unexpected notes: %q", got)
		}
	})

	t.Run("empty breakdown renders empty notes", func(t *testing.T) {
		if got := buildCalculationNotes(pricing.Breakdown{}, nil, nil); got != "" {
			t.Fatalf("expected empty notes, got %q", got)
		}
	})

	t.Run("fractional rates keep their precision", func(t *testing.T) {
		b := pricing.Breakdown{SeasonalRate: 0.125}
		if got := buildCalculationNotes(b, nil, nil); got != "Seasonal adjustment: +12.5%" {
			t.Fatalf("unexpected notes: %q", got)
		}
	})
}
