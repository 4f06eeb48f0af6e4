package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fanvoyage/internal/adapter/http/handlers/mocks"
	"fanvoyage/internal/domain/entities"
	"fanvoyage/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func travelDay(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}

func TestQuoteHandler_GenerateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	travelStart, travelEnd := travelDay(30), travelDay(33)
	validBody := fmt.Sprintf(`{"lead_id":"lead-1","event_id":"ev-1","package_id":"pkg-1","travelers":4,"travel_start":%q,"travel_end":%q}`, travelStart, travelEnd)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.GenerateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing lead id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.GenerateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(fmt.Sprintf(`{"event_id":"ev-1","package_id":"pkg-1","travelers":2,"travel_start":%q,"travel_end":%q}`, travelStart, travelEnd)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("travel start after end", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.GenerateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(fmt.Sprintf(`{"lead_id":"lead-1","event_id":"ev-1","package_id":"pkg-1","travelers":2,"travel_start":%q,"travel_end":%q}`, travelEnd, travelStart)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("travel window already past", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.GenerateQuote)

		body := fmt.Sprintf(`{"lead_id":"lead-1","event_id":"ev-1","package_id":"pkg-1","travelers":2,"travel_start":%q,"travel_end":%q}`, travelDay(-90), travelDay(-87))
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unsupported currency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.GenerateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(fmt.Sprintf(`{"lead_id":"lead-1","event_id":"ev-1","package_id":"pkg-1","travelers":2,"travel_start":%q,"travel_end":%q,"currency":"BTC"}`, travelStart, travelEnd)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.GenerateQuote)

		uc.EXPECT().GenerateQuote(gomock.Any(), gomock.Any()).Return(usecase.QuoteResult{}, usecase.ErrLeadNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("mismatch maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.GenerateQuote)

		uc.EXPECT().GenerateQuote(gomock.Any(), gomock.Any()).Return(usecase.QuoteResult{}, usecase.ErrPackageEventMismatch)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.GenerateQuote)

		uc.EXPECT().GenerateQuote(gomock.Any(), gomock.AssignableToTypeOf(usecase.GenerateQuoteInput{})).DoAndReturn(
			func(_ context.Context, input usecase.GenerateQuoteInput) (usecase.QuoteResult, error) {
				if input.LeadID != "lead-1" || input.Travelers != 4 {
					t.Fatalf("unexpected input: %+v", input)
				}
				if input.Currency != "USD" {
					t.Fatalf("expected default currency, got %s", input.Currency)
				}
				return usecase.QuoteResult{
					Quote:            entities.Quote{ID: "q-1", LeadID: "lead-1", FinalPrice: 1100, Status: entities.QuoteStatusSent},
					CalculationNotes: "Seasonal adjustment: +20%",
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		quote, _ := body["quote"].(map[string]any)
		if quote["id"] != "q-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:quote_id", h.GetQuote)

		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:quote_id", h.GetQuote)

		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSent}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_PatchStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("accept success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:quote_id/accept", h.Accept)

		uc.EXPECT().Accept(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusAccepted}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("decline missing quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:quote_id/decline", h.Decline)

		uc.EXPECT().Decline(gomock.Any(), "q-1").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/decline", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("expire success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:quote_id/expire", h.Expire)

		uc.EXPECT().Expire(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusExpired}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/expire", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_UpdateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("overrides only the provided fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PUT("/v1/quotes/:quote_id", h.UpdateQuote)

		stored := entities.Quote{ID: "q-1", Travelers: 4, FinalPrice: 1100, Notes: "keep me", Status: entities.QuoteStatusSent}
		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(stored, nil)
		uc.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.FinalPrice != 999 {
					t.Fatalf("expected final price override, got %v", q.FinalPrice)
				}
				if q.Travelers != 4 || q.Notes != "keep me" {
					t.Fatalf("expected untouched fields kept: %+v", q)
				}
				return q, nil
			},
		)

		req := httptest.NewRequest(http.MethodPut, "/v1/quotes/q-1", bytes.NewBufferString(`{"final_price":999}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("normalizes status override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PUT("/v1/quotes/:quote_id", h.UpdateQuote)

		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSent}, nil)
		uc.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.Status != entities.QuoteStatusDeclined {
					t.Fatalf("expected DECLINED, got %s", q.Status)
				}
				return q, nil
			},
		)

		req := httptest.NewRequest(http.MethodPut, "/v1/quotes/q-1", bytes.NewBufferString(`{"status":"declined"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PUT("/v1/quotes/:quote_id", h.UpdateQuote)

		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSent}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/quotes/q-1", bytes.NewBufferString(`{"status":"FROZEN"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad expiry date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PUT("/v1/quotes/:quote_id", h.UpdateQuote)

		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/quotes/q-1", bytes.NewBufferString(`{"expires_at":"not-a-date"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_DeleteQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns no content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.DELETE("/v1/quotes/:quote_id", h.DeleteQuote)

		uc.EXPECT().Delete(gomock.Any(), "q-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("missing quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.DELETE("/v1/quotes/:quote_id", h.DeleteQuote)

		uc.EXPECT().Delete(gomock.Any(), "q-1").Return(usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_ListQuotesByLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/leads/:lead_id/quotes", h.ListQuotesByLead)

		now := time.Now().UTC()
		uc.EXPECT().ListByLeadID(gomock.Any(), "lead-1").Return([]entities.Quote{
			{ID: "q-1", LeadID: "lead-1", CreatedAt: now},
			{ID: "q-2", LeadID: "lead-1", CreatedAt: now},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/leads/lead-1/quotes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("expected 2 quotes, got %s", w.Body.String())
		}
	})

	t.Run("empty list serializes as array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/leads/:lead_id/quotes", h.ListQuotesByLead)

		uc.EXPECT().ListByLeadID(gomock.Any(), "lead-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/leads/lead-1/quotes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestMapQuoteError(t *testing.T) {
	if got := mapQuoteError(usecase.ErrInvalidQuoteID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrInvalidLeadID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrPackageEventMismatch); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrLeadNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuoteError(usecase.ErrEventNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuoteError(usecase.ErrPackageNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuoteError(usecase.ErrQuoteNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuoteError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
