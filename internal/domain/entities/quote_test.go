package entities

import "testing"

func TestQuoteStatusIsValid(t *testing.T) {
	for _, s := range []QuoteStatus{QuoteStatusSent, QuoteStatusViewed, QuoteStatusAccepted, QuoteStatusExpired, QuoteStatusDeclined} {
		if !s.IsValid() {
			t.Fatalf("expected %s valid", s)
		}
	}
	if QuoteStatus("FROZEN").IsValid() {
		t.Fatalf("expected unknown status invalid")
	}
	if QuoteStatus("sent").IsValid() {
		t.Fatalf("expected lowercase status invalid")
	}
}
