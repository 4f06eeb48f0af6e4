// Package scoring computes the 0-100 lead score from independent bonuses.
// The sum is order-independent and clamped, so the score can be recomputed
// from scratch on every lead change.
package scoring

import (
	"time"

	"fanvoyage/internal/domain/entities"
)

const (
	maxScore = 100

	nameBonus  = 10
	emailBonus = 20
	phoneBonus = 15

	conversationWeight = 2
	conversationCap    = 20

	interestWeight       = 5
	recommendationWeight = 5

	companyBonus  = 10
	positionBonus = 5

	recencyWindowDays = 7
	recencyBonus      = 15
	// The conversational flow historically weighted recency higher.
	conversationRecencyBonus = 20

	quoteWeight = 10
	quoteCap    = 30
	orderWeight = 15
	orderCap    = 45
)

// Score computes the lead score used by lead creation, updates and status
// transitions.
func Score(l entities.Lead, now time.Time) int {
	return clamp(base(l, now, recencyBonus))
}

// ConversationScore is the variant applied inside the AI conversation flow.
// It differs from Score only in the recency bonus; call sites must pick one
// variant and stick with it.
func ConversationScore(l entities.Lead, now time.Time) int {
	return clamp(base(l, now, conversationRecencyBonus))
}

func base(l entities.Lead, now time.Time, recency int) int {
	score := 0

	if l.Name != "" {
		score += nameBonus
	}
	if l.Email != "" {
		score += emailBonus
	}
	if l.Phone != "" {
		score += phoneBonus
	}

	score += capped(l.ConversationCount*conversationWeight, conversationCap)
	score += len(l.InterestedEventIDs) * interestWeight
	score += len(l.RecommendedPackageIDs) * recommendationWeight

	if l.Company != "" {
		score += companyBonus
	}
	if l.Position != "" {
		score += positionBonus
	}

	if !l.CreatedAt.IsZero() && now.Sub(l.CreatedAt) <= recencyWindowDays*24*time.Hour {
		score += recency
	}

	score += capped(l.QuoteCount*quoteWeight, quoteCap)
	score += capped(l.OrderCount*orderWeight, orderCap)

	return score
}

func capped(v, limit int) int {
	if v > limit {
		return limit
	}
	return v
}

func clamp(v int) int {
	if v > maxScore {
		return maxScore
	}
	if v < 0 {
		return 0
	}
	return v
}
